package maze

import (
	"fmt"
	"strings"
)

// Algorithm selects a maze topology builder.
type Algorithm int

const (
	// BinaryTree links every cell either right or down.
	BinaryTree Algorithm = iota
	// Sidewinder builds horizontal runs, each dropping one random downward link.
	Sidewinder
	// Eller processes one row of set labels at a time.
	Eller
)

// Algorithms lists every supported Algorithm in declaration order.
var Algorithms = []Algorithm{BinaryTree, Sidewinder, Eller}

// String returns the canonical lower-case name of a.
func (a Algorithm) String() string {
	switch a {
	case BinaryTree:
		return "binary-tree"
	case Sidewinder:
		return "sidewinder"
	case Eller:
		return "eller"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm resolves a name (case-insensitive; "-", "_" and spaces
// ignored) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "binarytree":
		return BinaryTree, nil
	case "sidewinder":
		return Sidewinder, nil
	case "eller", "ellers":
		return Eller, nil
	}
	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
}

// buildFunc carves one maze topology through c using src for random choices.
type buildFunc func(c *carver, src Source)

// build returns the topology builder for a.
func (a Algorithm) build() (buildFunc, error) {
	switch a {
	case BinaryTree:
		return carveBinaryTree, nil
	case Sidewinder:
		return carveSidewinder, nil
	case Eller:
		return func(c *carver, src Source) { carveEller(c, src) }, nil
	}
	return nil, ErrUnknownAlgorithm
}
