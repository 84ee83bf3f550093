// Package scene adapts the explicit-surface APIs of maze, trace and tilemap
// to hosts that keep one "current" tile surface. Every query takes an
// optional surface; nil falls back to the current one, and with neither the
// query yields an empty result instead of failing.
package scene

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/tilemap"
	"github.com/katalvlaran/lvmaze/trace"
)

// ErrMissingSurface indicates no current surface has been set.
var ErrMissingSurface = errors.New("scene: no current surface")

// Scene holds the host's current surface. The zero value has none.
type Scene struct {
	current tilemap.Surface
}

// New returns a Scene whose current surface is s (nil allowed).
func New(s tilemap.Surface) *Scene {
	return &Scene{current: s}
}

// SetSurface replaces the current surface; nil clears it.
func (sc *Scene) SetSurface(s tilemap.Surface) {
	sc.current = s
}

// Current returns the current surface or ErrMissingSurface.
func (sc *Scene) Current() (tilemap.Surface, error) {
	if sc.current == nil {
		return nil, ErrMissingSurface
	}
	return sc.current, nil
}

// pick returns s when given, else the current surface (possibly nil).
func (sc *Scene) pick(s tilemap.Surface) tilemap.Surface {
	if s != nil {
		return s
	}
	return sc.current
}

// GenerateMaze generates a maze with maze.Generate and makes it current.
// On error the current surface is left unchanged.
func (sc *Scene) GenerateMaze(alg maze.Algorithm, width, height int, wall, floor tilemap.Image, opts ...maze.Option) (*tilemap.TileMap, error) {
	tm, err := maze.Generate(alg, width, height, wall, floor, opts...)
	if err != nil {
		return nil, err
	}
	sc.current = tm
	return tm, nil
}

// IsWallBetween runs trace.IsWallBetween on s, or on the current surface
// when s is nil. Without any surface it reports false.
func (sc *Scene) IsWallBetween(l1, l2 tilemap.Location, s tilemap.Surface) (tilemap.Location, bool) {
	target := sc.pick(s)
	if target == nil {
		return tilemap.Location{}, false
	}
	return trace.IsWallBetween(target, l1, l2)
}

// PaintLineBetween runs trace.PaintBetween on s, or on the current surface
// when s is nil. Without any surface it does nothing.
func (sc *Scene) PaintLineBetween(l1, l2 tilemap.Location, img tilemap.Image, s tilemap.Surface) error {
	target := sc.pick(s)
	if target == nil {
		return nil
	}
	return trace.PaintBetween(target, l1, l2, img)
}

// RandomTilesByType samples up to maxCount locations of the current surface
// whose tile is img. It returns nil when there is no current surface or img
// is empty; an unregistered img fails with tilemap.ErrUnknownTileImage.
func (sc *Scene) RandomTilesByType(img tilemap.Image, maxCount int) ([]tilemap.Location, error) {
	if img == "" || sc.current == nil {
		return nil, nil
	}
	index, err := sc.current.ResolveTileIndex(img)
	if err != nil {
		return nil, fmt.Errorf("RandomTilesByType: %w", err)
	}
	return sc.current.SampleLocationsByType(index, maxCount), nil
}
