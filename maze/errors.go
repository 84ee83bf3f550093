// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// errors.go — sentinel errors for the maze package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site: "<Method>: ...".
//   • Builders never panic; option constructors panic on nil arguments.

package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension indicates a width, height or corridor size below 1.
// Raised before any allocation.
var ErrInvalidDimension = errors.New("maze: dimensions must be at least 1")

// ErrUnknownAlgorithm indicates an Algorithm value outside the defined set.
var ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")

// ErrNilSurface indicates Build was called with a nil surface.
var ErrNilSurface = errors.New("maze: surface is nil")

// ErrSurfaceTooSmall indicates the target surface cannot hold the Layout.
var ErrSurfaceTooSmall = errors.New("maze: surface smaller than maze layout")

// Method names used as error context prefixes.
const (
	methodGenerate  = "Generate"
	methodBuild     = "Build"
	methodNewLayout = "NewLayout"
)

// wrapf attaches method context to a sentinel (or lower-level) error.
func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
