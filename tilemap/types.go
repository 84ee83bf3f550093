package tilemap

import (
	"errors"
	"fmt"
)

// Sentinel errors for tilemap operations.
var (
	// ErrInvalidSize indicates a requested width or height below 1.
	ErrInvalidSize = errors.New("tilemap: width and height must be at least 1")
	// ErrEmptyTileset indicates a TileMap was requested without any tile images.
	ErrEmptyTileset = errors.New("tilemap: tileset must contain at least one image")
	// ErrUnknownTileImage indicates an image that the surface never registered.
	ErrUnknownTileImage = errors.New("tilemap: unknown tile image")
)

// Image is an opaque tile-image handle. Surfaces map it to a small stable
// tile index via ResolveTileIndex.
type Image string

// Location addresses a single physical tile. The zero value (0,0) is a
// valid location.
type Location struct {
	Col, Row int
}

// Loc is shorthand for Location{Col: col, Row: row}.
func Loc(col, row int) Location {
	return Location{Col: col, Row: row}
}

// String renders the location as "(col,row)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Col, l.Row)
}

// Source supplies uniform integers in [0,n). *math/rand.Rand satisfies it.
// Implementations need not be goroutine-safe; calls are sequential.
type Source interface {
	Intn(n int) int
}

// IntRange draws a uniform integer in the inclusive range [lo,hi].
// Callers guarantee lo <= hi.
func IntRange(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}

// Surface is the addressable tile grid consumed by maze builders and line
// tracers. Out-of-range writes are ignored; out-of-range cells are obstacles.
type Surface interface {
	// Size returns the surface dimensions in tiles.
	Size() (width, height int)
	// SetTile sets the visual tile identity at (col,row).
	SetTile(col, row, tileIndex int)
	// SetWall sets the passability flag at (col,row), independent of the tile.
	SetWall(col, row int, blocked bool)
	// IsObstacle reports whether (col,row) is blocked.
	IsObstacle(col, row int) bool
	// ResolveTileIndex maps img to the index used by SetTile.
	ResolveTileIndex(img Image) (int, error)
	// SampleLocationsByType returns up to maxCount random locations whose
	// tile index equals tileIndex.
	SampleLocationsByType(tileIndex, maxCount int) []Location
}
