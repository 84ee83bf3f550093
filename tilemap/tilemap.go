package tilemap

import (
	"fmt"
	"math/rand"
	"strings"
)

// defaultSeed seeds the sampling Source when no option supplies one,
// keeping unseeded TileMaps reproducible.
const defaultSeed int64 = 1

// Option configures a TileMap at construction time.
type Option func(*TileMap)

// WithSource sets the RNG used by SampleLocationsByType.
// Panics on nil to surface programmer error early.
func WithSource(src Source) Option {
	if src == nil {
		panic("tilemap: WithSource(nil)")
	}
	return func(tm *TileMap) {
		tm.src = src
	}
}

// WithSeed seeds a fresh *rand.Rand for SampleLocationsByType.
func WithSeed(seed int64) Option {
	return func(tm *TileMap) {
		tm.src = rand.New(rand.NewSource(seed))
	}
}

// TileMap is an in-memory Surface. Tiles are stored row-major; every tile
// carries a tile index into the tileset and an independent blocked flag.
// A new TileMap has every tile at index 0 and unblocked.
type TileMap struct {
	width, height int
	tiles         []int
	walls         []bool
	tileset       []Image
	src           Source
}

// New allocates a width×height TileMap whose tile indices refer to tileset
// positions (tileset[i] resolves to index i).
// Returns ErrInvalidSize for width/height < 1 and ErrEmptyTileset when no
// images are supplied.
// Complexity: O(W×H) time and memory.
func New(width, height int, tileset []Image, opts ...Option) (*TileMap, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidSize)
	}
	if len(tileset) == 0 {
		return nil, ErrEmptyTileset
	}
	tm := &TileMap{
		width:   width,
		height:  height,
		tiles:   make([]int, width*height),
		walls:   make([]bool, width*height),
		tileset: append([]Image(nil), tileset...),
	}
	for _, opt := range opts {
		opt(tm)
	}
	if tm.src == nil {
		tm.src = rand.New(rand.NewSource(defaultSeed))
	}

	return tm, nil
}

// Size returns the map dimensions in tiles.
func (tm *TileMap) Size() (width, height int) {
	return tm.width, tm.height
}

// InBounds reports whether (col,row) lies within the map.
func (tm *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < tm.width && row >= 0 && row < tm.height
}

// index maps (col,row) to a row-major index.
func (tm *TileMap) index(col, row int) int {
	return row*tm.width + col
}

// SetTile sets the tile index at (col,row). Out-of-range writes are ignored.
func (tm *TileMap) SetTile(col, row, tileIndex int) {
	if !tm.InBounds(col, row) {
		return
	}
	tm.tiles[tm.index(col, row)] = tileIndex
}

// Tile returns the tile index at (col,row), or -1 outside the map.
func (tm *TileMap) Tile(col, row int) int {
	if !tm.InBounds(col, row) {
		return -1
	}
	return tm.tiles[tm.index(col, row)]
}

// SetWall sets the blocked flag at (col,row). Out-of-range writes are ignored.
func (tm *TileMap) SetWall(col, row int, blocked bool) {
	if !tm.InBounds(col, row) {
		return
	}
	tm.walls[tm.index(col, row)] = blocked
}

// IsObstacle reports whether (col,row) is blocked. Cells outside the map
// count as obstacles.
func (tm *TileMap) IsObstacle(col, row int) bool {
	if !tm.InBounds(col, row) {
		return true
	}
	return tm.walls[tm.index(col, row)]
}

// Tileset returns a copy of the registered images in index order.
func (tm *TileMap) Tileset() []Image {
	return append([]Image(nil), tm.tileset...)
}

// ResolveTileIndex returns the tileset position of img.
// Returns ErrUnknownTileImage when img was never registered.
func (tm *TileMap) ResolveTileIndex(img Image) (int, error) {
	for i, candidate := range tm.tileset {
		if candidate == img {
			return i, nil
		}
	}
	return -1, fmt.Errorf("ResolveTileIndex(%q): %w", string(img), ErrUnknownTileImage)
}

// String renders blocked tiles as '#' and open tiles as '.', one line per row.
func (tm *TileMap) String() string {
	var sb strings.Builder
	sb.Grow((tm.width + 1) * tm.height)
	for row := 0; row < tm.height; row++ {
		for col := 0; col < tm.width; col++ {
			if tm.walls[tm.index(col, row)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
