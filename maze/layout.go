package maze

import "github.com/katalvlaran/lvmaze/tilemap"

// Layout maps logical maze cells onto physical tiles. Each cell (x,y) owns a
// CorridorSize×CorridorSize floor block anchored at Anchor(x,y); blocks are
// separated (and the whole maze framed) by wall lines one tile thick.
type Layout struct {
	Width, Height         int // logical cells
	CorridorSize          int // floor block thickness in tiles
	TileWidth, TileHeight int // physical surface size
}

// NewLayout validates the dimensions and computes the physical size.
// Returns ErrInvalidDimension when any argument is below 1.
// Complexity: O(1).
func NewLayout(width, height, corridorSize int) (Layout, error) {
	if width < 1 || height < 1 || corridorSize < 1 {
		return Layout{}, wrapf(methodNewLayout, ErrInvalidDimension,
			"width=%d height=%d corridorSize=%d", width, height, corridorSize)
	}
	stride := corridorSize + 1
	return Layout{
		Width:        width,
		Height:       height,
		CorridorSize: corridorSize,
		TileWidth:    width*stride + 1,
		TileHeight:   height*stride + 1,
	}, nil
}

// Anchor returns the top-left tile of cell (x,y)'s floor block.
func (l Layout) Anchor(x, y int) (col, row int) {
	stride := l.CorridorSize + 1
	return x*stride + 1, y*stride + 1
}

// FillWalls sets every tile of s to wallIndex and marks it blocked.
// Complexity: O(W×H) for a W×H surface.
func FillWalls(s tilemap.Surface, wallIndex int) {
	w, h := s.Size()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			s.SetTile(col, row, wallIndex)
			s.SetWall(col, row, true)
		}
	}
}

// carver paints floor tiles for logical cells of a Layout onto a Surface.
type carver struct {
	s      tilemap.Surface
	layout Layout
	floor  int
}

// open turns one tile into passable floor.
func (c *carver) open(col, row int) {
	c.s.SetTile(col, row, c.floor)
	c.s.SetWall(col, row, false)
}

// carveBlock opens cell (x,y)'s floor block, extended by cx extra tile
// columns and cy extra tile rows into the neighbouring wall line.
func (c *carver) carveBlock(x, y, cx, cy int) {
	tx, ty := c.layout.Anchor(x, y)
	size := c.layout.CorridorSize
	for by := 0; by < size+cy; by++ {
		for bx := 0; bx < size+cx; bx++ {
			c.open(tx+bx, ty+by)
		}
	}
}

// carveRight opens the wall column between (x,y) and (x+1,y).
func (c *carver) carveRight(x, y int) {
	tx, ty := c.layout.Anchor(x, y)
	size := c.layout.CorridorSize
	for i := 0; i < size; i++ {
		c.open(tx+size, ty+i)
	}
}

// carveDown opens the wall row between (x,y) and (x,y+1).
func (c *carver) carveDown(x, y int) {
	tx, ty := c.layout.Anchor(x, y)
	size := c.layout.CorridorSize
	for i := 0; i < size; i++ {
		c.open(tx+i, ty+size)
	}
}

// carveDirection picks the (cx,cy) link of cell (x,y) shared by BinaryTree
// and Sidewinder: none at the bottom-right corner, right along the bottom
// row, down along the right column, otherwise one coin flip.
func carveDirection(x, y int, l Layout, src Source) (cx, cy int) {
	xMax, yMax := l.Width-1, l.Height-1
	switch {
	case y == yMax && x == xMax:
		return 0, 0
	case y == yMax:
		return 1, 0
	case x == xMax:
		return 0, 1
	case coinFlip(src):
		return 1, 0
	default:
		return 0, 1
	}
}
