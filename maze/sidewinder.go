package maze

import "github.com/katalvlaran/lvmaze/tilemap"

// carveSidewinder walks each row left to right keeping the current run
// [start,end] of horizontally linked cells. A rightward link extends the
// run; a downward link closes it by dropping one connector from a member
// chosen uniformly, and the next run starts at x+1.
//
// The bottom row is forced rightward, so it never drops a connector.
func carveSidewinder(c *carver, src Source) {
	for y := 0; y < c.layout.Height; y++ {
		start, end := 0, 0
		for x := 0; x < c.layout.Width; x++ {
			c.carveBlock(x, y, 0, 0)
			cx, cy := carveDirection(x, y, c.layout, src)
			end = x
			if cx == 1 {
				c.carveRight(x, y)
			}
			if cy == 1 {
				c.carveDown(tilemap.IntRange(src, start, end), y)
				start, end = x+1, x+1
			}
		}
	}
}
