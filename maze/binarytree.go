package maze

// carveBinaryTree visits cells in row-major order and opens each block
// extended toward its chosen neighbour, so the extension itself is the link.
func carveBinaryTree(c *carver, src Source) {
	for y := 0; y < c.layout.Height; y++ {
		for x := 0; x < c.layout.Width; x++ {
			cx, cy := carveDirection(x, y, c.layout, src)
			c.carveBlock(x, y, cx, cy)
		}
	}
}
