package maze

// carveEller runs Eller's algorithm and returns the set labels of the last
// row (all equal once the forced merges have run).
//
// Per row y:
//  1. Left to right, merge (x, x+1) when their labels differ and either y is
//     the last row or a coin flip says so. A merge relabels every column
//     holding the right label to the left label and opens the connector.
//  2. Stop after the last row.
//  3. Group columns by label; per group shuffle the members, keep a random
//     non-empty prefix and open a downward connector under each kept column,
//     which carries its label into the next row. Other columns of the next
//     row get the fresh label (y+1)*Width + x.
//
// Labels from rows ≤ y are all below (y+1)*Width, so fresh labels never
// collide with carried ones.
func carveEller(c *carver, src Source) []int {
	width, height := c.layout.Width, c.layout.Height
	xMax, yMax := width-1, height-1

	row := make([]int, width)
	for x := range row {
		row[x] = x
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			merge := x < xMax && row[x] != row[x+1] && (y == yMax || coinFlip(src))
			if merge {
				relabel(row, row[x+1], row[x])
			}
			c.carveBlock(x, y, 0, 0)
			if merge {
				c.carveRight(x, y)
			}
		}
		if y == yMax {
			break
		}

		next := make([]int, width)
		for x := range next {
			next[x] = (y+1)*width + x
		}
		for _, members := range groupByLabel(row) {
			shuffleInts(members, src)
			keep := 1 + src.Intn(len(members))
			for _, x := range members[:keep] {
				c.carveDown(x, y)
				next[x] = row[x]
			}
		}
		row = next
	}
	return row
}

// relabel rewrites every occurrence of from to to.
// Complexity: O(len(row)).
func relabel(row []int, from, to int) {
	for i, l := range row {
		if l == from {
			row[i] = to
		}
	}
}

// groupByLabel returns the column indices of each label group, groups
// ordered by first appearance, members in ascending column order.
func groupByLabel(row []int) [][]int {
	slot := make(map[int]int, len(row))
	var groups [][]int
	for x, l := range row {
		i, ok := slot[l]
		if !ok {
			i = len(groups)
			slot[l] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], x)
	}
	return groups
}
