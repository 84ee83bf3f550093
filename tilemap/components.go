package tilemap

// neighborOffsets lists the 4-directional steps: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// OpenComponents finds all 4-connected regions of unblocked tiles.
// Each component lists its locations in BFS discovery order; components are
// ordered by their first tile in row-major order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (tm *TileMap) OpenComponents() [][]Location {
	seen := make([]bool, tm.width*tm.height)
	var comps [][]Location

	for row := 0; row < tm.height; row++ {
		for col := 0; col < tm.width; col++ {
			i0 := tm.index(col, row)
			if tm.walls[i0] || seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []Location{{Col: col, Row: row}}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range neighborOffsets {
					vc, vr := u.Col+d[0], u.Row+d[1]
					if !tm.InBounds(vc, vr) {
						continue
					}
					vi := tm.index(vc, vr)
					if tm.walls[vi] || seen[vi] {
						continue
					}
					seen[vi] = true
					queue = append(queue, Location{Col: vc, Row: vr})
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// CountTiles returns how many tiles carry tileIndex.
// Complexity: O(W·H).
func (tm *TileMap) CountTiles(tileIndex int) int {
	n := 0
	for _, t := range tm.tiles {
		if t == tileIndex {
			n++
		}
	}
	return n
}
