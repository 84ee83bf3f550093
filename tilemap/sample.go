package tilemap

// SampleLocationsByType returns up to maxCount distinct locations whose tile
// index equals tileIndex, chosen uniformly at random with the map's Source.
// maxCount <= 0 yields an empty result.
//
// Reservoir sampling (Algorithm R) keeps a single row-major pass:
//  1. Fill the reservoir with the first maxCount matches.
//  2. For the k-th match (k >= maxCount), replace a random slot with
//     probability maxCount/(k+1).
//
// Complexity: O(W×H) time, O(maxCount) memory.
func (tm *TileMap) SampleLocationsByType(tileIndex, maxCount int) []Location {
	if maxCount <= 0 {
		return []Location{}
	}
	picked := make([]Location, 0, maxCount)
	seen := 0
	for row := 0; row < tm.height; row++ {
		for col := 0; col < tm.width; col++ {
			if tm.tiles[tm.index(col, row)] != tileIndex {
				continue
			}
			if seen < maxCount {
				picked = append(picked, Location{Col: col, Row: row})
			} else if j := tm.src.Intn(seen + 1); j < maxCount {
				picked[j] = Location{Col: col, Row: row}
			}
			seen++
		}
	}
	return picked
}
