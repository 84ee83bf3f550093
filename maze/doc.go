// Package maze generates perfect mazes and carves them into a tile surface.
//
// What:
//
//   - Three topology builders, each producing a spanning tree over a
//     Width×Height grid of logical cells:
//   - BinaryTree: every cell links right or down; the bottom row and right
//     column form the spine.
//   - Sidewinder: row-wise horizontal runs, each closed by one random
//     downward link from among its members.
//   - Eller: row-at-a-time set labels; random merges, at least one downward
//     link per set, forced merges on the last row.
//   - Layout: the expansion of a logical cell (x,y) into a CorridorSize ×
//     CorridorSize block of floor tiles separated by one-tile wall lines.
//   - Passages: reads the carved topology back from any Surface.
//
// Physical size:
//
//	TileWidth  = Width*(CorridorSize+1) + 1
//	TileHeight = Height*(CorridorSize+1) + 1
//
// Example (BinaryTree, 3×2 cells, corridor 1 → 7×5 tiles):
//
//	#######
//	#.#...#
//	#.###.#
//	#.....#
//	#######
//
// Complexity:
//
//   - BinaryTree, Sidewinder: O(W·H·C²) time, O(1) extra memory.
//   - Eller:                  O(W·H·C² + H·W²) time worst case (full-row label
//     rewrite per merge), O(W) extra memory.
//
// Errors:
//
//   - ErrInvalidDimension:  width, height or corridor size < 1.
//   - ErrUnknownAlgorithm:  Algorithm value outside the defined set.
//   - ErrNilSurface:        Build called without a surface.
//   - ErrSurfaceTooSmall:   Build surface smaller than the Layout.
//   - tilemap.ErrUnknownTileImage: wall/floor image not registered on the surface.
//
// Determinism: for a fixed Source sequence every builder produces a
// bit-identical surface. Unseeded calls use a fixed default seed.
package maze
