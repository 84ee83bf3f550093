// Package lvmaze generates perfect mazes straight into tile surfaces and
// traces grid lines across them.
//
// What is lvmaze?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Maze builders: Binary Tree, Sidewinder, Eller's; spanning trees only
//		• Tile expansion: logical cells → corridor blocks of any thickness
//		• Line tracing: diagonal interpolation and supercover stepping
//		• Queries: "is there a wall between?" and "paint this line"
//
// Packages:
//
//	tilemap/ — Surface contract, Location, in-memory TileMap
//	maze/    — Generate/Build, Layout, Passages read-back
//	trace/   — Diagonal, Covering, IsWallBetween, PaintBetween
//	scene/   — "current surface" adapter for host loops
//
// Quick ASCII example (BinaryTree, 3×2 cells, corridor 1):
//
//	#######
//	#.#...#
//	#.###.#
//	#.....#
//	#######
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
