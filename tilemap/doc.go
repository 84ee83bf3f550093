// Package tilemap defines the tile surface that mazes are carved into and
// that line queries read from, together with an in-memory implementation.
//
// What:
//
//   - Surface: the small contract the maze builders and line tracers consume
//     (size, tile identity, passability, image→index lookup, sampling).
//   - TileMap: a rectangular, row-major Surface with a registered tileset.
//   - Location: an integer (col,row) tile address.
//   - Source: the uniform integer RNG consumed wherever a random choice is made.
//
// Why:
//
//   - Builders and tracers never own tile storage; any host tilemap that
//     satisfies Surface can be carved or queried.
//   - TileMap covers tests, tools and headless callers.
//
// Complexity:
//
//   - SetTile, SetWall, IsObstacle, Tile: O(1).
//   - ResolveTileIndex:      O(T), T = tileset size (tilesets are tiny).
//   - SampleLocationsByType: O(W×H), Memory: O(maxCount).
//   - OpenComponents:        O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidSize:       width or height < 1.
//   - ErrEmptyTileset:      no tile images supplied.
//   - ErrUnknownTileImage:  image was never registered in the tileset.
//
// Concurrency: TileMap is not safe for concurrent mutation.
package tilemap
