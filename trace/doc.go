// Package trace enumerates the grid tiles a straight segment between two
// locations passes through, and builds wall-visibility and tile-painting
// queries on top of that.
//
// What:
//
//   - Diagonal: pure linear interpolation over N = max(|Δcol|,|Δrow|) steps,
//     each axis rounded independently. Not guaranteed 4-connected.
//   - Covering: integer supercover stepping. Every consecutive pair of tiles
//     differs by one unit on exactly one axis, and every tile the
//     zero-width segment touches is visited.
//   - IsWallBetween: first obstacle strictly between two locations.
//   - PaintBetween: sets every tile of the covering line, endpoints included.
//
// Handlers return (value, stop). Returning stop=true ends the walk at once
// and the tracer returns (value, true); otherwise the tracer returns the
// zero value and false after the last tile. A produced value of (0,0) is
// therefore never confused with "nothing found".
//
// exclusive=true skips both endpoints.
//
// Complexity: O(|Δcol|+|Δrow|) handler calls, O(1) memory (Cells: O(n)).
package trace
