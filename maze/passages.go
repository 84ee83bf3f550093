package maze

import "github.com/katalvlaran/lvmaze/tilemap"

// Passages reads the logical topology of a carved maze back from a surface.
// A link between two neighbouring cells exists iff every tile of the wall
// gap between their blocks is passable.
type Passages struct {
	s      tilemap.Surface
	layout Layout
}

// ReadPassages binds a Layout to the surface it was carved into.
func ReadPassages(s tilemap.Surface, layout Layout) Passages {
	return Passages{s: s, layout: layout}
}

// OpenRight reports whether (x,y) links to (x+1,y).
func (p Passages) OpenRight(x, y int) bool {
	if x < 0 || x >= p.layout.Width-1 || y < 0 || y >= p.layout.Height {
		return false
	}
	tx, ty := p.layout.Anchor(x, y)
	size := p.layout.CorridorSize
	for i := 0; i < size; i++ {
		if p.s.IsObstacle(tx+size, ty+i) {
			return false
		}
	}
	return true
}

// OpenDown reports whether (x,y) links to (x,y+1).
func (p Passages) OpenDown(x, y int) bool {
	if x < 0 || x >= p.layout.Width || y < 0 || y >= p.layout.Height-1 {
		return false
	}
	tx, ty := p.layout.Anchor(x, y)
	size := p.layout.CorridorSize
	for i := 0; i < size; i++ {
		if p.s.IsObstacle(tx+i, ty+size) {
			return false
		}
	}
	return true
}

// Edges counts all links. A perfect maze has Width*Height-1.
// Complexity: O(W·H·C).
func (p Passages) Edges() int {
	n := 0
	for y := 0; y < p.layout.Height; y++ {
		for x := 0; x < p.layout.Width; x++ {
			if p.OpenRight(x, y) {
				n++
			}
			if p.OpenDown(x, y) {
				n++
			}
		}
	}
	return n
}

// Connected reports whether every cell is reachable from (0,0) over links.
// Complexity: O(W·H·C), Memory: O(W·H).
func (p Passages) Connected() bool {
	w, h := p.layout.Width, p.layout.Height
	seen := make([]bool, w*h)
	queue := []int{0}
	seen[0] = true
	for qi := 0; qi < len(queue); qi++ {
		x, y := queue[qi]%w, queue[qi]/w
		visit := func(nx, ny int) {
			if i := ny*w + nx; !seen[i] {
				seen[i] = true
				queue = append(queue, i)
			}
		}
		if p.OpenRight(x, y) {
			visit(x+1, y)
		}
		if p.OpenRight(x-1, y) {
			visit(x-1, y)
		}
		if p.OpenDown(x, y) {
			visit(x, y+1)
		}
		if p.OpenDown(x, y-1) {
			visit(x, y-1)
		}
	}
	return len(queue) == w*h
}

// IsPerfect reports whether the links form a spanning tree: connected with
// exactly Width*Height-1 edges.
func (p Passages) IsPerfect() bool {
	return p.Edges() == p.layout.Width*p.layout.Height-1 && p.Connected()
}
