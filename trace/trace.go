package trace

import (
	"math"

	"github.com/katalvlaran/lvmaze/tilemap"
)

// Kind selects a line rasterization strategy.
type Kind int

const (
	// KindDiagonal interpolates linearly and rounds each axis.
	KindDiagonal Kind = iota
	// KindCovering steps one axis at a time (supercover).
	KindCovering
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindDiagonal:
		return "diagonal"
	case KindCovering:
		return "covering"
	}
	return "unknown"
}

// Handler is called for each visited tile. Returning stop=true ends the
// walk and makes the tracer return value.
type Handler[T any] func(loc tilemap.Location) (value T, stop bool)

// Line walks from l1 to l2 with the strategy selected by kind.
// Unknown kinds visit nothing.
func Line[T any](kind Kind, l1, l2 tilemap.Location, exclusive bool, h Handler[T]) (T, bool) {
	switch kind {
	case KindDiagonal:
		return Diagonal(l1, l2, exclusive, h)
	case KindCovering:
		return Covering(l1, l2, exclusive, h)
	}
	var zero T
	return zero, false
}

// Diagonal visits round(lerp(l1,l2,i/N)) for i = 0..N, N = max(|Δcol|,|Δrow|).
// With exclusive, i runs 1..N-1, i.e. the N-1 interior samples.
// Coinciding locations visit l1 once (or never when exclusive).
func Diagonal[T any](l1, l2 tilemap.Location, exclusive bool, h Handler[T]) (T, bool) {
	var zero T
	n := max(abs(l2.Col-l1.Col), abs(l2.Row-l1.Row))
	if n == 0 {
		if exclusive {
			return zero, false
		}
		return h(l1)
	}

	first, last := 0, n
	if exclusive {
		first, last = 1, n-1
	}
	for i := first; i <= last; i++ {
		t := float64(i) / float64(n)
		loc := tilemap.Location{
			Col: int(math.Round(lerp(l1.Col, l2.Col, t))),
			Row: int(math.Round(lerp(l1.Row, l2.Row, t))),
		}
		if v, stop := h(loc); stop {
			return v, true
		}
	}
	return zero, false
}

// Covering walks the supercover of the segment l1→l2. At each step with ix
// column steps and iy row steps taken, it advances the column when
// (1+2·ix)·|Δrow| < (1+2·iy)·|Δcol| and the row otherwise, until both axes
// are exhausted.
func Covering[T any](l1, l2 tilemap.Location, exclusive bool, h Handler[T]) (T, bool) {
	var zero T
	dCol, dRow := l2.Col-l1.Col, l2.Row-l1.Row
	nCol, nRow := abs(dCol), abs(dRow)
	sCol, sRow := sign(dCol), sign(dRow)

	loc := l1
	if !exclusive {
		if v, stop := h(loc); stop {
			return v, true
		}
	}
	for ix, iy := 0, 0; ix < nCol || iy < nRow; {
		if (1+2*ix)*nRow < (1+2*iy)*nCol {
			loc.Col += sCol
			ix++
		} else {
			loc.Row += sRow
			iy++
		}
		if exclusive && ix == nCol && iy == nRow {
			break
		}
		if v, stop := h(loc); stop {
			return v, true
		}
	}
	return zero, false
}

// Cells collects the tiles visited by Line in order.
func Cells(kind Kind, l1, l2 tilemap.Location, exclusive bool) []tilemap.Location {
	var out []tilemap.Location
	Line(kind, l1, l2, exclusive, func(loc tilemap.Location) (struct{}, bool) {
		out = append(out, loc)
		return struct{}{}, false
	})
	return out
}

func lerp(a, b int, t float64) float64 {
	return float64(a) + float64(b-a)*t
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
