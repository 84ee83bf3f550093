package trace_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/tilemap"
	"github.com/katalvlaran/lvmaze/trace"
)

var loc = tilemap.Loc

// counter returns a handler that records every visit and never stops.
func counter(visits *[]tilemap.Location) trace.Handler[int] {
	return func(l tilemap.Location) (int, bool) {
		*visits = append(*visits, l)
		return 0, false
	}
}

func TestCovering_SameLocation(t *testing.T) {
	var visits []tilemap.Location
	_, stopped := trace.Covering(loc(3, 4), loc(3, 4), false, counter(&visits))
	assert.False(t, stopped)
	assert.Equal(t, []tilemap.Location{loc(3, 4)}, visits)

	visits = nil
	trace.Covering(loc(3, 4), loc(3, 4), true, counter(&visits))
	assert.Empty(t, visits)
}

func TestCovering_ShallowSlope(t *testing.T) {
	got := trace.Cells(trace.KindCovering, loc(0, 0), loc(3, 1), false)
	assert.Equal(t, []tilemap.Location{loc(0, 0), loc(1, 0), loc(1, 1), loc(2, 1), loc(3, 1)}, got)
}

func TestCovering_FourConnected(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for i := 0; i < 300; i++ {
		a := loc(r.Intn(21)-10, r.Intn(21)-10)
		b := loc(r.Intn(21)-10, r.Intn(21)-10)
		t.Run(fmt.Sprintf("%v-%v", a, b), func(t *testing.T) {
			cells := trace.Cells(trace.KindCovering, a, b, false)
			require.NotEmpty(t, cells)
			assert.Equal(t, a, cells[0])
			assert.Equal(t, b, cells[len(cells)-1])

			dc, dr := b.Col-a.Col, b.Row-a.Row
			if dc < 0 {
				dc = -dc
			}
			if dr < 0 {
				dr = -dr
			}
			assert.Len(t, cells, dc+dr+1)
			for k := 1; k < len(cells); k++ {
				stepC := cells[k].Col - cells[k-1].Col
				stepR := cells[k].Row - cells[k-1].Row
				assert.Equal(t, 1, stepC*stepC+stepR*stepR, "step %d", k)
			}

			inner := trace.Cells(trace.KindCovering, a, b, true)
			if len(cells) <= 2 {
				assert.Empty(t, inner)
			} else {
				assert.Equal(t, cells[1:len(cells)-1], inner)
			}
		})
	}
}

func TestCovering_Axes(t *testing.T) {
	assert.Equal(t,
		[]tilemap.Location{loc(2, 5), loc(2, 4), loc(2, 3)},
		trace.Cells(trace.KindCovering, loc(2, 5), loc(2, 3), false))
	assert.Equal(t,
		[]tilemap.Location{loc(0, 0), loc(-1, 0)},
		trace.Cells(trace.KindCovering, loc(0, 0), loc(-1, 0), false))
}

func TestDiagonal(t *testing.T) {
	cases := []struct {
		name      string
		a, b      tilemap.Location
		exclusive bool
		want      []tilemap.Location
	}{
		{"pure diagonal", loc(0, 0), loc(2, 2), false, []tilemap.Location{loc(0, 0), loc(1, 1), loc(2, 2)}},
		{"reverse", loc(2, 2), loc(0, 0), false, []tilemap.Location{loc(2, 2), loc(1, 1), loc(0, 0)}},
		{"shallow", loc(0, 0), loc(4, 1), false, []tilemap.Location{loc(0, 0), loc(1, 0), loc(2, 1), loc(3, 1), loc(4, 1)}},
		{"exclusive interior", loc(0, 0), loc(3, 3), true, []tilemap.Location{loc(1, 1), loc(2, 2)}},
		{"exclusive adjacent", loc(0, 0), loc(1, 1), true, nil},
		{"same", loc(5, 5), loc(5, 5), false, []tilemap.Location{loc(5, 5)}},
		{"same exclusive", loc(5, 5), loc(5, 5), true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trace.Cells(trace.KindDiagonal, tc.a, tc.b, tc.exclusive))
		})
	}
}

func TestDiagonal_ExclusiveVisitsInterior(t *testing.T) {
	for n := 1; n <= 12; n++ {
		got := trace.Cells(trace.KindDiagonal, loc(0, 0), loc(n, n/2), true)
		assert.Len(t, got, n-1, "n=%d", n)
	}
}

func TestLine_StopsWithZeroValue(t *testing.T) {
	// (0,0) is a legitimate produced value and must be reported as found.
	for _, kind := range []trace.Kind{trace.KindDiagonal, trace.KindCovering} {
		calls := 0
		got, ok := trace.Line(kind, loc(0, 0), loc(5, 3), false, func(l tilemap.Location) (tilemap.Location, bool) {
			calls++
			return l, true
		})
		assert.True(t, ok, kind.String())
		assert.Equal(t, loc(0, 0), got)
		assert.Equal(t, 1, calls)
	}
}

func TestLine_UnknownKind(t *testing.T) {
	called := false
	_, ok := trace.Line(trace.Kind(9), loc(0, 0), loc(2, 0), false, func(tilemap.Location) (int, bool) {
		called = true
		return 1, true
	})
	assert.False(t, ok)
	assert.False(t, called)
	assert.Equal(t, "unknown", trace.Kind(9).String())
}

// corridor builds a 6×3 map with a blocked frame and open middle row.
func corridor(t *testing.T) *tilemap.TileMap {
	t.Helper()
	tm, err := tilemap.New(6, 3, []tilemap.Image{"floor", "wall", "path"})
	require.NoError(t, err)
	for col := 0; col < 6; col++ {
		tm.SetWall(col, 0, true)
		tm.SetWall(col, 2, true)
	}
	return tm
}

func TestIsWallBetween(t *testing.T) {
	tm := corridor(t)

	_, hit := trace.IsWallBetween(tm, loc(0, 1), loc(5, 1))
	assert.False(t, hit, "clear row")

	_, hit = trace.IsWallBetween(tm, loc(2, 1), loc(3, 1))
	assert.False(t, hit, "adjacent endpoints")

	tm.SetWall(3, 1, true)
	tm.SetWall(4, 1, true)
	wall, hit := trace.IsWallBetween(tm, loc(0, 1), loc(5, 1))
	assert.True(t, hit)
	assert.Equal(t, loc(3, 1), wall, "first obstacle")

	wall, hit = trace.IsWallBetween(tm, loc(5, 1), loc(0, 1))
	assert.True(t, hit)
	assert.Equal(t, loc(4, 1), wall, "first from the other side")

	// endpoints themselves are never reported
	_, hit = trace.IsWallBetween(tm, loc(3, 1), loc(4, 1))
	assert.False(t, hit)

	_, hit = trace.IsWallBetween(nil, loc(0, 1), loc(5, 1))
	assert.False(t, hit, "missing surface")
}

func TestIsWallBetween_ObstacleAtOrigin(t *testing.T) {
	tm, err := tilemap.New(3, 3, []tilemap.Image{"floor"})
	require.NoError(t, err)
	tm.SetWall(0, 0, true)

	wall, hit := trace.IsWallBetween(tm, loc(-1, 0), loc(1, 0))
	assert.True(t, hit)
	assert.Equal(t, loc(0, 0), wall)
}

func TestPaintBetween(t *testing.T) {
	tm := corridor(t)
	require.NoError(t, trace.PaintBetween(tm, loc(1, 0), loc(4, 2), "path"))

	painted := tm.CountTiles(2)
	want := trace.Cells(trace.KindCovering, loc(1, 0), loc(4, 2), false)
	assert.Equal(t, len(want), painted)
	for _, l := range want {
		assert.Equal(t, 2, tm.Tile(l.Col, l.Row), "%v", l)
	}
	// passability untouched
	assert.True(t, tm.IsObstacle(1, 0))
}

func TestPaintBetween_Errors(t *testing.T) {
	tm := corridor(t)
	err := trace.PaintBetween(tm, loc(0, 1), loc(5, 1), "lava")
	assert.ErrorIs(t, err, tilemap.ErrUnknownTileImage)
	assert.Equal(t, 0, tm.CountTiles(2))

	assert.NoError(t, trace.PaintBetween(nil, loc(0, 1), loc(5, 1), "path"))
}
