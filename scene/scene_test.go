package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/scene"
	"github.com/katalvlaran/lvmaze/tilemap"
)

func TestScene_NoSurface(t *testing.T) {
	var sc scene.Scene

	_, err := sc.Current()
	assert.ErrorIs(t, err, scene.ErrMissingSurface)

	_, hit := sc.IsWallBetween(tilemap.Loc(0, 0), tilemap.Loc(4, 4), nil)
	assert.False(t, hit)
	assert.NoError(t, sc.PaintLineBetween(tilemap.Loc(0, 0), tilemap.Loc(4, 4), "floor", nil))

	locs, err := sc.RandomTilesByType("floor", 3)
	assert.NoError(t, err)
	assert.Nil(t, locs)
}

func TestScene_GenerateMazeBecomesCurrent(t *testing.T) {
	sc := scene.New(nil)
	tm, err := sc.GenerateMaze(maze.BinaryTree, 3, 2, "wall", "floor", maze.WithCorridorSize(1), maze.WithSeed(4))
	require.NoError(t, err)

	cur, err := sc.Current()
	require.NoError(t, err)
	assert.Same(t, tm, cur)

	// frame tile (0,1) blocks the segment from outside into the first cell
	wall, hit := sc.IsWallBetween(tilemap.Loc(-1, 1), tilemap.Loc(1, 1), nil)
	assert.True(t, hit)
	assert.Equal(t, tilemap.Loc(0, 1), wall)

	// failed generation keeps the previous surface
	_, err = sc.GenerateMaze(maze.Eller, 0, 2, "wall", "floor")
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
	cur, _ = sc.Current()
	assert.Same(t, tm, cur)
}

func TestScene_ExplicitSurfaceWins(t *testing.T) {
	current, err := tilemap.New(3, 1, []tilemap.Image{"floor", "wall"})
	require.NoError(t, err)
	explicit, err := tilemap.New(3, 1, []tilemap.Image{"floor", "wall"})
	require.NoError(t, err)
	explicit.SetWall(1, 0, true)

	sc := scene.New(current)
	_, hit := sc.IsWallBetween(tilemap.Loc(0, 0), tilemap.Loc(2, 0), nil)
	assert.False(t, hit)
	_, hit = sc.IsWallBetween(tilemap.Loc(0, 0), tilemap.Loc(2, 0), explicit)
	assert.True(t, hit)

	require.NoError(t, sc.PaintLineBetween(tilemap.Loc(0, 0), tilemap.Loc(2, 0), "wall", explicit))
	assert.Equal(t, 3, explicit.CountTiles(1))
	assert.Equal(t, 0, current.CountTiles(1))
}

func TestScene_RandomTilesByType(t *testing.T) {
	sc := scene.New(nil)
	tm, err := sc.GenerateMaze(maze.Sidewinder, 5, 5, "wall", "floor", maze.WithSeed(12))
	require.NoError(t, err)

	locs, err := sc.RandomTilesByType("floor", 10)
	require.NoError(t, err)
	require.Len(t, locs, 10)
	for _, l := range locs {
		assert.False(t, tm.IsObstacle(l.Col, l.Row), "%v should be floor", l)
	}

	locs, err = sc.RandomTilesByType("", 10)
	assert.NoError(t, err)
	assert.Nil(t, locs)

	_, err = sc.RandomTilesByType("lava", 10)
	assert.ErrorIs(t, err, tilemap.ErrUnknownTileImage)

	sc.SetSurface(nil)
	locs, err = sc.RandomTilesByType("floor", 10)
	assert.NoError(t, err)
	assert.Nil(t, locs)
}
