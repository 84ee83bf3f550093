package maze

import (
	"github.com/katalvlaran/lvmaze/tilemap"
)

// Generate allocates a TileMap sized for a width×height maze, fills it with
// walls and carves alg's topology into it.
//
// The tileset is [floor, wall]: floor resolves to index 0, wall to index 1.
// The TileMap samples with the same Source as the builder.
//
// Returns ErrInvalidDimension (before allocating) for width, height or
// corridor size below 1, and ErrUnknownAlgorithm for an undefined alg.
//
// Complexity: O(TileWidth×TileHeight) time and memory.
func Generate(alg Algorithm, width, height int, wall, floor tilemap.Image, opts ...Option) (*tilemap.TileMap, error) {
	cfg := newConfig(opts...)
	layout, err := NewLayout(width, height, cfg.corridorSize)
	if err != nil {
		return nil, wrapf(methodGenerate, err, "%s", alg)
	}
	build, err := alg.build()
	if err != nil {
		return nil, wrapf(methodGenerate, err, "%s", alg)
	}

	tm, err := tilemap.New(layout.TileWidth, layout.TileHeight,
		[]tilemap.Image{floor, wall}, tilemap.WithSource(cfg.src))
	if err != nil {
		return nil, wrapf(methodGenerate, err, "allocate %dx%d", layout.TileWidth, layout.TileHeight)
	}
	if err = carve(build, tm, layout, wall, floor, cfg.src); err != nil {
		return nil, wrapf(methodGenerate, err, "%s", alg)
	}

	return tm, nil
}

// Build carves alg's topology into a caller-owned surface. The whole
// surface is first filled with walls; the maze occupies the top-left
// TileWidth×TileHeight tiles. wall and floor are resolved through
// s.ResolveTileIndex, so unregistered images fail with
// tilemap.ErrUnknownTileImage before any tile is touched.
func Build(alg Algorithm, s tilemap.Surface, width, height int, wall, floor tilemap.Image, opts ...Option) error {
	if s == nil {
		return wrapf(methodBuild, ErrNilSurface, "%s", alg)
	}
	cfg := newConfig(opts...)
	layout, err := NewLayout(width, height, cfg.corridorSize)
	if err != nil {
		return wrapf(methodBuild, err, "%s", alg)
	}
	build, err := alg.build()
	if err != nil {
		return wrapf(methodBuild, err, "%s", alg)
	}
	if sw, sh := s.Size(); sw < layout.TileWidth || sh < layout.TileHeight {
		return wrapf(methodBuild, ErrSurfaceTooSmall,
			"have %dx%d, need %dx%d", sw, sh, layout.TileWidth, layout.TileHeight)
	}

	if err = carve(build, s, layout, wall, floor, cfg.src); err != nil {
		return wrapf(methodBuild, err, "%s", alg)
	}
	return nil
}

// carve resolves the tile indices, fills s with walls and runs build.
func carve(build buildFunc, s tilemap.Surface, layout Layout, wall, floor tilemap.Image, src Source) error {
	wallIndex, err := s.ResolveTileIndex(wall)
	if err != nil {
		return err
	}
	floorIndex, err := s.ResolveTileIndex(floor)
	if err != nil {
		return err
	}

	FillWalls(s, wallIndex)
	build(&carver{s: s, layout: layout, floor: floorIndex}, src)
	return nil
}
