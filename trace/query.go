package trace

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/tilemap"
)

// ObstacleMap is the read side consumed by IsWallBetween.
type ObstacleMap interface {
	IsObstacle(col, row int) bool
}

// TilePainter is the write side consumed by PaintBetween.
type TilePainter interface {
	SetTile(col, row, tileIndex int)
	ResolveTileIndex(img tilemap.Image) (int, error)
}

// IsWallBetween returns the first obstacle on the covering line strictly
// between l1 and l2. It reports false when the open segment is clear,
// including when l1 and l2 are adjacent or equal, and when s is nil.
func IsWallBetween(s ObstacleMap, l1, l2 tilemap.Location) (tilemap.Location, bool) {
	if s == nil {
		return tilemap.Location{}, false
	}
	return Covering(l1, l2, true, func(loc tilemap.Location) (tilemap.Location, bool) {
		return loc, s.IsObstacle(loc.Col, loc.Row)
	})
}

// PaintBetween sets every tile of the covering line from l1 to l2,
// endpoints included, to the tile index of img. A nil s is a no-op.
// Returns tilemap.ErrUnknownTileImage (wrapped) before painting anything
// when img is not registered.
func PaintBetween(s TilePainter, l1, l2 tilemap.Location, img tilemap.Image) error {
	if s == nil {
		return nil
	}
	index, err := s.ResolveTileIndex(img)
	if err != nil {
		return fmt.Errorf("PaintBetween %v→%v: %w", l1, l2, err)
	}
	Covering(l1, l2, false, func(loc tilemap.Location) (struct{}, bool) {
		s.SetTile(loc.Col, loc.Row, index)
		return struct{}{}, false
	})
	return nil
}
