package manager

import (
	"color-snake/game/entity"
	"color-snake/game/types"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// WallManager owns the wall stack. The newest wall is always removed first.
type WallManager struct {
	grid   types.Grid
	src    types.Intner
	walls  []*entity.Wall
	logger zerolog.Logger
}

func NewWallManager(grid types.Grid, src types.Intner, logger zerolog.Logger) *WallManager {
	return &WallManager{
		grid:   grid,
		src:    src,
		walls:  make([]*entity.Wall, 0),
		logger: logger,
	}
}

// Add builds a wall clear of the snake and the avoid cells and pushes it.
func (wm *WallManager) Add(snake *entity.Snake, avoid ...types.Point) (*entity.Wall, error) {
	wall, err := entity.NewWall(wm.src, wm.grid, snake, avoid...)
	if err != nil {
		return nil, errors.Wrap(err, "adding wall")
	}
	wm.walls = append(wm.walls, wall)
	wm.logger.Debug().
		Int("walls", len(wm.walls)).
		Stringer("anchor", wall.Positions()[0]).
		Msg("wall added")
	return wall, nil
}

// RemoveLast drops the most recently added wall. It reports false when there
// was nothing to remove.
func (wm *WallManager) RemoveLast() bool {
	if len(wm.walls) == 0 {
		return false
	}
	wm.walls[len(wm.walls)-1] = nil
	wm.walls = wm.walls[:len(wm.walls)-1]
	wm.logger.Debug().Int("walls", len(wm.walls)).Msg("wall removed")
	return true
}

func (wm *WallManager) Walls() []*entity.Wall {
	return wm.walls
}

func (wm *WallManager) Len() int {
	return len(wm.walls)
}

// Positions returns a copy of every wall's cells, oldest wall first.
func (wm *WallManager) Positions() [][]types.Point {
	out := make([][]types.Point, len(wm.walls))
	for i, w := range wm.walls {
		out[i] = w.Positions()
	}
	return out
}

func (wm *WallManager) Reset() {
	wm.walls = wm.walls[:0]
}
