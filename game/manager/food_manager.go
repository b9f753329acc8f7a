package manager

import (
	"color-snake/game/entity"
	"color-snake/game/types"

	"github.com/pkg/errors"
)

// ErrNoFreeCell is returned when every grid cell is excluded.
var ErrNoFreeCell = errors.New("no free cell for food")

// maxSpawnAttempts scales the random search with the grid area.
const maxSpawnAttempts = 4

type FoodManager struct {
	grid         types.Grid
	src          types.Intner
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, src types.Intner, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		src:          src,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a random cell outside excluded. After a bounded number
// of misses it falls back to the first free cell in row-major order.
func (fm *FoodManager) GenerateFood(excluded map[types.Point]struct{}) (types.Point, error) {
	for attempt := 0; attempt < maxSpawnAttempts*fm.grid.Area(); attempt++ {
		pos := types.RandomPoint(fm.src, fm.grid.Width, fm.grid.Height)
		if fm.collisionMgr.ValidateSpawnPosition(pos, excluded) {
			return pos, nil
		}
	}

	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			pos := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(pos, excluded) {
				return pos, nil
			}
		}
	}

	return types.Point{}, errors.Wrapf(ErrNoFreeCell, "%d cells excluded", len(excluded))
}

// InitialFood places both food slots off the snake and off each other. Both
// start with the default color.
func (fm *FoodManager) InitialFood(snake *entity.Snake) ([types.FoodSlots]entity.Food, error) {
	var food [types.FoodSlots]entity.Food

	excluded := fm.collisionMgr.ExclusionSet(snake, nil)
	for i := range food {
		pos, err := fm.GenerateFood(excluded)
		if err != nil {
			return food, errors.Wrapf(err, "placing food %d", i)
		}
		food[i] = entity.NewFood(pos)
		excluded[pos] = struct{}{}
	}

	return food, nil
}

// Respawn moves the food in slot index to a free cell and gives it a fresh
// color. Wall cells, snake cells and the other slot's cell are excluded.
func (fm *FoodManager) Respawn(food *[types.FoodSlots]entity.Food, index int, snake *entity.Snake, walls []*entity.Wall) error {
	other := food[(index+1)%types.FoodSlots].Pos
	excluded := fm.collisionMgr.ExclusionSet(snake, walls, other)

	pos, err := fm.GenerateFood(excluded)
	if err != nil {
		return errors.Wrapf(err, "respawning food %d", index)
	}

	food[index].Pos = pos
	food[index].RandomizeColor(fm.src)
	return nil
}
