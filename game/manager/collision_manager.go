package manager

import (
	"color-snake/game/entity"
	"color-snake/game/types"
)

// CollisionManager answers occupancy questions about the board.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision reports whether pos is a cell of any wall.
func (cm *CollisionManager) IsWallCollision(pos types.Point, walls []*entity.Wall) bool {
	for _, wall := range walls {
		if wall.Contains(pos) {
			return true
		}
	}
	return false
}

// WallPositions collects every wall cell into a lookup set.
func (cm *CollisionManager) WallPositions(walls []*entity.Wall) map[types.Point]struct{} {
	set := make(map[types.Point]struct{}, len(walls)*types.WallLength)
	for _, wall := range walls {
		for _, p := range wall.Positions() {
			set[p] = struct{}{}
		}
	}
	return set
}

// ExclusionSet is every cell a new food item must not land on: wall cells,
// snake cells and the extra cells given (the other food).
func (cm *CollisionManager) ExclusionSet(snake *entity.Snake, walls []*entity.Wall, extra ...types.Point) map[types.Point]struct{} {
	set := cm.WallPositions(walls)
	if snake != nil {
		for _, p := range snake.Positions() {
			set[p] = struct{}{}
		}
	}
	for _, p := range extra {
		set[p] = struct{}{}
	}
	return set
}

// ValidateSpawnPosition checks pos is on the grid and outside the exclusion set.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, excluded map[types.Point]struct{}) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	_, taken := excluded[pos]
	return !taken
}

// CheckFoodCollisions returns the index of the food slot at pos. found is
// false unless exactly one slot matches.
func (cm *CollisionManager) CheckFoodCollisions(pos types.Point, food *[types.FoodSlots]entity.Food) (index int, found bool) {
	index = -1
	matches := 0
	for i := range food {
		if food[i].Pos == pos {
			index = i
			matches++
		}
	}
	if matches != 1 {
		return -1, false
	}
	return index, true
}
