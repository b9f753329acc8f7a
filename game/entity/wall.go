package entity

import (
	"color-snake/game/types"

	"github.com/pkg/errors"
)

// ErrNoWallSpace is returned when no wall fits anywhere on the grid.
var ErrNoWallSpace = errors.New("no room left for a wall")

// maxWallAttempts scales the random search with the grid size before the
// deterministic scan takes over.
const maxWallAttempts = 4

// Wall is a fixed run of types.WallLength cells. Walls never change after
// they are built; the game only adds or removes whole walls.
type Wall struct {
	Body Body
}

// NewWall builds a wall from a random anchor that the snake does not occupy,
// extending away from the nearer grid edges. Cells in avoid (typically the
// food) are kept clear as well. Extension cells wrap around the grid edges,
// so every cell of a wall is a valid, collidable grid cell.
func NewWall(src types.Intner, grid types.Grid, snake *Snake, avoid ...types.Point) (*Wall, error) {
	blocked := func(p types.Point) bool {
		if snake != nil && snake.Occupies(p) {
			return true
		}
		for _, a := range avoid {
			if a == p {
				return true
			}
		}
		return false
	}

	for attempt := 0; attempt < maxWallAttempts*grid.Area(); attempt++ {
		anchor := types.RandomPoint(src, grid.Width, grid.Height)
		if blocked(anchor) {
			continue
		}

		horizontal, vertical := growthDirections(anchor, grid)
		dir := horizontal
		if src.Intn(2) == 1 {
			dir = vertical
		}

		if w, ok := buildWall(anchor, dir, grid, blocked); ok {
			return w, nil
		}
	}

	// Random sampling kept missing; walk the grid in row-major order.
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			anchor := types.Point{X: x, Y: y}
			if blocked(anchor) {
				continue
			}
			horizontal, vertical := growthDirections(anchor, grid)
			for _, dir := range [2]types.Direction{horizontal, vertical} {
				if w, ok := buildWall(anchor, dir, grid, blocked); ok {
					return w, nil
				}
			}
		}
	}

	return nil, errors.Wrapf(ErrNoWallSpace, "grid %dx%d", grid.Width, grid.Height)
}

// growthDirections points walls toward the grid interior: left from the
// right half, up from the bottom half.
func growthDirections(anchor types.Point, grid types.Grid) (horizontal, vertical types.Direction) {
	horizontal = types.Right
	if anchor.X >= grid.Width/2 {
		horizontal = types.Left
	}
	vertical = types.Down
	if anchor.Y >= grid.Height/2 {
		vertical = types.Up
	}
	return horizontal, vertical
}

func buildWall(anchor types.Point, dir types.Direction, grid types.Grid, blocked func(types.Point) bool) (*Wall, bool) {
	body := NewBody(NewSegment(anchor))
	pos := anchor
	for i := 1; i < types.WallLength; i++ {
		pos = pos.Move(dir, grid)
		if blocked(pos) || body.Contains(pos) {
			return nil, false
		}
		body.PushBack(NewSegment(pos))
	}
	return &Wall{Body: body}, true
}

// Contains reports whether p is one of the wall's cells.
func (w *Wall) Contains(p types.Point) bool {
	return w.Body.Contains(p)
}

func (w *Wall) Positions() []types.Point {
	return w.Body.Positions()
}
