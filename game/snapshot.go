package game

import (
	"color-snake/game/entity"
	"color-snake/game/types"
)

// FoodView is the read-only view of one food slot.
type FoodView struct {
	Pos   types.Point
	Color types.Color
}

// Snapshot is a copy of everything a renderer needs. It shares no memory
// with the game, so it stays valid after further ticks.
type Snapshot struct {
	Grid      types.Grid
	Head      types.Point
	Body      []types.Point
	Dir       types.Direction
	Walls     [][]types.Point
	Food      [types.FoodSlots]FoodView
	Allowed   types.Color
	Score     int64
	Ticks     uint64
	Ate       entity.Ate
	GameOver  bool
	EndReason EndReason
	Paused    bool
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Grid:      g.grid,
		Head:      g.snake.Head.Pos,
		Body:      g.snake.Body.Positions(),
		Dir:       g.snake.Dir,
		Walls:     g.wallMgr.Positions(),
		Allowed:   g.allowed,
		Score:     g.score,
		Ticks:     g.ticks,
		Ate:       g.snake.Ate,
		GameOver:  g.gameOver,
		EndReason: g.endReason,
		Paused:    g.paused,
	}
	for i, f := range g.food {
		s.Food[i] = FoodView{Pos: f.Pos, Color: f.Color}
	}
	return s
}

// Occupied reports whether p is a wall cell or part of the snake.
func (g *Game) Occupied(p types.Point) bool {
	return g.snake.Occupies(p) || g.collisionMgr.IsWallCollision(p, g.wallMgr.Walls())
}
