package ai

import (
	"fmt"

	"color-snake/game"
	"color-snake/game/types"
)

// State is the agent's compressed view of the board.
type State struct {
	FoodDir      [2]int  // sign of the shortest wrapped offset to the target food
	FoodDistance int     // wrapped Manhattan distance to the target food
	DangerDirs   [4]bool // next cell blocked, indexed Up, Right, Down, Left
}

// Key identifies the state in the Q-table. Distance is left out so the table
// stays small.
func (s State) Key() string {
	return fmt.Sprintf("%d,%d|%d%d%d%d", s.FoodDir[0], s.FoodDir[1],
		boolToInt(s.DangerDirs[0]), boolToInt(s.DangerDirs[1]),
		boolToInt(s.DangerDirs[2]), boolToInt(s.DangerDirs[3]))
}

// Sense reads the state from g. The target is the first food in the allowed
// color; when neither matches the agent heads for slot 0.
func Sense(g *game.Game) State {
	grid := g.Grid()
	head := g.Snake().Head.Pos

	food := g.Food()
	target := food[0].Pos
	for _, f := range food {
		if f.Color == g.AllowedColor() {
			target = f.Pos
			break
		}
	}

	var s State
	s.FoodDir[0] = sign(wrappedDelta(head.X, target.X, grid.Width))
	s.FoodDir[1] = sign(wrappedDelta(head.Y, target.Y, grid.Height))
	s.FoodDistance = head.WrappedDistance(target, grid)
	for i, d := range types.Directions() {
		s.DangerDirs[i] = g.Occupied(head.Move(d, grid))
	}
	return s
}

// wrappedDelta is the signed offset from a to b taking the shorter way
// around an axis of length n.
func wrappedDelta(a, b, n int) int {
	d := b - a
	if d > n/2 {
		d -= n
	} else if d < -n/2 {
		d += n
	}
	return d
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
