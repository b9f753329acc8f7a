package entity

import "color-snake/game/types"

// Ate classifies what the head ran into on the last update.
type Ate int

const (
	AteNone Ate = iota
	AteFood
	AteItself
	AteWall
)

var ateNames = [...]string{"none", "food", "itself", "wall"}

func (a Ate) String() string {
	if a < AteNone || a > AteWall {
		return "unknown"
	}
	return ateNames[a]
}

type Snake struct {
	Head          Segment
	Body          Body
	Dir           types.Direction
	LastUpdateDir types.Direction
	NextDir       types.Direction // None when nothing is buffered
	Ate           Ate

	grid types.Grid
}

// NewSnake creates a two-cell snake heading right, with its single body
// segment directly behind the head.
func NewSnake(pos types.Point, grid types.Grid) *Snake {
	return &Snake{
		Head:          NewSegment(pos),
		Body:          NewBody(NewSegment(pos.Move(types.Left, grid))),
		Dir:           types.Right,
		LastUpdateDir: types.Right,
		NextDir:       types.None,
		Ate:           AteNone,
		grid:          grid,
	}
}

func (s *Snake) Eats(food Food) bool {
	return s.Head.Pos == food.Pos
}

func (s *Snake) EatsSelf() bool {
	return s.Body.Contains(s.Head.Pos)
}

func (s *Snake) BumpsWall(wall *Wall) bool {
	return wall.Contains(s.Head.Pos)
}

// Occupies reports whether the head or any body segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	return s.Head.Pos == p || s.Body.Contains(p)
}

// Positions lists every occupied cell, head first.
func (s *Snake) Positions() []types.Point {
	return append([]types.Point{s.Head.Pos}, s.Body.Positions()...)
}

// Len is the full length including the head.
func (s *Snake) Len() int {
	return s.Body.Len() + 1
}

// SetDirection applies a direction request. A second turn requested before
// the first one has been moved on is buffered in NextDir, so two quick turns
// can never fold the snake back onto itself within a single step.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.None {
		return
	}
	if s.Dir != s.LastUpdateDir && dir.Inverse() != s.Dir {
		s.NextDir = dir
	} else if dir.Inverse() != s.LastUpdateDir {
		s.Dir = dir
	}
}

// Update advances the snake by one cell and records what it ran into.
// The tail is only dropped when nothing was hit, so eating grows the snake
// by one cell.
func (s *Snake) Update(food *[types.FoodSlots]Food, walls []*Wall) {
	if s.LastUpdateDir == s.Dir && s.NextDir != types.None {
		s.Dir = s.NextDir
		s.NextDir = types.None
	}

	newHead := NewSegment(s.Head.Pos.Move(s.Dir, s.grid))
	s.Body.PushFront(s.Head)
	s.Head = newHead

	switch {
	case s.EatsSelf():
		s.Ate = AteItself
	case s.Eats(food[0]) || s.Eats(food[1]):
		s.Ate = AteFood
	default:
		s.Ate = AteNone
	}

	for _, wall := range walls {
		if s.BumpsWall(wall) {
			s.Ate = AteWall
			break
		}
	}

	if s.Ate == AteNone {
		s.Body.PopBack()
	}

	s.LastUpdateDir = s.Dir
}
