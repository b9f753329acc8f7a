package types

import "fmt"

// Intner is the slice of a random generator the grid helpers need.
type Intner interface {
	Intn(n int) int
}

// Point is a grid cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by d without wrapping.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Move returns the cell one step away in dir, wrapped around the grid edges.
func (p Point) Move(dir Direction, grid Grid) Point {
	return grid.Wrap(p.Add(dir.ToPoint()))
}

// WrappedDistance is the Manhattan distance between p and q on a grid whose
// edges wrap around.
func (p Point) WrappedDistance(q Point, grid Grid) int {
	dx := abs(p.X - q.X)
	dy := abs(p.Y - q.Y)

	if dx > grid.Width/2 {
		dx = grid.Width - dx
	}
	if dy > grid.Height/2 {
		dy = grid.Height - dy
	}

	return dx + dy
}

// RandomPoint draws a cell uniformly from [0,width) x [0,height).
func RandomPoint(src Intner, width, height int) Point {
	x := src.Intn(width)
	y := src.Intn(height)
	return Point{X: x, Y: y}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
