package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	DefaultGridWidth  = 50
	DefaultGridHeight = 30
	WallLength        = 6 // Cells per wall, anchor included
	FoodSlots         = 2
)

// DefaultGrid returns the grid the game is normally played on.
func DefaultGrid() Grid {
	return Grid{Width: DefaultGridWidth, Height: DefaultGridHeight}
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds p back into the grid, re-entering from the opposite edge.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
