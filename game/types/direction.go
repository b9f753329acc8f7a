package types

// Direction is one of the four cardinal directions. None is the zero value
// and stands for "no direction", e.g. an empty pending-direction slot.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

var directionNames = [...]string{"none", "up", "right", "down", "left"}

func (d Direction) String() string {
	if d < None || d > Left {
		return "invalid"
	}
	return directionNames[d]
}

// Directions lists the four movement directions in clockwise order.
func Directions() [4]Direction {
	return [4]Direction{Up, Right, Down, Left}
}

// ToPoint converts a Direction into its unit displacement vector.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// TurnLeft returns the direction after a 90 degree counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the direction after a 90 degree clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}
