package maze

import "fmt"

// Coordinate represents a junction of the maze on an unbounded integer grid.
// X grows to the East and Y grows to the North.
type Coordinate struct {
	X int // X is the East-West axis.
	Y int // Y is the North-South axis.
}

// Add returns the coordinate displaced by o. The receiver is left untouched.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// String renders the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Distance returns the Manhattan distance between a and b, i.e. the number
// of steps needed to walk from one to the other ignoring walls.
func Distance(a, b Coordinate) uint {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) uint {
	if v < 0 {
		return uint(-v)
	}
	return uint(v)
}
