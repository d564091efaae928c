package maze

import "fmt"

// Direction is one of the four compass directions a player can travel in.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// AllDirections returns every direction in a fixed order: North, South, East, West.
// Wall warnings and wall regeneration both iterate in this order.
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

// IsValid reports whether d is one of the four known directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// String returns the display name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		panic(unknownDirection(d))
	}
}

// Opposite flips the direction: North <-> South, East <-> West.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		panic(unknownDirection(d))
	}
}

// Delta returns the unit displacement of a single step in the direction.
func (d Direction) Delta() Coordinate {
	switch d {
	case North:
		return Coordinate{X: 0, Y: 1}
	case South:
		return Coordinate{X: 0, Y: -1}
	case East:
		return Coordinate{X: 1, Y: 0}
	case West:
		return Coordinate{X: -1, Y: 0}
	default:
		panic(unknownDirection(d))
	}
}

func unknownDirection(d Direction) string {
	return fmt.Sprintf("maze: unknown direction %d", int(d))
}
