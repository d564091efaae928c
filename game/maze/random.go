package maze

import "fmt"

// RandomSource is the subset of *rand.Rand the maze draws from.
type RandomSource interface {
	Intn(n int) int
}

// RandomInt returns a uniformly drawn integer in [lower, upper].
// It panics if upper is below lower.
func RandomInt(r RandomSource, lower, upper int) int {
	if upper < lower {
		panic(fmt.Sprintf("maze: invalid range [%d, %d]", lower, upper))
	}
	return lower + r.Intn(upper-lower+1)
}

// RandomCoordinate returns a coordinate with both axes drawn uniformly from [-bound, bound].
func RandomCoordinate(r RandomSource, bound int) Coordinate {
	return Coordinate{
		X: RandomInt(r, -bound, bound),
		Y: RandomInt(r, -bound, bound),
	}
}
