package maze

import "fmt"

// Walls is the wall configuration of the junction the player currently stands on.
// It maps every direction to whether it is open.
//
// Nothing is remembered about junctions the player has left: coming back to
// a visited coordinate generally yields a different configuration.
type Walls struct {
	open map[Direction]bool
}

// NewWalls returns a configuration with every direction open.
func NewWalls() *Walls {
	w := &Walls{open: make(map[Direction]bool, 4)}
	for _, d := range AllDirections() {
		w.open[d] = true
	}
	return w
}

// IsOpen reports whether the player may travel in direction d.
// It panics if d has no entry, which would mean the configuration lost a direction.
func (w *Walls) IsOpen(d Direction) bool {
	open, ok := w.open[d]
	if !ok {
		panic(fmt.Sprintf("maze: no wall state for direction %d", int(d)))
	}
	return open
}

// Blocked returns the directions that currently have a wall, in AllDirections order.
func (w *Walls) Blocked() []Direction {
	var blocked []Direction
	for _, d := range AllDirections() {
		if !w.IsOpen(d) {
			blocked = append(blocked, d)
		}
	}
	return blocked
}

// Regenerate shifts the walls after the player traveled in direction after.
// The way back is always left open; every other direction is open with probability 0.5.
func (w *Walls) Regenerate(after Direction, r RandomSource) {
	backtrack := after.Opposite()
	for _, d := range AllDirections() {
		if d == backtrack {
			w.open[d] = true
			continue
		}
		w.open[d] = r.Intn(2) == 1
	}
}
