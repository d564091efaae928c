package maze

// Player holds where the player stands and whether the key has been picked up.
type Player struct {
	Location Coordinate // Current junction of the player.
	HasKey   bool       // Set once the key junction has been reached; never reverts.
}

// NewPlayer returns a player standing at the origin without the key.
func NewPlayer() *Player {
	return &Player{}
}

// Step moves the player one junction in the given direction.
func (p *Player) Step(d Direction) {
	p.Location = p.Location.Add(d.Delta())
}

// PickUpKey marks the key as held.
func (p *Player) PickUpKey() {
	p.HasKey = true
}
