package game

// State is the lifecycle state of a game session.
type State int

const (
	StatePlaying State = iota // The player is still looking for the key or the exit.
	StateEscaped              // The player reached the exit holding the key.
	StateQuit                 // The player gave up.
)

// String returns a lower case name for logging.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateEscaped:
		return "escaped"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome tells what a single turn did.
type Outcome int

const (
	OutcomeBlocked  Outcome = iota + 1 // The chosen direction had a wall; nothing changed.
	OutcomeMoved                       // The player moved without reaching the objective.
	OutcomeKeyFound                    // The player moved onto the key.
	OutcomeEscaped                     // The player moved onto the exit holding the key.
	OutcomeQuit                        // The player asked to quit.
)

// String returns a lower case name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMoved:
		return "moved"
	case OutcomeKeyFound:
		return "key_found"
	case OutcomeEscaped:
		return "escaped"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}
