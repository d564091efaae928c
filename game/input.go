package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/beka-birhanu/vinom-maze/game/maze"
)

// Input errors. Both are recoverable: the player is asked again.
var (
	ErrInputLength      = errors.New("input must be a single character")
	ErrUnknownDirection = errors.New("unknown direction")
)

// ParseDirection resolves a trimmed input token. Tokens are case insensitive:
// n, s, e and w select a direction and q asks to quit.
func ParseDirection(token string) (d maze.Direction, quit bool, err error) {
	if utf8.RuneCountInString(token) != 1 {
		return 0, false, ErrInputLength
	}

	switch strings.ToLower(token) {
	case "n":
		return maze.North, false, nil
	case "s":
		return maze.South, false, nil
	case "e":
		return maze.East, false, nil
	case "w":
		return maze.West, false, nil
	case "q":
		return 0, true, nil
	default:
		return 0, false, ErrUnknownDirection
	}
}

// askDirection prompts until the player gives a direction or quits.
func (s *Session) askDirection() (maze.Direction, bool, error) {
	for {
		line, err := s.io.ReadLine(directionPrompt)
		if err != nil {
			return 0, false, fmt.Errorf("reading direction: %w", err)
		}

		d, quit, err := ParseDirection(line)
		if err == nil {
			return d, quit, nil
		}

		s.logger.WithField("input", line).Debug("rejected input")
		msg := inputUnknownMsg
		if errors.Is(err, ErrInputLength) {
			msg = inputLengthMsg
		}
		if err := s.say(msg); err != nil {
			return 0, false, err
		}
	}
}
