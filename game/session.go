package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session-related errors.
var (
	ErrNilLineIO       = errors.New("line io is required")
	ErrNilRandomSource = errors.New("random source is required")
	ErrInvalidBound    = errors.New("goal bound must not be negative")
	ErrSessionOver     = errors.New("session is over")
)

const (
	defaultGoalBound = 5 // Goals are drawn from [-5, 5] on both axes.
)

// Option configures a Session.
type Option func(*Session)

// WithGoalBound sets the bound goals are drawn within.
func WithGoalBound(bound int) Option {
	return func(s *Session) {
		s.goalBound = bound
	}
}

// WithGoals places the key and the exit instead of drawing them at random.
func WithGoals(key, exit maze.Coordinate) Option {
	return func(s *Session) {
		s.key = key
		s.exit = exit
		s.goalsPlaced = true
	}
}

// WithLogger sets the logger the session reports to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// Session is a single game: one player, the walls around them, and the
// hidden key and exit. It runs one turn at a time on the caller's goroutine.
type Session struct {
	ID uuid.UUID // Identifier attached to every log line of the session.

	player      *maze.Player      // The player.
	walls       *maze.Walls       // Walls of the player's current junction.
	key         maze.Coordinate   // Where the key lies.
	exit        maze.Coordinate   // Where the exit lies.
	goalBound   int               // Bound used when drawing goals.
	goalsPlaced bool              // Goals were given by an option.
	state       State             // Lifecycle state.
	io          LineIO            // Console.
	rng         maze.RandomSource // Source for goals and wall shifts.
	logger      logrus.FieldLogger
}

// New creates a session with the player at the origin and every wall open.
// Unless WithGoals is given, the key and exit are drawn from rng.
func New(lineIO LineIO, rng maze.RandomSource, options ...Option) (*Session, error) {
	if lineIO == nil {
		return nil, ErrNilLineIO
	}
	if rng == nil {
		return nil, ErrNilRandomSource
	}

	s := &Session{
		ID:        uuid.New(),
		player:    maze.NewPlayer(),
		walls:     maze.NewWalls(),
		goalBound: defaultGoalBound,
		state:     StatePlaying,
		io:        lineIO,
		rng:       rng,
	}
	for _, opt := range options {
		opt(s)
	}

	if s.goalBound < 0 {
		return nil, ErrInvalidBound
	}
	if !s.goalsPlaced {
		s.key = maze.RandomCoordinate(rng, s.goalBound)
		s.exit = maze.RandomCoordinate(rng, s.goalBound)
	}

	if s.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.logger = l
	}
	s.logger = s.logger.WithField("session", s.ID.String())
	s.logger.WithFields(logrus.Fields{
		"key":  s.key.String(),
		"exit": s.exit.String(),
	}).Debug("goals placed")

	return s, nil
}

// State returns the lifecycle state of the session.
func (s *Session) State() State {
	return s.state
}

// Player returns a copy of the player.
func (s *Session) Player() maze.Player {
	return *s.player
}

// Key returns where the key lies.
func (s *Session) Key() maze.Coordinate {
	return s.key
}

// Exit returns where the exit lies.
func (s *Session) Exit() maze.Coordinate {
	return s.exit
}

// IsOpen reports whether the player may currently travel in direction d.
func (s *Session) IsOpen(d maze.Direction) bool {
	return s.walls.IsOpen(d)
}

// Run shows the banner and plays turns until the player escapes or quits.
// Console errors end the session and are returned as is.
func (s *Session) Run() error {
	s.logger.Info("session started")
	if err := s.say(banner); err != nil {
		return err
	}

	for s.state == StatePlaying {
		if _, err := s.Turn(); err != nil {
			s.logger.WithError(err).Error("session aborted")
			return err
		}
	}

	s.logger.WithField("state", s.state.String()).Info("session ended")
	return nil
}

// Turn plays a single turn: it warns about walls, asks for a direction,
// moves the player if the way is open, reports how the distance to the
// current objective changed, and shifts the walls.
//
// A blocked move leaves the session untouched.
func (s *Session) Turn() (Outcome, error) {
	if s.state != StatePlaying {
		return 0, ErrSessionOver
	}

	label, target := s.objective()
	lastDistance := maze.Distance(s.player.Location, target)

	for _, d := range s.walls.Blocked() {
		if err := s.say(fmt.Sprintf(wallWarningFmt, d)); err != nil {
			return 0, err
		}
	}

	d, quit, err := s.askDirection()
	if err != nil {
		return 0, err
	}
	if quit {
		s.state = StateQuit
		return OutcomeQuit, s.say(byeMsg)
	}

	if !s.walls.IsOpen(d) {
		return OutcomeBlocked, s.say(blockedMsg)
	}

	s.player.Step(d)
	distance := maze.Distance(s.player.Location, target)
	s.logger.WithFields(logrus.Fields{
		"direction": d.String(),
		"location":  s.player.Location.String(),
		"objective": label,
		"distance":  distance,
	}).Debug("player moved")

	outcome := OutcomeMoved
	switch {
	case distance == 0:
		if err := s.say(fmt.Sprintf(foundFmt, label)); err != nil {
			return 0, err
		}
		if s.player.HasKey {
			s.state = StateEscaped
			return OutcomeEscaped, s.say(escapedMsg)
		}
		s.player.PickUpKey()
		s.logger.Info("key found")
		outcome = OutcomeKeyFound
		err = s.say(senseExitMsg)
	case distance < lastDistance:
		err = s.say(fmt.Sprintf(closerFmt, label))
	case distance == lastDistance:
		err = s.say(fmt.Sprintf(sameDistanceFmt, label))
	default:
		err = s.say(fmt.Sprintf(furtherFmt, label))
	}
	if err != nil {
		return 0, err
	}

	s.walls.Regenerate(d, s.rng)
	s.logger.WithField("blocked", s.walls.Blocked()).Debug("walls shifted")
	return outcome, nil
}

// objective returns the label and location of what the player is looking for.
func (s *Session) objective() (string, maze.Coordinate) {
	if s.player.HasKey {
		return exitLabel, s.exit
	}
	return keyLabel, s.key
}

// say writes a line of game text.
func (s *Session) say(line string) error {
	if err := s.io.WriteLine(line); err != nil {
		return fmt.Errorf("writing to console: %w", err)
	}
	return nil
}
