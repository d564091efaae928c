package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Missing collaborators", func(t *testing.T) {
		_, err := New(nil, constRand(0))
		assert.ErrorIs(t, err, ErrNilLineIO)

		_, err = New(newScriptedIO(), nil)
		assert.ErrorIs(t, err, ErrNilRandomSource)
	})

	t.Run("Negative bound", func(t *testing.T) {
		_, err := New(newScriptedIO(), constRand(0), WithGoalBound(-1))
		assert.ErrorIs(t, err, ErrInvalidBound)
	})

	t.Run("Initial state", func(t *testing.T) {
		s, err := New(newScriptedIO(), rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		assert.Equal(t, StatePlaying, s.State())
		assert.Equal(t, maze.Coordinate{}, s.Player().Location)
		assert.False(t, s.Player().HasKey)
		for _, d := range maze.AllDirections() {
			assert.True(t, s.IsOpen(d))
		}
		assert.NotEqual(t, uuid.Nil, s.ID)
	})

	t.Run("Goals within bound", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		for i := 0; i < 200; i++ {
			s, err := New(newScriptedIO(), r)
			require.NoError(t, err)
			for _, g := range []maze.Coordinate{s.Key(), s.Exit()} {
				assert.True(t, g.X >= -5 && g.X <= 5 && g.Y >= -5 && g.Y <= 5, g.String())
			}
		}

		s, err := New(newScriptedIO(), r, WithGoalBound(0))
		require.NoError(t, err)
		assert.Equal(t, maze.Coordinate{}, s.Key())
		assert.Equal(t, maze.Coordinate{}, s.Exit())
	})
}

func TestTurnKeyFound(t *testing.T) {
	lineIO := newScriptedIO("e")
	s, err := New(lineIO, constRand(1), WithGoals(maze.Coordinate{X: 1}, maze.Coordinate{X: -4, Y: 2}))
	require.NoError(t, err)

	outcome, err := s.Turn()
	require.NoError(t, err)

	assert.Equal(t, OutcomeKeyFound, outcome)
	assert.Equal(t, StatePlaying, s.State())
	assert.True(t, s.Player().HasKey)
	assert.Equal(t, maze.Coordinate{X: 1}, s.Player().Location)
	assert.Equal(t, []string{"You found the key!", senseExitMsg}, lineIO.lines)
}

func TestTurnFeedback(t *testing.T) {
	lineIO := newScriptedIO("e", "n", "s")
	s, err := New(lineIO, constRand(1), WithGoals(maze.Coordinate{X: 3}, maze.Coordinate{X: 5}))
	require.NoError(t, err)

	outcome, err := s.Turn()
	require.NoError(t, err)
	assert.Equal(t, OutcomeMoved, outcome)
	assert.Equal(t, []string{"  You sense you are getting closer to the key..."}, lineIO.lines)

	lineIO.reset()
	_, err = s.Turn()
	require.NoError(t, err)
	assert.Equal(t, []string{"  You sense you are getting further from the key..."}, lineIO.lines)

	lineIO.reset()
	_, err = s.Turn()
	require.NoError(t, err)
	assert.Equal(t, []string{"  You sense you are getting closer to the key..."}, lineIO.lines)
	assert.Equal(t, maze.Coordinate{X: 1}, s.Player().Location)
}

func TestTurnBlocked(t *testing.T) {
	lineIO := newScriptedIO("e", "n", "n", "e")
	s, err := New(lineIO, constRand(0), WithGoals(maze.Coordinate{X: 5}, maze.Coordinate{X: -5}))
	require.NoError(t, err)

	_, err = s.Turn()
	require.NoError(t, err)
	assert.Equal(t, []maze.Direction{maze.North, maze.South, maze.East}, s.walls.Blocked())

	for i := 0; i < 2; i++ {
		lineIO.reset()
		outcome, err := s.Turn()
		require.NoError(t, err)

		assert.Equal(t, OutcomeBlocked, outcome)
		assert.Equal(t, []string{
			"  There is a wall to the North",
			"  There is a wall to the South",
			"  There is a wall to the East",
			blockedMsg,
		}, lineIO.lines)
		assert.Equal(t, maze.Coordinate{X: 1}, s.Player().Location)
		assert.Equal(t, []maze.Direction{maze.North, maze.South, maze.East}, s.walls.Blocked())
		assert.Equal(t, StatePlaying, s.State())
	}

	lineIO.reset()
	outcome, err := s.Turn()
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlocked, outcome)
	assert.Equal(t, maze.Coordinate{X: 1}, s.Player().Location)
}

func TestTurnExitNeedsAnotherMove(t *testing.T) {
	goal := maze.Coordinate{X: 1}
	lineIO := newScriptedIO("e", "n", "w", "e")
	s, err := New(lineIO, constRand(0), WithGoals(goal, goal))
	require.NoError(t, err)

	outcome, err := s.Turn()
	require.NoError(t, err)
	assert.Equal(t, OutcomeKeyFound, outcome)
	assert.Equal(t, StatePlaying, s.State())

	// Standing on the exit is not enough; a blocked attempt does not count either.
	outcome, err = s.Turn()
	require.NoError(t, err)
	assert.Equal(t, OutcomeBlocked, outcome)
	assert.Equal(t, StatePlaying, s.State())

	lineIO.reset()
	outcome, err = s.Turn()
	require.NoError(t, err)
	assert.Equal(t, OutcomeMoved, outcome)
	assert.Contains(t, lineIO.lines, "  You sense you are getting further from the exit...")

	lineIO.reset()
	outcome, err = s.Turn()
	require.NoError(t, err)
	assert.Equal(t, OutcomeEscaped, outcome)
	assert.Equal(t, StateEscaped, s.State())
	assert.Equal(t, []string{
		"  There is a wall to the North",
		"  There is a wall to the South",
		"  There is a wall to the West",
		"You found the exit!",
		escapedMsg,
	}, lineIO.lines)

	_, err = s.Turn()
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestTurnQuit(t *testing.T) {
	for _, token := range []string{"q", "Q"} {
		t.Run(token, func(t *testing.T) {
			lineIO := newScriptedIO(token, "n")
			s, err := New(lineIO, constRand(1))
			require.NoError(t, err)

			outcome, err := s.Turn()
			require.NoError(t, err)
			assert.Equal(t, OutcomeQuit, outcome)
			assert.Equal(t, StateQuit, s.State())
			assert.Equal(t, []string{byeMsg}, lineIO.lines)

			_, err = s.Turn()
			assert.ErrorIs(t, err, ErrSessionOver)
			assert.Len(t, lineIO.prompts, 1)
			assert.Equal(t, maze.Coordinate{}, s.Player().Location)
		})
	}
}

func TestTurnConsoleFailure(t *testing.T) {
	t.Run("Read", func(t *testing.T) {
		s, err := New(newScriptedIO(), constRand(1))
		require.NoError(t, err)

		_, err = s.Turn()
		assert.ErrorIs(t, err, io.EOF)
		assert.Equal(t, StatePlaying, s.State())
	})

	t.Run("Write", func(t *testing.T) {
		lineIO := newScriptedIO("x")
		lineIO.writeErr = errBrokenPipe
		s, err := New(lineIO, constRand(1))
		require.NoError(t, err)

		_, err = s.Turn()
		assert.ErrorIs(t, err, errBrokenPipe)
	})
}

func TestRun(t *testing.T) {
	t.Run("Escape", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		lineIO := newScriptedIO("e", "e")
		s, err := New(lineIO, constRand(1),
			WithGoals(maze.Coordinate{X: 1}, maze.Coordinate{X: 2}),
			WithLogger(logger),
		)
		require.NoError(t, err)

		require.NoError(t, s.Run())
		assert.Equal(t, StateEscaped, s.State())
		assert.Equal(t, []string{
			banner,
			"You found the key!",
			senseExitMsg,
			"You found the exit!",
			escapedMsg,
		}, lineIO.lines)

		last := hook.LastEntry()
		require.NotNil(t, last)
		assert.Equal(t, "session ended", last.Message)
		assert.Equal(t, "escaped", last.Data["state"])
		assert.Equal(t, s.ID.String(), last.Data["session"])
	})

	t.Run("Quit", func(t *testing.T) {
		lineIO := newScriptedIO("Q")
		s, err := New(lineIO, constRand(1))
		require.NoError(t, err)

		require.NoError(t, s.Run())
		assert.Equal(t, StateQuit, s.State())
		assert.Equal(t, []string{banner, byeMsg}, lineIO.lines)
	})

	t.Run("Console closed", func(t *testing.T) {
		s, err := New(newScriptedIO("w"), constRand(1), WithGoals(maze.Coordinate{X: 3}, maze.Coordinate{}))
		require.NoError(t, err)

		err = s.Run()
		assert.ErrorIs(t, err, io.EOF)
		assert.Equal(t, maze.Coordinate{X: -1}, s.Player().Location)
	})
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "quit", StateQuit.String())
	assert.Equal(t, "key_found", OutcomeKeyFound.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}
