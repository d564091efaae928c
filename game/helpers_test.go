package game

import (
	"errors"
	"io"
	"strings"
)

// scriptedIO replays inputs and records everything written.
type scriptedIO struct {
	inputs   []string
	prompts  []string
	lines    []string
	writeErr error
}

func newScriptedIO(inputs ...string) *scriptedIO {
	return &scriptedIO{inputs: inputs}
}

func (f *scriptedIO) ReadLine(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if len(f.inputs) == 0 {
		return "", io.EOF
	}
	in := f.inputs[0]
	f.inputs = f.inputs[1:]
	return strings.TrimSpace(in), nil
}

func (f *scriptedIO) WriteLine(line string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.lines = append(f.lines, line)
	return nil
}

func (f *scriptedIO) reset() {
	f.prompts = nil
	f.lines = nil
}

// constRand always returns the same draw: 0 shuts every shifting wall, 1 opens them.
type constRand int

func (c constRand) Intn(n int) int { return int(c) % n }

var errBrokenPipe = errors.New("broken pipe")
