package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-maze/game"
)

var _ game.LineIO = &Console{}

// ErrClosed is returned when the input ends before a line could be read.
var ErrClosed = errors.New("console input closed")

// Console is a line oriented terminal built on a reader and a writer, usually stdin and stdout.
type Console struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

// ReadLine implements game.LineIO.
// The prompt is followed by a single space and flushed before waiting for input.
func (c *Console) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprintf(c.out, "%s ", prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	if err := c.out.Flush(); err != nil {
		return "", fmt.Errorf("flushing prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		// A last line without a trailing newline still counts.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrClosed
		}
		return "", fmt.Errorf("reading line: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// WriteLine implements game.LineIO.
func (c *Console) WriteLine(line string) error {
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	if err := c.out.Flush(); err != nil {
		return fmt.Errorf("flushing line: %w", err)
	}
	return nil
}
