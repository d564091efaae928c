/*
Package logger builds prefixed, coloured logrus loggers.

Every line has the shape `[PREFIX] [LEVEL] message key=value ...`. The prefix
is coloured only when the output is a terminal.
*/
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const colorReset = "\033[0m"

var ErrEmptyPrefix = errors.New("logger prefix is required")

// Formatter renders entries as `[PREFIX] [LEVEL] message key=value`.
type Formatter struct {
	Prefix string // Name of the component, e.g. APP.
	Color  string // ANSI colour of the prefix; empty disables colouring.
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	if f.Color != "" {
		fmt.Fprintf(b, "%s[%s]%s ", f.Color, f.Prefix, colorReset)
	} else {
		fmt.Fprintf(b, "[%s] ", f.Prefix)
	}
	fmt.Fprintf(b, "[%s] %s", strings.ToUpper(e.Level.String()), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, e.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// New creates a logger writing to w at the given level name (e.g. "info", "debug").
func New(prefix, color string, w io.Writer, level string) (*logrus.Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	if !isTerminal(w) {
		color = ""
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&Formatter{Prefix: prefix, Color: color})
	return l, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
