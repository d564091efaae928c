package game

// LineIO is the console the game talks to. It is line oriented:
// the game never needs more than one line of input at a time.
type LineIO interface {
	// ReadLine shows the prompt and returns the next line typed, trimmed of surrounding whitespace.
	ReadLine(prompt string) (string, error)

	// WriteLine prints a single line of game text.
	WriteLine(line string) error
}
