package game

// Text shown to the player.
const (
	banner = `You wake up to find yourself in a mysterious maze.

Everywhere you step, the walls twist and shift. You can always
retrace your last step, but nothing else seems constant.

Nearby you can sense the presence of a key. Can you find it
and escape the maze?
`

	directionPrompt = "Which direction will you go (N/S/E/W, or Q to quit)?"

	wallWarningFmt  = "  There is a wall to the %s"
	blockedMsg      = "  You can't go that way, there's a wall!"
	foundFmt        = "You found the %s!"
	senseExitMsg    = "You can now sense the exit..."
	escapedMsg      = "You have escaped, congratulations!"
	closerFmt       = "  You sense you are getting closer to the %s..."
	sameDistanceFmt = "  You sense the %s is just as far as it was before..."
	furtherFmt      = "  You sense you are getting further from the %s..."
	byeMsg          = "Bye!"

	inputLengthMsg  = "Error: must give a direction"
	inputUnknownMsg = "Error: direction must be N,S,E, or W"
)

// Objective labels.
const (
	keyLabel  = "key"
	exitLabel = "exit"
)
