package input

// Command is the action a key press maps to
type Command uint8

const (
	CommandIgnored Command = iota
	CommandMoveUp          // k
	CommandMoveDown        // j
	CommandPause           // p
	CommandQuit            // q, Esc, Ctrl+C
)

var commandNames = [...]string{
	CommandIgnored:  "ignored",
	CommandMoveUp:   "move_up",
	CommandMoveDown: "move_down",
	CommandPause:    "pause",
	CommandQuit:     "quit",
}

// String returns the command name used in logs
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// IsMove reports whether the command moves the paddle
func (c Command) IsMove() bool {
	return c == CommandMoveUp || c == CommandMoveDown
}
