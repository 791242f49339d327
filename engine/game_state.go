package engine

// State is the frame scheduler state
type State uint8

const (
	StateRunning       State = iota // Entry state, moves straight to AwaitingInput
	StateAwaitingInput              // Render and simulate while no key is buffered
	StatePaused                     // Banner shown, idle until any key
	StateTerminated                 // Absorbing
)

var stateNames = [...]string{
	StateRunning:       "running",
	StateAwaitingInput: "awaiting_input",
	StatePaused:        "paused",
	StateTerminated:    "terminated",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Reason records why the game terminated
type Reason uint8

const (
	ReasonNone   Reason = iota
	ReasonMissed        // Ball left through the left edge
	ReasonQuit          // Player quit
)

func (r Reason) String() string {
	switch r {
	case ReasonMissed:
		return "missed"
	case ReasonQuit:
		return "quit"
	default:
		return "none"
	}
}

// Result is the final outcome of a game
type Result struct {
	Score  int
	Reason Reason
	Frames int64
}
