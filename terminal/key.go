package terminal

import "github.com/gdamore/tcell/v2"

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check KeyEvent.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyCtrlC

	// Anything else the game has no use for
	KeyOther
)

// KeyEvent is one buffered key press
type KeyEvent struct {
	Key  Key
	Rune rune
}

// RuneEvent builds the event for a printable character
func RuneEvent(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// translateKey converts a tcell key event into a KeyEvent
func translateKey(ev *tcell.EventKey) KeyEvent {
	switch ev.Key() {
	case tcell.KeyRune:
		return RuneEvent(ev.Rune())
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape}
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter}
	case tcell.KeyCtrlC:
		return KeyEvent{Key: KeyCtrlC}
	default:
		return KeyEvent{Key: KeyOther}
	}
}
