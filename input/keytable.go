package input

import "github.com/lixenwraith/vi-pong/terminal"

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (Esc, Ctrl+*)
	SpecialKeys map[terminal.Key]Command

	// Printable rune bindings
	Runes map[rune]Command
}

// DefaultKeyTable returns the standard vi-style bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]Command{
			terminal.KeyEscape: CommandQuit,
			terminal.KeyCtrlC:  CommandQuit,
		},
		Runes: map[rune]Command{
			'j': CommandMoveDown,
			'k': CommandMoveUp,
			'p': CommandPause,
			'q': CommandQuit,
		},
	}
}

// Lookup returns the command bound to a key, CommandIgnored if none
func (t *KeyTable) Lookup(ev terminal.KeyEvent) Command {
	if ev.Key == terminal.KeyRune {
		return t.Runes[ev.Rune]
	}
	return t.SpecialKeys[ev.Key]
}
