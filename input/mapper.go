package input

import (
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/terminal"
)

// Mapper translates key presses into commands and applies paddle moves
type Mapper struct {
	table *KeyTable
}

// NewMapper creates a mapper over the given key table, DefaultKeyTable if nil
func NewMapper(table *KeyTable) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{table: table}
}

// Map returns the command for a key press
func (m *Mapper) Map(ev terminal.KeyEvent) Command {
	return m.table.Lookup(ev)
}

// MovePaddle applies a move command one row at a time.
// A move that would leave the arena is silently dropped; returns whether the paddle moved.
func MovePaddle(p *components.PaddleComponent, bounds components.BoundsComponent, cmd Command) bool {
	switch cmd {
	case CommandMoveDown:
		if p.Bottom()+1 <= bounds.MaxY {
			p.Y++
			return true
		}
	case CommandMoveUp:
		if p.Y-1 >= 0 {
			p.Y--
			return true
		}
	}
	return false
}
