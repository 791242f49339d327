package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/terminal"
)

// fakeTerminal implements BoundsProvider, Keyboard and render.Surface in memory
type fakeTerminal struct {
	width, height int

	queue   []terminal.KeyEvent
	pending *terminal.KeyEvent
	polls   int
	ungets  int

	cells  map[[2]int]rune
	clears int
	shows  int
}

func newFakeTerminal(width, height int) *fakeTerminal {
	return &fakeTerminal{width: width, height: height, cells: make(map[[2]int]rune)}
}

func (f *fakeTerminal) Size() (int, int) { return f.width, f.height }

func (f *fakeTerminal) PollKey() (terminal.KeyEvent, bool) {
	f.polls++
	if f.pending != nil {
		ev := *f.pending
		f.pending = nil
		return ev, true
	}
	if len(f.queue) == 0 {
		return terminal.KeyEvent{}, false
	}
	ev := f.queue[0]
	f.queue = f.queue[1:]
	return ev, true
}

func (f *fakeTerminal) Unget(ev terminal.KeyEvent) {
	f.ungets++
	f.pending = &ev
}

func (f *fakeTerminal) press(runes ...rune) {
	for _, r := range runes {
		f.queue = append(f.queue, terminal.RuneEvent(r))
	}
}

func (f *fakeTerminal) buffered() int {
	n := len(f.queue)
	if f.pending != nil {
		n++
	}
	return n
}

func (f *fakeTerminal) Clear() {
	f.cells = make(map[[2]int]rune)
	f.clears++
}

func (f *fakeTerminal) SetString(x, y int, str string) {
	for i, r := range []rune(str) {
		f.cells[[2]int{x + i, y}] = r
	}
}

func (f *fakeTerminal) Show() { f.shows++ }

// newTestGame builds a game over a fake terminal and a mock clock
func newTestGame(t *testing.T, width, height int) (*Game, *fakeTerminal, *MockTimeProvider) {
	t.Helper()

	term := newFakeTerminal(width, height)
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	g := NewGame(Config{
		Bounds:   term,
		Keyboard: term,
		Surface:  term,
		Clock:    clock,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return g, term, clock
}
