package terminal

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
)

// ErrNotTerminal is returned when stdin or stdout is not attached to a terminal
var ErrNotTerminal = errors.New("stdin and stdout must be a terminal")

// CheckTTY verifies the process is attached to an interactive terminal
func CheckTTY() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	return nil
}

// Session is the game's view of the terminal: bounds, drawing and key polling.
// All methods except the internal event pump are called from the game loop.
type Session struct {
	screen tcell.Screen
	style  tcell.Style

	keys    chan KeyEvent
	pending *KeyEvent // Pushed-back key, returned before the queue
	resized atomic.Bool

	done     chan struct{}
	finiOnce sync.Once
}

// New creates a session on the controlling terminal
func New() (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a session on an existing screen (simulation screens in tests)
func NewWithScreen(screen tcell.Screen) *Session {
	return &Session{
		screen: screen,
		style:  tcell.StyleDefault,
		keys:   make(chan KeyEvent, constants.KeyQueueSize),
		done:   make(chan struct{}),
	}
}

// Init enters raw mode, hides the cursor and starts the event pump
func (s *Session) Init() error {
	if err := s.screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	s.screen.HideCursor()
	s.screen.DisableMouse()
	s.screen.SetStyle(s.style)
	s.screen.Clear()

	core.Go(s.pump)
	return nil
}

// Fini restores the terminal. Safe to call multiple times
func (s *Session) Fini() {
	s.finiOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// pump moves tcell events onto the key queue until the screen is finalized
func (s *Session) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			select {
			case s.keys <- translateKey(ev):
			case <-s.done:
				return
			}
		case *tcell.EventResize:
			s.resized.Store(true)
		}
	}
}

// PollKey returns the next buffered key without blocking
func (s *Session) PollKey() (KeyEvent, bool) {
	if s.pending != nil {
		ev := *s.pending
		s.pending = nil
		return ev, true
	}

	select {
	case ev := <-s.keys:
		return ev, true
	default:
		return KeyEvent{}, false
	}
}

// Unget pushes one key back to be returned by the next PollKey
func (s *Session) Unget(ev KeyEvent) {
	s.pending = &ev
}

// Size returns the current drawable width and height
func (s *Session) Size() (width, height int) {
	return s.screen.Size()
}

// Clear blanks the back buffer
func (s *Session) Clear() {
	s.screen.Clear()
}

// SetString draws str starting at column x, row y. Cells outside the screen are dropped by tcell
func (s *Session) SetString(x, y int, str string) {
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.screen.SetContent(x, y, r, nil, s.style)
		x += w
	}
}

// Show presents the back buffer, repainting fully after a resize
func (s *Session) Show() {
	if s.resized.Swap(false) {
		s.screen.Sync()
		return
	}
	s.screen.Show()
}
