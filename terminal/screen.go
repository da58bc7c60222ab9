// Package terminal hosts the game in a full-screen terminal: raw keyboard
// input, the alternate screen buffer and frame drawing.
package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"connectfour/engine"
	"connectfour/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var ErrClosed = errors.New("terminal closed")

// Screen draws frames with tview primitives straight onto a tcell screen.
// There is no tview.Application: the game's own loop decides when to draw
// and how long to wait for input.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once

	root   *tview.Flex
	board  *tview.Box
	panels [2]*tview.TextView
	frame  ui.Frame
}

// New takes over the controlling terminal. Close must be called on every
// exit path to give it back.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return Open(s)
}

// Open initializes s (raw mode, alternate screen) and starts reading its
// events.
func Open(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	s.HideCursor()

	t := &Screen{
		screen: s,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	t.layout()
	go s.ChannelEvents(t.events, t.quit)
	return t, nil
}

func (t *Screen) layout() {
	t.board = tview.NewBox()
	t.board.SetBorder(true).SetTitle(ui.BoardTitle)
	t.board.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		// inside the border
		x, y, width, height = x+1, y+1, width-2, height-2
		rasterize(t.frame, width, height).paint(screen, x, y)
		return x, y, width, height
	})

	controls := tview.NewFlex().SetDirection(tview.FlexColumn)
	for i := range t.panels {
		p := tview.NewTextView().SetTextAlign(tview.AlignCenter)
		p.SetBorder(true)
		t.panels[i] = p
		controls.AddItem(p, 0, 1, false)
	}

	t.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.board, 0, ui.BoardShare, false).
		AddItem(controls, 0, ui.ControlShare, false)
}

// Draw renders frame over the whole screen.
func (t *Screen) Draw(frame ui.Frame) error {
	select {
	case <-t.quit:
		return ErrClosed
	default:
	}

	t.frame = frame
	t.board.SetTitle(frame.Title)
	for i, p := range frame.Panels {
		panel := t.panels[i]
		panel.SetText(p.Text)
		panel.SetTitle(p.Title).SetBorderColor(colorFor(p.Color))
	}

	width, height := t.screen.Size()
	t.screen.Clear()
	t.root.SetRect(0, 0, width, height)
	t.root.Draw(t.screen)
	t.screen.Show()
	return nil
}

// Poll waits up to timeout for the next key press.
func (t *Screen) Poll(timeout time.Duration) (engine.Key, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			return engine.Key{}, ErrClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return KeyFor(ev), nil
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventError:
			return engine.Key{}, ev
		}
		return engine.Key{}, nil
	case <-timer.C:
		return engine.Key{}, nil
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *Screen) Close() {
	t.once.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}
