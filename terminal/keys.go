package terminal

import (
	"connectfour/engine"

	"github.com/gdamore/tcell/v2"
)

// QuitRune ends the game.
const QuitRune = 'q'

// KeyFor maps a terminal key event onto a game key. Keys the game has no use
// for map to engine.KeyNone.
func KeyFor(ev *tcell.EventKey) engine.Key {
	switch ev.Key() {
	case tcell.KeyEnter:
		return engine.Key{Kind: engine.KeyCommit}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return engine.Key{Kind: engine.KeyBackspace}
	case tcell.KeyCtrlC:
		return engine.Key{Kind: engine.KeyQuit}
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == QuitRune:
			return engine.Key{Kind: engine.KeyQuit}
		case r >= '0' && r <= '9':
			return engine.Key{Kind: engine.KeyDigit, Rune: r}
		}
	}
	return engine.Key{Kind: engine.KeyNone}
}
