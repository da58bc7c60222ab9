package engine

import (
	"time"

	"connectfour/ui"
)

// KeyKind is the meaning of a key press for the game. Host drivers map their
// own key events onto it.
type KeyKind int

const (
	KeyNone KeyKind = iota // nothing pressed, or a key the game ignores
	KeyDigit
	KeyBackspace
	KeyCommit
	KeyQuit
)

type Key struct {
	Kind KeyKind
	Rune rune // set for KeyDigit
}

// Screen is the terminal host the loop draws to and reads keys from.
type Screen interface {
	Draw(frame ui.Frame) error
	// Poll waits at most timeout for a key. It returns a KeyNone key when
	// the wait expires or the event was not a key press.
	Poll(timeout time.Duration) (Key, error)
}
