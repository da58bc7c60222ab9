package game

import "strconv"

type StateHash uint64

// Move is a 1-based column number, the way players type it.
type Move int

func (m Move) String() string {
	return strconv.Itoa(int(m))
}

// Result reports how a commit attempt was resolved. Every result other than
// Placed leaves the state untouched, pending input included.
type Result int

const (
	Placed Result = iota
	RejectedParse
	RejectedRange
	RejectedFull
)

func (r Result) String() string {
	switch r {
	case Placed:
		return "placed"
	case RejectedParse:
		return "rejected: not a number"
	case RejectedRange:
		return "rejected: column out of range"
	case RejectedFull:
		return "rejected: column full"
	default:
		return "unknown"
	}
}

// Rejected reports whether the commit was dropped without effect.
func (r Result) Rejected() bool {
	return r != Placed
}
