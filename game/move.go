package game

// Player identifies whose turn it is. First always opens the game.
type Player int

const (
	First Player = iota
	Second
)

// Other returns the opponent.
func (p Player) Other() Player {
	if p == First {
		return Second
	}
	return First
}

// Cell returns the token the player drops.
func (p Player) Cell() Cell {
	if p == First {
		return Red
	}
	return Blue
}

func (p Player) String() string {
	switch p {
	case First:
		return "Red"
	case Second:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Cell is a single board position. Once a token is placed it never clears.
type Cell int

const (
	Empty Cell = iota
	Red
	Blue
)

// Owner returns the player whose token occupies the cell.
func (c Cell) Owner() (Player, bool) {
	switch c {
	case Red:
		return First, true
	case Blue:
		return Second, true
	default:
		return 0, false
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Red:
		return "R"
	case Blue:
		return "B"
	default:
		return "?"
	}
}
