package game

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

// GameState is the board plus whose turn it is and the column number the
// current player is typing. It is owned by a single control loop and is not
// safe for concurrent use.
type GameState struct {
	Board      *Board
	turn       Player
	input      string // pending column entry, digits only
	placements int
}

// NewGameState starts a game on the given board with First to move.
func NewGameState(b *Board) *GameState {
	return &GameState{
		Board: b,
		turn:  First,
	}
}

// Turn returns the player to move.
func (gs *GameState) Turn() Player {
	return gs.turn
}

// Input returns the pending column entry.
func (gs *GameState) Input() string {
	return gs.input
}

// Placements returns the number of tokens placed so far.
func (gs *GameState) Placements() int {
	return gs.placements
}

// PushDigit appends a decimal digit to the pending input. Anything else is
// ignored and false is returned. The board is never touched.
func (gs *GameState) PushDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	gs.input += string(r)
	return true
}

// PopDigit removes the last pending digit, if any.
func (gs *GameState) PopDigit() {
	if len(gs.input) > 0 {
		gs.input = gs.input[:len(gs.input)-1]
	}
}

// CommitTurn resolves the pending input as a 1-based column and drops the
// current player's token there. Only a successful drop clears the input and
// passes the turn; every rejection leaves the state exactly as it was.
func (gs *GameState) CommitTurn() Result {
	n, err := strconv.ParseUint(gs.input, 10, 0)
	if err != nil {
		return RejectedParse
	}
	if n == 0 || n > uint64(gs.Board.Columns()) {
		return RejectedRange
	}
	if _, err := gs.Board.Drop(int(n-1), gs.turn); err != nil {
		return RejectedFull
	}

	gs.input = ""
	gs.turn = gs.turn.Other()
	gs.placements++
	return Placed
}

// LegalMoves returns the columns that can still take a token.
func (gs *GameState) LegalMoves() []Move {
	moves := []Move{}
	for column := 0; column < gs.Board.Columns(); column++ {
		if !gs.Board.ColumnFull(column) {
			moves = append(moves, Move(column+1))
		}
	}
	return moves
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:      gs.Board.Copy(),
		turn:       gs.turn,
		input:      gs.input,
		placements: gs.placements,
	}
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, uint64(gs.Board.Hash()))
	binary.Write(hasher, binary.LittleEndian, int64(gs.turn))
	hasher.Write([]byte(gs.input))
	return StateHash(hasher.Sum64())
}
