package game

import (
	"encoding/binary"
	"hash/fnv"
	"strings"

	"golang.org/x/exp/slices"
)

// Error is a board-level failure. These never reach the players; the turn
// logic turns them into silent rejections.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidSize      Error = "board dimensions must be positive"
	ErrColumnOutOfRange Error = "column out of range"
	ErrColumnFull       Error = "column is full"
)

// Board is a rows x columns grid. Row 0 is the bottom row; tokens settle in
// the lowest empty row of a column, so empty cells in a column always sit
// above the occupied ones.
type Board struct {
	rows    int
	columns int
	cells   []Cell // row-major, bottom row first
}

// NewBoard returns an empty board.
func NewBoard(rows, columns int) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrInvalidSize
	}
	return &Board{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}, nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Columns() int {
	return b.columns
}

// At returns the cell at (row, column). It panics if either index is out of
// range, like a slice index would.
func (b *Board) At(row, column int) Cell {
	if row < 0 || row >= b.rows || column < 0 || column >= b.columns {
		panic("board index out of range")
	}
	return b.cells[row*b.columns+column]
}

// landingRow scans upward from the bottom and returns the first empty row in
// the column, or -1 when the column is full.
func (b *Board) landingRow(column int) int {
	for row := 0; row < b.rows; row++ {
		if b.cells[row*b.columns+column] == Empty {
			return row
		}
	}
	return -1
}

// ColumnFull reports whether no token fits into the 0-based column.
func (b *Board) ColumnFull(column int) bool {
	if column < 0 || column >= b.columns {
		return true
	}
	return b.landingRow(column) < 0
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	return !slices.Contains(b.cells, Empty)
}

// Drop places the player's token in the lowest empty row of the 0-based
// column and returns that row.
func (b *Board) Drop(column int, player Player) (int, error) {
	if column < 0 || column >= b.columns {
		return -1, ErrColumnOutOfRange
	}
	row := b.landingRow(column)
	if row < 0 {
		return -1, ErrColumnFull
	}
	b.cells[row*b.columns+column] = player.Cell()
	return row, nil
}

func (b *Board) Copy() *Board {
	return &Board{
		rows:    b.rows,
		columns: b.columns,
		cells:   slices.Clone(b.cells),
	}
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(b.rows))
	binary.Write(hasher, binary.LittleEndian, int64(b.columns))
	for _, c := range b.cells {
		hasher.Write([]byte{byte(c)})
	}
	return StateHash(hasher.Sum64())
}

// String renders the board top row first, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.rows - 1; row >= 0; row-- {
		for column := 0; column < b.columns; column++ {
			sb.WriteString(b.At(row, column).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
