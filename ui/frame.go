// Package ui projects a game state into a frame description that a terminal
// host can draw. It holds no state of its own.
package ui

import (
	"connectfour/game"
	"connectfour/meta"
)

// Color is a display color independent of any terminal library.
type Color int

const (
	ColorNeutral Color = iota
	ColorRed
	ColorBlue
)

const BoardTitle = "4 in a row"

// Screen split: the board takes BoardShare of the height, the control strip
// the rest, and the strip is halved between the two player panels.
const (
	BoardShare   = 95
	ControlShare = 5
)

// Rect is a filled rectangle in canvas units, origin at the bottom left.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Color         Color
}

// Bounds is the canvas extent the rectangles are placed in.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Panel is one player's status box.
type Panel struct {
	Title  string
	Text   string
	Color  Color
	Active bool
}

type Frame struct {
	Title  string
	Bounds Bounds
	Rects  []Rect
	Panels [2]Panel
}

// Present builds the frame for the current state. Empty cells produce no
// rectangle. Only the panel of the player to move shows the pending input.
func Present(s *game.GameState) Frame {
	b := s.Board
	frame := Frame{
		Title: BoardTitle,
		Bounds: Bounds{
			MaxX: float64(b.Columns()) * meta.CELL_PITCH,
			MaxY: float64(b.Rows()) * meta.CELL_PITCH,
		},
		Rects: []Rect{},
	}

	for row := 0; row < b.Rows(); row++ {
		for column := 0; column < b.Columns(); column++ {
			owner, ok := b.At(row, column).Owner()
			if !ok {
				continue
			}
			frame.Rects = append(frame.Rects, Rect{
				X:      float64(column) * meta.CELL_PITCH,
				Y:      float64(row) * meta.CELL_PITCH,
				Width:  meta.CELL_SIZE,
				Height: meta.CELL_SIZE,
				Color:  PlayerColor(owner),
			})
		}
	}

	for _, p := range []game.Player{game.First, game.Second} {
		panel := Panel{
			Title: p.String() + " player",
			Color: ColorNeutral,
		}
		if p == s.Turn() {
			panel.Text = s.Input()
			panel.Color = PlayerColor(p)
			panel.Active = true
		}
		frame.Panels[p] = panel
	}

	return frame
}

func PlayerColor(p game.Player) Color {
	if p == game.First {
		return ColorRed
	}
	return ColorBlue
}
