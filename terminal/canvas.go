package terminal

import (
	"math"

	"connectfour/ui"

	"github.com/gdamore/tcell/v2"
)

type pixel struct {
	on    bool
	color ui.Color
}

// raster is the board canvas at half-block resolution: every terminal cell
// holds two pixels stacked vertically. Pixel row 0 is the top.
type raster struct {
	width, height int
	pixels        []pixel
}

// rasterize maps the frame's canvas rectangles onto a grid of width x
// 2*height pixels. The canvas y axis points up, the pixel y axis down.
func rasterize(frame ui.Frame, width, height int) *raster {
	r := &raster{width: width, height: 2 * height}
	if width <= 0 || height <= 0 {
		r.width, r.height = 0, 0
		return r
	}
	r.pixels = make([]pixel, r.width*r.height)

	b := frame.Bounds
	spanX, spanY := b.MaxX-b.MinX, b.MaxY-b.MinY
	if spanX <= 0 || spanY <= 0 {
		return r
	}
	toPx := func(x float64) float64 { return (x - b.MinX) * float64(r.width) / spanX }
	toPy := func(y float64) float64 { return (b.MaxY - y) * float64(r.height) / spanY }

	for _, rect := range frame.Rects {
		x0, x1 := span(toPx(rect.X), toPx(rect.X+rect.Width), r.width)
		y0, y1 := span(toPy(rect.Y+rect.Height), toPy(rect.Y), r.height)
		for py := y0; py < y1; py++ {
			for px := x0; px < x1; px++ {
				r.pixels[py*r.width+px] = pixel{on: true, color: rect.Color}
			}
		}
	}
	return r
}

// span converts a continuous interval into pixel indices [lo, hi), clamped
// to [0, limit). A visible interval always covers at least one pixel.
func span(from, to float64, limit int) (int, int) {
	lo := int(math.Floor(from))
	hi := int(math.Ceil(to))
	if hi <= lo {
		hi = lo + 1
	}
	lo = max(lo, 0)
	hi = min(hi, limit)
	if lo >= hi {
		return 0, 0
	}
	return lo, hi
}

func (r *raster) at(px, py int) pixel {
	return r.pixels[py*r.width+px]
}

// paint draws the raster at (x, y). Cells with no pixel set are left alone.
func (r *raster) paint(screen tcell.Screen, x, y int) {
	for cy := 0; cy < r.height/2; cy++ {
		for cx := 0; cx < r.width; cx++ {
			top, bottom := r.at(cx, 2*cy), r.at(cx, 2*cy+1)
			var (
				ch    rune
				style = tcell.StyleDefault
			)
			switch {
			case top.on && bottom.on && top.color == bottom.color:
				ch, style = '█', style.Foreground(colorFor(top.color))
			case top.on && bottom.on:
				ch, style = '▀', style.Foreground(colorFor(top.color)).Background(colorFor(bottom.color))
			case top.on:
				ch, style = '▀', style.Foreground(colorFor(top.color))
			case bottom.on:
				ch, style = '▄', style.Foreground(colorFor(bottom.color))
			default:
				continue
			}
			screen.SetContent(x+cx, y+cy, ch, nil, style)
		}
	}
}

func colorFor(c ui.Color) tcell.Color {
	switch c {
	case ui.ColorRed:
		return tcell.ColorRed
	case ui.ColorBlue:
		return tcell.ColorBlue
	default:
		return tcell.ColorWhite
	}
}
