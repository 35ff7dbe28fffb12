// Package termcanvas draws ui frames onto a tcell screen.
//
// The screen is exposed as a virtual pixel surface where every terminal cell
// is CellWidth by CellHeight pixels, so the Renderer's pixel math carries over.
package termcanvas

import (
	"math"
	"minisnake/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	CellWidth  = 8
	CellHeight = 16
)

type Canvas struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen}
}

// Size reports a width no larger than the height so the square playfield fits.
func (c *Canvas) Size() (float32, float32) {
	cols, rows := c.screen.Size()
	w := float32(cols * CellWidth)
	h := float32(rows * CellHeight)
	return min(w, h), h
}

func (c *Canvas) Clear(col ui.Color) {
	c.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(col)))
}

// Line supports the axis-aligned lines the Renderer draws.
func (c *Canvas) Line(x1, y1, x2, y2, _ float32, col ui.Color) {
	switch {
	case x1 == x2:
		x := cellX(x1)
		for y := cellY(min(y1, y2)); y < cellY(max(y1, y2)); y++ {
			c.setLine(x, y, '│', col)
		}
	case y1 == y2:
		y := cellY(y1)
		for x := cellX(min(x1, x2)); x < cellX(max(x1, x2)); x++ {
			c.setLine(x, y, '─', col)
		}
	}
}

func (c *Canvas) setLine(x, y int, r rune, col ui.Color) {
	prev, _, style, _ := c.screen.GetContent(x, y)
	if (prev == '│' && r == '─') || (prev == '─' && r == '│') || prev == '┼' {
		r = '┼'
	}
	c.screen.SetContent(x, y, r, nil, style.Foreground(toTcell(col)))
}

func (c *Canvas) FillRect(x, y, w, h float32, col ui.Color) {
	x0, x1 := cellX(x), cellX(x+w)
	y0, y1 := cellY(y), cellY(y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	style := tcell.StyleDefault.Background(toTcell(col))
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// Text ignores size; terminals have one font size.
func (c *Canvas) Text(s string, x, y, _ float32, col ui.Color) {
	cx, cy := cellX(x), cellY(y)
	for _, r := range s {
		_, _, style, _ := c.screen.GetContent(cx, cy)
		c.screen.SetContent(cx, cy, r, nil, style.Foreground(toTcell(col)))
		cx++
	}
}

// Show flushes the frame to the terminal.
func (c *Canvas) Show() {
	c.screen.Show()
}

func cellX(px float32) int {
	return int(math.Round(float64(px / CellWidth)))
}

func cellY(px float32) int {
	return int(math.Round(float64(px / CellHeight)))
}

func toTcell(c ui.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
