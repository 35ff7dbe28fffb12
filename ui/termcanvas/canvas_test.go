package termcanvas

import (
	"minisnake/ui"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func background(t *testing.T, s tcell.Screen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestCanvas_SizeKeepsPlayfieldSquare(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	c := New(screen)

	w, h := c.Size()
	if h != 24*CellHeight {
		t.Fatalf("height=%v want=%v", h, 24*CellHeight)
	}
	if w != h {
		t.Fatalf("width=%v want=%v (clamped to height)", w, h)
	}

	screen.SetSize(20, 40)
	if w, _ := c.Size(); w != 20*CellWidth {
		t.Fatalf("narrow terminal width=%v want=%v", w, 20*CellWidth)
	}
}

func TestCanvas_FillRectColorsCells(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	c := New(screen)
	red := ui.Color{R: 255, A: 255}
	grey := ui.Color{R: 51, G: 51, B: 51, A: 255}

	c.Clear(grey)
	c.FillRect(16, 32, 16, 32, red)

	want := tcell.NewRGBColor(255, 0, 0)
	for _, cell := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if got := background(t, screen, cell[0], cell[1]); got != want {
			t.Fatalf("cell %v bg=%v want=%v", cell, got, want)
		}
	}
	if got := background(t, screen, 4, 2); got != tcell.NewRGBColor(51, 51, 51) {
		t.Fatalf("neighbour cell bg=%v want grey", got)
	}
}

func TestCanvas_LinesCross(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	c := New(screen)
	col := ui.Color{R: 102, G: 102, B: 102, A: 255}

	c.Line(40, 0, 40, 160, 1, col)
	c.Line(0, 64, 160, 64, 1, col)

	cases := []struct {
		x, y int
		want rune
	}{
		{5, 0, '│'},
		{5, 9, '│'},
		{0, 4, '─'},
		{5, 4, '┼'},
	}
	for _, tc := range cases {
		if r, _, _, _ := screen.GetContent(tc.x, tc.y); r != tc.want {
			t.Fatalf("cell (%d,%d)=%q want=%q", tc.x, tc.y, r, tc.want)
		}
	}
}

func TestCanvas_TextKeepsBackground(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	c := New(screen)
	blue := ui.Color{B: 200, A: 255}

	c.FillRect(0, 0, 320, 16, blue)
	c.Text("Score: 3", 16, 0, 32, ui.Color{R: 255, G: 255, B: 255, A: 255})

	for i, want := range "Score: 3" {
		r, _, style, _ := screen.GetContent(2+i, 0)
		if r != want {
			t.Fatalf("col %d=%q want=%q", 2+i, r, want)
		}
		fg, bg, _ := style.Decompose()
		if fg != tcell.NewRGBColor(255, 255, 255) || bg != tcell.NewRGBColor(0, 0, 200) {
			t.Fatalf("col %d fg=%v bg=%v", 2+i, fg, bg)
		}
	}
}
