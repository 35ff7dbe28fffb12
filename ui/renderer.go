package ui

import (
	"fmt"
	"minisnake/game/entity"
	"minisnake/game/types"
)

const (
	gridLineThickness = 1

	scoreX        = 30
	scoreY        = 30
	scoreFontSize = 32

	gameOverText     = "Game Over"
	gameOverOffsetX  = 100 // text starts this far left of the window center
	gameOverFontSize = 48
)

// GameView is the read-only slice of game state the Renderer needs.
type GameView interface {
	GridSize() int
	GetSnake() *entity.Snake
	GetFood() types.Point
	Score() int
	GameOver() bool
}

// Renderer turns game state into draw calls. It keeps no per-frame state.
type Renderer struct {
	theme Theme
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Draw paints one full frame, back to front.
func (r *Renderer) Draw(c Canvas, g GameView) {
	width, height := c.Size()
	n := g.GridSize()
	cellSize := width / float32(n)

	c.Clear(r.theme.Background)
	r.drawGrid(c, n, cellSize, width, height)
	r.drawSnake(c, g.GetSnake(), cellSize)
	r.drawCell(c, g.GetFood(), cellSize, r.theme.Fruit)
	c.Text(fmt.Sprintf("Score: %d", g.Score()), scoreX, scoreY, scoreFontSize, r.theme.Text)

	if g.GameOver() {
		c.Text(gameOverText, width/2-gameOverOffsetX, height/2, gameOverFontSize, r.theme.GameOver)
	}
}

func (r *Renderer) drawGrid(c Canvas, n int, cellSize, width, height float32) {
	for i := 1; i < n; i++ {
		pos := float32(i) * cellSize
		c.Line(pos, 0, pos, height, gridLineThickness, r.theme.Grid)
		c.Line(0, pos, width, pos, gridLineThickness, r.theme.Grid)
	}
}

func (r *Renderer) drawSnake(c Canvas, s *entity.Snake, cellSize float32) {
	for i := 0; i < s.Body.Len(); i++ {
		r.drawCell(c, s.Body.At(i), cellSize, r.theme.Body)
	}
	r.drawCell(c, s.Head, cellSize, r.theme.Head)
}

func (r *Renderer) drawCell(c Canvas, p types.Point, cellSize float32, color Color) {
	c.FillRect(float32(p.X)*cellSize, float32(p.Y)*cellSize, cellSize, cellSize, color)
}
