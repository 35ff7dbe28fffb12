// Package rlcanvas draws ui frames into the current raylib window.
package rlcanvas

import (
	"minisnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Canvas must only be used between rl.BeginDrawing and rl.EndDrawing.
type Canvas struct{}

func New() *Canvas {
	return &Canvas{}
}

func (c *Canvas) Size() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

func (c *Canvas) Clear(col ui.Color) {
	rl.ClearBackground(toRL(col))
}

func (c *Canvas) Line(x1, y1, x2, y2, thickness float32, col ui.Color) {
	rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, thickness, toRL(col))
}

func (c *Canvas) FillRect(x, y, w, h float32, col ui.Color) {
	rl.DrawRectangleV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: w, Y: h}, toRL(col))
}

func (c *Canvas) Text(s string, x, y, size float32, col ui.Color) {
	rl.DrawText(s, int32(x), int32(y), int32(size), toRL(col))
}

func toRL(c ui.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
