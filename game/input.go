package game

import "minisnake/game/types"

// Controls is the held state of the four direction keys for one frame.
type Controls struct {
	Up, Down, Left, Right bool
}

// ResolveDirection picks the new heading from c. Keys are tried in the order
// up, down, left, right; a key pointing straight back against current is
// skipped. With nothing usable held, current is kept.
func ResolveDirection(c Controls, current types.Point) types.Point {
	keys := [...]struct {
		held bool
		dir  types.Point
	}{
		{c.Up, types.Up},
		{c.Down, types.Down},
		{c.Left, types.Left},
		{c.Right, types.Right},
	}
	for _, k := range keys {
		if k.held && k.dir != current.Opposite() {
			return k.dir
		}
	}
	return current
}

// HandleInput applies this frame's controls. Ignored once the game is over.
func (g *Game) HandleInput(c Controls) {
	if g.gameOver {
		return
	}
	g.snake.SetDirection(ResolveDirection(c, g.snake.Direction))
}
