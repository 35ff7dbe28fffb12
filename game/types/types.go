package types

// Point is a grid cell, or a unit step when used as a direction.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Opposite returns the reverse step.
func (p Point) Opposite() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Directions
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Game constants
const (
	GridSize        = 16   // Cells per side of the square playfield
	InitialInterval = 0.1  // Seconds between simulation steps at session start
	IntervalDecay   = 0.95 // Interval multiplier applied per fruit eaten
)

// SpawnPoint sits one row above the visible grid; the first step brings the head to (0,0).
var SpawnPoint = Point{X: 0, Y: -1}

// DefaultGrid is the square playfield every session runs on.
func DefaultGrid() Grid {
	return Grid{Width: GridSize, Height: GridSize}
}
