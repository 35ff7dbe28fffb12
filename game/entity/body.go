package entity

import (
	"minisnake/game/types"

	"github.com/gammazero/deque"
)

// Body is the snake's trailing segments, ordered from neck to tail.
type Body struct {
	q *deque.Deque[types.Point]
}

// NewBody returns an empty body with room for capacity segments.
func NewBody(capacity int) *Body {
	if capacity < 1 {
		capacity = 1
	}
	return &Body{q: deque.New[types.Point](capacity)}
}

func (b *Body) Len() int {
	return b.q.Len()
}

// At returns the i-th segment counting from the neck. It panics when i is
// out of range.
func (b *Body) At(i int) types.Point {
	return b.q.At(i)
}

// PushFront inserts p as the new neck segment.
func (b *Body) PushFront(p types.Point) {
	b.q.PushFront(p)
}

// PopBack removes the tail segment. It reports false on an empty body.
func (b *Body) PopBack() (types.Point, bool) {
	if b.q.Len() == 0 {
		return types.Point{}, false
	}
	return b.q.PopBack(), true
}

// Contains scans every segment for p.
func (b *Body) Contains(p types.Point) bool {
	for i := 0; i < b.q.Len(); i++ {
		if b.q.At(i) == p {
			return true
		}
	}
	return false
}

// Segments copies the body into a new slice, neck first.
func (b *Body) Segments() []types.Point {
	out := make([]types.Point, b.q.Len())
	for i := range out {
		out[i] = b.q.At(i)
	}
	return out
}
