package entity

import "minisnake/game/types"

const initialBodyCapacity = 16

type Snake struct {
	Head      types.Point
	Direction types.Point
	Body      *Body
}

// NewSnake places a bodiless snake at startPos heading in dir.
func NewSnake(startPos, dir types.Point) *Snake {
	return &Snake{
		Head:      startPos,
		Direction: dir,
		Body:      NewBody(initialBodyCapacity),
	}
}

// SetDirection turns the snake unless dir would reverse it onto its neck.
// It reports whether the direction was accepted.
func (s *Snake) SetDirection(dir types.Point) bool {
	if dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// NextHead is the cell the head moves into on the next step.
func (s *Snake) NextHead() types.Point {
	return s.Head.Add(s.Direction)
}

// Move advances the head one cell and keeps the old head as the new neck.
// When grow is false the tail is dropped so the length stays the same.
func (s *Snake) Move(grow bool) {
	s.Body.PushFront(s.Head)
	s.Head = s.NextHead()
	if !grow {
		s.Body.PopBack()
	}
}

// Length counts the head plus every body segment.
func (s *Snake) Length() int {
	return 1 + s.Body.Len()
}
