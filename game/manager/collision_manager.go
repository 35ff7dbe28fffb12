package manager

import (
	"fmt"
	"minisnake/game/entity"
	"minisnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// MarshalText lets recorded events carry the cause by name.
func (c CollisionType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses the names produced by MarshalText.
func (c *CollisionType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "wall":
		*c = WallCollision
	case "self":
		*c = SelfCollision
	case "none":
		*c = NoCollision
	default:
		return fmt.Errorf("manager: unknown collision type %q", b)
	}
	return nil
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies the head position after a move. The wall check runs first;
// any collision at all ends the session.
func (cm *CollisionManager) Check(head types.Point, body *entity.Body) CollisionType {
	if cm.isWallCollision(head) {
		return WallCollision
	}
	if cm.isSelfCollision(head, body) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision scans the whole body, neck included
func (cm *CollisionManager) isSelfCollision(pos types.Point, body *entity.Body) bool {
	return body.Contains(pos)
}
