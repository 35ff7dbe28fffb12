package manager

import (
	"minisnake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single fruit on the board.
type FoodManager struct {
	grid  types.Grid
	rng   *rand.Rand
	fruit types.Point
}

func NewFoodManager(grid types.Grid, src rand.Source) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(src),
	}
}

// Spawn resamples the fruit uniformly over the whole grid. Cells under the
// snake are not excluded.
func (fm *FoodManager) Spawn() types.Point {
	fm.fruit = types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
	return fm.fruit
}

// Place puts the fruit on a specific cell.
func (fm *FoodManager) Place(p types.Point) {
	fm.fruit = p
}

func (fm *FoodManager) Fruit() types.Point {
	return fm.fruit
}

// IsFoodCollision checks if a position is the fruit cell
func (fm *FoodManager) IsFoodCollision(pos types.Point) bool {
	return pos == fm.fruit
}
