package manager

import (
	"golang.org/x/exp/rand"

	"ring-snake/game/entity"
	"ring-snake/game/types"
)

type FoodManager struct {
	grid         types.Grid
	food         types.Point
	placed       bool
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Respawn moves the food to a random cell the snake does not cover. It
// keeps re-rolling until it finds one, which gets slower as the snake
// fills the grid. When the snake already covers every cell there is
// nowhere to go: the food is removed and Respawn returns false.
func (fm *FoodManager) Respawn(snake *entity.Snake) bool {
	if snake.Full() {
		fm.placed = false
		return false
	}
	fm.food = fm.GenerateFood(snake)
	fm.placed = true
	return true
}

func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if !fm.collisionMgr.FoodCollidesWithSnake(food, snake) {
			return food
		}
	}
}

// Food returns the current food cell and whether one is placed.
func (fm *FoodManager) Food() (types.Point, bool) {
	return fm.food, fm.placed
}

// Place puts the food on p without any checks.
func (fm *FoodManager) Place(p types.Point) {
	fm.food = p
	fm.placed = true
}
