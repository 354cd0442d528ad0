package manager

import (
	"ring-snake/game/entity"
	"ring-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// WouldBeOutOfBounds reports whether one step from the head in the
// snake's current direction leaves the grid.
func (cm *CollisionManager) WouldBeOutOfBounds(snake *entity.Snake) bool {
	return !cm.grid.Contains(snake.GetHead().Add(snake.Direction))
}

// SnakeCollidesWithSnake reports whether the head sits on any other live
// segment.
func (cm *CollisionManager) SnakeCollidesWithSnake(snake *entity.Snake) bool {
	// A single segment has nothing to hit.
	if snake.Len() == 1 {
		return false
	}
	head := snake.GetHead()
	hit := false
	snake.EachBehindHead(func(p types.Point) bool {
		hit = p == head
		return !hit
	})
	return hit
}

// FoodCollidesWithSnake reports whether food sits on any live segment,
// head included.
func (cm *CollisionManager) FoodCollidesWithSnake(food types.Point, snake *entity.Snake) bool {
	hit := false
	snake.Each(func(p types.Point) bool {
		hit = p == food
		return !hit
	})
	return hit
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
