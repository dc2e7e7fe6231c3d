package manager

import (
	"snake-canvas/game/entity"
	"snake-canvas/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// SelfCollision checks if the snake's head overlaps its own body
func (cm *CollisionManager) SelfCollision(snake *entity.Snake) bool {
	return snake.Collides()
}

// IsFoodCollision checks if a position collides with placed food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food.At(pos)
}

// ValidateSpawnPosition checks if a position is valid for placing food.
// The snake and the food's current position are both excluded.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, food *entity.Food) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	if snake.Occupies(pos) {
		return false
	}
	return !food.At(pos)
}
