package manager

import (
	"snake-canvas/game/entity"
	"snake-canvas/game/types"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

// MaxSpawnAttempts bounds random sampling before falling back to a scan of
// free cells
const MaxSpawnAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// Relocate moves the food to a random free cell. It returns false, leaving
// the food unplaced, when no free cell exists.
func (fm *FoodManager) Relocate(food *entity.Food, snake *entity.Snake) bool {
	for i := 0; i < MaxSpawnAttempts; i++ {
		pos := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(pos, snake, food) {
			fm.place(food, pos)
			return true
		}
	}

	free := fm.freeCells(food, snake)
	glog.V(2).Infof("food: sampling exhausted, %d free cells", len(free))
	if len(free) == 0 {
		food.Placed = false
		return false
	}
	fm.place(food, free[fm.rng.Intn(len(free))])
	return true
}

func (fm *FoodManager) place(food *entity.Food, pos types.Point) {
	food.Pos = pos
	food.Placed = true
	glog.V(2).Infof("food: placed at %v", pos)
}

func (fm *FoodManager) freeCells(food *entity.Food, snake *entity.Snake) []types.Point {
	free := make([]types.Point, 0, fm.grid.Cells())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			pos := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(pos, snake, food) {
				free = append(free, pos)
			}
		}
	}
	return free
}
