package game

import (
	"snake-canvas/game/entity"
	"snake-canvas/game/manager"
	"snake-canvas/game/types"
	"snake-canvas/input"

	"github.com/golang/glog"
)

// World aggregates everything a session mutates. It is owned by a single
// loop goroutine; intents and ticks must be applied from that goroutine.
type World struct {
	Grid types.Grid

	snake *entity.Snake
	food  *entity.Food
	steps int

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	statsMgr     *manager.StatsManager
}

// NewWorld creates a world in the menu state. seed drives food placement.
func NewWorld(grid types.Grid, store manager.RecordStore, seed uint64) *World {
	collisionMgr := manager.NewCollisionManager(grid)
	return &World{
		Grid:         grid,
		snake:        entity.NewSnake(grid),
		food:         entity.NewFood(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, seed),
		stateMgr:     manager.NewStateManager(store),
		statsMgr:     manager.NewStatsManager(),
	}
}

// Apply handles one decoded intent. Turns are only accepted while playing
// and take effect on the next tick. Quit is left to the driver.
func (w *World) Apply(in input.Intent) {
	switch in {
	case input.Toggle:
		w.toggle()
	case input.TurnLeft, input.TurnUp, input.TurnRight, input.TurnDown:
		if !w.stateMgr.Playing() {
			return
		}
		d, _ := in.Direction()
		if !entity.QueueDirection(&w.snake.Dir, d) {
			glog.V(2).Infof("world: ignored reverse turn %v", d)
		}
	}
}

func (w *World) toggle() {
	if !w.stateMgr.Toggle() {
		return
	}
	w.steps = 0
	w.snake.Reset(w.Grid)
	if !w.foodMgr.Relocate(w.food, w.snake) {
		w.endRound("no room for food")
	}
}

func (w *World) endRound(reason string) {
	if !w.stateMgr.Playing() {
		return
	}
	w.stateMgr.EndRound(reason)
	w.statsMgr.AddRound(manager.RoundRecord{
		Score:  w.stateMgr.Score(),
		Steps:  w.steps,
		Length: len(w.snake.Cells()),
	})
}

// Tick advances the simulation by one step. It is a no-op unless playing.
func (w *World) Tick() {
	if !w.stateMgr.Playing() {
		return
	}
	w.steps++

	entity.AdvanceDirection(&w.snake.Dir)
	w.snake.Move(w.Grid)

	if w.collisionMgr.SelfCollision(w.snake) {
		w.endRound("self collision")
		return
	}

	if w.collisionMgr.IsFoodCollision(w.snake.Head, w.food) {
		w.snake.Grow()
		w.stateMgr.AddScore(w.food.Value)
		glog.V(1).Infof("world: ate food at %v, score %d", w.snake.Head, w.stateMgr.Score())
		if !w.foodMgr.Relocate(w.food, w.snake) {
			w.endRound("board full")
		}
	}
}

func (w *World) State() manager.State {
	return w.stateMgr.State()
}

func (w *World) Score() int {
	return w.stateMgr.Score()
}

func (w *World) Record() int {
	return w.stateMgr.Record()
}

// Steps counts ticks in the current round
func (w *World) Steps() int {
	return w.steps
}

// Snake exposes the snake for rendering; callers must not mutate it
func (w *World) Snake() *entity.Snake {
	return w.snake
}

// Food exposes the food for rendering; callers must not mutate it
func (w *World) Food() *entity.Food {
	return w.food
}

// Summary aggregates the rounds finished so far
func (w *World) Summary() manager.SessionStats {
	return w.statsMgr.Summary()
}
