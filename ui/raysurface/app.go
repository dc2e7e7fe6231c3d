package raysurface

import (
	"context"

	"snake-canvas/engine"
	"snake-canvas/game"
	"snake-canvas/input"
	"snake-canvas/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	windowTitle = "Snake"
	displayFPS  = 60
)

// advance applies the intents polled this frame, then runs the ticks the
// scheduler reports as due. It returns false once the player quits.
func advance(world *game.World, source input.Source, sched *engine.Scheduler) bool {
	for _, in := range source.Poll() {
		if in == input.Quit {
			return false
		}
		world.Apply(in)
	}
	for n := sched.Due(); n > 0; n-- {
		world.Tick()
	}
	return true
}

// Run opens a window sized to the board and plays world at fps ticks per
// second. It must be called from the main goroutine; raylib pins it to the
// main OS thread. The window repaints every display frame.
func Run(ctx context.Context, world *game.World, renderer *ui.Renderer, fps int) error {
	width, height := renderer.CanvasSize(world.Grid)

	rl.InitWindow(int32(width), int32(height), windowTitle)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return errors.New("raylib: window failed to open")
	}
	// Esc is decoded as Quit like the other keys
	rl.SetExitKey(0)
	rl.SetTargetFPS(displayFPS)

	surface := NewSurface(width, height)
	source := keySource{next: rl.GetKeyPressed}
	sched := engine.NewScheduler(engine.SystemClock{}, fps)
	glog.V(1).Infof("raylib: %dx%d window, tick every %v", width, height, sched.Interval())

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		if !advance(world, source, sched) {
			glog.V(1).Info("raylib: quit requested")
			return nil
		}
		rl.BeginDrawing()
		renderer.Draw(surface, world)
		rl.EndDrawing()
	}
	return nil
}
