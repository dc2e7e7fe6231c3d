package termsurface

import (
	"context"
	"time"

	"snake-canvas/engine"
	"snake-canvas/game"
	"snake-canvas/input"
	"snake-canvas/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const queueLimit = 16

// App adapts a world to engine.Frame on a tcell screen
type App struct {
	screen   tcell.Screen
	surface  *Surface
	world    *game.World
	renderer *ui.Renderer
	source   input.Source
}

func NewApp(screen tcell.Screen, world *game.World, renderer *ui.Renderer, source input.Source) *App {
	w, h := renderer.CanvasSize(world.Grid)
	return &App{
		screen:   screen,
		surface:  NewSurface(screen, w, h, renderer.CellSize()),
		world:    world,
		renderer: renderer,
		source:   source,
	}
}

func (a *App) Input() bool {
	for _, in := range a.source.Poll() {
		if in == input.Quit {
			glog.V(1).Info("terminal: quit requested")
			return false
		}
		a.world.Apply(in)
	}
	return true
}

func (a *App) Update() {
	a.world.Tick()
}

func (a *App) Render() {
	a.renderer.Draw(a.surface, a.world)
	a.screen.Show()
}

// Run plays world in the terminal at fps ticks per second until the player
// quits or ctx is cancelled.
func Run(ctx context.Context, world *game.World, renderer *ui.Renderer, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal screen")
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	queue := input.NewQueue(queueLimit)
	go pump(screen, queue)

	app := NewApp(screen, world, renderer, queue)
	cols, rows := app.surface.Cells()
	if w, h := screen.Size(); w < cols || h < rows {
		glog.Warningf("terminal: %dx%d is smaller than the %dx%d board", w, h, cols, rows)
	}

	interval := time.Second / time.Duration(max(fps, 1))
	err = engine.Run(ctx, interval, app)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
