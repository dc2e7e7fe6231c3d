package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-canvas/game"
	"snake-canvas/game/types"
	"snake-canvas/storage"
	"snake-canvas/ui"
	"snake-canvas/ui/raysurface"
	"snake-canvas/ui/termsurface"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

type config struct {
	frontend string
	fps      int
	width    int
	height   int
	cell     int
	record   string
	seed     uint64
}

func parseFlags() config {
	var c config
	flag.StringVar(&c.frontend, "frontend", "raylib", "Frontend to play in: raylib or terminal")
	flag.IntVar(&c.fps, "fps", types.DefaultFPS, "Game speed in ticks per second")
	flag.IntVar(&c.width, "width", types.DefaultGrid.Width, "Board width in cells")
	flag.IntVar(&c.height, "height", types.DefaultGrid.Height, "Board height in cells")
	flag.IntVar(&c.cell, "cell", ui.DefaultCellSize, "Cell size in pixels")
	flag.StringVar(&c.record, "record", "data/record.json", "File the best score is kept in")
	flag.Uint64Var(&c.seed, "seed", 0, "Food placement seed (0 picks one from the clock)")
	flag.Parse()

	if c.seed == 0 {
		c.seed = uint64(time.Now().UnixNano())
	}
	return c
}

func run(ctx context.Context, c config) error {
	grid, err := types.NewGrid(c.width, c.height)
	if err != nil {
		return err
	}

	fileStore, err := storage.OpenFileStore(c.record)
	if err != nil {
		return errors.Wrap(err, "open record store")
	}
	world := game.NewWorld(grid, storage.NewRecordStore(fileStore), c.seed)
	renderer := ui.NewRenderer(c.cell)
	glog.Infof("snake: %s frontend, %dx%d board, %d fps, seed %d", c.frontend, grid.Width, grid.Height, c.fps, c.seed)

	switch c.frontend {
	case "raylib":
		err = raysurface.Run(ctx, world, renderer, c.fps)
	case "terminal":
		err = termsurface.Run(ctx, world, renderer, c.fps)
	default:
		return errors.Errorf("unknown frontend %q", c.frontend)
	}

	s := world.Summary()
	glog.Infof("snake: %d rounds, avg score %.1f, median %.1f, best %d, record %d",
		s.Rounds, s.AverageScore, s.MedianScore, s.MaxScore, world.Record())
	return err
}

func main() {
	c := parseFlags()
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, c); err != nil {
		glog.Exitf("snake: %v", err)
	}
}
