package raysurface

import (
	"testing"
	"time"

	"snake-canvas/engine"
	"snake-canvas/game"
	"snake-canvas/game/manager"
	"snake-canvas/game/types"
	"snake-canvas/input"
	"snake-canvas/storage"
	"snake-canvas/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func keys(ks ...int32) func() int32 {
	return func() int32 {
		if len(ks) == 0 {
			return 0
		}
		k := ks[0]
		ks = ks[1:]
		return k
	}
}

func TestKeySourceDrainsQueue(t *testing.T) {
	src := keySource{next: keys(rl.KeySpace, rl.KeyZ, rl.KeyUp, rl.KeyA, rl.KeyQ)}
	got := src.Poll()
	want := []input.Intent{input.Toggle, input.TurnUp, input.TurnLeft, input.Quit}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Intent %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if more := src.Poll(); len(more) != 0 {
		t.Errorf("Expected an empty poll, got %v", more)
	}
}

func TestDecodeKey(t *testing.T) {
	tests := map[int32]input.Intent{
		rl.KeyLeft:   input.TurnLeft,
		rl.KeyW:      input.TurnUp,
		rl.KeyD:      input.TurnRight,
		rl.KeyDown:   input.TurnDown,
		rl.KeySpace:  input.Toggle,
		rl.KeyEscape: input.Quit,
		rl.KeyEnter:  input.None,
	}
	for key, want := range tests {
		if got := decodeKey(key); got != want {
			t.Errorf("decodeKey(%d): expected %v, got %v", key, want, got)
		}
	}
}

func TestAlignX(t *testing.T) {
	if got := alignX(160, 40, ui.AlignCenter); got != 140 {
		t.Errorf("Expected 140, got %d", got)
	}
	if got := alignX(160, 40, ui.AlignRight); got != 120 {
		t.Errorf("Expected 120, got %d", got)
	}
	if got := alignX(20, 40, ui.AlignLeft); got != 20 {
		t.Errorf("Expected 20, got %d", got)
	}
}

type batch []input.Intent

func (b *batch) Poll() []input.Intent {
	out := *b
	*b = nil
	return out
}

func TestAdvanceRunsDueTicks(t *testing.T) {
	world := game.NewWorld(types.DefaultGrid, storage.NewRecordStore(storage.NewMemoryStore()), 4)
	clock := engine.NewMockClock(time.Unix(0, 0))
	sched := engine.NewScheduler(clock, 10)

	src := &batch{input.Toggle}
	if !advance(world, src, sched) {
		t.Fatal("Expected to keep running")
	}
	if world.State() != manager.StatePlaying || world.Steps() != 0 {
		t.Fatalf("Expected a fresh round, got %v after %d steps", world.State(), world.Steps())
	}

	// Two frames' worth of time between display frames
	clock.Advance(200 * time.Millisecond)
	advance(world, src, sched)
	if world.Steps() != 2 && world.State() == manager.StatePlaying {
		t.Errorf("Expected 2 steps, got %d", world.Steps())
	}

	*src = batch{input.Quit}
	if advance(world, src, sched) {
		t.Error("Expected quit to stop the loop")
	}
}
