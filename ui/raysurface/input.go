package raysurface

import (
	"snake-canvas/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func decodeKey(key int32) input.Intent {
	switch key {
	case rl.KeyLeft, rl.KeyA:
		return input.TurnLeft
	case rl.KeyUp, rl.KeyW:
		return input.TurnUp
	case rl.KeyRight, rl.KeyD:
		return input.TurnRight
	case rl.KeyDown, rl.KeyS:
		return input.TurnDown
	case rl.KeySpace:
		return input.Toggle
	case rl.KeyEscape, rl.KeyQ:
		return input.Quit
	default:
		return input.None
	}
}

// keySource drains the keys pressed since the previous frame. next is
// rl.GetKeyPressed outside of tests; it returns 0 once the queue is empty.
type keySource struct {
	next func() int32
}

func (k keySource) Poll() []input.Intent {
	var out []input.Intent
	for key := k.next(); key != 0; key = k.next() {
		if in := decodeKey(key); in != input.None {
			out = append(out, in)
		}
	}
	return out
}
