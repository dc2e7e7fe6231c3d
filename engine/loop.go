package engine

import (
	"context"
	"time"
)

// Frame is one pass of the loop: Input drains pending intents and reports
// false once the player asked to quit, Update advances the game one tick,
// Render projects it to the screen.
type Frame interface {
	Input() bool
	Update()
	Render()
}

// Run drives f at a fixed interval until ctx is cancelled or Input returns
// false. Every tick performs exactly one Input, Update and Render in that
// order. The first frame is rendered immediately.
func Run(ctx context.Context, interval time.Duration, f Frame) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	f.Render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if !f.Input() {
			return nil
		}
		f.Update()
		f.Render()
	}
}
