package termsurface

import (
	"snake-canvas/input"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
)

// decodeKey maps a terminal key to an intent. Arrows and WASD steer,
// space toggles, Esc, q and Ctrl+C quit.
func decodeKey(key tcell.Key, r rune) input.Intent {
	switch key {
	case tcell.KeyLeft:
		return input.TurnLeft
	case tcell.KeyUp:
		return input.TurnUp
	case tcell.KeyRight:
		return input.TurnRight
	case tcell.KeyDown:
		return input.TurnDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return input.TurnLeft
		case 'w', 'W':
			return input.TurnUp
		case 'd', 'D':
			return input.TurnRight
		case 's', 'S':
			return input.TurnDown
		case ' ':
			return input.Toggle
		case 'q', 'Q':
			return input.Quit
		}
	}
	return input.None
}

// pump forwards decoded key presses from screen to q until the screen is
// finalized. It runs on its own goroutine and touches no game state.
func pump(screen tcell.Screen, q *input.Queue) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			glog.V(2).Info("terminal: event pump stopped")
			return
		case *tcell.EventKey:
			q.Push(decodeKey(ev.Key(), ev.Rune()))
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
