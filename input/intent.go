package input

import "snake-canvas/game/types"

// Intent is a decoded key press, independent of the device that produced it
type Intent uint8

const (
	None Intent = iota
	TurnLeft
	TurnUp
	TurnRight
	TurnDown
	Toggle // Space
	Quit   // Esc, Q, Ctrl+C
)

// Direction maps a turn intent to its heading
func (i Intent) Direction() (types.Direction, bool) {
	switch i {
	case TurnLeft:
		return types.Left, true
	case TurnUp:
		return types.Up, true
	case TurnRight:
		return types.Right, true
	case TurnDown:
		return types.Down, true
	default:
		return 0, false
	}
}

func (i Intent) String() string {
	switch i {
	case TurnLeft:
		return "turn-left"
	case TurnUp:
		return "turn-up"
	case TurnRight:
		return "turn-right"
	case TurnDown:
		return "turn-down"
	case Toggle:
		return "toggle"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}
