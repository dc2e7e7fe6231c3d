package entity

import "snake-canvas/game/types"

// DirectionState holds the heading in effect and the one queued for the
// next tick
type DirectionState struct {
	Current types.Direction
	Next    types.Direction
}

// QueueDirection queues d unless it would reverse the current heading.
// The last accepted value before AdvanceDirection wins.
func QueueDirection(ds *DirectionState, d types.Direction) bool {
	if d == ds.Current.Inverse() {
		return false
	}
	ds.Next = d
	return true
}

// AdvanceDirection makes the queued heading current. Called once per tick
// before the snake moves.
func AdvanceDirection(ds *DirectionState) {
	ds.Current = ds.Next
}
