package entity

import (
	"testing"

	"snake-canvas/game/types"
)

func TestQueueDirectionRejectsReverse(t *testing.T) {
	for _, d := range []types.Direction{types.Left, types.Up, types.Right, types.Down} {
		ds := DirectionState{Current: d, Next: d}
		if QueueDirection(&ds, d.Inverse()) {
			t.Errorf("Expected reverse of %v to be rejected", d)
		}
		if ds.Next != d {
			t.Errorf("Expected Next to stay %v, got %v", d, ds.Next)
		}
	}
}

func TestQueueDirectionLastValueWins(t *testing.T) {
	ds := DirectionState{Current: types.Right, Next: types.Right}
	QueueDirection(&ds, types.Up)
	QueueDirection(&ds, types.Down)
	AdvanceDirection(&ds)

	if ds.Current != types.Down {
		t.Errorf("Expected Down, got %v", ds.Current)
	}
}

func TestQueueUpThenLeftKeepsUp(t *testing.T) {
	// Left is the inverse of Right, so only Up survives
	ds := DirectionState{Current: types.Right, Next: types.Right}
	QueueDirection(&ds, types.Up)
	QueueDirection(&ds, types.Left)
	AdvanceDirection(&ds)

	if ds.Current != types.Up {
		t.Errorf("Expected Up, got %v", ds.Current)
	}
}

func TestQueueUpThenLeftFromDown(t *testing.T) {
	ds := DirectionState{Current: types.Down, Next: types.Down}
	QueueDirection(&ds, types.Up)
	QueueDirection(&ds, types.Left)
	AdvanceDirection(&ds)

	if ds.Current != types.Left {
		t.Errorf("Expected Left, got %v", ds.Current)
	}
}
