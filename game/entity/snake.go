package entity

import (
	"snake-canvas/game/types"
)

// StartCell is where the head spawns on grids large enough to hold it
var StartCell = types.Point{X: 5, Y: 5}

// Snake is a head plus a trail of body segments ordered oldest to newest.
// The head is not part of Body.
type Snake struct {
	Head types.Point
	Body []types.Point
	Dir  DirectionState
}

// NewSnake builds a snake in the start position for grid
func NewSnake(grid types.Grid) *Snake {
	s := &Snake{}
	s.Reset(grid)
	return s
}

// NewSnakeAt builds a snake with an explicit layout
func NewSnakeAt(head types.Point, body []types.Point, dir types.Direction) *Snake {
	return &Snake{
		Head: head,
		Body: append([]types.Point(nil), body...),
		Dir:  DirectionState{Current: dir, Next: dir},
	}
}

// Reset restores the start layout: head on StartCell (clamped to the grid),
// two segments trailing to its left, heading right.
func (s *Snake) Reset(grid types.Grid) {
	head := types.Point{
		X: min(StartCell.X, grid.Width-1),
		Y: min(StartCell.Y, grid.Height-1),
	}
	s.Head = head
	s.Body = append(s.Body[:0],
		types.Point{X: head.X - 2, Y: head.Y},
		types.Point{X: head.X - 1, Y: head.Y},
	)
	s.Dir = DirectionState{Current: types.Right, Next: types.Right}
}

// Move drops the oldest segment, appends the old head and steps the head in
// the current direction. Body length is unchanged.
func (s *Snake) Move(grid types.Grid) {
	if len(s.Body) > 0 {
		s.Body = append(s.Body[1:], s.Head)
	}
	s.Head = grid.Step(s.Head, s.Dir.Current)
}

// Grow inserts a copy of the head as the oldest segment. It survives the
// next Move, so the snake is one cell longer from then on.
func (s *Snake) Grow() {
	s.Body = append([]types.Point{s.Head}, s.Body...)
}

// Collides reports whether the head overlaps a body segment
func (s *Snake) Collides() bool {
	for _, p := range s.Body {
		if p == s.Head {
			return true
		}
	}
	return false
}

// Occupies reports whether p is the head or a body segment
func (s *Snake) Occupies(p types.Point) bool {
	return p == s.Head || s.inBody(p)
}

func (s *Snake) inBody(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Len returns the body length, head excluded
func (s *Snake) Len() int {
	return len(s.Body)
}

// Cells returns the body followed by the head
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, 0, len(s.Body)+1)
	cells = append(cells, s.Body...)
	return append(cells, s.Head)
}
