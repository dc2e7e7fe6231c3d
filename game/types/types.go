package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// Point is a cell on the grid
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions. Moving past an edge wraps to the
// opposite edge.
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	MinGridSize = 3  // Smallest usable width or height
	FoodValue   = 10 // Points per food
	DefaultFPS  = 7  // Ticks per second
)

// DefaultGrid is the classic 16x14 field
var DefaultGrid = Grid{Width: 16, Height: 14}

// ErrGridTooSmall is returned by NewGrid for fields under MinGridSize
var ErrGridTooSmall = errors.New("grid too small")

// NewGrid validates the dimensions and returns the grid
func NewGrid(width, height int) (Grid, error) {
	if width < MinGridSize || height < MinGridSize {
		return Grid{}, errors.Wrapf(ErrGridTooSmall, "%dx%d (minimum %dx%d)", width, height, MinGridSize, MinGridSize)
	}
	return Grid{Width: width, Height: height}, nil
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Step returns the neighbour of p in direction d, wrapping at the edges
func (g Grid) Step(p Point, d Direction) Point {
	switch d {
	case Right:
		p.X = WrapIncrement(p.X, g.Width)
	case Left:
		p.X = WrapDecrement(p.X, g.Width)
	case Up:
		p.Y = WrapDecrement(p.Y, g.Height)
	case Down:
		p.Y = WrapIncrement(p.Y, g.Height)
	}
	return p
}

// WrapIncrement returns value+1, or 0 past the last index of an axis of the given length
func WrapIncrement(value, length int) int {
	if value < length-1 {
		return value + 1
	}
	return 0
}

// WrapDecrement returns value-1, or the last index of the axis below 0
func WrapDecrement(value, length int) int {
	if value > 0 {
		return value - 1
	}
	return length - 1
}
