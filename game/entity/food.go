package entity

import "snake-canvas/game/types"

// Food is the single pickup on the field
type Food struct {
	Pos    types.Point
	Value  int
	Placed bool
}

func NewFood() *Food {
	return &Food{Value: types.FoodValue}
}

// At reports whether the food sits on p
func (f *Food) At(p types.Point) bool {
	return f.Placed && f.Pos == p
}
