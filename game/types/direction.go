package types

// Direction is a cardinal heading on the grid
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Inverse returns the opposite heading
func (d Direction) Inverse() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Up:
		return "U"
	case Right:
		return "R"
	case Down:
		return "D"
	default:
		return "?"
	}
}
