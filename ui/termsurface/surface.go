package termsurface

import (
	"image/color"

	"snake-canvas/ui"

	"github.com/gdamore/tcell/v2"
)

// Surface projects the pixel canvas onto terminal cells. One grid cell
// becomes two columns and one row so the board keeps a square look.
type Surface struct {
	screen        tcell.Screen
	width, height int
	colW, rowH    int
	bg            []tcell.Color
}

// NewSurface maps a width x height pixel canvas drawn with cellSize pixel
// grid cells onto screen, anchored at the top-left corner.
func NewSurface(screen tcell.Screen, width, height, cellSize int) *Surface {
	s := &Surface{
		screen: screen,
		width:  width,
		height: height,
		colW:   max(cellSize/2, 1),
		rowH:   max(cellSize, 1),
	}
	cols, rows := s.Cells()
	s.bg = make([]tcell.Color, cols*rows)
	return s
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Cells returns the terminal footprint of the canvas
func (s *Surface) Cells() (cols, rows int) {
	return s.width / s.colW, s.height / s.rowH
}

func (s *Surface) ClearRect(x, y, w, h int, c color.RGBA) {
	s.FillRect(x, y, w, h, c)
}

func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	cols, rows := s.Cells()
	col0, row0 := max(x/s.colW, 0), max(y/s.rowH, 0)
	col1, row1 := min((x+w-1)/s.colW, cols-1), min((y+h-1)/s.rowH, rows-1)

	fill := toColor(c)
	style := tcell.StyleDefault.Background(fill)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
			s.bg[row*cols+col] = fill
		}
	}
}

// Text writes s on the row containing y. Size is ignored; a terminal has
// one font size. Each character keeps the background already under it.
func (s *Surface) Text(str string, x, y, _ int, align ui.Align, c color.RGBA) {
	cols, rows := s.Cells()
	row := y / s.rowH
	if row < 0 || row >= rows {
		return
	}
	runes := []rune(str)
	col := x / s.colW
	switch align {
	case ui.AlignCenter:
		col -= len(runes) / 2
	case ui.AlignRight:
		col -= len(runes)
	}

	fg := toColor(c)
	for i, r := range runes {
		cx := col + i
		if cx < 0 || cx >= cols {
			continue
		}
		style := tcell.StyleDefault.Foreground(fg).Background(s.bg[row*cols+cx])
		s.screen.SetContent(cx, row, r, nil, style)
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
