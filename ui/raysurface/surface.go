package raysurface

import (
	"image/color"

	"snake-canvas/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface draws straight into the current raylib frame. It must be used
// between rl.BeginDrawing and rl.EndDrawing on the window thread.
type Surface struct {
	width, height int
}

func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

func (s *Surface) ClearRect(x, y, w, h int, c color.RGBA) {
	if x == 0 && y == 0 && w >= s.width && h >= s.height {
		rl.ClearBackground(toColor(c))
		return
	}
	s.FillRect(x, y, w, h, c)
}

func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toColor(c))
}

func (s *Surface) Text(str string, x, y, size int, align ui.Align, c color.RGBA) {
	width := int(rl.MeasureText(str, int32(size)))
	rl.DrawText(str, int32(alignX(x, width, align)), int32(y), int32(size), toColor(c))
}

// alignX returns the left edge of a text run of the given width
func alignX(x, width int, align ui.Align) int {
	switch align {
	case ui.AlignCenter:
		return x - width/2
	case ui.AlignRight:
		return x - width
	default:
		return x
	}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
