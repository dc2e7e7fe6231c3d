package ui

import "image/color"

// Align controls horizontal text placement relative to x
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the drawing target. Coordinates are canvas pixels with the
// origin top-left; text is anchored at its top edge.
type Surface interface {
	ClearRect(x, y, w, h int, c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	Text(s string, x, y, size int, align Align, c color.RGBA)
	Size() (w, h int)
}

// Palette
var (
	ColorBackground = Hex(0x222222)
	ColorText       = Hex(0xFFFFFF)
	ColorBodyEven   = Hex(0xBBEF53)
	ColorBodyOdd    = Hex(0xA6E22E)
	ColorHead       = Hex(0x679A01)
	ColorFood       = Hex(0xFF2413)
)

// Hex converts 0xRRGGBB to an opaque color
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 255,
	}
}
