// Package surface is the pixel surface the cluster renders onto.
//
// A Surface is drawn one dot or rectangle at a time inside a Begin/End frame
// bracket. Colors are palette indices on a 64-level gray ramp; the renderer
// only ever uses Black, Dark and White.
package surface

// Color is a palette index in [0, Levels).
type Color uint8

// Levels is the size of the gray ramp.
const Levels = 64

const (
	Black Color = 0
	Dark  Color = 20
	White Color = 63
)

// Glyph metrics of the monospace text the surface prints.
const (
	GlyphWidth  = 6
	GlyphHeight = 8
)

// Surface is the framebuffer collaborator.
//
// Implementations must clip out-of-bounds coordinates. SetCursor positions
// the top-left corner of the next printed glyph.
type Surface interface {
	Begin(bg Color)
	End() error
	Dot(x, y int, c Color)
	FillRect(x, y, w, h int, c Color)
	SetCursor(x, y int)
	SetTextColor(c Color)
	Print(text string)
	Size() (xres, yres int)
}

// Gray returns the 8-bit luminance of a palette index.
func Gray(c Color) uint8 {
	if c >= Levels {
		c = Levels - 1
	}
	return uint8(int(c) * 255 / (Levels - 1))
}

// TextWidth is the rendered width of s in pixels.
func TextWidth(s string) int {
	return len(s) * GlyphWidth
}
