package surface

import (
	"image/color"

	"ravodash/cluster/fonts/font6x8"

	"tinygo.org/x/tinyfont"
)

// Sink receives a finished frame at End.
type Sink interface {
	Present(c *Canvas) error
}

// TextOp records one Print call.
type TextOp struct {
	X, Y  int
	Text  string
	Color Color
}

// Canvas is an in-memory palette-indexed Surface.
//
// Text is rendered with tinyfont using the 6x8 system font. Every Print is
// also recorded so callers can inspect what was written in the current
// frame.
type Canvas struct {
	w    int
	h    int
	pix  []Color
	sink Sink

	font    tinyfont.Fonter
	cursorX int
	cursorY int
	text    Color
	texts   []TextOp
}

// NewCanvas allocates a w x h canvas. sink may be nil.
func NewCanvas(w, h int, sink Sink) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{
		w:    w,
		h:    h,
		pix:  make([]Color, w*h),
		sink: sink,
		font: font6x8.Font,
		text: White,
	}
}

// SetSink replaces the frame sink.
func (c *Canvas) SetSink(s Sink) { c.sink = s }

func (c *Canvas) Size() (xres, yres int) { return c.w, c.h }

func (c *Canvas) Begin(bg Color) {
	for i := range c.pix {
		c.pix[i] = bg
	}
	c.texts = c.texts[:0]
	c.cursorX, c.cursorY = 0, 0
	c.text = White
}

func (c *Canvas) End() error {
	if c.sink == nil {
		return nil
	}
	return c.sink.Present(c)
}

func (c *Canvas) Dot(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.pix[y*c.w+x] = col
}

func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	x0 := clampInt(x, 0, c.w)
	y0 := clampInt(y, 0, c.h)
	x1 := clampInt(x+w, 0, c.w)
	y1 := clampInt(y+h, 0, c.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		row := c.pix[py*c.w : (py+1)*c.w]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
}

func (c *Canvas) SetCursor(x, y int) {
	c.cursorX, c.cursorY = x, y
}

func (c *Canvas) SetTextColor(col Color) { c.text = col }

func (c *Canvas) Print(s string) {
	if s == "" {
		return
	}
	c.texts = append(c.texts, TextOp{X: c.cursorX, Y: c.cursorY, Text: s, Color: c.text})
	if c.font != nil {
		l := textLayer{c: c, col: c.text}
		// tinyfont positions glyphs on their baseline.
		tinyfont.WriteLine(l, c.font, int16(c.cursorX), int16(c.cursorY+GlyphHeight-1), s, color.RGBA{A: 0xff})
	}
	c.cursorX += TextWidth(s)
}

// At returns the palette index at (x, y), or Black outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return Black
	}
	return c.pix[y*c.w+x]
}

// Pixels returns a copy of the raster in row-major order.
func (c *Canvas) Pixels() []Color {
	out := make([]Color, len(c.pix))
	copy(out, c.pix)
	return out
}

// Texts returns the Print calls made since the last Begin.
func (c *Canvas) Texts() []TextOp {
	return append([]TextOp(nil), c.texts...)
}

// textLayer adapts the canvas to drivers.Displayer for glyph drawing with a
// fixed palette color.
type textLayer struct {
	c   *Canvas
	col Color
}

func (l textLayer) Size() (x, y int16) { return int16(l.c.w), int16(l.c.h) }

func (l textLayer) SetPixel(x, y int16, _ color.RGBA) {
	l.c.Dot(int(x), int(y), l.col)
}

func (l textLayer) Display() error { return nil }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
