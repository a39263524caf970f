package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"ravodash/cluster/fonts/font6x8"
	"ravodash/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var _ drivers.Displayer = fbDisplay{}

// drawFault paints a panic report straight onto the framebuffer. It stays
// up until the next frame that renders cleanly.
func drawFault(fb hal.Framebuffer, value any, stack []byte) {
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	lines := []string{
		"Cluster fault:",
		fmt.Sprintf("panic: %v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	writeLines(fbDisplay{fb: fb}, fb.Width(), fb.Height(), lines, color.RGBA{A: 255})
	_ = fb.Present()
}

// bootScreen shows msg under the product name until the first frame.
func bootScreen(fb hal.Framebuffer, msg string) {
	if fb == nil {
		return
	}
	fb.ClearRGB(0, 0, 0)
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	writeLines(fbDisplay{fb: fb}, fb.Width(), fb.Height(), []string{"ravodash", msg}, fg)
	_ = fb.Present()
}

// writeLines wraps lines at the screen width and stops at the bottom edge.
func writeLines(d fbDisplay, w, h int, lines []string, fg color.RGBA) {
	cols := int16(w / font6x8.Width)
	if cols <= 0 {
		cols = 1
	}
	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y)+font6x8.Height > h {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font6x8.Font, 0, y+font6x8.Height-1, chunk, fg)
			y += font6x8.Height
			line = strings.TrimLeft(rest, " ")
		}
	}
}

// fbDisplay draws tinyfont glyphs into an RGB565 framebuffer.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	hal.PutRGB565(buf, iy*d.fb.StrideBytes()+ix*2, hal.RGB565(c.R, c.G, c.B))
}

func (d fbDisplay) Display() error { return nil }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
