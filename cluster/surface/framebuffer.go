package surface

import (
	"fmt"

	"ravodash/hal"
)

// FramebufferSink presents canvases to a hal.Framebuffer.
//
// The canvas is scaled by an integer factor and anchored at the top-left;
// anything that does not fit is clipped.
type FramebufferSink struct {
	fb    hal.Framebuffer
	scale int
	lut   [Levels]uint16
}

// NewFramebufferSink returns a sink for fb. scale < 1 is treated as 1.
func NewFramebufferSink(fb hal.Framebuffer, scale int) *FramebufferSink {
	if scale < 1 {
		scale = 1
	}
	s := &FramebufferSink{fb: fb, scale: scale}
	for i := 0; i < Levels; i++ {
		g := Gray(Color(i))
		s.lut[i] = hal.RGB565(g, g, g)
	}
	return s
}

func (s *FramebufferSink) Present(c *Canvas) error {
	if s == nil || s.fb == nil || c == nil {
		return nil
	}
	if s.fb.Format() != hal.PixelFormatRGB565 {
		return fmt.Errorf("present: pixel format %d: %w", s.fb.Format(), hal.ErrNotImplemented)
	}
	buf := s.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := s.fb.Width()
	h := s.fb.Height()
	stride := s.fb.StrideBytes()
	cw, ch := c.Size()
	for py := 0; py < h; py++ {
		sy := py / s.scale
		if sy >= ch {
			break
		}
		row := py * stride
		for px := 0; px < w; px++ {
			sx := px / s.scale
			if sx >= cw {
				break
			}
			hal.PutRGB565(buf, row+px*2, s.lut[c.pix[sy*cw+sx]%Levels])
		}
	}
	return s.fb.Present()
}
