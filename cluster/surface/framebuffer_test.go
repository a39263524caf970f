package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravodash/hal"
)

type memFramebuffer struct {
	w, h     int
	format   hal.PixelFormat
	buf      []byte
	presents int
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, format: hal.PixelFormatRGB565, buf: make([]byte, w*h*2)}
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return f.format }
func (f *memFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }
func (f *memFramebuffer) ClearRGB(r, g, b uint8)  {}
func (f *memFramebuffer) Present() error          { f.presents++; return nil }

func (f *memFramebuffer) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func TestFramebufferSinkScalesGray(t *testing.T) {
	fb := newMemFramebuffer(6, 4)
	sink := NewFramebufferSink(fb, 2)

	c := NewCanvas(2, 2, sink)
	c.Begin(Black)
	c.Dot(1, 0, White)
	c.Dot(0, 1, Dark)
	require.NoError(t, c.End())
	assert.Equal(t, 1, fb.presents)

	g := Gray(Dark)
	dark := hal.RGB565(g, g, g)

	assert.Equal(t, uint16(0), fb.pixel(0, 0))
	assert.Equal(t, uint16(0xffff), fb.pixel(2, 0))
	assert.Equal(t, uint16(0xffff), fb.pixel(3, 1))
	assert.Equal(t, dark, fb.pixel(1, 3))

	// columns past the scaled canvas are left alone
	assert.Equal(t, uint16(0), fb.pixel(4, 0))
	assert.Equal(t, uint16(0), fb.pixel(5, 3))
}

func TestFramebufferSinkRejectsUnknownFormat(t *testing.T) {
	fb := newMemFramebuffer(2, 2)
	fb.format = hal.PixelFormat(99)
	sink := NewFramebufferSink(fb, 1)

	err := sink.Present(NewCanvas(2, 2, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, hal.ErrNotImplemented)
	assert.Zero(t, fb.presents)
}
