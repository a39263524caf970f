package surface

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSink struct {
	frames int
	err    error
}

func (s *countingSink) Present(*Canvas) error {
	s.frames++
	return s.err
}

func TestCanvasClipsDrawing(t *testing.T) {
	c := NewCanvas(8, 4, nil)
	c.Begin(Black)

	c.Dot(-1, 0, White)
	c.Dot(8, 0, White)
	c.Dot(0, 4, White)
	c.Dot(7, 3, White)

	for _, p := range c.Pixels()[:len(c.Pixels())-1] {
		assert.Equal(t, Black, p)
	}
	assert.Equal(t, White, c.At(7, 3))

	c.FillRect(-3, -3, 5, 5, Dark)
	assert.Equal(t, Dark, c.At(0, 0))
	assert.Equal(t, Dark, c.At(1, 1))
	assert.Equal(t, Black, c.At(2, 0))
	assert.Equal(t, Black, c.At(0, 2))

	c.FillRect(2, 2, 0, 5, White)
	c.FillRect(2, 2, 5, -1, White)
	assert.Equal(t, Black, c.At(2, 2))
}

func TestCanvasBeginResetsFrame(t *testing.T) {
	c := NewCanvas(4, 4, nil)
	c.Begin(Black)
	c.SetTextColor(Dark)
	c.SetCursor(3, 3)
	c.Print("x")
	require.Len(t, c.Texts(), 1)

	c.Begin(Dark)
	assert.Empty(t, c.Texts())
	for _, p := range c.Pixels() {
		assert.Equal(t, Dark, p)
	}

	c.Print("y")
	require.Len(t, c.Texts(), 1)
	assert.Equal(t, TextOp{X: 0, Y: 0, Text: "y", Color: White}, c.Texts()[0])
}

func TestCanvasPrintRendersGlyphsFromTopLeft(t *testing.T) {
	c := NewCanvas(40, 20, nil)
	c.Begin(Black)
	c.SetTextColor(White)
	c.SetCursor(10, 10)
	c.Print("L")

	// vertical stroke on column 0, rows 0-6, foot on row 6
	for row := 0; row < 7; row++ {
		assert.Equal(t, White, c.At(10, 10+row), "row %d", row)
	}
	for col := 0; col < 5; col++ {
		assert.Equal(t, White, c.At(10+col, 16), "col %d", col)
	}
	assert.Equal(t, Black, c.At(11, 10))
	assert.Equal(t, Black, c.At(15, 16))
	assert.Equal(t, Black, c.At(10, 17))

	c.Print("-")
	ops := c.Texts()
	require.Len(t, ops, 2)
	assert.Equal(t, 16, ops[1].X)
	assert.Equal(t, 10, ops[1].Y)
	assert.Equal(t, White, c.At(16, 13))
}

func TestCanvasEndPresentsToSink(t *testing.T) {
	c := NewCanvas(2, 2, nil)
	c.Begin(Black)
	require.NoError(t, c.End())

	sink := &countingSink{}
	c.SetSink(sink)
	require.NoError(t, c.End())
	assert.Equal(t, 1, sink.frames)

	sink.err = errors.New("bus fault")
	assert.EqualError(t, c.End(), "bus fault")
	assert.Equal(t, 2, sink.frames)
}

func TestHandleDetachedIsNoOp(t *testing.T) {
	var h Handle
	assert.False(t, h.Attached())
	assert.Nil(t, h.Surface())

	h.Begin(White)
	h.Dot(0, 0, White)
	h.FillRect(0, 0, 10, 10, White)
	h.SetCursor(1, 1)
	h.SetTextColor(Dark)
	h.Print("ignored")
	assert.NoError(t, h.End())

	x, y := h.Size()
	assert.Zero(t, x)
	assert.Zero(t, y)

	assert.False(t, Attach(nil).Attached())
	assert.Equal(t, Detached(), h)
}

func TestHandleForwardsWhenAttached(t *testing.T) {
	c := NewCanvas(3, 3, nil)
	h := Attach(c)
	require.True(t, h.Attached())

	h.Begin(Black)
	h.Dot(1, 1, White)
	h.FillRect(0, 2, 3, 1, Dark)

	x, y := h.Size()
	assert.Equal(t, 3, x)
	assert.Equal(t, 3, y)
	assert.Equal(t, White, c.At(1, 1))
	assert.Equal(t, Dark, c.At(2, 2))
}

func TestGrayRamp(t *testing.T) {
	assert.Equal(t, uint8(0), Gray(Black))
	assert.Equal(t, uint8(255), Gray(White))
	assert.Equal(t, uint8(20*255/63), Gray(Dark))
	assert.Equal(t, 18, TextWidth("LOW"))
}
