package draw

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravodash/cluster/surface"
)

func lit(c *surface.Canvas) []image.Point {
	w, h := c.Size()
	var out []image.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.At(x, y) != surface.Black {
				out = append(out, image.Pt(x, y))
			}
		}
	}
	return out
}

func newCanvas(w, h int) *surface.Canvas {
	c := surface.NewCanvas(w, h, nil)
	c.Begin(surface.Black)
	return c
}

func TestLineIncludesBothEnds(t *testing.T) {
	c := newCanvas(20, 20)
	Line(c, 2, 3, 12, 3, surface.White)
	assert.Len(t, lit(c), 11)

	c = newCanvas(20, 20)
	Line(c, 15, 15, 5, 5, surface.White)
	pts := lit(c)
	assert.Len(t, pts, 11)
	for _, p := range pts {
		assert.Equal(t, p.X, p.Y)
	}

	c = newCanvas(20, 20)
	Line(c, 1, 1, 4, 12, surface.White)
	assert.Equal(t, surface.White, c.At(1, 1))
	assert.Equal(t, surface.White, c.At(4, 12))
	assert.Len(t, lit(c), 12)
}

func TestLineClipsThroughSurface(t *testing.T) {
	c := newCanvas(10, 10)
	assert.NotPanics(t, func() { Line(c, -50, 5, 50, 5, surface.White) })
	assert.Len(t, lit(c), 10)
}

func TestFillCircle(t *testing.T) {
	c := newCanvas(10, 10)
	FillCircle(c, 5, 5, 2, surface.White)
	assert.Len(t, lit(c), 13)
	assert.Equal(t, surface.White, c.At(5, 3))
	assert.Equal(t, surface.Black, c.At(3, 3))
}

func TestPolarTruncates(t *testing.T) {
	x, y := Polar(10, 10, 5, 0)
	assert.Equal(t, image.Pt(15, 10), image.Pt(x, y))

	x, y = Polar(10, 10, 5, 90)
	assert.Equal(t, image.Pt(10, 15), image.Pt(x, y))

	x, y = Polar(10, 10, 5, 180)
	assert.Equal(t, image.Pt(5, 10), image.Pt(x, y))

	// 2.5 px along 45 deg is 1.77 on each axis
	x, y = Polar(0, 0, 2.5, 45)
	assert.Equal(t, image.Pt(1, 1), image.Pt(x, y))
}

func TestDigitSegments(t *testing.T) {
	zero, ok := DigitSegments(0)
	require.True(t, ok)
	assert.Equal(t, Segments{true, true, true, true, true, true, false}, zero)

	one, ok := DigitSegments(1)
	require.True(t, ok)
	assert.Equal(t, Segments{false, true, true, false, false, false, false}, one)

	seven, ok := DigitSegments(7)
	require.True(t, ok)
	assert.Equal(t, Segments{true, true, true, false, false, false, false}, seven)

	_, ok = DigitSegments(10)
	assert.False(t, ok)
	_, ok = DigitSegments(-1)
	assert.False(t, ok)
}

func TestSevenLightsTopAndRightStrokes(t *testing.T) {
	c := newCanvas(20, 12)
	Number(c, 10, 0, 7, 1, surface.White)

	// one digit cell of 8 starts at 6: A on row 0, B and C on column 10
	want := map[image.Point]bool{}
	for x := 7; x <= 10; x++ {
		want[image.Pt(x, 0)] = true
	}
	for y := 1; y <= 8; y++ {
		want[image.Pt(10, y)] = true
	}
	got := map[image.Point]bool{}
	for _, p := range lit(c) {
		got[p] = true
	}
	assert.Equal(t, want, got)
}

func TestNumberIsCenteredOnDigitCells(t *testing.T) {
	left, width := NumberBounds(100, 100, 4)
	assert.Equal(t, 52, left)
	assert.Equal(t, 96, width)

	c := newCanvas(200, 60)
	Number(c, 100, 10, 100, 4, surface.White)

	pts := lit(c)
	require.NotEmpty(t, pts)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, left)
		assert.Less(t, p.X, left+width)
		assert.GreaterOrEqual(t, p.Y, 10)
		assert.Less(t, p.Y, 10+9*4)
	}

	// "1" only has right-hand strokes, at 4*scale into its cell
	assert.Equal(t, surface.White, c.At(left+16, 14))
	assert.Equal(t, surface.Black, c.At(left, 14))
	// both zeros have their left strokes
	assert.Equal(t, surface.White, c.At(left+32, 14))
	assert.Equal(t, surface.White, c.At(left+64, 14))
}

func TestNumberSkipsMinusButKeepsItsCell(t *testing.T) {
	c := newCanvas(40, 12)
	Number(c, 20, 0, -1, 1, surface.White)

	left, width := NumberBounds(20, -1, 1)
	assert.Equal(t, 12, left)
	assert.Equal(t, 16, width)
	for _, p := range lit(c) {
		assert.Equal(t, left+8+4, p.X)
	}
}

func TestIcons(t *testing.T) {
	c := newCanvas(60, 60)
	OilCan(c, 30, 30, surface.Dark)
	assert.Equal(t, surface.Dark, c.At(30, 30))
	assert.Equal(t, surface.White, c.At(24, 26))
	assert.Equal(t, surface.Dark, c.At(40, 40))

	c = newCanvas(60, 60)
	GlowPlug(c, 30, 30, surface.Dark)
	assert.Equal(t, surface.White, c.At(30, 30))
	assert.Equal(t, surface.White, c.At(24, 24))
	assert.Equal(t, surface.Dark, c.At(30, 21))
}
