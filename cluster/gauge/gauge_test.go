package gauge

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravodash/cluster/surface"
)

func newCanvas(w, h int) *surface.Canvas {
	c := surface.NewCanvas(w, h, nil)
	c.Begin(surface.Black)
	return c
}

func litPoints(c *surface.Canvas) []image.Point {
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

func TestFilledClampsToResolution(t *testing.T) {
	coolant := Range{Min: 60, Max: 120}
	speed := Range{Min: 0, Max: 120}

	tests := []struct {
		name  string
		v     float64
		r     Range
		total int
		want  int
	}{
		{"bar above max", 200, coolant, BarSegments, 10},
		{"bar below min", 0, coolant, BarSegments, 0},
		{"bar at max", 120, coolant, BarSegments, 10},
		{"bar rounds", 65, coolant, BarSegments, 1},
		{"bar midpoint", 90, coolant, BarSegments, 5},
		{"bar nan", math.NaN(), coolant, BarSegments, 0},
		{"bar +inf", math.Inf(1), coolant, BarSegments, 10},
		{"arc above max", 500, speed, ArcTicks, 20},
		{"arc negative", -5, speed, ArcTicks, 0},
		{"arc half", 60, speed, ArcTicks, 10},
		{"empty range at max", 3, Range{Min: 3, Max: 3}, BarSegments, 10},
		{"empty range below", 2, Range{Min: 3, Max: 3}, BarSegments, 0},
		{"no units", 50, speed, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Filled(tc.v, tc.r, tc.total))
		})
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 0, Max: 100}
	assert.Equal(t, 0.0, r.Clamp(-1))
	assert.Equal(t, 100.0, r.Clamp(101))
	assert.Equal(t, 42.0, r.Clamp(42))
	assert.Equal(t, 0.0, r.Clamp(math.NaN()))
	assert.Equal(t, 10.0, Range{Min: 10, Max: 0}.Clamp(50))
}

func TestMapRange(t *testing.T) {
	assert.Equal(t, 5.0, MapRange(90, 60, 120, 0, 10))
	assert.Equal(t, 7.0, MapRange(1, 1, 1, 7, 9))
}

func TestIsCritical(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min, max float64
		twoSided bool
		boolean  bool
		flag     bool
		want     bool
	}{
		{"coolant cold", 84, 85, 95, true, false, false, true},
		{"coolant at min", 85, 85, 95, true, false, false, false},
		{"coolant optimum", 90, 85, 95, true, false, false, false},
		{"coolant at max", 95, 85, 95, true, false, false, false},
		{"coolant hot", 96, 85, 95, true, false, false, true},
		{"fuel low", 9.99, 10, 100, false, false, false, true},
		{"fuel at limit", 10, 10, 100, false, false, false, false},
		{"fuel above max ignored", 150, 10, 100, false, false, false, false},
		{"oil low", 0, 0, 0, false, true, true, true},
		{"oil ok", 0, 0, 0, false, true, false, false},
		{"boolean wins over two-sided", 500, 0, 1, true, true, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := IsCritical(tc.value, tc.min, tc.max, tc.twoSided, tc.boolean, tc.flag)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBlinkerTogglesEveryPeriod(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := NewBlinker(clock, 0)
	require.Equal(t, DefaultBlinkPeriod, b.Period())

	steps := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{299 * time.Millisecond, true},
		{300 * time.Millisecond, false},
		{599 * time.Millisecond, false},
		{600 * time.Millisecond, true},
		{900 * time.Millisecond, false},
	}
	var elapsed time.Duration
	for _, s := range steps {
		clock.Advance(s.at - elapsed)
		elapsed = s.at
		assert.Equal(t, s.want, b.Phase(), "at %s", s.at)
		assert.True(t, b.Visible(false), "non-critical is always visible")
		assert.Equal(t, s.want, b.Visible(true), "at %s", s.at)
	}
}

func TestVisible(t *testing.T) {
	assert.True(t, Visible(false, false))
	assert.True(t, Visible(false, true))
	assert.True(t, Visible(true, true))
	assert.False(t, Visible(true, false))
}

func TestDrawBarFillsBottomUp(t *testing.T) {
	c := newCanvas(40, 80)
	b := Bar{Center: image.Pt(20, 40), Height: 40, Value: 90, Range: Range{Min: 60, Max: 120}, Color: surface.Dark}
	require.Equal(t, 5, b.Filled())
	DrawBar(c, b)

	bottom := 40 + 20
	// block i spans rows bottom-i*4-3 .. bottom-i*4-1
	for i := 0; i < 5; i++ {
		assert.Equal(t, surface.Dark, c.At(20, bottom-i*4-2), "block %d", i)
	}
	assert.Equal(t, surface.Black, c.At(20, bottom-5*4-2))
	// rails and base
	assert.Equal(t, surface.White, c.At(13, bottom-2))
	assert.Equal(t, surface.White, c.At(26, bottom-2))
	assert.Equal(t, surface.White, c.At(10, bottom-1))
	assert.Equal(t, surface.White, c.At(30, bottom-1))
	// cap apex
	assert.Equal(t, surface.White, c.At(20, 20))
}

func TestDrawBarClearsPreviousFill(t *testing.T) {
	c := newCanvas(40, 80)
	b := Bar{Center: image.Pt(20, 40), Height: 40, Value: 120, Range: Range{Min: 60, Max: 120}, Color: surface.White}
	DrawBar(c, b)
	b.Value = 60
	DrawBar(c, b)
	assert.Equal(t, surface.Black, c.At(20, 40))
}

func TestLabeledBarBlinksOnlyTheBar(t *testing.T) {
	g := LabeledBar{
		Center:    image.Pt(20, 40),
		Height:    40,
		Value:     100,
		Range:     Range{Min: 60, Max: 120},
		Label:     "COOL",
		Threshold: Threshold{Min: 85, Max: 95, Mode: TwoSided},
	}

	on := newCanvas(40, 90)
	st := DrawLabeledBar(on, g, true)
	assert.True(t, st.Critical)
	assert.True(t, st.Visible)
	assert.Equal(t, 7, st.Filled)
	assert.Equal(t, surface.White, on.At(20, 58), "critical fill is white")

	off := newCanvas(40, 90)
	st = DrawLabeledBar(off, g, false)
	assert.True(t, st.Critical)
	assert.False(t, st.Visible)
	assert.Equal(t, surface.Black, off.At(20, 58))

	texts := off.Texts()
	require.Len(t, texts, 2)
	assert.Equal(t, surface.TextOp{X: 8, Y: 0, Text: "COOL", Color: surface.White}, texts[0])
	assert.Equal(t, surface.TextOp{X: 11, Y: 70, Text: "100", Color: surface.White}, texts[1])
}

func TestLabeledBarNormalIsDark(t *testing.T) {
	g := LabeledBar{
		Center:    image.Pt(20, 40),
		Height:    40,
		Value:     50,
		Range:     Range{Min: 0, Max: 100},
		Label:     "FUEL",
		Threshold: Threshold{Min: 10, Max: 100, Mode: LowOnly},
	}
	c := newCanvas(40, 90)
	st := DrawLabeledBar(c, g, false)
	assert.False(t, st.Critical)
	assert.True(t, st.Visible)
	assert.Equal(t, surface.Dark, c.At(20, 58))
}

func TestReadout(t *testing.T) {
	assert.Equal(t, "87", readout(87.9))
	assert.Equal(t, "-3", readout(-3.5))
	assert.Equal(t, "--", readout(math.NaN()))
	assert.Equal(t, "--", readout(math.Inf(-1)))
}
