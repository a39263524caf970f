package gauge

import (
	"image"
	"math"
	"strconv"

	"ravodash/cluster/draw"
	"ravodash/cluster/surface"
)

const (
	barHalfWidth = 7
	barCapRadius = 7
	barCapStep   = 5
	barBlock     = 3
	barGap       = 1
)

// Bar is a vertical capsule gauge filled bottom-up in BarSegments blocks.
type Bar struct {
	Center image.Point
	Height int
	Value  float64
	Range  Range
	Color  surface.Color
}

// Filled is the number of lit blocks.
func (b Bar) Filled() int { return Filled(b.Value, b.Range, BarSegments) }

// Bounds is the rectangle DrawBar clears.
func (b Bar) Bounds() image.Rectangle {
	x := b.Center.X - barHalfWidth
	y := b.Center.Y - b.Height/2
	return image.Rect(x, y, x+2*barHalfWidth+1, y+b.Height)
}

// DrawBar clears the gauge's box and redraws outline and blocks.
func DrawBar(s surface.Surface, b Bar) {
	cx, cy := b.Center.X, b.Center.Y
	top := cy - b.Height/2
	bottom := cy + b.Height/2

	r := b.Bounds()
	s.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), surface.Black)

	// rails stop short of the cap, the base is wider than the body
	s.FillRect(cx-barHalfWidth, top+barCapRadius, 1, b.Height-barCapRadius, surface.White)
	s.FillRect(cx+barHalfWidth-1, top+barCapRadius, 1, b.Height-barCapRadius, surface.White)
	s.FillRect(cx-10, bottom-1, 21, 1, surface.White)

	// upper half circle; negated angles point up on screen
	for deg := 0; deg <= 180; deg += barCapStep {
		x, y := draw.Polar(cx, top+barCapRadius, barCapRadius, -float64(deg))
		s.Dot(x, y, surface.White)
	}

	filled := b.Filled()
	for i := 0; i < filled; i++ {
		y := bottom - i*(barBlock+barGap) - barBlock
		s.FillRect(cx-barHalfWidth+1, y, 2*(barHalfWidth-1), barBlock, b.Color)
	}
}

// LabeledBar is a Bar with a caption above, a numeric read-out below and a
// threshold that drives blinking.
type LabeledBar struct {
	Center    image.Point
	Height    int
	Value     float64
	Range     Range
	Label     string
	Threshold Threshold
}

// DrawLabeledBar renders the gauge for a frame whose blink phase is phase.
// While critical and blinked off the bar is skipped; label and read-out are
// always drawn when Label is set.
func DrawLabeledBar(s surface.Surface, g LabeledBar, phase bool) State {
	critical := g.Threshold.Critical(g.Value, false)
	visible := Visible(critical, phase)

	col := surface.Dark
	if critical {
		col = surface.White
	}

	cx, cy := g.Center.X, g.Center.Y
	if g.Label != "" {
		s.SetTextColor(surface.White)
		s.SetCursor(cx-surface.TextWidth(g.Label)/2, cy-g.Height/2-20)
		s.Print(g.Label)
	}

	bar := Bar{Center: g.Center, Height: g.Height, Value: g.Value, Range: g.Range, Color: col}
	if visible {
		DrawBar(s, bar)
	}

	if g.Label != "" {
		s.SetTextColor(surface.White)
		s.SetCursor(cx-surface.TextWidth("100")/2, cy+g.Height/2+10)
		s.Print(readout(g.Value))
	}

	return State{Value: g.Value, Critical: critical, Visible: visible, Filled: bar.Filled()}
}

// readout truncates like the integer read-out of the firmware.
func readout(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "--"
	}
	return strconv.Itoa(int(v))
}
