package gauge

import (
	"image"

	"ravodash/cluster/draw"
	"ravodash/cluster/surface"
)

// Direction is the way an arc gauge fills.
type Direction uint8

const (
	// Ascending fills from StartDeg toward EndDeg.
	Ascending Direction = iota
	// Descending fills from EndDeg back toward StartDeg, for the right-hand
	// gauge of a mirrored pair.
	Descending
)

const (
	arcOutlineStep = 2
	arcTickInner   = 10
	arcTickOuter   = 4
	arcLabelOffset = 20
)

// Arc is a dotted arc with radial fill ticks.
//
// Angles are degrees with x = cos and y = sin in screen space, so angles
// grow clockwise on screen. EndDeg < StartDeg means the span crosses 0.
type Arc struct {
	Center    image.Point
	Radius    int
	Value     float64
	Range     Range
	StartDeg  int
	EndDeg    int
	Label     string
	Color     surface.Color
	Direction Direction
}

// Wraps reports whether the span crosses the 0/360 boundary.
func (a Arc) Wraps() bool { return a.EndDeg < a.StartDeg }

// Sweep is the angular size of the span in degrees.
func (a Arc) Sweep() int {
	if a.Wraps() {
		return (360 - a.StartDeg) + a.EndDeg
	}
	return a.EndDeg - a.StartDeg
}

// Filled is the number of lit ticks.
func (a Arc) Filled() int { return Filled(a.Value, a.Range, ArcTicks) }

// OutlineAngles lists the angles at which outline dots are placed.
func (a Arc) OutlineAngles() []int {
	var out []int
	if a.Direction == Descending && a.Wraps() {
		// two explicit passes so the trace never runs through 180
		for deg := a.StartDeg; deg <= 360; deg += arcOutlineStep {
			out = append(out, deg)
		}
		for deg := 0; deg <= a.EndDeg; deg += arcOutlineStep {
			out = append(out, deg)
		}
		return out
	}
	end := a.EndDeg
	if a.Wraps() {
		end += 360
	}
	for deg := a.StartDeg; deg <= end; deg += arcOutlineStep {
		out = append(out, deg%360)
	}
	return out
}

// TickAngles lists the angle of every lit tick in fill order.
func (a Arc) TickAngles() []int {
	n := a.Filled()
	out := make([]int, 0, n)
	sweep := a.Sweep()
	for i := 0; i < n; i++ {
		p := float64(i) / float64(ArcTicks-1)
		var deg int
		switch {
		case a.Direction == Descending && a.Wraps():
			back := int(float64(sweep) * p)
			deg = (a.EndDeg - back + 360) % 360
		case a.Direction == Descending:
			deg = int(float64(a.EndDeg) - float64(sweep)*p)
		default:
			deg = int(float64(a.StartDeg)+float64(sweep)*p) % 360
		}
		out = append(out, deg)
	}
	return out
}

// LabelAngle is where the caption sits, in degrees.
func (a Arc) LabelAngle() float64 {
	if a.Direction == Descending {
		if a.Wraps() {
			return float64(a.StartDeg+a.EndDeg+360) / 2
		}
		return float64(a.StartDeg+a.EndDeg) / 2
	}
	return float64(a.StartDeg) + float64(a.Sweep())/2
}

// DrawArc renders the outline, the lit ticks and the optional label.
func DrawArc(s surface.Surface, a Arc) State {
	cx, cy := a.Center.X, a.Center.Y
	for _, deg := range a.OutlineAngles() {
		x, y := draw.Polar(cx, cy, float64(a.Radius), float64(deg))
		s.Dot(x, y, surface.White)
	}

	ticks := a.TickAngles()
	for _, deg := range ticks {
		x1, y1 := draw.Polar(cx, cy, float64(a.Radius-arcTickInner), float64(deg))
		x2, y2 := draw.Polar(cx, cy, float64(a.Radius+arcTickOuter), float64(deg))
		// three offset strokes fake a 2px wide tick
		draw.Line(s, x1, y1, x2, y2, a.Color)
		draw.Line(s, x1+1, y1, x2+1, y2, a.Color)
		draw.Line(s, x1, y1+1, x2, y2+1, a.Color)
	}

	if a.Label != "" {
		x, y := draw.Polar(cx, cy, float64(a.Radius+arcLabelOffset), a.LabelAngle())
		s.SetTextColor(surface.White)
		s.SetCursor(x-surface.TextWidth(a.Label)/2, y-surface.GlyphHeight/2)
		s.Print(a.Label)
	}

	return State{Value: a.Value, Visible: true, Filled: len(ticks)}
}
