package dashboard

import (
	"image"
	"math"

	"ravodash/cluster/draw"
	"ravodash/cluster/gauge"
	"ravodash/cluster/surface"
)

const (
	iconLift    = 20
	valueDrop   = 10
	speedUnit   = "km/h"
	speedUnitDy = 40
)

func printCentered(s surface.Surface, cx, y int, text string) {
	s.SetTextColor(surface.White)
	s.SetCursor(cx-surface.TextWidth(text)/2, y)
	s.Print(text)
}

// drawOil draws the oil-pressure warning: icon (blinking while low), the
// caption, and LOW/HIGH. Both values share LOW's left edge.
func drawOil(s surface.Surface, p image.Point, low bool, phase bool) gauge.State {
	critical := OilThreshold.Critical(0, low)
	visible := gauge.Visible(critical, phase)

	col := surface.Dark
	if low {
		col = surface.White
	}
	if visible {
		draw.OilCan(s, p.X, p.Y-iconLift, col)
	}

	printCentered(s, p.X, p.Y, "OIL")

	s.SetCursor(p.X-surface.TextWidth("LOW")/2, p.Y+valueDrop)
	if low {
		s.Print("LOW")
	} else {
		s.Print("HIGH")
	}

	return gauge.State{Critical: critical, Visible: visible}
}

// drawGlowPlug draws the glow-plug indicator only while the plugs are on.
func drawGlowPlug(s surface.Surface, p image.Point, on bool) gauge.State {
	if !on {
		return gauge.State{}
	}
	draw.GlowPlug(s, p.X, p.Y-iconLift, surface.White)
	printCentered(s, p.X, p.Y, "GLOW")
	printCentered(s, p.X, p.Y+valueDrop, "PLUG")
	return gauge.State{Value: 1, Visible: true}
}

// drawSpeed draws the numeral with its unit and the two flanking arcs.
func drawSpeed(s surface.Surface, l Layout, speed float64) gauge.State {
	n := 0
	if !math.IsNaN(speed) && !math.IsInf(speed, 0) {
		n = int(speed)
	}
	draw.Number(s, l.Speed.X, l.Speed.Y, n, l.SpeedScale, surface.White)
	printCentered(s, l.Speed.X, l.Speed.Y+speedUnitDy, speedUnit)

	left := gauge.Arc{
		Center:    l.Speed,
		Radius:    l.ArcRadius,
		Value:     speed,
		Range:     SpeedRange,
		StartDeg:  LeftArcStart,
		EndDeg:    LeftArcEnd,
		Color:     surface.White,
		Direction: gauge.Ascending,
	}
	right := left
	right.StartDeg, right.EndDeg = RightArcStart, RightArcEnd
	right.Direction = gauge.Descending

	st := gauge.DrawArc(s, left)
	gauge.DrawArc(s, right)
	return st
}
