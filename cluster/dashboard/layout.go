package dashboard

import (
	"image"

	"ravodash/cluster/gauge"
	"ravodash/cluster/telemetry"
)

// Gauge domains and thresholds.
var (
	SpeedRange   = gauge.Range{Min: 0, Max: 120}
	CoolantRange = gauge.Range{Min: 60, Max: 120}
	FuelRange    = gauge.Range{Min: 0, Max: 100}

	CoolantThreshold = gauge.Threshold{
		Min:  telemetry.CoolantOptimumMin,
		Max:  telemetry.CoolantOptimumMax,
		Mode: gauge.TwoSided,
	}
	FuelThreshold = gauge.Threshold{Min: telemetry.LowFuel, Max: 100, Mode: gauge.LowOnly}
	OilThreshold  = gauge.Threshold{Mode: gauge.Boolean}
)

// Speed arc spans: the left gauge tilts toward the center from the left,
// the right one mirrors it across the vertical axis.
const (
	LeftArcStart  = 135
	LeftArcEnd    = 225
	RightArcStart = 315
	RightArcEnd   = 45
)

// Layout holds the screen anchors of every element.
type Layout struct {
	Oil  image.Point
	Glow image.Point

	Speed      image.Point
	SpeedScale int
	ArcRadius  int

	Coolant   image.Point
	Fuel      image.Point
	BarHeight int
}

const (
	edgeInset  = 20
	barDrop    = 40
	foldRatio  = 0.60
	barHeight  = 40
	arcRadius  = 80
	speedScale = 4
)

// LayoutFor places the elements on an xres x yres surface. Indicators hug
// the side edges; the speed read-out sits at the exact center.
func LayoutFor(xres, yres int) Layout {
	fold := int(float64(yres) * foldRatio)
	barY := fold + barDrop
	return Layout{
		Oil:        image.Pt(edgeInset, yres/4),
		Glow:       image.Pt(xres-edgeInset, yres/4),
		Speed:      image.Pt(xres/2, yres/2),
		SpeedScale: speedScale,
		ArcRadius:  arcRadius,
		Coolant:    image.Pt(edgeInset, barY),
		Fuel:       image.Pt(xres-edgeInset, barY),
		BarHeight:  barHeight,
	}
}
