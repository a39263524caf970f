// Package gauge renders the cluster's bar and arc gauges and decides when a
// reading is critical and whether it is currently blinked off.
package gauge

import "math"

// Discrete fill resolution of each gauge type.
const (
	BarSegments = 10
	ArcTicks    = 20
)

// Range is a gauge's value domain.
type Range struct {
	Min float64
	Max float64
}

// Clamp limits v to the range. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MapRange linearly maps v from [inMin, inMax] to [outMin, outMax]. An
// empty input range maps everything to outMin.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Filled returns how many of total discrete units v lights, always in
// [0, total].
func Filled(v float64, r Range, total int) int {
	if total <= 0 {
		return 0
	}
	if r.Max == r.Min {
		if !math.IsNaN(v) && v >= r.Max {
			return total
		}
		return 0
	}
	n := int(math.Round(MapRange(r.Clamp(v), r.Min, r.Max, 0, float64(total))))
	if n < 0 {
		return 0
	}
	if n > total {
		return total
	}
	return n
}

// State describes how one indicator was rendered in a frame.
type State struct {
	Value    float64
	Critical bool
	Visible  bool
	Filled   int
}
