package gauge

// ThresholdMode selects how a Threshold classifies a reading.
type ThresholdMode uint8

const (
	// LowOnly flags readings below Min.
	LowOnly ThresholdMode = iota
	// TwoSided flags readings below Min or above Max.
	TwoSided
	// Boolean ignores the reading and uses the flag (true = critical).
	Boolean
)

// Threshold is a safe operating range.
type Threshold struct {
	Min  float64
	Max  float64
	Mode ThresholdMode
}

// Critical reports whether value (or flag, for Boolean thresholds) is
// outside the safe range. Values equal to Min or Max are safe.
func (t Threshold) Critical(value float64, flag bool) bool {
	switch t.Mode {
	case Boolean:
		return flag
	case TwoSided:
		return value < t.Min || value > t.Max
	default:
		return value < t.Min
	}
}

// IsCritical classifies a reading against [safeMin, safeMax].
func IsCritical(value, safeMin, safeMax float64, twoSided, boolean, flag bool) bool {
	t := Threshold{Min: safeMin, Max: safeMax, Mode: LowOnly}
	switch {
	case boolean:
		t.Mode = Boolean
	case twoSided:
		t.Mode = TwoSided
	}
	return t.Critical(value, flag)
}
