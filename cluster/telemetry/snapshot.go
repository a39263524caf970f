// Package telemetry holds the vehicle readings the cluster displays and the
// sources that produce them.
package telemetry

// Safe operating limits.
const (
	LowFuel           = 10.0
	CoolantOptimumMin = 85.0
	CoolantOptimumMax = 95.0
)

// Snapshot is one set of vehicle readings.
type Snapshot struct {
	CoolantTemp float64 // deg C
	FuelLevel   float64 // percent, 0-100
	OilWarning  bool    // true when oil pressure is low
	GlowPlugOn  bool
	Speed       float64 // km/h, zero when not sourced locally

	BatteryVoltage float64
	DRLOn          bool
	LowBeamOn      bool
	HighBeamOn     bool
	LeftTurn       bool
	RightTurn      bool
	Hazard         bool
}

// Provider returns the latest snapshot without blocking.
type Provider interface {
	Snapshot() Snapshot
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() Snapshot

func (f ProviderFunc) Snapshot() Snapshot { return f() }

// Fixed always returns the same snapshot.
type Fixed Snapshot

func (f Fixed) Snapshot() Snapshot { return Snapshot(f) }
