package telemetry

import (
	"fmt"
	"math"

	"ravodash/hal"
)

// Analog identifies an analog input feeding a Snapshot reading.
type Analog uint8

const (
	Coolant Analog = iota
	Fuel
	Battery
)

func (a Analog) String() string {
	switch a {
	case Coolant:
		return "coolant"
	case Fuel:
		return "fuel"
	case Battery:
		return "battery"
	default:
		return fmt.Sprintf("analog(%d)", uint8(a))
	}
}

// Coolant sensor output limits, deg C.
const (
	CoolantSensorMin = -40.0
	CoolantSensorMax = 150.0
)

// CoolantFromRaw converts a 10-bit reading of an LM35 on a 5 V reference
// (10 mV per degree) to deg C, limited to the sensor range.
func CoolantFromRaw(raw uint16) float64 {
	t := float64(raw) * 5 / 1024 * 100
	return math.Max(CoolantSensorMin, math.Min(CoolantSensorMax, t))
}

// FuelFromRaw maps a 10-bit sender reading linearly onto whole percent.
func FuelFromRaw(raw uint16) float64 {
	pct := int(raw) * 100 / 1023
	if pct > 100 {
		pct = 100
	}
	return float64(pct)
}

// BatteryFromRaw converts a 12-bit reading on a 3.3 V reference behind a
// 1:2 divider to volts.
func BatteryFromRaw(raw uint16) float64 {
	return float64(raw) * 3.3 / 4095 * 2
}

func convert(a Analog, raw uint16) float64 {
	switch a {
	case Coolant:
		return CoolantFromRaw(raw)
	case Fuel:
		return FuelFromRaw(raw)
	default:
		return BatteryFromRaw(raw)
	}
}

func reading(s *Snapshot, a Analog) *float64 {
	switch a {
	case Coolant:
		return &s.CoolantTemp
	case Fuel:
		return &s.FuelLevel
	default:
		return &s.BatteryVoltage
	}
}

// AnalogWiring maps one reading to a named ADC channel.
type AnalogWiring struct {
	Input   Analog
	Channel string
}

type boundAnalog struct {
	AnalogWiring
	ch hal.ADCChannel
}

// AnalogPoller samples analog sensors into a Store.
type AnalogPoller struct {
	store *Store
	chans []boundAnalog
}

// NewAnalogPoller looks up every wired channel on a.
func NewAnalogPoller(store *Store, a hal.ADC, wiring []AnalogWiring) (*AnalogPoller, error) {
	if store == nil {
		return nil, fmt.Errorf("analog poller: nil store")
	}
	if a == nil {
		return nil, fmt.Errorf("analog poller: no adc: %w", hal.ErrNotImplemented)
	}

	p := &AnalogPoller{store: store}
	for _, w := range wiring {
		if w.Input > Battery {
			return nil, fmt.Errorf("analog poller: unknown %s", w.Input)
		}
		ch := hal.FindChannel(a, w.Channel)
		if ch == nil {
			return nil, fmt.Errorf("analog poller: %s: channel %q not found", w.Input, w.Channel)
		}
		p.chans = append(p.chans, boundAnalog{AnalogWiring: w, ch: ch})
	}
	return p, nil
}

// Poll reads every channel and publishes the converted values in one
// update. Channels that fail to read keep their previous value; the first
// error is returned.
func (p *AnalogPoller) Poll() error {
	var firstErr error
	values := make(map[Analog]float64, len(p.chans))
	for _, b := range p.chans {
		raw, err := b.ch.Read()
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("analog poller: %s: %w", b.Input, err)
			}
			continue
		}
		values[b.Input] = convert(b.Input, raw)
	}
	if len(values) == 0 {
		return firstErr
	}
	p.store.Update(func(s *Snapshot) {
		for in, v := range values {
			*reading(s, in) = v
		}
	})
	return firstErr
}
