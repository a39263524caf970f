package telemetry

import (
	"fmt"

	"ravodash/hal"
)

// Switch identifies a digital input feeding a Snapshot flag.
type Switch uint8

const (
	OilPressure Switch = iota
	GlowPlug
	DRL
	LowBeam
	HighBeam
	LeftTurn
	RightTurn
	Hazard
)

func (s Switch) String() string {
	switch s {
	case OilPressure:
		return "oil-pressure"
	case GlowPlug:
		return "glow-plug"
	case DRL:
		return "drl"
	case LowBeam:
		return "low-beam"
	case HighBeam:
		return "high-beam"
	case LeftTurn:
		return "left-turn"
	case RightTurn:
		return "right-turn"
	case Hazard:
		return "hazard"
	default:
		return fmt.Sprintf("switch(%d)", uint8(s))
	}
}

// SwitchWiring maps one switch to a named GPIO pin.
//
// ActiveLow switches pull the pin to ground when asserted, so a low level
// reads as true. They get the pin's pull-up when it has one.
type SwitchWiring struct {
	Switch    Switch
	Pin       string
	ActiveLow bool
}

type boundSwitch struct {
	SwitchWiring
	pin hal.GPIOPin
}

// SwitchPoller samples digital switches into a Store.
type SwitchPoller struct {
	store *Store
	pins  []boundSwitch
}

// NewSwitchPoller looks up and configures every wired pin on g.
func NewSwitchPoller(store *Store, g hal.GPIO, wiring []SwitchWiring) (*SwitchPoller, error) {
	if store == nil {
		return nil, fmt.Errorf("switch poller: nil store")
	}
	if g == nil {
		return nil, fmt.Errorf("switch poller: no gpio: %w", hal.ErrNotImplemented)
	}

	p := &SwitchPoller{store: store}
	for _, w := range wiring {
		if w.Switch > Hazard {
			return nil, fmt.Errorf("switch poller: unknown %s", w.Switch)
		}
		pin := hal.FindPin(g, w.Pin)
		if pin == nil {
			return nil, fmt.Errorf("switch poller: %s: pin %q not found", w.Switch, w.Pin)
		}
		pull := hal.GPIOPullNone
		if w.ActiveLow && pin.Caps()&hal.GPIOCapPullUp != 0 {
			pull = hal.GPIOPullUp
		}
		if err := pin.Configure(hal.GPIOModeInput, pull); err != nil {
			return nil, fmt.Errorf("switch poller: %s: %w", w.Switch, err)
		}
		p.pins = append(p.pins, boundSwitch{SwitchWiring: w, pin: pin})
	}
	return p, nil
}

// Poll reads every switch and publishes them in one update. Switches that
// fail to read keep their previous value; the first error is returned.
func (p *SwitchPoller) Poll() error {
	var firstErr error
	levels := make(map[Switch]bool, len(p.pins))
	for _, b := range p.pins {
		level, err := b.pin.Read()
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("switch poller: %s: %w", b.Switch, err)
			}
			continue
		}
		levels[b.Switch] = level != b.ActiveLow
	}
	if len(levels) == 0 {
		return firstErr
	}
	p.store.Update(func(s *Snapshot) {
		for sw, on := range levels {
			*flag(s, sw) = on
		}
	})
	return firstErr
}

func flag(s *Snapshot, sw Switch) *bool {
	switch sw {
	case OilPressure:
		return &s.OilWarning
	case GlowPlug:
		return &s.GlowPlugOn
	case DRL:
		return &s.DRLOn
	case LowBeam:
		return &s.LowBeamOn
	case HighBeam:
		return &s.HighBeamOn
	case LeftTurn:
		return &s.LeftTurn
	case RightTurn:
		return &s.RightTurn
	default:
		return &s.Hazard
	}
}
