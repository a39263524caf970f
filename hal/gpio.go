package hal

import (
	"fmt"
	"sync"
	"time"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIO provides access to general-purpose IO pins.
//
// Implementations may return nil if GPIO is unsupported.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin. A pin must be configured before it
// is read or written.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

// FindPin returns the pin of g called name, or nil.
func FindPin(g GPIO, name string) GPIOPin {
	if g == nil {
		return nil
	}
	for i := 0; i < g.PinCount(); i++ {
		if p := g.Pin(i); p != nil && p.Name() == name {
			return p
		}
	}
	return nil
}

type pinBank []*hostPin

func (b pinBank) PinCount() int { return len(b) }

func (b pinBank) Pin(id int) GPIOPin {
	if id < 0 || id >= len(b) {
		return nil
	}
	return b[id]
}

// squareWave is high for the first high of every period, counted from t0.
// A zero period holds the level constant.
type squareWave struct {
	t0     time.Time
	now    func() time.Time
	period time.Duration
	high   time.Duration
}

func (w squareWave) level() bool {
	if w.period <= 0 || w.now == nil {
		return w.high > 0
	}
	elapsed := w.now().Sub(w.t0)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return elapsed%w.period < w.high
}

// hostPin is a simulated pin. Inputs follow their wave; outputs latch the
// written level and pass it to drive.
type hostPin struct {
	mu    sync.Mutex
	name  string
	caps  GPIOCaps
	mode  GPIOMode
	pull  GPIOPull
	ready bool

	wave  squareWave
	drive func(level bool)
	level bool
}

func inputPin(name string, caps GPIOCaps, w squareWave) *hostPin {
	return &hostPin{name: name, caps: caps | GPIOCapInput, wave: w}
}

func outputPin(name string, drive func(bool)) *hostPin {
	return &hostPin{name: name, caps: GPIOCapOutput, drive: drive}
}

func (p *hostPin) Name() string   { return p.name }
func (p *hostPin) Caps() GPIOCaps { return p.caps }

func (p *hostPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var need GPIOCaps
	switch mode {
	case GPIOModeInput:
		need = GPIOCapInput
	case GPIOModeOutput:
		need = GPIOCapOutput
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode %d", p.name, mode)
	}
	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		need |= GPIOCapPullUp
	case GPIOPullDown:
		need |= GPIOCapPullDown
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull %d", p.name, pull)
	}
	if p.caps&need != need {
		return fmt.Errorf("gpio: pin %s: mode %d pull %d: %w", p.name, mode, pull, ErrNotImplemented)
	}

	p.mode, p.pull, p.ready = mode, pull, true
	return nil
}

func (p *hostPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	if p.mode == GPIOModeInput {
		return p.wave.level(), nil
	}
	return p.level, nil
}

func (p *hostPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	if p.drive != nil {
		p.drive(level)
	}
	return nil
}
