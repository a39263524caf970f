package app

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/jonboulle/clockwork"

	"ravodash/cluster/dashboard"
	"ravodash/cluster/gauge"
	"ravodash/cluster/surface"
	"ravodash/cluster/telemetry"
	"ravodash/hal"
	"ravodash/internal/buildinfo"
	"ravodash/internal/logger"
)

type Config struct {
	// Width and Height are the cluster resolution; the framebuffer is
	// Scale times larger.
	Width  int
	Height int
	Scale  int

	Demo          bool
	BlinkPeriod   time.Duration
	SweepInterval time.Duration

	// Wiring maps switches to GPIO pins; DefaultWiring when nil.
	Wiring []telemetry.SwitchWiring
	// Analog maps readings to ADC channels; DefaultAnalogWiring when nil.
	Analog []telemetry.AnalogWiring
	// LampPin is the GPIO output of the master warning lamp. hal.PinLED
	// when empty; HAL.LED() drives the lamp when the pin does not exist.
	LampPin string
	// Live replaces the switch-fed store as the live telemetry source.
	Live telemetry.Provider
	// Clock drives blinking and the demo sweep; the real clock when nil.
	Clock clockwork.Clock
}

// DefaultWiring matches the host HAL pins. The oil and lamp switches close
// to ground when asserted; the glow-plug relay drives its pin high.
func DefaultWiring() []telemetry.SwitchWiring {
	return []telemetry.SwitchWiring{
		{Switch: telemetry.OilPressure, Pin: hal.PinOilSw, ActiveLow: true},
		{Switch: telemetry.GlowPlug, Pin: hal.PinGlow},
		{Switch: telemetry.DRL, Pin: hal.PinDRL, ActiveLow: true},
		{Switch: telemetry.LowBeam, Pin: hal.PinLowBeam, ActiveLow: true},
		{Switch: telemetry.HighBeam, Pin: hal.PinHighBeam, ActiveLow: true},
		{Switch: telemetry.LeftTurn, Pin: hal.PinLeftTurn, ActiveLow: true},
		{Switch: telemetry.RightTurn, Pin: hal.PinRightTurn, ActiveLow: true},
		{Switch: telemetry.Hazard, Pin: hal.PinHazard, ActiveLow: true},
	}
}

// DefaultAnalogWiring matches the host HAL channels.
func DefaultAnalogWiring() []telemetry.AnalogWiring {
	return []telemetry.AnalogWiring{
		{Input: telemetry.Coolant, Channel: hal.ChanCoolant},
		{Input: telemetry.Fuel, Channel: hal.ChanFuel},
		{Input: telemetry.Battery, Channel: hal.ChanBattery},
	}
}

// Cluster ties the HAL to the dashboard: it polls the switches, handles
// keys and renders one frame per Step.
type Cluster struct {
	fb      hal.Framebuffer
	keys    <-chan hal.KeyEvent
	led     hal.LED
	lampPin hal.GPIOPin
	store   *telemetry.Store
	poller  *telemetry.SwitchPoller
	analog  *telemetry.AnalogPoller
	canvas  *surface.Canvas
	dash    *dashboard.Dashboard

	lamp    bool
	faulted bool
	frames  uint64
	faults  uint64
}

// New builds a cluster on h. A HAL without a display yields a cluster whose
// dashboard stays detached.
func New(h hal.HAL, cfg Config) (*Cluster, error) {
	if h == nil {
		return nil, fmt.Errorf("app: nil hal: %w", hal.ErrNotImplemented)
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Wiring == nil {
		cfg.Wiring = DefaultWiring()
	}
	if cfg.Analog == nil {
		cfg.Analog = DefaultAnalogWiring()
	}
	if cfg.LampPin == "" {
		cfg.LampPin = hal.PinLED
	}

	c := &Cluster{
		led:   h.LED(),
		store: telemetry.NewStore(telemetry.Snapshot{}),
	}

	if g := h.GPIO(); g != nil {
		if len(cfg.Wiring) > 0 {
			p, err := telemetry.NewSwitchPoller(c.store, g, cfg.Wiring)
			if err != nil {
				return nil, fmt.Errorf("app: %w", err)
			}
			c.poller = p
		}
		if pin := hal.FindPin(g, cfg.LampPin); pin != nil {
			if err := pin.Configure(hal.GPIOModeOutput, hal.GPIOPullNone); err != nil {
				return nil, fmt.Errorf("app: lamp %s: %w", cfg.LampPin, err)
			}
			c.lampPin = pin
		}
	}
	if a := h.ADC(); a != nil && len(cfg.Analog) > 0 {
		p, err := telemetry.NewAnalogPoller(c.store, a, cfg.Analog)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		c.analog = p
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			c.keys = kbd.Events()
		}
	}

	live := cfg.Live
	if live == nil {
		live = c.store
	}
	blink := gauge.NewBlinker(cfg.Clock, cfg.BlinkPeriod)
	c.dash = dashboard.New(live, blink,
		dashboard.WithDemo(cfg.Demo),
		dashboard.WithDemoSource(telemetry.NewSweep(cfg.Clock, cfg.SweepInterval)),
	)

	if d := h.Display(); d != nil {
		c.fb = d.Framebuffer()
	}
	if c.fb != nil {
		w, ht := cfg.Width, cfg.Height
		if w <= 0 || ht <= 0 {
			w, ht = c.fb.Width()/cfg.Scale, c.fb.Height()/cfg.Scale
		}
		c.canvas = surface.NewCanvas(w, ht, surface.NewFramebufferSink(c.fb, cfg.Scale))
		c.dash.Attach(c.canvas)
		bootScreen(c.fb, buildinfo.Short())
	} else {
		logger.Warn().Msg("no framebuffer, dashboard detached")
	}

	logger.Info().
		Str("version", buildinfo.String()).
		Bool("demo", cfg.Demo).
		Int("switches", len(cfg.Wiring)).
		Int("analog", len(cfg.Analog)).
		Msg("cluster started")
	return c, nil
}

// Runner adapts New to the hal host runners. Construction errors are
// returned from the first step.
func Runner(cfg Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		c, err := New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		return c.Step
	}
}

func (c *Cluster) Store() *telemetry.Store         { return c.store }
func (c *Cluster) Dashboard() *dashboard.Dashboard { return c.dash }
func (c *Cluster) Canvas() *surface.Canvas         { return c.canvas }
func (c *Cluster) Frames() uint64                  { return c.frames }
func (c *Cluster) Faults() uint64                  { return c.faults }

// Step handles pending keys, samples the sensors and renders one frame.
// It returns hal.ErrQuit when the user asked to leave; render failures are
// logged and never stop the loop.
func (c *Cluster) Step() error {
	if err := c.handleKeys(); err != nil {
		return err
	}

	if c.poller != nil {
		if err := c.poller.Poll(); err != nil {
			logger.Warn().Err(err).Msg("switch poll failed")
		}
	}
	if c.analog != nil {
		if err := c.analog.Poll(); err != nil {
			logger.Warn().Err(err).Msg("analog poll failed")
		}
	}

	f, err := c.render()
	if err != nil {
		logger.Error().Err(err).Uint64("frame", c.frames).Msg("present failed")
	}
	c.setLamp(f.Oil.Critical || f.Coolant.Critical || f.Fuel.Critical)
	c.frames++
	return nil
}

func (c *Cluster) handleKeys() error {
	if c.keys == nil {
		return nil
	}
	for {
		select {
		case ev := <-c.keys:
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyEscape, ev.Rune == 'q', ev.Rune == 'Q':
				logger.Info().Msg("quit requested")
				return hal.ErrQuit
			case ev.Rune == 'd', ev.Rune == 'D':
				on := c.dash.ToggleDemo()
				logger.Info().Bool("demo", on).Msg("demo mode toggled")
			}
		default:
			return nil
		}
	}
}

// render runs one frame, turning a panic anywhere in the renderer into a
// logged fault so the cluster keeps running.
func (c *Cluster) render() (f dashboard.Frame, err error) {
	defer func() {
		r := recover()
		if r == nil {
			if c.faulted && err == nil {
				logger.Info().Msg("cluster recovered")
				c.faulted = false
			}
			return
		}
		stack := debug.Stack()
		c.faults++
		c.faulted = true
		logger.Error().
			Interface("panic", r).
			Str("stack", string(stack)).
			Uint64("frame", c.frames).
			Msg("render panic")
		drawFault(c.fb, r, stack)
		f, err = dashboard.Frame{}, nil
	}()
	return c.dash.Render()
}

func (c *Cluster) setLamp(on bool) {
	if on == c.lamp {
		return
	}
	switch {
	case c.lampPin != nil:
		if err := c.lampPin.Write(on); err != nil {
			logger.Warn().Err(err).Msg("lamp write failed")
			return
		}
	case c.led != nil:
		if on {
			c.led.High()
		} else {
			c.led.Low()
		}
	default:
		return
	}
	c.lamp = on
}
