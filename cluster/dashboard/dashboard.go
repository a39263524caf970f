// Package dashboard composes the instrument cluster frame: indicators,
// speed read-out with its arcs, and the coolant and fuel bars.
package dashboard

import (
	"sync/atomic"

	"ravodash/cluster/gauge"
	"ravodash/cluster/surface"
	"ravodash/cluster/telemetry"
)

// Frame reports what one Render call drew.
type Frame struct {
	// Phase is the blink phase shared by every gauge of the frame.
	Phase bool
	Demo  bool

	Oil     gauge.State
	Glow    gauge.State
	Speed   gauge.State
	Coolant gauge.State
	Fuel    gauge.State

	// Snapshot is the telemetry the frame was drawn from.
	Snapshot telemetry.Snapshot
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithSurface attaches s at construction.
func WithSurface(s surface.Surface) Option {
	return func(d *Dashboard) { d.target = surface.Attach(s) }
}

// WithDemo starts the dashboard in demo mode.
func WithDemo(on bool) Option {
	return func(d *Dashboard) { d.demo.Store(on) }
}

// WithDemoSource replaces the default sweep used in demo mode.
func WithDemoSource(p telemetry.Provider) Option {
	return func(d *Dashboard) { d.demoSrc = p }
}

// WithBackground sets the color each frame is cleared to.
func WithBackground(c surface.Color) Option {
	return func(d *Dashboard) { d.bg = c }
}

// Dashboard draws frames from a telemetry provider onto a surface.
type Dashboard struct {
	target  surface.Handle
	live    telemetry.Provider
	demoSrc telemetry.Provider
	demo    atomic.Bool
	blink   *gauge.Blinker
	bg      surface.Color

	// mirror holds the last snapshot read, so a nil or failing live
	// source keeps showing the previous readings.
	mirror telemetry.Snapshot
}

// New builds a detached dashboard. A nil blink uses the real clock with
// gauge.DefaultBlinkPeriod.
func New(live telemetry.Provider, blink *gauge.Blinker, opts ...Option) *Dashboard {
	if blink == nil {
		blink = gauge.NewBlinker(nil, 0)
	}
	d := &Dashboard{live: live, blink: blink, bg: surface.Black}
	for _, opt := range opts {
		opt(d)
	}
	if d.demoSrc == nil {
		d.demoSrc = telemetry.NewSweep(nil, telemetry.DefaultSweepInterval)
	}
	return d
}

// Attach makes s the render target. A nil s detaches.
func (d *Dashboard) Attach(s surface.Surface) { d.target = surface.Attach(s) }

// Detach drops the render target; Render becomes a no-op.
func (d *Dashboard) Detach() { d.target = surface.Detached() }

// Attached reports whether Render will draw.
func (d *Dashboard) Attached() bool { return d.target.Attached() }

// SetDemo switches between live telemetry and the synthetic sweep. It is
// safe to call from another goroutine than Render.
func (d *Dashboard) SetDemo(on bool) { d.demo.Store(on) }

// Demo reports whether frames come from the synthetic sweep.
func (d *Dashboard) Demo() bool { return d.demo.Load() }

// ToggleDemo flips the mode and returns the new one.
func (d *Dashboard) ToggleDemo() bool {
	for {
		cur := d.demo.Load()
		if d.demo.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// Render draws one complete frame and presents it. Only the present error
// of the surface is returned. While detached nothing happens and the zero
// Frame is returned.
func (d *Dashboard) Render() (Frame, error) {
	if !d.target.Attached() {
		return Frame{}, nil
	}
	s := d.target

	s.Begin(d.bg)

	demo := d.demo.Load()
	src := d.live
	if demo {
		src = d.demoSrc
	}
	if src != nil {
		d.mirror = src.Snapshot()
	}
	v := d.mirror

	xres, yres := s.Size()
	l := LayoutFor(xres, yres)
	phase := d.blink.Phase()

	f := Frame{Phase: phase, Demo: demo, Snapshot: v}
	f.Oil = drawOil(s, l.Oil, v.OilWarning, phase)
	f.Glow = drawGlowPlug(s, l.Glow, v.GlowPlugOn)
	f.Speed = drawSpeed(s, l, v.Speed)
	f.Coolant = gauge.DrawLabeledBar(s, gauge.LabeledBar{
		Center:    l.Coolant,
		Height:    l.BarHeight,
		Value:     v.CoolantTemp,
		Range:     CoolantRange,
		Label:     "COOL",
		Threshold: CoolantThreshold,
	}, phase)
	f.Fuel = gauge.DrawLabeledBar(s, gauge.LabeledBar{
		Center:    l.Fuel,
		Height:    l.BarHeight,
		Value:     v.FuelLevel,
		Range:     FuelRange,
		Label:     "FUEL",
		Threshold: FuelThreshold,
	}, phase)

	return f, s.End()
}
