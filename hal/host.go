//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Host pin names.
const (
	PinLED       = "LED"
	PinOilSw     = "OILSW"
	PinGlow      = "GLOW"
	PinDRL       = "DRL"
	PinLowBeam   = "LOBEAM"
	PinHighBeam  = "HIBEAM"
	PinLeftTurn  = "LTURN"
	PinRightTurn = "RTURN"
	PinHazard    = "HAZARD"
)

// Host analog channel names.
const (
	ChanCoolant = "COOLANT"
	ChanFuel    = "FUEL"
	ChanBattery = "VBATT"
)

// HostConfig sizes and wires the host HAL.
type HostConfig struct {
	// Width and Height are the framebuffer size in pixels.
	Width  int
	Height int
	// Logger receives HAL log lines; stdout when nil.
	Logger Logger
	// Clock drives the simulated inputs; the real clock when nil.
	Clock clockwork.Clock
}

const (
	defaultHostWidth  = 320
	defaultHostHeight = 240
)

type hostHAL struct {
	logger Logger
	led    *hostLED
	gpio   pinBank
	adc    channelBank
	fb     *hostFramebuffer
	kbd    *hostKeyboard
}

// New returns a host HAL implementation.
//
// The LED pin drives the same lamp as LED(). Every other pin and channel
// simulates a vehicle input on the configured clock:
//
//	OILSW   pull-up switch, grounded 6 s of every 20 s (low oil pressure)
//	GLOW    relay, energized 10 s of every 30 s
//	DRL     pull-up switch, always grounded
//	LOBEAM  pull-up switch, grounded 30 s of every 60 s
//	HIBEAM  pull-up switch, grounded 10 s of every 60 s
//	LTURN   pull-up switch, grounded 6 s of every 45 s
//	RTURN   pull-up switch, grounded 6 s of every 50 s
//	HAZARD  pull-up switch, grounded 10 s of every 90 s
//	COOLANT 10-bit LM35, 176..200 counts (about 86..98 C) over 40 s
//	FUEL    10-bit sender, full to 61 counts and back over 120 s
//	VBATT   12-bit divider, 3600..3900 counts over 20 s
func New(cfg HostConfig) HAL {
	if cfg.Width <= 0 {
		cfg.Width = defaultHostWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHostHeight
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = &hostLogger{w: os.Stdout}
	}

	now := cfg.Clock.Now
	t0 := now()
	square := func(period, high time.Duration) squareWave {
		return squareWave{t0: t0, now: now, period: period, high: high}
	}
	triangle := func(period time.Duration, from, to float64) triangleWave {
		return triangleWave{t0: t0, now: now, period: period, from: from, to: to}
	}
	const s = time.Second

	led := &hostLED{logger: logger}
	return &hostHAL{
		logger: logger,
		led:    led,
		gpio: pinBank{
			outputPin(PinLED, led.set),
			inputPin(PinOilSw, GPIOCapPullUp, square(20*s, 14*s)),
			inputPin(PinGlow, GPIOCapPullDown, square(30*s, 10*s)),
			inputPin(PinDRL, GPIOCapPullUp, square(0, 0)),
			inputPin(PinLowBeam, GPIOCapPullUp, square(60*s, 30*s)),
			inputPin(PinHighBeam, GPIOCapPullUp, square(60*s, 50*s)),
			inputPin(PinLeftTurn, GPIOCapPullUp, square(45*s, 39*s)),
			inputPin(PinRightTurn, GPIOCapPullUp, square(50*s, 44*s)),
			inputPin(PinHazard, GPIOCapPullUp, square(90*s, 80*s)),
		},
		adc: channelBank{
			{name: ChanCoolant, max: 1023, wave: triangle(40*s, 176, 200)},
			{name: ChanFuel, max: 1023, wave: triangle(120*s, 1023, 61)},
			{name: ChanBattery, max: 4095, wave: triangle(20*s, 3600, 3900)},
		},
		fb:  newHostFramebuffer(cfg.Width, cfg.Height),
		kbd: newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) ADC() ADC         { return h.adc }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostLED logs lamp transitions only.
type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger Logger
}

func (l *hostLED) High() { l.set(true) }
func (l *hostLED) Low()  { l.set(false) }

func (l *hostLED) set(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on == on {
		return
	}
	l.on = on
	if on {
		l.logger.WriteLineString("led: HIGH")
	} else {
		l.logger.WriteLineString("led: LOW")
	}
}

func (l *hostLED) isOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
