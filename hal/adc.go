package hal

import (
	"math"
	"time"
)

// ADC provides analog input channels.
//
// Implementations may return nil if there is no converter.
type ADC interface {
	ChannelCount() int
	Channel(id int) ADCChannel
}

// ADCChannel is one analog input.
type ADCChannel interface {
	Name() string
	// Max is the full-scale raw reading, 1023 for a 10-bit converter.
	Max() uint16
	Read() (raw uint16, err error)
}

// FindChannel returns the channel of a called name, or nil.
func FindChannel(a ADC, name string) ADCChannel {
	if a == nil {
		return nil
	}
	for i := 0; i < a.ChannelCount(); i++ {
		if ch := a.Channel(i); ch != nil && ch.Name() == name {
			return ch
		}
	}
	return nil
}

type channelBank []*rampChannel

func (b channelBank) ChannelCount() int { return len(b) }

func (b channelBank) Channel(id int) ADCChannel {
	if id < 0 || id >= len(b) {
		return nil
	}
	return b[id]
}

// triangleWave moves from `from` to `to` over the first half of every
// period and back over the second half.
type triangleWave struct {
	t0       time.Time
	now      func() time.Time
	period   time.Duration
	from, to float64
}

func (w triangleWave) at() float64 {
	half := w.period / 2
	if half <= 0 || w.now == nil {
		return w.from
	}
	elapsed := w.now().Sub(w.t0)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	phase := elapsed % (2 * half)
	if phase > half {
		phase = 2*half - phase
	}
	return w.from + (w.to-w.from)*float64(phase)/float64(half)
}

// rampChannel is a simulated analog input following a triangle wave in raw
// converter counts.
type rampChannel struct {
	name string
	max  uint16
	wave triangleWave
}

func (c *rampChannel) Name() string { return c.name }
func (c *rampChannel) Max() uint16  { return c.max }

func (c *rampChannel) Read() (uint16, error) {
	v := math.Round(c.wave.at())
	if v < 0 {
		v = 0
	}
	if v > float64(c.max) {
		v = float64(c.max)
	}
	return uint16(v), nil
}
