package gauge

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultBlinkPeriod is how long a critical gauge stays on (and off).
const DefaultBlinkPeriod = 300 * time.Millisecond

// Blinker derives the on/off phase shared by all critical gauges.
type Blinker struct {
	clock  clockwork.Clock
	origin time.Time
	period time.Duration
}

// NewBlinker starts a blinker at the clock's current time. A nil clock uses
// the real clock; a non-positive period uses DefaultBlinkPeriod.
func NewBlinker(clock clockwork.Clock, period time.Duration) *Blinker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if period <= 0 {
		period = DefaultBlinkPeriod
	}
	return &Blinker{clock: clock, origin: clock.Now(), period: period}
}

// Period is the length of one visible or hidden half-cycle.
func (b *Blinker) Period() time.Duration { return b.period }

// Phase reports whether critical gauges are lit right now.
func (b *Blinker) Phase() bool {
	elapsed := b.clock.Since(b.origin)
	if elapsed < 0 {
		elapsed = 0
	}
	return (elapsed/b.period)%2 == 0
}

// Visible reports whether a gauge with the given criticality is drawn now.
func (b *Blinker) Visible(critical bool) bool {
	return Visible(critical, b.Phase())
}

// Visible applies an already sampled phase. Non-critical gauges are always
// visible.
func Visible(critical, phase bool) bool {
	return !critical || phase
}
