package telemetry

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultSweepInterval is how often the demo sweep advances.
const DefaultSweepInterval = time.Second

// Sweep is a synthetic Provider that walks every gauge through its domain,
// for checking the display without a vehicle attached.
type Sweep struct {
	clock    clockwork.Clock
	interval time.Duration
	last     time.Time
	counter  int
	cur      Snapshot
}

// NewSweep returns a sweep that advances one step per interval of clock
// time. Readings start at zero.
func NewSweep(clock clockwork.Clock, interval time.Duration) *Sweep {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweep{clock: clock, interval: interval, last: clock.Now()}
}

// Snapshot advances at most one step if the interval has elapsed, then
// returns the current synthetic readings.
func (s *Sweep) Snapshot() Snapshot {
	now := s.clock.Now()
	if now.Sub(s.last) >= s.interval {
		s.last = now
		s.counter++
		s.cur = SweepStep(s.counter)
	}
	return s.cur
}

// Counter is the number of steps taken so far.
func (s *Sweep) Counter() int { return s.counter }

// SweepStep returns the synthetic readings for step n.
func SweepStep(n int) Snapshot {
	return Snapshot{
		Speed:       float64((n * 2) % 201),
		CoolantTemp: float64(60 + (n*10)%61),
		FuelLevel:   float64((n * 8) % 101),
		OilWarning:  (n/10)%2 == 1,
		GlowPlugOn:  (n/15)%2 == 1,
	}
}
