package telemetry

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepAdvancesOncePerInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewSweep(clock, 0)

	assert.Equal(t, Snapshot{}, s.Snapshot())

	clock.Advance(999 * time.Millisecond)
	s.Snapshot()
	assert.Equal(t, 0, s.Counter())

	clock.Advance(time.Millisecond)
	got := s.Snapshot()
	assert.Equal(t, 1, s.Counter())
	assert.Equal(t, SweepStep(1), got)

	// a long stall still moves one step per read
	clock.Advance(5 * time.Second)
	s.Snapshot()
	s.Snapshot()
	assert.Equal(t, 2, s.Counter())
}

func TestSweepStep(t *testing.T) {
	tests := []struct {
		n    int
		want Snapshot
	}{
		{1, Snapshot{Speed: 2, CoolantTemp: 70, FuelLevel: 8}},
		{6, Snapshot{Speed: 12, CoolantTemp: 120, FuelLevel: 48}},
		{7, Snapshot{Speed: 14, CoolantTemp: 69, FuelLevel: 56}},
		{10, Snapshot{Speed: 20, CoolantTemp: 99, FuelLevel: 80, OilWarning: true}},
		{13, Snapshot{Speed: 26, CoolantTemp: 68, FuelLevel: 3, OilWarning: true}},
		{15, Snapshot{Speed: 30, CoolantTemp: 88, FuelLevel: 19, OilWarning: true, GlowPlugOn: true}},
		{20, Snapshot{Speed: 40, CoolantTemp: 77, FuelLevel: 59, GlowPlugOn: true}},
		{101, Snapshot{Speed: 1, CoolantTemp: 94, FuelLevel: 0}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SweepStep(tc.n), "step %d", tc.n)
	}
}

func TestStoreUpdateIsAtomic(t *testing.T) {
	s := NewStore(Snapshot{FuelLevel: 50})
	assert.Equal(t, 50.0, s.Snapshot().FuelLevel)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(snap *Snapshot) { snap.Speed++ })
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	got := s.Snapshot()
	assert.Equal(t, 100.0, got.Speed)
	assert.Equal(t, 50.0, got.FuelLevel)

	s.Set(Snapshot{CoolantTemp: 90})
	assert.Equal(t, Snapshot{CoolantTemp: 90}, s.Snapshot())

	var zero Store
	assert.Equal(t, Snapshot{}, zero.Snapshot())
}

func TestStoreSetWaitsForUpdate(t *testing.T) {
	s := NewStore(Snapshot{})
	started := make(chan struct{})
	done := make(chan struct{})

	s.Update(func(snap *Snapshot) {
		go func() {
			close(started)
			s.Set(Snapshot{FuelLevel: 70})
			close(done)
		}()
		<-started
		select {
		case <-done:
			t.Error("Set completed while Update was running")
		case <-time.After(20 * time.Millisecond):
		}
		snap.Speed = 30
	})
	<-done

	got := s.Snapshot()
	require.Equal(t, 70.0, got.FuelLevel, "Set lands after the Update")
	assert.Zero(t, got.Speed)
}

func TestProviders(t *testing.T) {
	f := Fixed{Speed: 42}
	assert.Equal(t, 42.0, f.Snapshot().Speed)

	calls := 0
	p := ProviderFunc(func() Snapshot {
		calls++
		return Snapshot{FuelLevel: float64(calls)}
	})
	p.Snapshot()
	assert.Equal(t, 2.0, p.Snapshot().FuelLevel)
}

func TestSwitchString(t *testing.T) {
	assert.Equal(t, "oil-pressure", OilPressure.String())
	assert.Equal(t, "hazard", Hazard.String())
	assert.Equal(t, "switch(42)", Switch(42).String())
}
