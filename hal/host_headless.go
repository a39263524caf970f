//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"
)

// ErrQuit is returned by an app step to stop a host runner cleanly.
var ErrQuit = errors.New("quit")

const defaultHz = 60

// RunConfig controls the host runners.
type RunConfig struct {
	Host HostConfig
	// Hz is the step rate.
	Hz int
	// Ticks stops a headless or terminal run after that many steps; 0 runs
	// until the context is done.
	Ticks uint64
	// Snapshot is a PNG path the final framebuffer is written to after a
	// headless run.
	Snapshot string
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Hz <= 0 {
		c.Hz = defaultHz
	}
	return c
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg RunConfig) error {
	cfg = cfg.withDefaults()

	h := New(cfg.Host).(*hostHAL)
	step := newApp(h)

	err := runTicker(ctx, cfg, step, nil)
	if cfg.Snapshot != "" {
		if serr := writePNG(cfg.Snapshot, h.fb); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

// runTicker calls step, then after (when set), cfg.Hz times per second.
func runTicker(ctx context.Context, cfg RunConfig, step func() error, after func()) error {
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			if after != nil {
				after()
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func writePNG(path string, fb *hostFramebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, fb.rgba()); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
