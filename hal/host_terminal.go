//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/nsf/termbox-go"
)

// grayLevels is the size of termbox's grayscale ramp (attributes 1..26).
const grayLevels = 26

// RunTerminal renders the framebuffer into the terminal with half-block
// cells, two framebuffer rows per character. Keys are forwarded to the
// keyboard; Ctrl-C quits.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg RunConfig) error {
	cfg = cfg.withDefaults()

	if err := termbox.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputGrayscale)

	h := New(cfg.Host).(*hostHAL)
	step := newApp(h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for {
			ev := termbox.PollEvent()
			switch ev.Type {
			case termbox.EventInterrupt, termbox.EventError:
				return
			case termbox.EventKey:
				if ev.Key == termbox.KeyCtrlC {
					cancel()
					return
				}
				if kev, ok := terminalKey(ev); ok {
					h.kbd.push(kev)
				}
			}
		}
	}()
	// unblock PollEvent on the way out
	defer termbox.Interrupt()

	tr := &terminalRenderer{fb: h.fb}
	err := runTicker(ctx, cfg, step, tr.draw)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func terminalKey(ev termbox.Event) (KeyEvent, bool) {
	switch {
	case ev.Key == termbox.KeyEsc:
		return KeyEvent{Code: KeyEscape, Press: true}, true
	case ev.Key == termbox.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case ev.Ch != 0:
		return KeyEvent{Press: true, Rune: ev.Ch}, true
	case ev.Key == termbox.KeySpace:
		return KeyEvent{Press: true, Rune: ' '}, true
	}
	return KeyEvent{}, false
}

type terminalRenderer struct {
	fb      *hostFramebuffer
	img     *image.RGBA
	scratch []byte
}

func (r *terminalRenderer) draw() {
	fb := r.fb
	if r.img == nil {
		r.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		r.scratch = make([]byte, len(fb.buf))
	}
	fb.snapshotRGBA(r.img, r.scratch)

	tw, th := termbox.Size()
	if tw <= 0 || th <= 0 {
		return
	}
	rows := th * 2
	for cy := 0; cy < th; cy++ {
		for cx := 0; cx < tw; cx++ {
			x := cx * fb.width / tw
			top := cellGray(r.img, x, (cy*2)*fb.height/rows)
			bottom := cellGray(r.img, x, (cy*2+1)*fb.height/rows)
			termbox.SetCell(cx, cy, '▀', top, bottom)
		}
	}
	termbox.Flush()
}

func cellGray(img *image.RGBA, x, y int) termbox.Attribute {
	g := img.RGBAAt(x, y).G
	return termbox.Attribute(1 + int(g)*(grayLevels-1)/255)
}
