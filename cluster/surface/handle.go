package surface

// Handle is an attached-or-detached reference to a Surface.
//
// The zero Handle is detached: every call on it is a no-op and Size reports
// 0x0. This lets a renderer be built before the display is brought up.
type Handle struct {
	s Surface
}

// Attach returns a Handle bound to s. A nil s yields a detached Handle.
func Attach(s Surface) Handle {
	return Handle{s: s}
}

// Detached returns the detached Handle.
func Detached() Handle { return Handle{} }

// Attached reports whether calls reach a surface.
func (h Handle) Attached() bool { return h.s != nil }

// Surface returns the bound surface, or nil when detached.
func (h Handle) Surface() Surface { return h.s }

func (h Handle) Begin(bg Color) {
	if h.s == nil {
		return
	}
	h.s.Begin(bg)
}

func (h Handle) End() error {
	if h.s == nil {
		return nil
	}
	return h.s.End()
}

func (h Handle) Dot(x, y int, c Color) {
	if h.s == nil {
		return
	}
	h.s.Dot(x, y, c)
}

func (h Handle) FillRect(x, y, w, hgt int, c Color) {
	if h.s == nil {
		return
	}
	h.s.FillRect(x, y, w, hgt, c)
}

func (h Handle) SetCursor(x, y int) {
	if h.s == nil {
		return
	}
	h.s.SetCursor(x, y)
}

func (h Handle) SetTextColor(c Color) {
	if h.s == nil {
		return
	}
	h.s.SetTextColor(c)
}

func (h Handle) Print(text string) {
	if h.s == nil {
		return
	}
	h.s.Print(text)
}

func (h Handle) Size() (xres, yres int) {
	if h.s == nil {
		return 0, 0
	}
	return h.s.Size()
}
