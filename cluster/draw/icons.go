package draw

import "ravodash/cluster/surface"

// OilCan draws the oil-pressure icon centered on (cx, cy). Highlights are
// always white.
func OilCan(s surface.Surface, cx, cy int, c surface.Color) {
	// body, spout, handle
	s.FillRect(cx-8, cy-6, 16, 12, c)
	s.FillRect(cx+8, cy-4, 6, 8, c)
	s.FillRect(cx-6, cy-8, 12, 2, c)

	// drop under the spout
	for y := 0; y < 6; y++ {
		for x := -y; x <= y; x++ {
			s.Dot(cx+10+x, cy+10+y, c)
		}
	}

	s.FillRect(cx-6, cy-4, 2, 2, surface.White)
	s.FillRect(cx+10, cy-2, 2, 2, surface.White)
}

// GlowPlug draws the glow-plug icon centered on (cx, cy).
func GlowPlug(s surface.Surface, cx, cy int, c surface.Color) {
	s.FillRect(cx-3, cy-8, 6, 16, c)
	s.FillRect(cx-4, cy-10, 8, 4, c)

	// heating coil
	s.FillRect(cx-2, cy-4, 4, 2, c)
	s.FillRect(cx-1, cy-1, 2, 2, c)
	s.FillRect(cx-2, cy+2, 4, 2, c)

	s.FillRect(cx-4, cy+8, 8, 2, c)

	for _, p := range [...][2]int{{-6, -6}, {6, -6}, {-6, 6}, {6, 6}, {0, 0}} {
		s.Dot(cx+p[0], cy+p[1], surface.White)
	}
}
