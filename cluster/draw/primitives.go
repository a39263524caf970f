// Package draw holds the pixel-space primitives the gauges are built from:
// lines, circles, seven-segment numerals and the indicator icons.
//
// Every routine writes through a surface.Surface and relies on it to clip.
package draw

import (
	"math"

	"ravodash/cluster/surface"
)

// Line draws a Bresenham line from (x0, y0) to (x1, y1), both ends included.
func Line(s surface.Surface, x0, y0, x1, y1 int, c surface.Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		s.Dot(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills every pixel within r of (cx, cy).
func FillCircle(s surface.Surface, cx, cy, r int, c surface.Color) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				s.Dot(cx+x, cy+y, c)
			}
		}
	}
}

// Circle traces a circle outline with one dot per degree.
func Circle(s surface.Surface, cx, cy, r int, c surface.Color) {
	for deg := 0; deg < 360; deg++ {
		x, y := Polar(cx, cy, float64(r), float64(deg))
		s.Dot(x, y, c)
	}
}

// FillRect is a pass-through to the surface.
func FillRect(s surface.Surface, x, y, w, h int, c surface.Color) {
	s.FillRect(x, y, w, h, c)
}

// Polar returns the pixel at angle deg (screen convention, y grows down)
// and distance r from (cx, cy). Coordinates truncate toward zero.
func Polar(cx, cy int, r, deg float64) (x, y int) {
	rad := deg * math.Pi / 180
	return int(float64(cx) + math.Cos(rad)*r), int(float64(cy) + math.Sin(rad)*r)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
