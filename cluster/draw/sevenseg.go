package draw

import (
	"strconv"

	"ravodash/cluster/surface"
)

// Segments lists which of the seven strokes are lit, in the order
// A (top), B (upper right), C (lower right), D (bottom), E (lower left),
// F (upper left), G (middle).
type Segments [7]bool

const (
	SegA = iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
)

var digitSegments = [10]Segments{
	{true, true, true, true, true, true, false},     // 0
	{false, true, true, false, false, false, false}, // 1
	{true, true, false, true, true, false, true},    // 2
	{true, true, true, true, false, false, true},    // 3
	{false, true, true, false, false, true, true},   // 4
	{true, false, true, true, false, true, true},    // 5
	{true, false, true, true, true, true, true},     // 6
	{true, true, true, false, false, false, false},  // 7
	{true, true, true, true, true, true, true},      // 8
	{true, true, true, true, false, true, true},     // 9
}

// DigitSegments returns the segment mask for d. ok is false outside 0-9.
func DigitSegments(d int) (seg Segments, ok bool) {
	if d < 0 || d > 9 {
		return Segments{}, false
	}
	return digitSegments[d], true
}

// DigitCell is the horizontal advance of one digit at scale 1.
const DigitCell = 8

// Segment draws one stroke: 3*scale+1 long and scale thick.
func Segment(s surface.Surface, x, y, scale int, horizontal bool, c surface.Color) {
	if horizontal {
		s.FillRect(x, y, scale*3+1, scale, c)
		return
	}
	s.FillRect(x, y, scale, scale*3+1, c)
}

// Digit draws d with its top-left at (x, y). Digits outside 0-9 draw nothing.
func Digit(s surface.Surface, x, y, d, scale int, c surface.Color) {
	seg, ok := DigitSegments(d)
	if !ok {
		return
	}
	h := scale * 4
	v := scale
	if seg[SegA] {
		Segment(s, x+v, y, scale, true, c)
	}
	if seg[SegB] {
		Segment(s, x+h, y+v, scale, false, c)
	}
	if seg[SegC] {
		Segment(s, x+h, y+h+v, scale, false, c)
	}
	if seg[SegD] {
		Segment(s, x+v, y+h*2, scale, true, c)
	}
	if seg[SegE] {
		Segment(s, x, y+h+v, scale, false, c)
	}
	if seg[SegF] {
		Segment(s, x, y+v, scale, false, c)
	}
	if seg[SegG] {
		Segment(s, x+v, y+h, scale, true, c)
	}
}

// NumberBounds returns the left edge and width of the digit cells Number
// lays out for n around cx.
func NumberBounds(cx, n, scale int) (left, width int) {
	width = len(strconv.Itoa(n)) * DigitCell * scale
	return cx - width/2, width
}

// Number draws n in seven-segment digits centered on cx with its top at y.
// Characters other than 0-9 keep their cell but draw nothing.
func Number(s surface.Surface, cx, y, n, scale int, c surface.Color) {
	text := strconv.Itoa(n)
	left, _ := NumberBounds(cx, n, scale)
	cell := DigitCell * scale
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch < '0' || ch > '9' {
			continue
		}
		Digit(s, left+i*cell, y, int(ch-'0'), scale, c)
	}
}
