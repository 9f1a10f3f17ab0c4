package ring

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

// angles are in screen degrees: 0 is 3 o'clock and values grow clockwise
// because y points down. the ring starts at 12 o'clock.
const (
	startAngle = 270.0
	fullSweep  = 360.0
	thickness  = 3
)

// traceArc draws thickness concentric arcs, each sweeping the given number of
// degrees clockwise from the top.
func traceArc(canvas *drawille.Canvas, cx, cy, radius int, sweep float64) {
	end := startAngle + sweep
	for t := range thickness {
		if r := radius - t; r > 0 {
			circle(canvas, cx, cy, r, func(px, py int) bool {
				return within(angleOf(cx, cy, px, py), startAngle, end)
			})
		}
	}
}

// circle walks one radius with the midpoint algorithm and sets every
// symmetric point that keep accepts.
// see: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func circle(canvas *drawille.Canvas, cx, cy, r int, keep func(x, y int) bool) {
	x, y := r, 0
	d := 1 - r

	for x >= y {
		for _, p := range [8][2]int{
			{cx + x, cy - y}, {cx + y, cy - x},
			{cx - y, cy - x}, {cx - x, cy - y},
			{cx - x, cy + y}, {cx - y, cy + x},
			{cx + y, cy + x}, {cx + x, cy + y},
		} {
			if keep(p[0], p[1]) {
				canvas.Set(p[0], p[1])
			}
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// angleOf returns the screen angle of (px, py) around (cx, cy) in [0, 360).
func angleOf(cx, cy, px, py int) float64 {
	a := math.Atan2(float64(py-cy), float64(px-cx)) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}

// within reports whether angle lies on the arc [start, end]. end may exceed
// 360 when the arc wraps past 3 o'clock.
func within(angle, start, end float64) bool {
	if end > 360 {
		return angle >= start || angle <= end-360
	}
	return angle >= start && angle <= end
}
