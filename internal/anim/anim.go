// Package anim provides easing curves and the per-attack flight lifecycle.
// Everything here is a pure function of wall-clock time: there are no
// internal timers or goroutines. The TUI owns the one frame tick and asks
// each flight where it stands; stopping the animation is simply the program
// ceasing to tick.
package anim

import (
	"math"
	"time"
)

// An Easing remaps linear progress in [0,1]. Eased values may overshoot the
// interval near the edges of some curves; downstream geometry samplers
// deliberately do not clamp, so easing bugs surface visually instead of
// being masked.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// InOutQuad accelerates through the first half and decelerates through the
// second, the classic flight feel.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// OutCubic decelerates hard toward the end; used for impact pulses.
func OutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// InOutSine is a gentle symmetric curve.
func InOutSine(t float64) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}

// Progress returns raw linear progress of now through a window starting at
// start with the given duration. Not clamped.
func Progress(start time.Time, d time.Duration, now time.Time) float64 {
	if d <= 0 {
		return 1
	}
	return float64(now.Sub(start)) / float64(d)
}
