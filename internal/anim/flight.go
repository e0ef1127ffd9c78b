package anim

import "time"

// Phase is where a flight currently stands in its cycle.
type Phase int

const (
	// PhaseWaiting is the staggered launch delay before the arc appears.
	PhaseWaiting Phase = iota
	// PhaseFlying is the particle traveling source to target.
	PhaseFlying
	// PhaseImpact is the expanding pulse at the target after arrival.
	PhaseImpact
	// PhaseDwell is the quiet gap before the cycle repeats.
	PhaseDwell
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseFlying:
		return "flying"
	case PhaseImpact:
		return "impact"
	case PhaseDwell:
		return "dwell"
	}
	return "unknown"
}

// Timing holds the four window lengths of one flight cycle.
type Timing struct {
	Delay  time.Duration
	Flight time.Duration
	Impact time.Duration
	Dwell  time.Duration
}

// Cycle returns the total cycle length.
func (t Timing) Cycle() time.Duration {
	return t.Delay + t.Flight + t.Impact + t.Dwell
}

// Flight is the animation state of one attack record. It is a value: the
// phase at any instant is a pure function of the epoch and the clock, so the
// cycle loops forever without mutating anything and freezes cleanly when the
// caller stops advancing the clock (pause is just a withheld tick).
type Flight struct {
	Epoch  time.Time
	Timing Timing
}

// NewFlight starts a flight cycle at epoch with the given timing.
func NewFlight(epoch time.Time, timing Timing) Flight {
	return Flight{Epoch: epoch, Timing: timing}
}

// At returns the phase and the progress within that phase at the given
// instant. Progress is linear in [0,1); callers apply their own easing
// before sampling geometry. Instants before the epoch report PhaseWaiting
// with zero progress.
func (f Flight) At(now time.Time) (Phase, float64) {
	cycle := f.Timing.Cycle()
	if cycle <= 0 {
		return PhaseDwell, 0
	}
	elapsed := now.Sub(f.Epoch)
	if elapsed < 0 {
		return PhaseWaiting, 0
	}
	elapsed %= cycle

	if elapsed < f.Timing.Delay {
		return PhaseWaiting, window(elapsed, f.Timing.Delay)
	}
	elapsed -= f.Timing.Delay
	if elapsed < f.Timing.Flight {
		return PhaseFlying, window(elapsed, f.Timing.Flight)
	}
	elapsed -= f.Timing.Flight
	if elapsed < f.Timing.Impact {
		return PhaseImpact, window(elapsed, f.Timing.Impact)
	}
	elapsed -= f.Timing.Impact
	return PhaseDwell, window(elapsed, f.Timing.Dwell)
}

func window(elapsed, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(elapsed) / float64(d)
}
