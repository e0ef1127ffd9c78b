package anim

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-12

func TestEasing_Endpoints(t *testing.T) {
	for name, e := range map[string]Easing{
		"linear":    Linear,
		"inOutQuad": InOutQuad,
		"outCubic":  OutCubic,
		"inOutSine": InOutSine,
	} {
		if got := e(0); math.Abs(got) > epsilon {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := e(1); math.Abs(got-1) > epsilon {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEasing_Monotonic(t *testing.T) {
	for name, e := range map[string]Easing{
		"linear":    Linear,
		"inOutQuad": InOutQuad,
		"outCubic":  OutCubic,
		"inOutSine": InOutSine,
	} {
		prev := e(0)
		for i := 1; i <= 100; i++ {
			v := e(float64(i) / 100)
			if v < prev-epsilon {
				t.Errorf("%s not monotonic at t=%v: %v < %v", name, float64(i)/100, v, prev)
				break
			}
			prev = v
		}
	}
}

func TestInOutQuad_Midpoint(t *testing.T) {
	if got := InOutQuad(0.5); math.Abs(got-0.5) > epsilon {
		t.Errorf("InOutQuad(0.5) = %v, want 0.5", got)
	}
}

func TestProgress(t *testing.T) {
	start := time.Unix(100, 0)
	d := 2 * time.Second
	tests := []struct {
		now  time.Time
		want float64
	}{
		{start, 0},
		{start.Add(time.Second), 0.5},
		{start.Add(2 * time.Second), 1},
		{start.Add(3 * time.Second), 1.5}, // not clamped
		{start.Add(-time.Second), -0.5},   // not clamped
	}
	for _, tt := range tests {
		if got := Progress(start, d, tt.now); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Progress at %v = %v, want %v", tt.now.Sub(start), got, tt.want)
		}
	}
	if got := Progress(start, 0, start); got != 1 {
		t.Errorf("zero duration Progress = %v, want 1", got)
	}
}

func TestFlight_Phases(t *testing.T) {
	epoch := time.Unix(1000, 0)
	f := NewFlight(epoch, Timing{
		Delay:  time.Second,
		Flight: 2 * time.Second,
		Impact: time.Second,
		Dwell:  time.Second,
	})
	tests := []struct {
		offset    time.Duration
		wantPhase Phase
		wantProg  float64
	}{
		{0, PhaseWaiting, 0},
		{500 * time.Millisecond, PhaseWaiting, 0.5},
		{time.Second, PhaseFlying, 0},
		{2 * time.Second, PhaseFlying, 0.5},
		{3500 * time.Millisecond, PhaseImpact, 0.5},
		{4500 * time.Millisecond, PhaseDwell, 0.5},
		// One full cycle later the flight has relaunched.
		{5*time.Second + 2*time.Second, PhaseFlying, 0.5},
		{50*time.Second + 1500*time.Millisecond, PhaseFlying, 0.25},
	}
	for _, tt := range tests {
		phase, prog := f.At(epoch.Add(tt.offset))
		if phase != tt.wantPhase || math.Abs(prog-tt.wantProg) > epsilon {
			t.Errorf("At(+%v) = %v %v, want %v %v", tt.offset, phase, prog, tt.wantPhase, tt.wantProg)
		}
	}
}

func TestFlight_BeforeEpoch(t *testing.T) {
	epoch := time.Unix(1000, 0)
	f := NewFlight(epoch, Timing{Flight: time.Second, Dwell: time.Second})
	phase, prog := f.At(epoch.Add(-time.Minute))
	if phase != PhaseWaiting || prog != 0 {
		t.Errorf("before epoch: %v %v, want waiting 0", phase, prog)
	}
}

func TestFlight_ZeroCycle(t *testing.T) {
	f := NewFlight(time.Unix(0, 0), Timing{})
	phase, _ := f.At(time.Unix(5, 0))
	if phase != PhaseDwell {
		t.Errorf("zero cycle phase = %v, want dwell", phase)
	}
}

func TestTiming_Cycle(t *testing.T) {
	tm := Timing{Delay: time.Second, Flight: 2 * time.Second, Impact: 500 * time.Millisecond, Dwell: 500 * time.Millisecond}
	if got := tm.Cycle(); got != 4*time.Second {
		t.Errorf("Cycle = %v, want 4s", got)
	}
}
