package arc

import (
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

func pointsEqual(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

func TestBuild_Endpoints(t *testing.T) {
	e := DefaultEngine()
	kinds := []Kind{Straight, QuadGreatCircle, QuadGlobe, CubicGlobe, CubicParabolic}
	pairs := []struct {
		source, target Point
	}{
		{Pt(0, 0), Pt(100, 0)},
		{Pt(-40, 25), Pt(310, -12.5)},
		{Pt(3.25, 7), Pt(3.25, 7)},
	}
	for _, k := range kinds {
		for _, pr := range pairs {
			a := e.Build(pr.source, pr.target, k)
			// Endpoint equality is exact, not approximate: the Bernstein
			// form reproduces the inputs at t=0 and t=1 with no rounding.
			if got := a.PointAt(0); got != pr.source {
				t.Errorf("%v %v->%v: PointAt(0) = %v, want exactly %v", k, pr.source, pr.target, got, pr.source)
			}
			if got := a.PointAt(1); got != pr.target {
				t.Errorf("%v %v->%v: PointAt(1) = %v, want exactly %v", k, pr.source, pr.target, got, pr.target)
			}
		}
	}
}

func TestPointAt_StraightEndpointExact(t *testing.T) {
	// The p + t*(q-p) interpolation form drifts at t=1 for these pairs
	// (the second one collapses to (0,0) entirely); the degree-1 branch
	// must use the Bernstein form like the higher degrees do.
	e := DefaultEngine()
	pairs := []struct {
		source, target Point
	}{
		{Pt(16.1, 3.3), Pt(112.3, 77.7)},
		{Pt(1e16, 0), Pt(1, 0)},
	}
	for _, pr := range pairs {
		a := e.Build(pr.source, pr.target, Straight)
		if got := a.PointAt(1); got != pr.target {
			t.Errorf("%v->%v: PointAt(1) = %v, want exactly %v", pr.source, pr.target, got, pr.target)
		}
		if got := a.PointAt(0); got != pr.source {
			t.Errorf("%v->%v: PointAt(0) = %v, want exactly %v", pr.source, pr.target, got, pr.source)
		}
	}
}

func TestBuild_ControlPointCount(t *testing.T) {
	e := DefaultEngine()
	tests := []struct {
		kind Kind
		want int
	}{
		{Straight, 0},
		{QuadGreatCircle, 1},
		{QuadGlobe, 1},
		{CubicGlobe, 2},
		{CubicParabolic, 2},
	}
	for _, tt := range tests {
		a := e.Build(Pt(0, 0), Pt(100, 50), tt.kind)
		if len(a.Ctrl) != tt.want {
			t.Errorf("%v: %d control points, want %d", tt.kind, len(a.Ctrl), tt.want)
		}
	}
}

func TestHeightPolicy_Saturation(t *testing.T) {
	e := DefaultEngine()
	for _, k := range []Kind{QuadGreatCircle, QuadGlobe, CubicGlobe, CubicParabolic} {
		hp := e.Policy(k)
		if got := hp.Height(0); got != 0 {
			t.Errorf("%v: Height(0) = %v, want 0", k, got)
		}
		for _, d := range []float64{1, 50, 500, 5000, 1e9} {
			h := hp.Height(d)
			if h < 0 {
				t.Errorf("%v: Height(%v) = %v, negative", k, d, h)
			}
			if h > hp.Cap {
				t.Errorf("%v: Height(%v) = %v exceeds cap %v", k, d, h, hp.Cap)
			}
		}
		// Below saturation the height is exactly linear.
		small := hp.Cap / hp.Multiplier / 2
		if got, want := hp.Height(small), small*hp.Multiplier; math.Abs(got-want) > epsilon {
			t.Errorf("%v: Height(%v) = %v, want %v", k, small, got, want)
		}
	}
}

func TestPointAt_StraightMidpoint(t *testing.T) {
	e := DefaultEngine()
	a := e.Build(Pt(-10, 4), Pt(30, 24), Straight)
	want := Pt(10, 14)
	if got := a.PointAt(0.5); !pointsEqual(got, want, epsilon) {
		t.Errorf("PointAt(0.5) = %v, want %v", got, want)
	}
}

func TestPointAt_QuadraticExample(t *testing.T) {
	// source=(0,0), target=(100,0): distance 100, height min(30,150)=30,
	// control point (50,-30). At t=0.5 the quadratic Bezier evaluates to
	// 0.25*source + 0.5*control + 0.25*target = (50,-15).
	e := DefaultEngine()
	a := e.Build(Pt(0, 0), Pt(100, 0), QuadGreatCircle)
	if a.Height != 30 {
		t.Fatalf("Height = %v, want 30", a.Height)
	}
	if !pointsEqual(a.Ctrl[0], Pt(50, -30), epsilon) {
		t.Fatalf("control = %v, want (50,-30)", a.Ctrl[0])
	}
	if got := a.PointAt(0.5); !pointsEqual(got, Pt(50, -15), epsilon) {
		t.Errorf("PointAt(0.5) = %v, want (50,-15)", got)
	}
}

func TestPointAt_Degenerate(t *testing.T) {
	e := DefaultEngine()
	for _, k := range []Kind{Straight, QuadGreatCircle, CubicParabolic} {
		a := e.Build(Pt(10, 10), Pt(10, 10), k)
		if a.Height != 0 {
			t.Errorf("%v: Height = %v, want 0", k, a.Height)
		}
		for _, tv := range []float64{0, 0.25, 0.5, 0.75, 1} {
			if got := a.PointAt(tv); !pointsEqual(got, Pt(10, 10), epsilon) {
				t.Errorf("%v: PointAt(%v) = %v, want (10,10)", k, tv, got)
			}
		}
	}
}

func TestPointAt_NoClamping(t *testing.T) {
	e := DefaultEngine()
	a := e.Build(Pt(0, 0), Pt(100, 0), Straight)
	if got := a.PointAt(1.5); !pointsEqual(got, Pt(150, 0), epsilon) {
		t.Errorf("PointAt(1.5) = %v, want extrapolated (150,0)", got)
	}
	if got := a.PointAt(-0.5); !pointsEqual(got, Pt(-50, 0), epsilon) {
		t.Errorf("PointAt(-0.5) = %v, want extrapolated (-50,0)", got)
	}
}

func TestPointAt_Continuity(t *testing.T) {
	e := DefaultEngine()
	for _, k := range []Kind{Straight, QuadGreatCircle, QuadGlobe, CubicGlobe, CubicParabolic} {
		a := e.Build(Pt(0, 0), Pt(400, 120), k)
		const steps = 1000
		// A generous per-step bound: total length over steps, with slack for
		// curvature.
		bound := 4 * a.Length(0) / steps
		prev := a.PointAt(0)
		for i := 1; i <= steps; i++ {
			p := a.PointAt(float64(i) / steps)
			if d := prev.Distance(p); d > bound {
				t.Fatalf("%v: step %d jumped %v (> %v)", k, i, d, bound)
			}
			prev = p
		}
	}
}

func TestPointAt_QuadraticReversalSymmetry(t *testing.T) {
	// Quadratic control-point construction is symmetric in the endpoints,
	// so sampling the reversed pair at 1-t lands on the same point. The
	// cubic construction happens to be symmetric too, but that is not a
	// guarantee, so only straight and quadratic kinds are asserted.
	e := DefaultEngine()
	for _, k := range []Kind{Straight, QuadGreatCircle, QuadGlobe} {
		fwd := e.Build(Pt(12, -3), Pt(250, 80), k)
		rev := e.Build(Pt(250, 80), Pt(12, -3), k)
		for _, tv := range []float64{0, 0.1, 0.33, 0.5, 0.77, 1} {
			a := fwd.PointAt(tv)
			b := rev.PointAt(1 - tv)
			if !pointsEqual(a, b, 1e-9) {
				t.Errorf("%v: forward(%v)=%v, reversed(%v)=%v", k, tv, a, 1-tv, b)
			}
		}
	}
}

func TestBuild_HeightRoundTrip(t *testing.T) {
	// Re-deriving the height from the stored quadratic control point matches
	// the policy computation exactly.
	e := DefaultEngine()
	src, dst := Pt(20, 40), Pt(340, 90)
	for _, k := range []Kind{QuadGreatCircle, QuadGlobe} {
		a := e.Build(src, dst, k)
		mid := src.Midpoint(dst)
		rederived := mid.Y - a.Ctrl[0].Y
		want := e.Policy(k).Height(src.Distance(dst))
		if math.Abs(rederived-want) > epsilon {
			t.Errorf("%v: rederived height %v, want %v", k, rederived, want)
		}
	}
}

func TestBuild_CubicControlPoints(t *testing.T) {
	e := DefaultEngine()
	src, dst := Pt(0, 0), Pt(200, 0)
	a := e.Build(src, dst, CubicGlobe)
	// distance 200, height min(200*0.6, 300) = 120, lift 0.3*120 = 36.
	if a.Height != 120 {
		t.Fatalf("Height = %v, want 120", a.Height)
	}
	if !pointsEqual(a.Ctrl[0], Pt(50, -36), epsilon) {
		t.Errorf("cp1 = %v, want (50,-36)", a.Ctrl[0])
	}
	if !pointsEqual(a.Ctrl[1], Pt(150, -36), epsilon) {
		t.Errorf("cp2 = %v, want (150,-36)", a.Ctrl[1])
	}
}

func TestNewEngine_Overrides(t *testing.T) {
	e := NewEngine(map[Kind]HeightPolicy{
		QuadGlobe: {Multiplier: 0.6, Cap: 300},
	})
	if got := e.Policy(QuadGlobe); got.Multiplier != 0.6 || got.Cap != 300 {
		t.Errorf("override not applied: %+v", got)
	}
	if got := e.Policy(QuadGreatCircle); got.Multiplier != 0.3 || got.Cap != 150 {
		t.Errorf("default disturbed: %+v", got)
	}
}

func TestLength(t *testing.T) {
	e := DefaultEngine()
	straight := e.Build(Pt(0, 0), Pt(100, 0), Straight)
	if got := straight.Length(0); math.Abs(got-100) > epsilon {
		t.Errorf("straight Length = %v, want 100", got)
	}
	// A curved arc is strictly longer than the chord, and sampling resolution
	// converges from below.
	curved := e.Build(Pt(0, 0), Pt(100, 0), QuadGreatCircle)
	coarse := curved.Length(8)
	fine := curved.Length(256)
	if coarse <= 100 {
		t.Errorf("curved Length(8) = %v, want > chord 100", coarse)
	}
	if fine < coarse {
		t.Errorf("Length(256)=%v < Length(8)=%v, approximation should converge from below", fine, coarse)
	}
}

func TestPath(t *testing.T) {
	e := DefaultEngine()
	tests := []struct {
		kind Kind
		want string
	}{
		{Straight, "M 0 0 L 100 0"},
		{QuadGreatCircle, "M 0 0 Q 50 -30 100 0"},
		{CubicGlobe, "M 0 0 C 25 -18 75 -18 100 0"},
	}
	for _, tt := range tests {
		a := e.Build(Pt(0, 0), Pt(100, 0), tt.kind)
		if got := a.Path(); got != tt.want {
			t.Errorf("%v: Path() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPath_NonFinitePropagates(t *testing.T) {
	e := DefaultEngine()
	a := e.Build(Pt(math.NaN(), 0), Pt(100, 0), QuadGreatCircle)
	p := a.PointAt(0.5)
	if !math.IsNaN(p.X) {
		t.Errorf("NaN input did not propagate: %v", p)
	}
	if !strings.Contains(a.Path(), "NaN") {
		t.Errorf("descriptor hid the NaN: %q", a.Path())
	}
}
