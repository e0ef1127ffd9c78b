// Package arc computes curved flight paths between projected 2D points and
// samples positions along them. It is the geometry kernel shared by every
// rendering surface: callers project geographic coordinates to planar points,
// build an Arc, and then sample PointAt per animation frame.
//
// The package is pure and stateless. Arcs are values: whenever the projection
// changes (zoom, pan, resize), callers rebuild their arcs from the new
// projected endpoints rather than transforming old ones.
package arc

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects the curve family for an arc.
type Kind int

const (
	// Straight is a plain line segment, no control points.
	Straight Kind = iota
	// QuadGreatCircle is a shallow quadratic arc, the default flight style.
	QuadGreatCircle
	// QuadGlobe is a slightly taller quadratic arc.
	QuadGlobe
	// CubicGlobe is a cubic arc with two control points.
	CubicGlobe
	// CubicParabolic is the tallest cubic arc.
	CubicParabolic

	numKinds = int(CubicParabolic) + 1
)

func (k Kind) String() string {
	switch k {
	case Straight:
		return "straight"
	case QuadGreatCircle:
		return "quad-great-circle"
	case QuadGlobe:
		return "quad-globe"
	case CubicGlobe:
		return "cubic-globe"
	case CubicParabolic:
		return "cubic-parabolic"
	}
	return "unknown"
}

// Degree returns the polynomial degree of the curve family.
func (k Kind) Degree() int {
	switch k {
	case Straight:
		return 1
	case QuadGreatCircle, QuadGlobe:
		return 2
	case CubicGlobe, CubicParabolic:
		return 3
	}
	return 1
}

// HeightPolicy maps planar distance to arc height: a saturating linear
// function, min(d*Multiplier, Cap). Height is never negative and never
// unbounded.
type HeightPolicy struct {
	Multiplier float64
	Cap        float64
}

// Height returns the arc height for a source/target distance d.
func (hp HeightPolicy) Height(d float64) float64 {
	return math.Min(d*hp.Multiplier, hp.Cap)
}

// Engine builds arcs. The per-kind height constants are configuration rather
// than hard-coded values: different surfaces historically used different
// multiplier/cap pairs for the same kind name.
type Engine struct {
	policies [numKinds]HeightPolicy
}

// DefaultEngine returns an engine with the default height table.
func DefaultEngine() Engine {
	var e Engine
	e.policies[QuadGreatCircle] = HeightPolicy{Multiplier: 0.3, Cap: 150}
	e.policies[QuadGlobe] = HeightPolicy{Multiplier: 0.4, Cap: 200}
	e.policies[CubicGlobe] = HeightPolicy{Multiplier: 0.6, Cap: 300}
	e.policies[CubicParabolic] = HeightPolicy{Multiplier: 0.8, Cap: 400}
	return e
}

// NewEngine returns an engine with the default table, with any entries in
// overrides replacing the defaults for their kind.
func NewEngine(overrides map[Kind]HeightPolicy) Engine {
	e := DefaultEngine()
	for k, hp := range overrides {
		if int(k) >= 0 && int(k) < numKinds {
			e.policies[k] = hp
		}
	}
	return e
}

// Policy returns the height policy for a kind.
func (e Engine) Policy(k Kind) HeightPolicy {
	if int(k) < 0 || int(k) >= numKinds {
		return HeightPolicy{}
	}
	return e.policies[k]
}

// Arc is a built curve between two projected points. It is immutable; callers
// rebuild arcs whenever the projection changes.
type Arc struct {
	Source Point
	Target Point
	Kind   Kind

	// Ctrl holds the derived control points: empty for Straight, one point
	// for quadratic kinds, two for cubic kinds.
	Ctrl []Point

	// Height is the arc height used to place the control points.
	Height float64
}

// Build constructs an arc between source and target. It is total: degenerate
// input (source == target) yields a zero-height, zero-length arc, and
// non-finite coordinates propagate through rather than being guarded here.
func (e Engine) Build(source, target Point, kind Kind) Arc {
	a := Arc{Source: source, Target: target, Kind: kind}
	if kind == Straight {
		return a
	}

	d := source.Distance(target)
	h := e.Policy(kind).Height(d)
	mid := source.Midpoint(target)
	a.Height = h

	switch kind.Degree() {
	case 2:
		// One control point at the midpoint, lifted by the full height.
		// Screen space grows downward, so "up" is -Y.
		a.Ctrl = []Point{{X: mid.X, Y: mid.Y - h}}
	case 3:
		// Two control points, each blended halfway toward the midpoint and
		// lifted by 30% of the height.
		cp1 := source.Lerp(mid, 0.5)
		cp1.Y -= 0.3 * h
		cp2 := target.Lerp(mid, 0.5)
		cp2.Y -= 0.3 * h
		a.Ctrl = []Point{cp1, cp2}
	}
	return a
}

// PointAt evaluates the arc at progress t using the Bernstein polynomial
// form, which hits the endpoints exactly at t=0 and t=1.
//
// t is not clamped: callers drive this with eased progress values that may
// momentarily overshoot [0,1], and silently truncating would hide easing
// bugs. Clamping, where wanted, belongs to the caller.
func (a Arc) PointAt(t float64) Point {
	switch len(a.Ctrl) {
	case 1:
		mt := 1 - t
		c := a.Ctrl[0]
		return Point{
			X: mt*mt*a.Source.X + 2*mt*t*c.X + t*t*a.Target.X,
			Y: mt*mt*a.Source.Y + 2*mt*t*c.Y + t*t*a.Target.Y,
		}
	case 2:
		mt := 1 - t
		mt2 := mt * mt
		t2 := t * t
		c1, c2 := a.Ctrl[0], a.Ctrl[1]
		return Point{
			X: mt2*mt*a.Source.X + 3*mt2*t*c1.X + 3*mt*t2*c2.X + t2*t*a.Target.X,
			Y: mt2*mt*a.Source.Y + 3*mt2*t*c1.Y + 3*mt*t2*c2.Y + t2*t*a.Target.Y,
		}
	}
	return a.Source.Lerp(a.Target, t)
}

// defaultLengthSamples is the polyline resolution used by Length when the
// caller passes samples <= 0. Dash-flow animation timing is visually
// sensitive to this value; 64 segments keeps the error well under a cell at
// terminal scales.
const defaultLengthSamples = 64

// Length approximates the arc length by sampling the curve into a polyline
// of the given number of segments and summing them. There is no closed form
// for quadratic/cubic arc length.
func (a Arc) Length(samples int) float64 {
	if len(a.Ctrl) == 0 {
		return a.Source.Distance(a.Target)
	}
	if samples <= 0 {
		samples = defaultLengthSamples
	}
	total := 0.0
	prev := a.Source
	for i := 1; i <= samples; i++ {
		p := a.PointAt(float64(i) / float64(samples))
		total += prev.Distance(p)
		prev = p
	}
	return total
}

// Path returns an SVG-style descriptor for the arc: "M x y L x y" for
// straight segments, "M x y Q cx cy x y" for quadratic arcs, and
// "M x y C c1x c1y c2x c2y x y" for cubic arcs.
func (a Arc) Path() string {
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", fnum(a.Source.X), fnum(a.Source.Y))
	switch len(a.Ctrl) {
	case 1:
		fmt.Fprintf(&b, " Q %s %s", fnum(a.Ctrl[0].X), fnum(a.Ctrl[0].Y))
	case 2:
		fmt.Fprintf(&b, " C %s %s %s %s",
			fnum(a.Ctrl[0].X), fnum(a.Ctrl[0].Y),
			fnum(a.Ctrl[1].X), fnum(a.Ctrl[1].Y))
	default:
		b.WriteString(" L")
	}
	fmt.Fprintf(&b, " %s %s", fnum(a.Target.X), fnum(a.Target.Y))
	return b.String()
}

func fnum(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
