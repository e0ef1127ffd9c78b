package arc

import "math"

// Point is a projected planar coordinate in map-pixel space. The engine only
// consumes these; projection from geographic coordinates happens upstream.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp linearly interpolates from p to q at parameter t. The Bernstein form
// (1-t)*p + t*q is used rather than p + t*(q-p): the latter accumulates
// rounding and does not land on q exactly at t=1.
func (p Point) Lerp(q Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*p.X + t*q.X,
		Y: mt*p.Y + t*q.Y,
	}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}
