package bezier

import (
	"math"
)

// Line represents a line segment. Functions that treat lines as infinite, such
// as [Line.Coefficients] and [Line.CrossingPoint], say so.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Reverse() Line {
	return Line{l.P1, l.P0}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Curve returns the line as a cubic Bézier, with the control points placed at
// one and two thirds of the way along it so that the parametrization stays
// uniform.
func (l Line) Curve() Curve {
	return Curve{
		P0: l.P0,
		P1: l.P0.Lerp(l.P1, 1.0/3.0),
		P2: l.P0.Lerp(l.P1, 2.0/3.0),
		P3: l.P1,
	}
}

// Chord returns the line from the curve's start point to its end point.
func (c Curve) Chord() Line {
	return Line{c.P0, c.P3}
}

// Coefficients returns the implicit form a·x + b·y + c = 0 of the infinite
// line through l, normalized so that a² + b² = 1. Evaluating a·x + b·y + c for
// a point then gives its signed distance from the line, positive on the left
// in a y-up coordinate system.
//
// A zero-length line has no direction, and all three coefficients are zero.
func (l Line) Coefficients() (a, b, c float64) {
	a = l.P0.Y - l.P1.Y
	b = l.P1.X - l.P0.X
	f := math.Hypot(a, b)
	if f == 0 {
		return 0, 0, 0
	}
	a /= f
	b /= f
	c = -(a*l.P0.X + b*l.P0.Y)
	return a, b, c
}

// Distance returns the signed distance of pt from the infinite line through
// l. See [Line.Coefficients] for the sign convention.
func (l Line) Distance(pt Point) float64 {
	a, b, c := l.Coefficients()
	return a*pt.X + b*pt.Y + c
}

// WhichSide reports on which side of the infinite line through l pt lies: 1
// for the left, −1 for the right and 0 for points within [SmallDistance] of
// the line.
func (l Line) WhichSide(pt Point) int {
	d := l.Distance(pt)
	switch {
	case d > SmallDistance:
		return 1
	case d < -SmallDistance:
		return -1
	default:
		return 0
	}
}

// PosForPoint returns the parameter of the projection of pt onto the infinite
// line through l. Points on the segment itself give values in [0, 1].
func (l Line) PosForPoint(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	d2 := d.Hypot2()
	if d2 == 0 {
		return 0
	}
	return pt.Sub(l.P0).Dot(d) / d2
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It returns false for parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Add(cd.Mul(h)), true
}

// LineIntersection describes where a line crosses another line or a curve.
type LineIntersection struct {
	// The parameter of the intersection on the line.
	LineT float64
	// The parameter of the intersection on the other line or curve. It may
	// exceed [0, 1] by a tiny epsilon at the ends of segments.
	SegmentT float64
}

// IntersectLine computes the intersection of l with the probe segment o.
// LineT is the position on o and SegmentT the position on l. Parallel and
// coincident lines don't intersect.
func (l Line) IntersectLine(o Line) (LineIntersection, bool) {
	const epsilon = 1e-9
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if math.Abs(det) < epsilon {
		// Lines are coincident (or nearly so).
		return LineIntersection{}, false
	}
	t := dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)
	// t = position on self
	t /= det
	if t >= -epsilon && t <= 1+epsilon {
		// u = position on probe line
		u := (l.P0.X-p0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-p0.Y)*(l.P1.X-l.P0.X)
		u /= det
		if u >= 0.0 && u <= 1.0 {
			return LineIntersection{LineT: u, SegmentT: t}, true
		}
	}
	return LineIntersection{}, false
}
