package bezier

import (
	"math"
	"sort"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Curve.Extrema].
const MaxExtrema = 4

// DefaultAccuracy is a default value for functions that take an accuracy
// argument, suitable for shapes measured in pixels or points.
const DefaultAccuracy = 0.01

const (
	// SmallDistance is the distance below which two points are considered
	// to be the same.
	SmallDistance = 0.001
	// CloseDistance is the distance below which a gap between two points is
	// considered negligible, for example when deciding whether a path is
	// already closed.
	CloseDistance = 0.01
)

// BezierCurve is implemented by cubic Bézier curve types. Any such type can be
// converted to a [Curve] with [CurveOf].
type BezierCurve interface {
	Start() Point
	End() Point
	// ControlPoints returns the two inner control points.
	ControlPoints() (Point, Point)
}

// CurveOf converts any [BezierCurve] to a Curve.
func CurveOf(c BezierCurve) Curve {
	if cc, ok := c.(Curve); ok {
		return cc
	}
	cp1, cp2 := c.ControlPoints()
	return Curve{c.Start(), cp1, cp2, c.End()}
}

// Curve is a cubic Bézier curve. P0 and P3 are the start and end points, P1
// and P2 the control points.
type Curve struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ BezierCurve = Curve{}

func (c Curve) Start() Point { return c.P0 }
func (c Curve) End() Point   { return c.P3 }

func (c Curve) ControlPoints() (Point, Point) {
	return c.P1, c.P2
}

func (c Curve) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c Curve) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval returns the point on the curve at t.
func (c Curve) Eval(t float64) Point {
	return Point{
		X: Basis(t, c.P0.X, c.P1.X, c.P2.X, c.P3.X),
		Y: Basis(t, c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y),
	}
}

// Subdivide splits the curve at t, using de Casteljau.
func (c Curve) Subdivide(t float64) (Curve, Curve) {
	lx, rx := Subdivide4(t, c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	ly, ry := Subdivide4(t, c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	return Curve{Pt(lx[0], ly[0]), Pt(lx[1], ly[1]), Pt(lx[2], ly[2]), Pt(lx[3], ly[3])},
		Curve{Pt(rx[0], ry[0]), Pt(rx[1], ry[1]), Pt(rx[2], ry[2]), Pt(rx[3], ry[3])}
}

// Subsegment returns the section of the curve between t0 and t1,
// reparametrized to [0, 1]. t1 may be smaller than t0, in which case the
// section runs backwards. When t0 == t1 the result is a single point.
func (c Curve) Subsegment(t0, t1 float64) Curve {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Add(c.Tangent(t0).Mul(scale))
	p2 := p3.Sub(c.Tangent(t1).Mul(scale))
	return Curve{p0, p1, p2, p3}
}

// Derivative returns the control points of the quadratic Bézier that is the
// derivative of the curve.
func (c Curve) Derivative() (Point, Point, Point) {
	x1, x2, x3 := Derivative4(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	y1, y2, y3 := Derivative4(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	return Pt(x1, y1), Pt(x2, y2), Pt(x3, y3)
}

// Tangent returns the (unnormalized) tangent vector at t, which is the first
// derivative of the curve.
func (c Curve) Tangent(t float64) Point {
	d1, d2, d3 := c.Derivative()
	return Point{
		X: DeCasteljau3(t, d1.X, d2.X, d3.X),
		Y: DeCasteljau3(t, d1.Y, d2.Y, d3.Y),
	}
}

// Normal returns the (unnormalized) normal vector at t. It points to the left
// of the direction of travel in a y-up coordinate system.
//
// Where the derivative vanishes, for example at an end point that coincides
// with its control point, the direction is taken from the nearest distinct
// control point instead.
func (c Curve) Normal(t float64) Point {
	tan := c.Tangent(t)
	if tan.Hypot2() < 1e-24 {
		start, end := c.Tangents()
		if t < 0.5 {
			tan = start
		} else {
			tan = end
		}
	}
	return tan.Perp()
}

// UnitNormal returns the normal vector at t with a magnitude of 1.
func (c Curve) UnitNormal(t float64) Point {
	return c.Normal(t).Normalize()
}

// Tangents returns the directions of the curve at its start and end points,
// skipping over control points that coincide with the end points.
func (c Curve) Tangents() (Point, Point) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0, d1 Point
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := c.P2.Sub(c.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d23 := c.P3.Sub(c.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := c.P3.Sub(c.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}

// Extrema computes the parameter values of the curve's extrema in x and y.
//
// Only extrema within the interior of the curve count. They are reported in
// increasing order.
func (c Curve) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// ExtremaRanges returns parameter ranges, each of which is monotonic in x and
// y within the range.
func (c Curve) ExtremaRanges() ([MaxExtrema + 1][2]float64, int) {
	var ret [MaxExtrema + 1][2]float64
	var retN int
	var t0 float64

	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		ret[retN] = [2]float64{t0, t}
		retN++
		t0 = t
	}
	ret[retN] = [2]float64{t0, 1}
	retN++
	return ret, retN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the curve
// over [0, 1].
func (c Curve) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// FastBoundingBox returns the bounding box of the control polygon. It always
// encloses the curve but isn't always the tightest such box.
func (c Curve) FastBoundingBox() Rect {
	return NewRectFromPoints(c.P0.Min(c.P1).Min(c.P2).Min(c.P3), c.P0.Max(c.P1).Max(c.P2).Max(c.P3))
}

// Reverse returns the same curve traversed from end to start.
func (c Curve) Reverse() Curve {
	return Curve{c.P3, c.P2, c.P1, c.P0}
}

// MovePoint returns the curve deformed so that the point at t moves by
// offset. Both control points move by the same amount and the end points
// stay where they are. At t = 0 and t = 1 the curve can't be moved and is
// returned unchanged.
func (c Curve) MovePoint(t float64, offset Point) Curve {
	// Moving both control points by d moves B(t) by 3t(1-t) d.
	w := 3 * t * (1 - t)
	if w <= 0 {
		return c
	}
	d := offset.Mul(1 / w)
	return Curve{c.P0, c.P1.Add(d), c.P2.Add(d), c.P3}
}

// Length returns the arc length of the curve, to within roughly the given
// accuracy.
//
// It compares the chord with the length of the control polygon, which bound
// the arc length from below and above, and subdivides until they agree.
func (c Curve) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	return c.length(accuracy, 0)
}

func (c Curve) length(accuracy float64, depth int) float64 {
	chord := c.P0.Distance(c.P3)
	poly := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	if poly-chord <= accuracy || depth >= 16 {
		// Weighted estimate from Gravesen's method.
		return (chord + poly) / 2
	}
	l, r := c.Subdivide(0.5)
	return l.length(accuracy*0.5, depth+1) + r.length(accuracy*0.5, depth+1)
}

// SignedArea returns the area between the curve and the origin, as used by
// the shoelace formula. Summing it over a closed path gives the path's signed
// area, positive for anticlockwise paths in a y-up coordinate system.
func (c Curve) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// Winding computes the winding number contribution of the curve for pt.
//
// A ray is cast to the left of pt; crossings going up count −1 and crossings
// going down count +1. Summed over a closed path this is +1 inside an
// anticlockwise (y-up) path and −1 inside a clockwise one.
func (c Curve) Winding(pt Point) int {
	exs, n := c.ExtremaRanges()
	var w int
	for _, ex := range exs[:n] {
		w += c.Subsegment(ex[0], ex[1]).windingInner(pt)
	}
	return w
}

// windingInner assumes that the curve is monotonic in y.
func (c Curve) windingInner(pt Point) int {
	start := c.P0
	end := c.P3
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	if pt.X < min(start.X, end.X, c.P1.X, c.P2.X) {
		return 0
	}
	if pt.X >= max(start.X, end.X, c.P1.X, c.P2.X) {
		return sign
	}
	a := end.Y - 3.0*c.P2.Y + 3.0*c.P1.Y - start.Y
	b := 3.0 * (c.P2.Y - 2.0*c.P1.Y + start.Y)
	d := 3.0 * (c.P1.Y - start.Y)
	e := start.Y - pt.Y
	solution, n := SolveCubic(e, d, b, a)
	for _, t := range solution[:n] {
		if t >= 0.0 && t <= 1.0 {
			if pt.X >= c.Eval(t).X {
				return sign
			}
			return 0
		}
	}
	return 0
}

// Flatten approximates the curve with points such that the polyline through
// them deviates from the curve by no more than roughly tolerance. The start
// point is not included, the end point is.
func (c Curve) Flatten(tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = DefaultAccuracy
	}
	// Wang's formula for the number of segments.
	dd0 := c.P0.Sub(c.P1.Mul(2)).Add(c.P2)
	dd1 := c.P1.Sub(c.P2.Mul(2)).Add(c.P3)
	m := math.Sqrt(max(dd0.Hypot2(), dd1.Hypot2()))
	f := math.Ceil(math.Sqrt(0.75 * m / tolerance))
	n := 1
	if f > 1 {
		n = int(min(f, 1000))
	}
	out := make([]Point, n)
	for i := range n {
		out[i] = c.Eval(float64(i+1) / float64(n))
	}
	out[n-1] = c.P3
	return out
}
