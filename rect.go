package bezier

import "math"

// Rect is an axis-aligned rectangle. Bounding boxes computed by this package
// always have X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) Min() Point { return Pt(r.X0, r.Y0) }
func (r Rect) Max() Point { return Pt(r.X1, r.Y1) }

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Diagonal returns the length of the rectangle's diagonal.
func (r Rect) Diagonal() float64 {
	return math.Hypot(r.Width(), r.Height())
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Overlaps reports whether r and o share at least one point. Touching edges
// count as overlapping.
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 &&
		r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Intersect returns the intersection of two rectangles.
//
// The result is zero-area if the rectangles don't overlap. The result always
// has non-negative width and height.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X0, o.X0)
	y0 := max(r.Y0, o.Y0)
	x1 := min(r.X1, o.X1)
	y1 := min(r.Y1, o.Y1)
	return Rect{
		X0: x0,
		Y0: y0,
		X1: max(x0, x1),
		Y1: max(y0, y1),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// ClipLine clips the line segment l to r (Liang–Barsky). It returns the
// parameter range of l that lies inside the rectangle, and false if no part
// of l does.
func (r Rect) ClipLine(l Line) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	d := l.P1.Sub(l.P0)
	clip := func(p, q float64) bool {
		if p == 0 {
			// Parallel to this edge; inside iff q ≥ 0.
			return q >= 0
		}
		u := q / p
		if p < 0 {
			if u > t1 {
				return false
			}
			t0 = max(t0, u)
		} else {
			if u < t0 {
				return false
			}
			t1 = min(t1, u)
		}
		return true
	}
	if clip(-d.X, l.P0.X-r.X0) &&
		clip(d.X, r.X1-l.P0.X) &&
		clip(-d.Y, l.P0.Y-r.Y0) &&
		clip(d.Y, r.Y1-l.P0.Y) {
		return t0, t1, true
	}
	return 0, 0, false
}

// Path returns the rectangle as a closed path, visiting (X0, Y0), (X0, Y1),
// (X1, Y1) and (X1, Y0) in that order.
func (r Rect) Path() SimplePath {
	return NewPolygon(Pt(r.X0, r.Y0), Pt(r.X0, r.Y1), Pt(r.X1, r.Y1), Pt(r.X1, r.Y0))
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y1)
}
