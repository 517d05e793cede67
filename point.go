package bezier

import (
	"fmt"
	"math"
)

// Coordinate is implemented by any 2D point or vector type that can report
// its x and y components. Functions that accept foreign point types convert
// them with [PointOf].
type Coordinate interface {
	Splat() (float64, float64)
}

// Point is a 2D point. It doubles as a vector: the library makes no type
// distinction between positions and displacements.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointOf converts any [Coordinate] to a Point.
func PointOf(c Coordinate) Point {
	if pt, ok := c.(Point); ok {
		return pt
	}
	x, y := c.Splat()
	return Point{X: x, Y: y}
}

// Splat returns the point's x and y coordinates.
func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add returns pt+o.
func (pt Point) Add(o Point) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub returns pt−o.
func (pt Point) Sub(o Point) Point {
	return Point{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

func (pt Point) Mul(f float64) Point {
	return Point{
		X: pt.X * f,
		Y: pt.Y * f,
	}
}

func (pt Point) Div(f float64) Point {
	return Point{
		X: pt.X / f,
		Y: pt.Y / f,
	}
}

// Negate returns a new point with the signs of x and y flipped.
func (pt Point) Negate() Point {
	return Point{
		X: -pt.X,
		Y: -pt.Y,
	}
}

// Dot returns the dot product of pt and o.
func (pt Point) Dot(o Point) float64 {
	return pt.X*o.X + pt.Y*o.Y
}

// Cross returns the cross product of pt and o.
func (pt Point) Cross(o Point) float64 {
	return pt.X*o.Y - pt.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (pt Point) Hypot() float64 {
	return math.Hypot(pt.X, pt.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Point.Hypot].
func (pt Point) Hypot2() float64 {
	return pt.Dot(pt)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Normalize returns a vector of magnitude 1.0 with the same angle as pt.
// The zero vector is returned unchanged.
func (pt Point) Normalize() Point {
	l := pt.Hypot()
	if l == 0 {
		return pt
	}
	return pt.Mul(1.0 / l)
}

// Min returns the component-wise minimum of two points.
func (pt Point) Min(o Point) Point {
	return Point{
		X: min(pt.X, o.X),
		Y: min(pt.Y, o.Y),
	}
}

// Max returns the component-wise maximum of two points.
func (pt Point) Max(o Point) Point {
	return Point{
		X: max(pt.X, o.X),
		Y: max(pt.Y, o.Y),
	}
}

// Perp returns the vector rotated by 90° anticlockwise in a y-up coordinate
// system.
func (pt Point) Perp() Point {
	return Point{
		X: -pt.Y,
		Y: pt.X,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	// pt + t * (o-pt)
	return pt.Add(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
