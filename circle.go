package bezier

import "math"

// circleArmLength is the distance of the control points from the end points,
// relative to the radius, for a quarter circle with minimal radial error.
//
// See http://spencermortensen.com/articles/bezier-circle/
const circleArmLength = 0.551915024494

type Circle struct {
	Center Point
	Radius float64
}

// Curves returns the circle as four quarter arcs, starting at the rightmost
// point and running anticlockwise in a y-up coordinate system.
func (c Circle) Curves() []Curve {
	x, y := c.Center.Splat()
	r := c.Radius
	a := circleArmLength
	// Cosine and sine of the cardinal angles, exact so that the arcs meet.
	cardinal := [5][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 0}}
	out := make([]Curve, 0, 4)
	for ix := range 4 {
		c0, s0 := cardinal[ix][0], cardinal[ix][1]
		c1, s1 := cardinal[ix+1][0], cardinal[ix+1][1]
		out = append(out, Curve{
			Pt(x+r*c0, y+r*s0),
			Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
			Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
			Pt(x+r*c1, y+r*s1),
		})
	}
	return out
}

// Path returns the circle as a closed path of four curves. See
// [Circle.Curves].
func (c Circle) Path() SimplePath {
	p := SimplePath{Start: Pt(c.Center.X+c.Radius, c.Center.Y)}
	for _, cv := range c.Curves() {
		p.CubicTo(cv.P1, cv.P2, cv.P3)
	}
	return p
}

// Arc returns a single curve approximating the arc of the circle from the
// start angle to the end angle, in radians. Sweeps of up to a quarter turn
// are approximated well; larger sweeps lose accuracy quickly.
func (c Circle) Arc(start, end float64) Curve {
	sweep := end - start
	k := 4.0 / 3.0 * math.Tan(sweep/4)
	s0, c0 := math.Sincos(start)
	s1, c1 := math.Sincos(end)
	x, y := c.Center.Splat()
	r := c.Radius
	return Curve{
		Pt(x+r*c0, y+r*s0),
		Pt(x+r*(c0-k*s0), y+r*(s0+k*c0)),
		Pt(x+r*(c1+k*s1), y+r*(s1-k*c1)),
		Pt(x+r*c1, y+r*s1),
	}
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{
		X0: c.Center.X - r,
		Y0: c.Center.Y - r,
		X1: c.Center.X + r,
		Y1: c.Center.Y + r,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}
