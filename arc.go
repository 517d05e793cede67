package bezier

import "math"

// Arc is a segment of an ellipse.
type Arc struct {
	Center     Point
	Radii      Point
	StartAngle float64
	SweepAngle float64
	// XRotation is the angle between the x axis and the first radius.
	XRotation float64
}

// ArcFromEndpoints converts the endpoint parameterization used by SVG path
// data into an Arc running from p0 to p1. Radii too small to span the two
// points are scaled up uniformly. It returns false if the arc degenerates
// into a straight line, which is the case if either radius is zero, or
// nothing, if p0 equals p1.
func ArcFromEndpoints(p0, p1 Point, rx, ry, xRotation float64, largeArc, sweep bool) (Arc, bool) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || p0 == p1 {
		return Arc{}, false
	}

	sinPhi, cosPhi := math.Sincos(xRotation)
	d := p0.Sub(p1).Mul(0.5)
	x1 := cosPhi*d.X + sinPhi*d.Y
	y1 := -sinPhi*d.X + cosPhi*d.Y

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	den := rx*rx*y1*y1 + ry*ry*x1*x1
	sq := math.Sqrt(max(rx*rx*ry*ry-den, 0) / den)
	if largeArc == sweep {
		sq = -sq
	}
	cx := sq * rx * y1 / ry
	cy := -sq * ry * x1 / rx

	mid := p0.Midpoint(p1)
	center := Pt(cosPhi*cx-sinPhi*cy+mid.X, sinPhi*cx+cosPhi*cy+mid.Y)

	u := Pt((x1-cx)/rx, (y1-cy)/ry)
	v := Pt((-x1-cx)/rx, (-y1-cy)/ry)
	start := math.Atan2(u.Y, u.X)
	sweepAngle := math.Atan2(u.Cross(v), u.Dot(v))
	if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	} else if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	}
	return Arc{center, Pt(rx, ry), start, sweepAngle, xRotation}, true
}

// Eval returns the point on the arc at the given angle.
func (a Arc) Eval(angle float64) Point {
	return a.Center.Add(sampleEllipse(a.Radii, a.XRotation, angle))
}

// Start returns the arc's first point.
func (a Arc) Start() Point { return a.Eval(a.StartAngle) }

// End returns the arc's last point.
func (a Arc) End() Point { return a.Eval(a.StartAngle + a.SweepAngle) }

// Curves approximates the arc with one curve per started quarter turn.
func (a Arc) Curves() []Curve {
	n := max(math.Ceil(math.Abs(a.SweepAngle)/(math.Pi/2)-1e-9), 1)
	step := a.SweepAngle / n
	arm := (4.0 / 3.0) * math.Tan(step/4)

	out := make([]Curve, 0, int(n))
	angle0 := a.StartAngle
	p0 := a.Eval(angle0)
	for range int(n) {
		angle1 := angle0 + step
		p3 := a.Eval(angle1)
		p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(arm))
		p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(arm))
		out = append(out, Curve{p0, p1, p2, p3})
		angle0, p0 = angle1, p3
	}
	return out
}

// sampleEllipse returns the offset from the center of the point at the given
// angle on an ellipse with the given radii and rotation.
func sampleEllipse(radii Point, xRotation, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return rotatePt(Pt(radii.X*cos, radii.Y*sin), xRotation)
}

func rotatePt(pt Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Pt(pt.X*cos-pt.Y*sin, pt.X*sin+pt.Y*cos)
}
