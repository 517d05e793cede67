package bezier

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY mirrors on the x axis, converting between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

func Translate(v Point) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// FitRect returns the transform that scales src uniformly to the largest
// size fitting into dst and centers it there. A src without width or
// height is fitted by its other side only, and a single point is just
// moved.
func FitRect(src, dst Rect) Affine {
	src, dst = src.Abs(), dst.Abs()
	var s float64
	switch w, h := src.Width(), src.Height(); {
	case w == 0 && h == 0:
		s = 1
	case w == 0:
		s = dst.Height() / h
	case h == 0:
		s = dst.Width() / w
	default:
		s = min(dst.Width()/w, dst.Height()/h)
	}
	return Translate(src.Center().Negate()).
		Then(Scale(s, s)).
		Then(Translate(dst.Center()))
}

// Mul returns the transform applying o first, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Then returns the transform applying aff first, then o.
func (aff Affine) Then(o Affine) Affine {
	return o.Mul(aff)
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Transform applies aff to the control points of c, which transforms the
// whole curve.
func (c Curve) Transform(aff Affine) Curve {
	return Curve{c.P0.Transform(aff), c.P1.Transform(aff), c.P2.Transform(aff), c.P3.Transform(aff)}
}

// TransformPath applies aff to every point of p. Transforms that mirror,
// such as [FlipY], turn clockwise paths into anticlockwise ones and vice
// versa.
func TransformPath(p BezierPath, aff Affine) SimplePath {
	pts := p.Points()
	out := SimplePath{
		Start:    p.StartPoint().Transform(aff),
		Segments: make([]PathPoint, len(pts)),
	}
	for i, pp := range pts {
		out.Segments[i] = PathPoint{pp.CP1.Transform(aff), pp.CP2.Transform(aff), pp.End.Transform(aff)}
	}
	return out
}
