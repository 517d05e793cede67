package bezier

import (
	"cmp"
	"math"
	"slices"
)

// IntersectLine returns the intersections of the curve with the line
// segment l, solved algebraically. LineT is the position on l and SegmentT
// the position on the curve.
func (c Curve) IntersectLine(line Line) ([3]LineIntersection, int) {
	const epsilon = 1e-9
	p0 := line.P0
	p1 := line.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	// The basic technique here is to determine x and y as a cubic polynomial
	// as a function of t. Then plug those values into the line equation for the
	// probe line (giving a sort of signed distance from the probe line) and solve
	// that for t.
	px0, px1, px2, px3 := cubicBezCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	py0, py1, py2, py3 := cubicBezCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	c0 := dy*(px0-p0.X) - dx*(py0-p0.Y)
	c1 := dy*px1 - dx*py1
	c2 := dy*px2 - dx*py2
	c3 := dy*px3 - dx*py3
	invlen2 := 1.0 / (dx*dx + dy*dy)
	ts, n := SolveCubic(c0, c1, c2, c3)
	var ret [3]LineIntersection
	var retN int
	for _, t := range ts[:n] {
		if t >= -epsilon && t <= 1+epsilon {
			x := px0 + t*px1 + t*t*px2 + t*t*t*px3
			y := py0 + t*py1 + t*t*py2 + t*t*t*py3
			u := ((x-p0.X)*dx + (y-p0.Y)*dy) * invlen2
			if u >= 0.0 && u <= 1.0 {
				ret[retN] = LineIntersection{u, t}
				retN++
			}
		}
	}
	return ret, retN
}

// RayCollision is a point where a ray crosses a path.
type RayCollision struct {
	Point Point
	// Index of the path in the slice passed to RayCollisions.
	Path int
	// Index of the curve in the path. The line closing an open path has
	// the index len(path.Points()).
	Curve  int
	CurveT float64
	// Position along the ray, relative to the ray's two points. Collisions
	// behind the ray's start have negative values.
	RayT float64
	// 1 if the path crosses from the right of the ray to its left, −1
	// otherwise.
	Direction int
}

// closedCurves returns the curves of p, followed by a line back to the start
// if p doesn't end there.
func closedCurves(p BezierPath) []Curve {
	curves := slices.Collect(PathToCurves(p))
	if len(curves) > 0 {
		if last := curves[len(curves)-1].P3; last != p.StartPoint() {
			curves = append(curves, Line{last, p.StartPoint()}.Curve())
		}
	}
	return curves
}

func sideOf(d, scale float64) int {
	switch {
	case d > 1e-9*scale:
		return 1
	case d < -1e-9*scale:
		return -1
	default:
		return 0
	}
}

// RayCollisions returns every point where the infinite line through the two
// points of ray crosses one of the paths, each treated as closed. Results
// are sorted by their position along the ray.
//
// A crossing through a point shared by two curves is reported once, on the
// curve that starts there. Points where a path only touches the ray without
// crossing it are not reported. Sections of a path running along the ray
// count as a single crossing at their end, if the path does cross.
func RayCollisions[P BezierPath](paths []P, ray Line) []RayCollision {
	a, b, c := ray.Coefficients()
	if a == 0 && b == 0 {
		return nil
	}
	dist := func(pt Point) float64 { return a*pt.X + b*pt.Y + c }
	collinear := func(cv Curve) bool {
		for _, pt := range [4]Point{cv.P0, cv.P1, cv.P2, cv.P3} {
			if math.Abs(dist(pt)) >= SmallDistance {
				return false
			}
		}
		return true
	}
	sameSide := func(cv Curve) bool {
		var s int
		for _, pt := range [4]Point{cv.P0, cv.P1, cv.P2, cv.P3} {
			if d := dist(pt); d > 0 {
				s++
			} else if d < 0 {
				s--
			}
		}
		return s == 4 || s == -4
	}

	var out []RayCollision
	for pi, p := range paths {
		curves := closedCurves(p)
		n := len(curves)
		if n == 0 {
			continue
		}
		isCollinear := make([]bool, n)
		allCollinear := true
		for i, cv := range curves {
			isCollinear[i] = collinear(cv)
			allCollinear = allCollinear && isCollinear[i]
		}
		if allCollinear {
			// A path lying entirely on the ray has no inside to cross into.
			continue
		}

		seenStart := make([]bool, n)
		for i, cv := range curves {
			if isCollinear[i] || sameSide(cv) {
				continue
			}
			px0, px1, px2, px3 := cubicBezCoefficients(cv.P0.X, cv.P1.X, cv.P2.X, cv.P3.X)
			py0, py1, py2, py3 := cubicBezCoefficients(cv.P0.Y, cv.P1.Y, cv.P2.Y, cv.P3.Y)
			roots, rn := unitCubicRoots(a*px0+b*py0+c, a*px1+b*py1, a*px2+b*py2, a*px3+b*py3, 1e-6)
			slices.Sort(roots[:rn])
			lastT := math.Inf(-1)
			for _, t := range roots[:rn] {
				if t-lastT < 1e-9 {
					// Double root.
					continue
				}
				lastT = t
				pt := cv.Eval(t)
				k := i
				switch {
				case t > 1-1e-5 && pt.Distance(cv.P3) < SmallDistance:
					// Crossings at the end of a curve belong to the next.
					k = (i + 1) % n
					t = 0
				case t < 1e-5 && pt.Distance(cv.P0) < SmallDistance:
					t = 0
				}

				var dir int
				if t == 0 {
					// Skip over sections running along the ray.
					for j := 0; isCollinear[k] && j < n; j++ {
						k = (k + 1) % n
					}
					if seenStart[k] {
						continue
					}
					seenStart[k] = true
					pt = curves[k].P0

					prev := (k - 1 + n) % n
					for j := 0; isCollinear[prev] && j < n; j++ {
						prev = (prev - 1 + n) % n
					}
					_, tanIn := curves[prev].Tangents()
					tanOut, _ := curves[k].Tangents()
					sideIn := sideOf(-(a*tanIn.X + b*tanIn.Y), tanIn.Hypot())
					sideOut := sideOf(a*tanOut.X+b*tanOut.Y, tanOut.Hypot())
					if sideIn == sideOut {
						// Touching the ray without crossing it.
						continue
					}
					dir = sideOut
					if dir == 0 {
						dir = -sideIn
					}
				} else {
					const delta = 1e-4
					before := dist(cv.Eval(max(t-delta, 0)))
					after := dist(cv.Eval(min(t+delta, 1)))
					if before*after > 0 {
						continue
					}
					dir = 1
					if after < before {
						dir = -1
					}
				}

				out = append(out, RayCollision{
					Point:     pt,
					Path:      pi,
					Curve:     k,
					CurveT:    t,
					RayT:      ray.PosForPoint(pt),
					Direction: dir,
				})
			}
		}
	}

	slices.SortFunc(out, func(x, y RayCollision) int {
		return cmp.Or(
			cmp.Compare(x.RayT, y.RayT),
			cmp.Compare(x.Path, y.Path),
			cmp.Compare(x.Curve, y.Curve),
		)
	})
	return out
}

// PathContainsPoint reports whether pt lies inside the shape described by
// paths, each treated as closed, according to rule. Points on the boundary
// may go either way.
func PathContainsPoint[P BezierPath](paths []P, pt Point, rule FillRule) bool {
	ray := Line{pt, pt.Add(Pt(1, 0))}
	var w int
	for _, col := range RayCollisions(paths, ray) {
		if col.RayT > 0 {
			w += col.Direction
		}
	}
	return rule.Fills(w)
}

// PathLineIntersection is a point where a path crosses a line segment.
type PathLineIntersection struct {
	Point  Point
	Curve  int
	CurveT float64
	LineT  float64
}

// PathIntersectsLine returns the points where the segments of p cross the
// line segment l, in path order. Unlike [RayCollisions] the path is taken as
// drawn, without closing it, and every intersection is reported.
func PathIntersectsLine(p BezierPath, l Line) []PathLineIntersection {
	var out []PathLineIntersection
	i := 0
	for cv := range PathToCurves(p) {
		xs, n := cv.IntersectLine(l)
		slices.SortFunc(xs[:n], func(a, b LineIntersection) int { return cmp.Compare(a.SegmentT, b.SegmentT) })
		for _, x := range xs[:n] {
			out = append(out, PathLineIntersection{
				Point:  cv.Eval(x.SegmentT),
				Curve:  i,
				CurveT: x.SegmentT,
				LineT:  x.LineT,
			})
		}
		i++
	}
	return out
}

// PathIntersection is a point where two paths meet.
type PathIntersection struct {
	Point  Point
	Curve1 int
	T1     float64
	Curve2 int
	T2     float64
}

// PathIntersectsPath returns the points where the segments of p1 and p2
// intersect, found with [CurveIntersectsCurve] to within accuracy. Pairs of
// curves whose bounding boxes don't overlap are skipped.
func PathIntersectsPath(p1, p2 BezierPath, accuracy float64) []PathIntersection {
	curves1 := slices.Collect(PathToCurves(p1))
	curves2 := slices.Collect(PathToCurves(p2))
	boxes2 := make([]Rect, len(curves2))
	for j, c2 := range curves2 {
		boxes2[j] = c2.FastBoundingBox()
	}

	var out []PathIntersection
	for i, c1 := range curves1 {
		box1 := c1.FastBoundingBox()
		for j, c2 := range curves2 {
			if !box1.Overlaps(boxes2[j]) {
				continue
			}
			for _, x := range CurveIntersectsCurve(c1, c2, accuracy) {
				out = append(out, PathIntersection{
					Point:  c1.Eval(x.T1),
					Curve1: i,
					T1:     x.T1,
					Curve2: j,
					T2:     x.T2,
				})
			}
		}
	}
	return out
}
