package bezier

import "math"

// CurveIntersection is a point where two curves meet, given by its parameter
// on each of them.
type CurveIntersection struct {
	T1 float64
	T2 float64
}

// maxClipDepth is the number of subdivisions after which a section has
// collapsed: 48 halvings leave about 3.5e-15 of the parameter range, close
// to the spacing of floats near 1.
const maxClipDepth = 48

// curveSection is a part of a curve, identified by a parameter range of the
// curve it was cut from. Keeping the original curve around avoids the
// accumulation of errors from repeatedly subdividing subdivided curves.
type curveSection struct {
	orig   Curve
	t0, t1 float64
	c      Curve
}

func newCurveSection(c Curve, t0, t1 float64) curveSection {
	return curveSection{orig: c, t0: t0, t1: t1, c: c.Subsegment(t0, t1)}
}

// sub returns a section of s, with t0 and t1 relative to s.
func (s curveSection) sub(t0, t1 float64) curveSection {
	w := s.t1 - s.t0
	return newCurveSection(s.orig, s.t0+t0*w, s.t0+t1*w)
}

func (s curveSection) isTiny() bool {
	return math.Abs(s.t1-s.t0) < 1e-6
}

func (s curveSection) mid() float64 {
	return (s.t0 + s.t1) / 2
}

// hullLengthSq returns the sum of the squared lengths of the control polygon's
// sides.
func (s curveSection) hullLengthSq() float64 {
	if s.isTiny() {
		return 0
	}
	c := s.c
	return c.P1.Sub(c.P0).Hypot2() + c.P2.Sub(c.P1).Hypot2() + c.P3.Sub(c.P2).Hypot2()
}

// CurveIntersectsCurve finds the points where c1 and c2 intersect, using the
// Bézier clipping algorithm. Intersections are located to within roughly
// accuracy; zero or less uses [DefaultAccuracy].
//
// Curves that coincide over some range, as detected by [OverlappingRegion],
// are reported as intersecting at the two ends of the shared range. Results
// are ordered along c1 as far as the search allows, and duplicates found on
// both sides of a subdivision are removed.
func CurveIntersectsCurve(c1, c2 Curve, accuracy float64) []CurveIntersection {
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	if t1, t2, ok := OverlappingRegion(c1, c2); ok {
		return []CurveIntersection{{t1[0], t2[0]}, {t1[1], t2[1]}}
	}
	if !c1.FastBoundingBox().Overlaps(c2.FastBoundingBox()) {
		return nil
	}
	return clipCurves(newCurveSection(c1, 0, 1), newCurveSection(c2, 0, 1), accuracy, 0)
}

// clipRange clips s against the fat lines of other, returning the parameter
// range of s that may still touch other.
func clipRange(s, other curveSection) (t0, t1 float64, ok bool) {
	t0, t1, ok = NewFatLine(other.c).ClipT(s.c)
	if !ok {
		return 0, 0, false
	}
	p0, p1, ok := NewPerpendicularFatLine(other.c).ClipT(s.c)
	if !ok {
		return 0, 0, false
	}
	t0 = max(t0, p0)
	t1 = min(t1, p1)
	if t0 > t1 {
		return 0, 0, false
	}
	return t0, t1, true
}

func clipCurves(s1, s2 curveSection, accuracy float64, depth int) []CurveIntersection {
	accSq := accuracy * accuracy
	len1 := s1.hullLengthSq()
	len2 := s2.hullLengthSq()
	if depth > maxClipDepth {
		Logger().Debug("curve clipping did not converge", "t1", s1.mid(), "t2", s2.mid())
		return nil
	}

	for {
		if len2 > accSq {
			t0, t1, ok := clipRange(s2, s1)
			if !ok {
				return nil
			}
			s2 = s2.sub(t0, t1)
			l := s2.hullLengthSq()
			if l > accSq && l > len2*0.8 {
				// Not shrinking fast enough; split and search both halves.
				left := clipCurves(s1, s2.sub(0, 0.5), accuracy, depth+1)
				right := clipCurves(s1, s2.sub(0.5, 1), accuracy, depth+1)
				return joinIntersections(s2.orig, left, right, accSq, func(x CurveIntersection) float64 { return x.T2 })
			}
			len2 = l
		}

		if len1 > accSq {
			t0, t1, ok := clipRange(s1, s2)
			if !ok {
				return nil
			}
			s1 = s1.sub(t0, t1)
			l := s1.hullLengthSq()
			if l > accSq && l > len1*0.8 {
				left := clipCurves(s1.sub(0, 0.5), s2, accuracy, depth+1)
				right := clipCurves(s1.sub(0.5, 1), s2, accuracy, depth+1)
				return joinIntersections(s1.orig, left, right, accSq, func(x CurveIntersection) float64 { return x.T1 })
			}
			len1 = l
		}

		if len1 <= accSq && len2 <= accSq {
			// Clipping only narrows down where the curves might meet.
			// Confirm that the remaining pieces actually touch.
			slack := min(accuracy, SmallDistance)
			b1 := s1.c.FastBoundingBox().Inflate(slack, slack)
			b2 := s2.c.FastBoundingBox().Inflate(slack, slack)
			if !b1.Overlaps(b2) {
				return nil
			}
			return []CurveIntersection{{s1.mid(), s2.mid()}}
		}
	}
}

// joinIntersections concatenates the intersections found in two halves of a
// subdivided curve. The last result of the left half and the first of the
// right half may be the same intersection found twice, in which case only
// one copy is kept.
func joinIntersections(c Curve, left, right []CurveIntersection, accSq float64, t func(CurveIntersection) float64) []CurveIntersection {
	if len(left) == 0 {
		return right
	}
	if len(right) == 0 {
		return left
	}
	lt := t(left[len(left)-1])
	rt := t(right[0])
	if math.Abs(rt-lt) < 0.1 && c.Eval(lt).DistanceSquared(c.Eval(rt)) <= accSq*4 {
		right = right[1:]
	}
	return append(left, right...)
}

// CurveIntersectsCurveBounds finds the points where c1 and c2 intersect by
// subdividing both curves until their bounding boxes are no larger than
// accuracy. It is slower than [CurveIntersectsCurve] and returns many
// results for curves that overlap, but makes no assumptions about the
// curves' shape.
func CurveIntersectsCurveBounds(c1, c2 Curve, accuracy float64) []CurveIntersection {
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	return boundsIntersections(newCurveSection(c1, 0, 1), newCurveSection(c2, 0, 1), accuracy, 0)
}

func boundsIntersections(s1, s2 curveSection, accuracy float64, depth int) []CurveIntersection {
	b1 := s1.c.BoundingBox()
	b2 := s2.c.BoundingBox()
	if !b1.Overlaps(b2) {
		return nil
	}
	small1 := b1.Diagonal() <= accuracy
	small2 := b2.Diagonal() <= accuracy
	if (small1 && small2) || depth > maxClipDepth {
		return []CurveIntersection{{s1.mid(), s2.mid()}}
	}

	accSq := accuracy * accuracy
	byT1 := func(x CurveIntersection) float64 { return x.T1 }
	switch {
	case small1:
		left := boundsIntersections(s1, s2.sub(0, 0.5), accuracy, depth+1)
		right := boundsIntersections(s1, s2.sub(0.5, 1), accuracy, depth+1)
		return joinIntersections(s2.orig, left, right, accSq, func(x CurveIntersection) float64 { return x.T2 })
	case small2:
		left := boundsIntersections(s1.sub(0, 0.5), s2, accuracy, depth+1)
		right := boundsIntersections(s1.sub(0.5, 1), s2, accuracy, depth+1)
		return joinIntersections(s1.orig, left, right, accSq, byT1)
	default:
		var out []CurveIntersection
		for _, h1 := range [2]curveSection{s1.sub(0, 0.5), s1.sub(0.5, 1)} {
			left := boundsIntersections(h1, s2.sub(0, 0.5), accuracy, depth+1)
			right := boundsIntersections(h1, s2.sub(0.5, 1), accuracy, depth+1)
			out = joinIntersections(s1.orig, out, joinIntersections(s2.orig, left, right, accSq, func(x CurveIntersection) float64 { return x.T2 }), accSq, byT1)
		}
		return out
	}
}
