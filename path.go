package bezier

import (
	"fmt"
	"iter"
	"slices"
)

// PathPoint is one segment of a path: two control points and an end point.
// The segment's start point is the end point of the previous segment, or the
// path's start point for the first segment.
type PathPoint struct {
	CP1 Point
	CP2 Point
	End Point
}

// BezierPath is implemented by path types made of cubic Bézier segments. Any
// type exposing a start point and an ordered list of segments works with the
// functions of this package; [SimplePath] is the package's own.
//
// Paths used as shapes are implicitly closed: a path whose last point isn't
// its start point is treated as if a straight line connected the two.
type BezierPath interface {
	StartPoint() Point
	Points() []PathPoint
}

// SimplePath is a path made of cubic Bézier segments.
//
// The zero value is an empty path at the origin. An empty path is valid and
// degrades to a no-op in every function.
type SimplePath struct {
	Start    Point
	Segments []PathPoint
}

var _ BezierPath = SimplePath{}

func (p SimplePath) StartPoint() Point   { return p.Start }
func (p SimplePath) Points() []PathPoint { return p.Segments }

// NewPolygon returns a closed path connecting the given points with straight
// lines. It returns an empty path if pts is empty.
func NewPolygon(pts ...Point) SimplePath {
	if len(pts) == 0 {
		return SimplePath{}
	}
	p := SimplePath{Start: pts[0]}
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
	return p
}

// PathOf converts any [BezierPath] to a SimplePath. The segments are copied.
func PathOf(p BezierPath) SimplePath {
	if sp, ok := p.(SimplePath); ok {
		return sp
	}
	return SimplePath{
		Start:    p.StartPoint(),
		Segments: slices.Clone(p.Points()),
	}
}

// End returns the path's current end point.
func (p SimplePath) End() Point {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.Segments[len(p.Segments)-1].End
}

// IsEmpty reports whether the path has no segments.
func (p SimplePath) IsEmpty() bool {
	return len(p.Segments) == 0
}

// LineTo appends a straight line from the current end point to pt.
func (p *SimplePath) LineTo(pt Point) {
	c := Line{p.End(), pt}.Curve()
	p.Segments = append(p.Segments, PathPoint{c.P1, c.P2, c.P3})
}

// CubicTo appends a cubic Bézier from the current end point.
func (p *SimplePath) CubicTo(cp1, cp2, end Point) {
	p.Segments = append(p.Segments, PathPoint{cp1, cp2, end})
}

// Close appends a straight line back to the start point unless the path
// already ends within [CloseDistance] of it.
func (p *SimplePath) Close() {
	if len(p.Segments) == 0 || p.End().Distance(p.Start) <= CloseDistance {
		return
	}
	p.LineTo(p.Start)
}

// Curves returns an iterator over the path's segments as curves.
func (p SimplePath) Curves() iter.Seq[Curve] { return PathToCurves(p) }

// BoundingBox returns the path's bounding box. See [PathBoundingBox].
func (p SimplePath) BoundingBox() Rect { return PathBoundingBox(p) }

// Reverse returns the path traversed in the opposite direction.
func (p SimplePath) Reverse() SimplePath { return ReversePath(p) }

// PathToCurves returns an iterator over the segments of p as curves, pairing
// each segment with the end point of the previous one. The path's start point
// acts as the end point of a segment preceding the first.
//
// The iterator reads p anew each time it is started and can thus be used
// more than once.
func PathToCurves(p BezierPath) iter.Seq[Curve] {
	return func(yield func(Curve) bool) {
		last := p.StartPoint()
		for _, pp := range p.Points() {
			if !yield(Curve{last, pp.CP1, pp.CP2, pp.End}) {
				return
			}
			last = pp.End
		}
	}
}

// PathFromCurves builds a path from a sequence of connected curves. It
// panics if a curve doesn't start within [SmallDistance] of where the
// previous one ended; see [PathsFromCurves] for discontinuous input.
func PathFromCurves(curves iter.Seq[Curve]) SimplePath {
	var p SimplePath
	first := true
	for c := range curves {
		if first {
			first = false
			p.Start = c.P0
		} else if end := p.End(); end.Distance(c.P0) > SmallDistance {
			panic(fmt.Sprintf("discontinuous curves: %v is followed by a curve starting at %v", end, c.P0))
		}
		p.Segments = append(p.Segments, PathPoint{c.P1, c.P2, c.P3})
	}
	return p
}

// PathsFromCurves splits a sequence of curves into paths wherever a curve
// doesn't start at the end of its predecessor.
func PathsFromCurves(curves iter.Seq[Curve]) []SimplePath {
	var out []SimplePath
	var cur SimplePath
	for c := range curves {
		if len(cur.Segments) == 0 || cur.End().Distance(c.P0) > SmallDistance {
			if len(cur.Segments) > 0 {
				out = append(out, cur)
			}
			cur = SimplePath{Start: c.P0}
		}
		cur.Segments = append(cur.Segments, PathPoint{c.P1, c.P2, c.P3})
	}
	if len(cur.Segments) > 0 {
		out = append(out, cur)
	}
	return out
}

// PathBoundingBox returns the smallest rectangle enclosing all of the path's
// curves. It uses each curve's exact bounds, not the bounds of its control
// points. An empty path has a zero-sized bounding box at the origin.
func PathBoundingBox(p BezierPath) Rect {
	var bbox Rect
	first := true
	for c := range PathToCurves(p) {
		cbox := c.BoundingBox()
		if first {
			first = false
			bbox = cbox
		} else {
			bbox = bbox.Union(cbox)
		}
	}
	return bbox
}

// PathFastBoundingBox is like [PathBoundingBox] but uses the bounds of the
// control points, which is cheaper but may be larger than necessary.
func PathFastBoundingBox(p BezierPath) Rect {
	var bbox Rect
	first := true
	for c := range PathToCurves(p) {
		cbox := c.FastBoundingBox()
		if first {
			first = false
			bbox = cbox
		} else {
			bbox = bbox.Union(cbox)
		}
	}
	return bbox
}

// PathsBoundingBox returns the union of the bounding boxes of non-empty
// paths, and false if all paths are empty.
func PathsBoundingBox[P BezierPath](paths []P) (Rect, bool) {
	var bbox Rect
	found := false
	for _, p := range paths {
		if len(p.Points()) == 0 {
			continue
		}
		pbox := PathBoundingBox(p)
		if !found {
			found = true
			bbox = pbox
		} else {
			bbox = bbox.Union(pbox)
		}
	}
	return bbox, found
}

// IsClockwise reports whether the path runs clockwise in a coordinate system
// where y increases upwards.
//
// It sums (x2 − x1)·(y2 + y1) over the path's start and end points, treating
// the path as closed; control points don't take part. A total of zero counts
// as clockwise. For self-intersecting paths the result is only a convention:
// it reports the orientation of the larger net area.
func IsClockwise(p BezierPath) bool {
	start := p.StartPoint()
	last := start
	var total float64
	for _, pp := range p.Points() {
		total += (pp.End.X - last.X) * (pp.End.Y + last.Y)
		last = pp.End
	}
	total += (start.X - last.X) * (start.Y + last.Y)
	return total >= 0
}

// PathSignedArea returns the area enclosed by the path, treating it as closed.
// It is positive for anticlockwise paths in a y-up coordinate system.
func PathSignedArea(p BezierPath) float64 {
	var sum float64
	var last Point
	n := 0
	for c := range PathToCurves(p) {
		sum += c.SignedArea()
		last = c.P3
		n++
	}
	if n > 0 {
		sum += Line{last, p.StartPoint()}.Curve().SignedArea()
	}
	return sum
}

// ReversePath returns the path traversed from its last point back to its
// start point.
func ReversePath(p BezierPath) SimplePath {
	pts := p.Points()
	if len(pts) == 0 {
		return SimplePath{Start: p.StartPoint()}
	}
	out := SimplePath{
		Start:    pts[len(pts)-1].End,
		Segments: make([]PathPoint, 0, len(pts)),
	}
	for i := len(pts) - 1; i >= 0; i-- {
		end := p.StartPoint()
		if i > 0 {
			end = pts[i-1].End
		}
		out.Segments = append(out.Segments, PathPoint{pts[i].CP2, pts[i].CP1, end})
	}
	return out
}

// PathWinding returns the winding number of pt with respect to a set of
// paths, each treated as closed. See [Curve.Winding] for the sign convention.
func PathWinding[P BezierPath](paths []P, pt Point) int {
	var w int
	for _, p := range paths {
		w += pathWinding(p, pt)
	}
	return w
}

func pathWinding(p BezierPath, pt Point) int {
	var w int
	var last Point
	n := 0
	for c := range PathToCurves(p) {
		w += c.Winding(pt)
		last = c.P3
		n++
	}
	if n > 0 && last != p.StartPoint() {
		w += Line{last, p.StartPoint()}.Curve().Winding(pt)
	}
	return w
}
