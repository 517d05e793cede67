package bezier

import "slices"

// ArithmeticOptions configures the boolean operations on paths.
//
// The zero value uses [DefaultAccuracy] and the [NonZero] fill rule.
type ArithmeticOptions struct {
	// Accuracy with which intersections are located. Points closer together
	// than this are merged.
	Accuracy float64
	// FillRule decides which points are inside an operand made of several
	// paths.
	FillRule FillRule
}

func (o ArithmeticOptions) accuracy() float64 {
	if o.Accuracy <= 0 {
		return DefaultAccuracy
	}
	return o.Accuracy
}

// PathAdd returns the union of two shapes. Each shape is a set of closed
// paths filled with the [EvenOdd] rule, so a path inside another one is a
// hole regardless of its direction.
//
// The resulting paths have the inside on their left: outer boundaries run
// anticlockwise and holes clockwise. If one of the shapes is empty, the
// other is returned unchanged, as are both if their bounding boxes don't
// overlap.
func PathAdd(path1, path2 []SimplePath, accuracy float64) []SimplePath {
	return ArithmeticOptions{Accuracy: accuracy, FillRule: EvenOdd}.Add(path1, path2)
}

// PathIntersect returns the intersection of two shapes. See [PathAdd] for
// how shapes are interpreted.
func PathIntersect(path1, path2 []SimplePath, accuracy float64) []SimplePath {
	return ArithmeticOptions{Accuracy: accuracy, FillRule: EvenOdd}.Intersect(path1, path2)
}

// PathSub returns the parts of path1 that aren't covered by path2. See
// [PathAdd] for how shapes are interpreted.
func PathSub(path1, path2 []SimplePath, accuracy float64) []SimplePath {
	return ArithmeticOptions{Accuracy: accuracy, FillRule: EvenOdd}.Sub(path1, path2)
}

// PathRemoveInteriorPoints returns the outline of the area covered by any of
// the paths. Unlike with [PathRemoveOverlappedPoints], holes are filled in.
func PathRemoveInteriorPoints(paths []SimplePath, accuracy float64) []SimplePath {
	return ArithmeticOptions{Accuracy: accuracy}.RemoveInteriorPoints(paths)
}

// PathRemoveOverlappedPoints resolves paths that overlap themselves or each
// other into paths that don't, enclosing the area filled by the [NonZero]
// rule. Paths running in the opposite direction of an enclosing path remain
// holes.
func PathRemoveOverlappedPoints(paths []SimplePath, accuracy float64) []SimplePath {
	return ArithmeticOptions{Accuracy: accuracy, FillRule: NonZero}.RemoveOverlappedPoints(paths)
}

// Add is like [PathAdd] but uses o's fill rule.
func (o ArithmeticOptions) Add(path1, path2 []SimplePath) []SimplePath {
	box1, ok1 := PathsBoundingBox(path1)
	box2, ok2 := PathsBoundingBox(path2)
	switch {
	case !ok1:
		return slices.Clone(path2)
	case !ok2:
		return slices.Clone(path1)
	case !box1.Overlaps(box2):
		return append(slices.Clone(path1), path2...)
	}
	return o.combine(path1, path2, func(in1, in2 bool) bool { return in1 || in2 })
}

// Intersect is like [PathIntersect] but uses o's fill rule.
func (o ArithmeticOptions) Intersect(path1, path2 []SimplePath) []SimplePath {
	box1, ok1 := PathsBoundingBox(path1)
	box2, ok2 := PathsBoundingBox(path2)
	if !ok1 || !ok2 || !box1.Overlaps(box2) {
		return nil
	}
	return o.combine(path1, path2, func(in1, in2 bool) bool { return in1 && in2 })
}

// Sub is like [PathSub] but uses o's fill rule.
func (o ArithmeticOptions) Sub(path1, path2 []SimplePath) []SimplePath {
	box1, ok1 := PathsBoundingBox(path1)
	box2, ok2 := PathsBoundingBox(path2)
	switch {
	case !ok1:
		return nil
	case !ok2 || !box1.Overlaps(box2):
		return slices.Clone(path1)
	}
	return o.combine(path1, path2, func(in1, in2 bool) bool { return in1 && !in2 })
}

// RemoveInteriorPoints is like [PathRemoveInteriorPoints]. The fill rule
// isn't used.
func (o ArithmeticOptions) RemoveInteriorPoints(paths []SimplePath) []SimplePath {
	g := NewGraphPathFromPaths(paths, Path1)
	g.SelfCollide(o.accuracy())
	g.SetExterior(func(pt Point) bool {
		// Count every path as winding the same way.
		var w int
		for _, lp := range g.paths {
			w += pathWinding(lp.path, pt) * lp.label.Direction.sign()
		}
		return w != 0
	})
	return g.ExteriorPaths()
}

// RemoveOverlappedPoints is like [PathRemoveOverlappedPoints] but uses o's
// fill rule.
func (o ArithmeticOptions) RemoveOverlappedPoints(paths []SimplePath) []SimplePath {
	g := NewGraphPathFromPaths(paths, Path1)
	g.SelfCollide(o.accuracy())
	g.SetExterior(func(pt Point) bool {
		return o.FillRule.Fills(PathWinding(paths, pt))
	})
	return g.ExteriorPaths()
}

func (o ArithmeticOptions) combine(path1, path2 []SimplePath, keep func(in1, in2 bool) bool) []SimplePath {
	acc := o.accuracy()
	g := NewGraphPathFromPaths(path1, Path1)
	g.SelfCollide(acc)
	other := NewGraphPathFromPaths(path2, Path2)
	other.SelfCollide(acc)
	g.Collide(other, acc)
	g.SetExteriorByRule(o.FillRule, keep)
	return g.ExteriorPaths()
}
