package bezier

import (
	"slices"
	"testing"
)

func TestPathDirectionOf(t *testing.T) {
	tests := []struct {
		path SimplePath
		want PathDirection
	}{
		{rectPath(1, 1, 5, 5), Clockwise},
		{ReversePath(rectPath(1, 1, 5, 5)), Anticlockwise},
		{circlePath(5, 5, 4), Anticlockwise},
		{ReversePath(circlePath(5, 5, 4)), Clockwise},
		// Two segments: a lens bulging to the left of the way out.
		{SimplePath{Start: Pt(0, 0), Segments: []PathPoint{
			{Pt(0, -5), Pt(10, -5), Pt(10, 0)},
			{Pt(10, 5), Pt(0, 5), Pt(0, 0)},
		}}, Anticlockwise},
	}
	for _, tt := range tests {
		if got := PathDirectionOf(tt.path); got != tt.want {
			t.Errorf("%v: got %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNewGraphPath(t *testing.T) {
	g := NewGraphPath(rectPath(1, 1, 5, 5), Path2)
	diff(t, 4, g.NumPoints())
	diff(t, 4, g.NumEdges())
	for e := range g.Edges() {
		diff(t, PathLabel{Path2, Clockwise}, e.Label)
		diff(t, Uncategorized, e.Kind)
		diff(t, g.Point(e.Start), e.Curve.P0)
		diff(t, g.Point(e.End), e.Curve.P3)
	}

	// Open paths are closed with a line.
	open := SimplePath{Start: Pt(0, 0)}
	open.LineTo(Pt(10, 0))
	open.LineTo(Pt(10, 10))
	g = NewGraphPath(open, Path1)
	diff(t, 3, g.NumEdges())
	last := slices.Collect(g.Edges())[2]
	diff(t, Line{Pt(10, 10), Pt(0, 0)}.Curve(), last.Curve, approx(1e-12))

	// Almost closed paths are snapped shut.
	nearly := SimplePath{Start: Pt(0, 0)}
	nearly.LineTo(Pt(10, 0))
	nearly.LineTo(Pt(10, 10))
	nearly.LineTo(Pt(0.005, 0))
	g = NewGraphPath(nearly, Path1)
	diff(t, 3, g.NumEdges())
	diff(t, 0, slices.Collect(g.Edges())[2].End)

	if g := NewGraphPath(SimplePath{}, Path1); g.NumEdges() != 0 || g.NumPoints() != 0 {
		t.Errorf("empty path produced %d points and %d edges", g.NumPoints(), g.NumEdges())
	}
}

func TestGraphPathMerge(t *testing.T) {
	g := NewGraphPath(rectPath(1, 1, 5, 5), Path1)
	g.Merge(NewGraphPath(rectPath(10, 10, 12, 12), Path2))
	diff(t, 8, g.NumPoints())
	diff(t, 8, g.NumEdges())
	for e := range g.Edges() {
		if (e.Start >= 4) != (e.Label.Source == Path2) {
			t.Errorf("edge %v refers to the wrong points", e)
		}
	}
}

func TestGraphPathCollide(t *testing.T) {
	g := NewGraphPath(rectPath(1, 1, 5, 5), Path1)
	g.Collide(NewGraphPath(rectPath(4, 4, 6, 6), Path2), 0.01)

	// Two intersections, each cutting one edge of either rectangle.
	diff(t, 10, g.NumPoints())
	diff(t, 12, g.NumEdges())
	degree := make(map[int]int)
	for e := range g.Edges() {
		degree[e.Start]++
		degree[e.End]++
	}
	var crossings []Point
	for i, d := range degree {
		switch d {
		case 2:
		case 4:
			crossings = append(crossings, g.Point(i))
		default:
			t.Errorf("point %v has %d edges", g.Point(i), d)
		}
	}
	if len(crossings) != 2 {
		t.Fatalf("got %d crossings, want 2", len(crossings))
	}
	slices.SortFunc(crossings, func(a, b Point) int {
		if a.X < b.X {
			return -1
		}
		return 1
	})
	diff(t, []Point{Pt(4, 5), Pt(5, 4)}, crossings, approx(0.01))
}

func TestGraphPathSelfCollide(t *testing.T) {
	bowtie := NewPolygon(Pt(0, 0), Pt(10, 10), Pt(10, 0), Pt(0, 10))
	g := NewGraphPath(bowtie, Path1)
	g.SelfCollide(0.01)
	diff(t, 5, g.NumPoints())
	diff(t, 6, g.NumEdges())
	diff(t, Pt(5, 5), g.Point(4), approx(0.01))
}

func TestGraphPathCollideCoincident(t *testing.T) {
	// Identical paths end up sharing all of their points.
	g := NewGraphPath(circlePath(5, 5, 4), Path1)
	g.Collide(NewGraphPath(circlePath(5, 5, 4), Path2), 0.01)
	diff(t, 8, g.NumEdges())
	for e := range g.Edges() {
		if e.Start >= 4 || e.End >= 4 {
			t.Errorf("edge %v wasn't merged with its twin", e)
		}
	}

	g.SetExteriorByRule(EvenOdd, func(in1, in2 bool) bool { return in1 && in2 })
	var exterior int
	for e := range g.Edges() {
		if e.Kind == Exterior {
			exterior++
		}
	}
	diff(t, 4, exterior)
}

func TestGraphPathExteriorPaths(t *testing.T) {
	// Two squares touching at a corner stay separate paths.
	g := NewGraphPath(rectPath(0, 0, 1, 1), Path1)
	g.Collide(NewGraphPath(rectPath(1, 1, 2, 2), Path2), 0.01)
	g.SetExteriorByRule(NonZero, func(in1, in2 bool) bool { return in1 || in2 })
	paths := g.ExteriorPaths()
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(paths), paths)
	}
	for _, p := range paths {
		diff(t, 4, len(p.Segments))
		diff(t, 1.0, PathSignedArea(p), approx(1e-9))
	}
}

func TestEdgeKindString(t *testing.T) {
	diff(t, "Exterior", Exterior.String())
	diff(t, "Uncategorized", Uncategorized.String())
	diff(t, "Path2", Path2.String())
	diff(t, "Anticlockwise", Anticlockwise.String())
}
