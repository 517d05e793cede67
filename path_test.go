package bezier

import (
	"math"
	"slices"
	"testing"
)

func TestPathToCurvesRoundTrip(t *testing.T) {
	paths := []SimplePath{
		circlePath(5, 5, 4),
		rectPath(1, 1, 5, 5),
		{Start: Pt(1, 2), Segments: []PathPoint{{Pt(3, 4), Pt(5, 6), Pt(7, 8)}}},
	}
	for _, p := range paths {
		curves := slices.Collect(PathToCurves(p))
		if len(curves) != len(p.Segments) {
			t.Fatalf("got %d curves, want %d", len(curves), len(p.Segments))
		}
		diff(t, p.Start, curves[0].P0)
		for i := 1; i < len(curves); i++ {
			diff(t, curves[i-1].P3, curves[i].P0)
		}

		back := PathFromCurves(slices.Values(curves))
		diff(t, p.StartPoint(), back.StartPoint())
		diff(t, p.End(), back.End())
		diff(t, p, back)
	}
}

func TestPathToCurvesRestartable(t *testing.T) {
	seq := PathToCurves(rectPath(0, 0, 1, 1))
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	diff(t, first, second)

	var n int
	for range seq {
		n++
		break
	}
	if n != 1 {
		t.Errorf("got %d iterations, want 1", n)
	}
}

func TestPathToCurvesEmpty(t *testing.T) {
	for range PathToCurves(SimplePath{Start: Pt(3, 3)}) {
		t.Error("empty path produced a curve")
	}
	diff(t, Rect{}, PathBoundingBox(SimplePath{Start: Pt(3, 3)}))
}

func TestPathsFromCurves(t *testing.T) {
	a := Line{Pt(0, 0), Pt(1, 0)}.Curve()
	b := Line{Pt(1, 0), Pt(1, 1)}.Curve()
	c := Line{Pt(5, 5), Pt(6, 6)}.Curve()
	paths := PathsFromCurves(slices.Values([]Curve{a, b, c}))
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	diff(t, 2, len(paths[0].Segments))
	diff(t, Pt(5, 5), paths[1].Start)
}

func TestPathFromCurvesPanicsOnGap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	a := Line{Pt(0, 0), Pt(1, 0)}.Curve()
	c := Line{Pt(5, 5), Pt(6, 6)}.Curve()
	PathFromCurves(slices.Values([]Curve{a, c}))
}

func TestPathBoundingBox(t *testing.T) {
	p := circlePath(5, 5, 4)
	diff(t, Rect{1, 1, 9, 9}, PathBoundingBox(p), approx(1e-9))
	fast := PathFastBoundingBox(p)
	if fast.X0 > 1 || fast.Y0 > 1 || fast.X1 < 9 || fast.Y1 < 9 {
		t.Errorf("fast bounding box %v doesn't enclose the circle", fast)
	}

	bbox, ok := PathsBoundingBox([]SimplePath{{}, rectPath(0, 0, 1, 1), rectPath(3, -1, 4, 0)})
	if !ok {
		t.Fatal("expected a bounding box")
	}
	diff(t, Rect{0, -1, 4, 1}, bbox)
	if _, ok := PathsBoundingBox([]SimplePath{{}}); ok {
		t.Error("empty paths have no bounding box")
	}
}

func TestIsClockwise(t *testing.T) {
	p := SimplePath{Start: Pt(1, 1)}
	p.LineTo(Pt(1, 5))
	p.LineTo(Pt(5, 5))
	p.LineTo(Pt(5, 1))
	if !IsClockwise(p) {
		t.Error("expected rectangle to be clockwise")
	}

	r := SimplePath{Start: Pt(1, 1)}
	r.LineTo(Pt(5, 1))
	r.LineTo(Pt(5, 5))
	r.LineTo(Pt(1, 5))
	if IsClockwise(r) {
		t.Error("expected reversed rectangle to be anticlockwise")
	}

	if IsClockwise(ReversePath(p)) {
		t.Error("expected ReversePath to flip the orientation")
	}

	// Circles run anticlockwise.
	if IsClockwise(circlePath(5, 5, 4)) {
		t.Error("expected circle to be anticlockwise")
	}
}

func TestPathSignedArea(t *testing.T) {
	if a := PathSignedArea(rectPath(1, 1, 5, 5)); math.Abs(a+16) > 1e-9 {
		t.Errorf("got area %v, want -16", a)
	}
	if a := PathSignedArea(circlePath(0, 0, 2)); math.Abs(a-4*math.Pi) > 1e-2 {
		t.Errorf("got area %v, want about %v", a, 4*math.Pi)
	}
}

func TestReversePath(t *testing.T) {
	p := SimplePath{Start: Pt(0, 0)}
	p.CubicTo(Pt(1, 1), Pt(2, 1), Pt(3, 0))
	p.LineTo(Pt(3, -3))

	r := ReversePath(p)
	diff(t, Pt(3, -3), r.Start)
	diff(t, Pt(0, 0), r.End())

	fwd := slices.Collect(PathToCurves(p))
	rev := slices.Collect(PathToCurves(r))
	for i, c := range fwd {
		diff(t, c.Reverse(), rev[len(rev)-1-i], pointComparer)
	}
	diff(t, p, ReversePath(r))
}

func TestPathWinding(t *testing.T) {
	// A doughnut: outer circle anticlockwise, inner clockwise.
	outer := circlePath(5, 5, 4)
	inner := ReversePath(circlePath(5, 5, 2))
	paths := []SimplePath{outer, inner}
	tests := []struct {
		pt   Point
		want int
	}{
		{Pt(5, 5), 0},
		{Pt(2, 5), 1},
		{Pt(5, 8), 1},
		{Pt(20, 5), 0},
	}
	for _, tt := range tests {
		if got := PathWinding(paths, tt.pt); got != tt.want {
			t.Errorf("%v: got winding %d, want %d", tt.pt, got, tt.want)
		}
	}

	// Open paths are closed implicitly.
	open := SimplePath{Start: Pt(0, 0)}
	open.LineTo(Pt(10, 0))
	open.LineTo(Pt(10, 10))
	if got := PathWinding([]SimplePath{open}, Pt(8, 2)); got != 1 {
		t.Errorf("got winding %d, want 1", got)
	}
}

func TestNewPolygon(t *testing.T) {
	p := NewPolygon(Pt(0, 0), Pt(0, 1), Pt(1, 1))
	if len(p.Segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(p.Segments))
	}
	diff(t, p.Start, p.End())
	diff(t, SimplePath{}, NewPolygon())
}

type foreignPath struct {
	start Point
	pts   []PathPoint
}

func (p foreignPath) StartPoint() Point   { return p.start }
func (p foreignPath) Points() []PathPoint { return p.pts }

func TestPathOf(t *testing.T) {
	fp := foreignPath{Pt(1, 1), []PathPoint{{Pt(1, 2), Pt(2, 2), Pt(3, 3)}}}
	if IsClockwise(fp) != IsClockwise(PathOf(fp)) {
		t.Error("conversion changed orientation")
	}
	diff(t, SimplePath{Start: Pt(1, 1), Segments: fp.pts}, PathOf(fp))
}
