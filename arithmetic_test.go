package bezier

import (
	"math"
	"testing"
)

func doughnut(cx, cy float64) []SimplePath {
	return []SimplePath{circlePath(cx, cy, 4), circlePath(cx, cy, 3.9)}
}

func totalArea(paths []SimplePath) float64 {
	var a float64
	for _, p := range paths {
		a += PathSignedArea(p)
	}
	return a
}

func TestPathAddEmpty(t *testing.T) {
	a := []SimplePath{circlePath(5, 5, 4)}
	diff(t, a, PathAdd(a, nil, 0.01))
	diff(t, a, PathAdd(nil, a, 0.01))
	diff(t, a, PathAdd(a, []SimplePath{{}}, 0.01))
	diff(t, a, PathSub(a, nil, 0.01))
	if got := PathSub(nil, a, 0.01); len(got) != 0 {
		t.Errorf("subtracting from nothing gave %v", got)
	}
	if got := PathIntersect(a, nil, 0.01); len(got) != 0 {
		t.Errorf("intersecting with nothing gave %v", got)
	}
}

func TestPathArithmeticDisjoint(t *testing.T) {
	a := []SimplePath{rectPath(1, 1, 5, 5)}
	b := []SimplePath{rectPath(10, 10, 12, 12)}
	diff(t, append(a[:len(a):len(a)], b...), PathAdd(a, b, 0.01))
	diff(t, a, PathSub(a, b, 0.01))
	if got := PathIntersect(a, b, 0.01); len(got) != 0 {
		t.Errorf("disjoint shapes intersect in %v", got)
	}
}

func TestPathIntersectSelf(t *testing.T) {
	a := []SimplePath{circlePath(5, 5, 4)}
	got := PathIntersect(a, a, 0.01)
	if len(got) != 1 {
		t.Fatalf("got %d paths, want 1: %v", len(got), got)
	}
	diff(t, PathSignedArea(a[0]), PathSignedArea(got[0]), approx(0.01))
	diff(t, PathBoundingBox(a[0]), PathBoundingBox(got[0]), approx(0.01))

	if got := PathAdd(a, a, 0.01); len(got) != 1 {
		t.Errorf("got %d paths for the union with itself, want 1", len(got))
	}
}

func TestPathAddCircles(t *testing.T) {
	got := PathAdd([]SimplePath{circlePath(5, 5, 4)}, []SimplePath{circlePath(9, 5, 4)}, 0.01)
	if len(got) != 1 {
		t.Fatalf("got %d paths, want 1: %v", len(got), got)
	}
	// Two circles minus the lens they share.
	lens := 2*16*math.Acos(0.5) - 2*math.Sqrt(48)
	diff(t, 2*math.Pi*16-lens, PathSignedArea(got[0]), approx(0.1))
	diff(t, Rect{1, 1, 13, 9}, PathBoundingBox(got[0]), approx(0.01))
}

func TestPathIntersectDoughnuts(t *testing.T) {
	got := PathIntersect(doughnut(5, 5), doughnut(9, 5), 0.01)
	if len(got) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(got), got)
	}
	for _, p := range got {
		if box := PathBoundingBox(p); box.Width() > 1 || box.Height() > 1 {
			t.Errorf("intersection %v is too large", box)
		}
		if c := PathBoundingBox(p).Center(); math.Abs(c.X-7) > 0.1 {
			t.Errorf("intersection centered on %v, want x = 7", c)
		}
	}
}

func TestPathSubInnerCircle(t *testing.T) {
	got := PathSub([]SimplePath{circlePath(5, 5, 4)}, []SimplePath{circlePath(5, 5, 2)}, 0.01)
	if len(got) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(got), got)
	}
	diff(t, math.Pi*(16-4), totalArea(got), approx(0.1))
	if PathDirectionOf(got[0]) == PathDirectionOf(got[1]) {
		t.Error("the hole should run in the opposite direction")
	}
}

func TestPathSubErase(t *testing.T) {
	got := PathSub([]SimplePath{circlePath(5, 5, 2)}, []SimplePath{rectPath(0, 0, 10, 10)}, 0.01)
	if len(got) != 0 {
		t.Errorf("got %v, want nothing", got)
	}
}

func TestPathSubCorner(t *testing.T) {
	got := PathSub([]SimplePath{rectPath(1, 1, 5, 5)}, []SimplePath{rectPath(4, 4, 6, 6)}, 0.01)
	if len(got) != 1 {
		t.Fatalf("got %d paths, want 1: %v", len(got), got)
	}
	diff(t, 6, len(got[0].Segments))
	diff(t, 15.0, PathSignedArea(got[0]), approx(0.1))
	corners := []Point{Pt(1, 1), Pt(1, 5), Pt(4, 5), Pt(4, 4), Pt(5, 4), Pt(5, 1)}
	for _, pp := range got[0].Segments {
		found := false
		for _, c := range corners {
			found = found || pp.End.Distance(c) < 0.01
		}
		if !found {
			t.Errorf("unexpected corner %v", pp.End)
		}
	}
}

func TestPathArithmeticOptions(t *testing.T) {
	// Both circles run the same way, so the inner one is only a hole when
	// filling with the even-odd rule.
	ring := []SimplePath{circlePath(5, 5, 4), circlePath(5, 5, 2)}
	frame := []SimplePath{rectPath(0, 0, 10, 10)}

	evenOdd := ArithmeticOptions{FillRule: EvenOdd}.Intersect(ring, frame)
	if len(evenOdd) != 2 {
		t.Errorf("got %d paths with EvenOdd, want 2", len(evenOdd))
	}
	diff(t, math.Pi*(16-4), totalArea(evenOdd), approx(0.1))

	nonZero := ArithmeticOptions{}.Intersect(ring, frame)
	if len(nonZero) != 1 {
		t.Errorf("got %d paths with NonZero, want 1", len(nonZero))
	}
	diff(t, math.Pi*16, totalArea(nonZero), approx(0.1))
}

func TestPathRemoveInteriorPoints(t *testing.T) {
	got := PathRemoveInteriorPoints(doughnut(5, 5), 0.01)
	if len(got) != 1 {
		t.Fatalf("got %d paths, want 1: %v", len(got), got)
	}
	diff(t, math.Pi*16, PathSignedArea(got[0]), approx(0.1))

	overlapping := []SimplePath{circlePath(5, 5, 4), ReversePath(circlePath(9, 5, 4))}
	if got := PathRemoveInteriorPoints(overlapping, 0.01); len(got) != 1 {
		t.Errorf("got %d paths for overlapping circles, want 1", len(got))
	}
}

func TestPathRemoveOverlappedPoints(t *testing.T) {
	bowtie := []SimplePath{NewPolygon(Pt(0, 0), Pt(10, 10), Pt(10, 0), Pt(0, 10))}
	got := PathRemoveOverlappedPoints(bowtie, 0.01)
	if len(got) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(got), got)
	}
	for _, p := range got {
		diff(t, 25.0, PathSignedArea(p), approx(0.1))
	}

	// A hole running the other way is kept.
	holed := []SimplePath{circlePath(5, 5, 4), ReversePath(circlePath(5, 5, 2))}
	got = PathRemoveOverlappedPoints(holed, 0.01)
	if len(got) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(got), got)
	}
	diff(t, math.Pi*12, totalArea(got), approx(0.1))
}
