package bezier

import (
	"math"
	"testing"
)

func TestCircleCurves(t *testing.T) {
	c := Circle{Center: Pt(5, 5), Radius: 5}
	curves := c.Curves()
	if len(curves) != 4 {
		t.Fatalf("got %d curves, want 4", len(curves))
	}
	diff(t, Pt(10, 5), curves[0].P0)
	for i, cv := range curves {
		diff(t, cv.P3, curves[(i+1)%4].P0)
		for j := 0; j <= 10; j++ {
			pt := cv.Eval(float64(j) / 10)
			if d := pt.Distance(c.Center); math.Abs(d-5) > 5*3e-4 {
				t.Errorf("curve %d: point %v is %v from the center, want 5", i, pt, d)
			}
		}
	}
}

func TestCircleAreaSign(t *testing.T) {
	c := Circle{Pt(5, 5), 5}
	if a := c.Area(); math.Abs(a-25*math.Pi) > 1e-9 {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}

	p := c.Path()
	if ca, pa := c.Area(), PathSignedArea(p); math.Abs(ca-pa) > 0.01 {
		t.Errorf("got areas %v and %v, expected them to be about equal", ca, pa)
	}
	if w := PathWinding([]SimplePath{p}, c.Center); w != 1 {
		t.Errorf("got winding number %d, expected 1", w)
	}
	diff(t, c.BoundingBox(), PathBoundingBox(p), approx(1e-9))
}

func TestCircleArc(t *testing.T) {
	c := Circle{Pt(0, 0), 3}
	arc := c.Arc(0, math.Pi/3)
	diff(t, Pt(3, 0), arc.P0, pointComparer)
	diff(t, Pt(1.5, 3*math.Sqrt(3)/2), arc.P3, pointComparer)
	for j := 0; j <= 10; j++ {
		pt := arc.Eval(float64(j) / 10)
		if d := pt.Hypot(); math.Abs(d-3) > 1e-3 {
			t.Errorf("point %v is %v from the center, want 3", pt, d)
		}
	}
}

func TestCircleContains(t *testing.T) {
	c := Circle{Pt(1, 1), 2}
	if !c.Contains(Pt(2, 2)) {
		t.Error("expected (2, 2) to be inside")
	}
	if c.Contains(Pt(3, 3)) {
		t.Error("expected (3, 3) to be outside")
	}
}
