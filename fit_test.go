package bezier

import (
	"math"
	"testing"
)

// distanceToCurves approximates the distance from pt to the nearest of cs.
func distanceToCurves(pt Point, cs []Curve) float64 {
	best := math.Inf(1)
	for _, c := range cs {
		const n = 500
		prev := c.P0
		for i := 1; i <= n; i++ {
			next := c.Eval(float64(i) / n)
			seg := Line{prev, next}
			t := min(max(seg.PosForPoint(pt), 0), 1)
			best = min(best, seg.Eval(t).Distance(pt))
			prev = next
		}
	}
	return best
}

func checkFit(t *testing.T, pts []Point, cs []Curve, maxError float64) {
	t.Helper()
	if len(cs) == 0 {
		t.Fatal("no curves")
	}
	diff(t, pts[0], cs[0].P0)
	diff(t, pts[len(pts)-1], cs[len(cs)-1].P3)
	for i := 1; i < len(cs); i++ {
		diff(t, cs[i-1].P3, cs[i].P0)
	}
	for _, pt := range pts {
		if d := distanceToCurves(pt, cs); d > maxError+1e-6 {
			t.Errorf("%v is %v away from the fit", pt, d)
		}
	}
}

func TestFitCurve(t *testing.T) {
	src := Curve{Pt(0, 0), Pt(10, 20), Pt(30, 20), Pt(40, 0)}
	var pts []Point
	for i := range 31 {
		pts = append(pts, src.Eval(float64(i)/30))
	}
	for _, maxError := range []float64{1, 0.1, 0.01} {
		cs := FitCurve(pts, maxError)
		checkFit(t, pts, cs, maxError)
	}
}

func TestFitCurveCorner(t *testing.T) {
	var pts []Point
	for i := range 11 {
		pts = append(pts, Pt(float64(i), 0))
	}
	for i := 1; i <= 10; i++ {
		pts = append(pts, Pt(10, float64(i)))
	}
	cs := FitCurve(pts, 0.1)
	checkFit(t, pts, cs, 0.1)
	if len(cs) < 2 {
		t.Errorf("got %d curves for a corner, want at least 2", len(cs))
	}
}

func TestFitCurveLine(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(2, 2), Pt(3, 3)}
	cs := FitCurve(pts, 0.01)
	if len(cs) != 1 {
		t.Fatalf("got %d curves, want 1", len(cs))
	}
	checkFit(t, pts, cs, 0.01)

	cs = FitCurve([]Point{Pt(0, 0), Pt(3, 0)}, 0.01)
	diff(t, []Curve{Line{Pt(0, 0), Pt(3, 0)}.Curve()}, cs, approx(1e-12))
}

func TestFitCurveDegenerate(t *testing.T) {
	if cs := FitCurve(nil, 1); cs != nil {
		t.Errorf("got %v for no points", cs)
	}
	if cs := FitCurve([]Point{Pt(1, 1), Pt(1, 1)}, 1); cs != nil {
		t.Errorf("got %v for a single distinct point", cs)
	}
}
