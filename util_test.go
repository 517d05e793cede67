package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and thus points and curves, with an absolute
// margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func rectPath(x0, y0, x1, y1 float64) SimplePath {
	return NewPolygon(Pt(x0, y0), Pt(x0, y1), Pt(x1, y1), Pt(x1, y0))
}

func circlePath(cx, cy, r float64) SimplePath {
	return Circle{Center: Pt(cx, cy), Radius: r}.Path()
}
