package bezier

// Basis evaluates the cubic Bernstein polynomial with weights w1 to w4 at t.
//
// t is not clamped. Values outside [0, 1] extrapolate the curve.
func Basis(t, w1, w2, w3, w4 float64) float64 {
	mt := 1.0 - t
	return w1*mt*mt*mt + 3.0*w2*mt*mt*t + 3.0*w3*mt*t*t + w4*t*t*t
}

// DeCasteljau4 evaluates a cubic Bézier with weights w1 to w4 at t by
// repeated linear interpolation. It agrees with [Basis] up to rounding.
func DeCasteljau4(t, w1, w2, w3, w4 float64) float64 {
	return DeCasteljau3(t, lerp(w1, w2, t), lerp(w2, w3, t), lerp(w3, w4, t))
}

// DeCasteljau3 evaluates a quadratic Bézier with weights w1 to w3 at t.
func DeCasteljau3(t, w1, w2, w3 float64) float64 {
	return DeCasteljau2(t, lerp(w1, w2, t), lerp(w2, w3, t))
}

// DeCasteljau2 evaluates a linear Bézier with weights w1 and w2 at t.
func DeCasteljau2(t, w1, w2 float64) float64 {
	return lerp(w1, w2, t)
}

// Subdivide4 splits the cubic with weights w1 to w4 at t. The first result
// covers [0, t] of the original curve and the second covers [t, 1], each
// reparametrized to [0, 1].
func Subdivide4(t, w1, w2, w3, w4 float64) ([4]float64, [4]float64) {
	// First level
	wn1 := lerp(w1, w2, t)
	wn2 := lerp(w2, w3, t)
	wn3 := lerp(w3, w4, t)

	// Second level
	wnn1 := lerp(wn1, wn2, t)
	wnn2 := lerp(wn2, wn3, t)

	// Point on the curve
	p := lerp(wnn1, wnn2, t)

	return [4]float64{w1, wn1, wnn1, p}, [4]float64{p, wnn2, wn3, w4}
}

// Derivative4 returns the weights of the quadratic Bézier that is the
// derivative of the cubic with weights w1 to w4.
func Derivative4(w1, w2, w3, w4 float64) (float64, float64, float64) {
	return (w2 - w1) * 3.0, (w3 - w2) * 3.0, (w4 - w3) * 3.0
}

// Derivative3 returns the weights of the linear Bézier that is the
// derivative of the quadratic with weights w1 to w3.
func Derivative3(w1, w2, w3 float64) (float64, float64) {
	return (w2 - w1) * 2.0, (w3 - w2) * 2.0
}

// Derivative2 returns the derivative of the linear Bézier with weights w1
// and w2, which is constant.
func Derivative2(w1, w2 float64) float64 {
	return w2 - w1
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
