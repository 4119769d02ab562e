// Package quadrature integrates uniformly sampled functions with composite
// Newton–Cotes rules of several orders.
//
// What is it?
//
//	Given samples y[0..n-1] taken at evenly spaced abscissas over [x1, x2]
//	and a Rule, the package builds a weight vector w (depending only on the
//	rule and n) and returns
//
//	    I ≈ Σ w[i]·y[i] · Scale(rule, dx)
//
//	The weight builders accept ANY sample count. When n is not a multiple of
//	the rule's stencil width, the trailing partial stencil is blended into the
//	last full stencil with closed-form corrections, so callers never pad.
//
// Rules:
//
//	Rectangle  — Σ y · dx,  dx = (x2−x1)/n          (exactness degree 0)
//	Trapezoid  — [1,2,…,2,1] · dx/2                 (degree 1)
//	Simpson13  — [1,4,2,…,4,1] · dx/3               (degree 3, odd n)
//	Simpson38  — [1,3,3,2,3,3,…,1] · 3dx/8          (degree 3, n ≡ 1 mod 3)
//
// Every rule except Rectangle uses dx = (x2−x1)/(n−1). A single sample under
// those rules has no spacing; dx is taken as 0 and the integral is 0.
//
// Usage:
//
//	ys := []float64{0, 0.25, 1}                        // x² on [0, 1]
//	v, err := quadrature.Integrate(ys, quadrature.Simpson13, 0, 1)
//
//	g := func(x float64) float64 { return math.Exp(-x * x) }
//	v, err = quadrature.IntegrateFunc(g, quadrature.Simpson13, -100, 100, 1001)
//
// Errors:
//
//	ErrUnsupportedConfiguration — unknown rule, or no samples for a Simpson rule.
//	ErrInvalidInput             — no samples, nil function, or (with
//	                              WithNonFinite(Reject)) NaN/Inf in the samples.
//
// All functions are pure and safe for concurrent use.
package quadrature
