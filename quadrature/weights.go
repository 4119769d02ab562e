// SPDX-License-Identifier: MIT
// Package: lvquad/quadrature
//
// weights.go — per-rule, per-length-class weight vector builders.
//
// Contract:
//   • Weights(rule, n) depends only on (rule, n) and returns a fresh slice of
//     length n that the caller owns.
//   • Multiplying by Scale(rule, dx) turns Σ w[i]·y[i] into the integral.
//   • For the standard stencil lengths each vector reproduces the exact
//     integral of every polynomial up to Rule.Degree(); remainder corrections
//     keep at least constants and linear functions exact.

package quadrature

// Remainder-tail coefficients for Simpson's 3/8 rule, keyed by n mod 3.
// They blend the trailing partial stencil into the last full stencil.
var (
	// n ≡ 1: stencils tile exactly.
	simpson38TailOne = []float64{1}
	// n ≡ 2: one extra interval.
	simpson38TailTwo = []float64{7.0 / 3, 4.0 / 3}
	// n ≡ 0: two extra intervals.
	simpson38TailThree = []float64{17.0 / 9, 32.0 / 9, 8.0 / 9}
)

// simpson38Unit is the repeating interior pattern; the leading 2 merges two
// adjacent stencil endpoints.
var simpson38Unit = [3]float64{2, 3, 3}

// Weights returns the weight vector for rule over n evenly spaced samples.
//
// Errors:
//   - ErrUnsupportedConfiguration if rule is unknown, or n == 0 for Simpson13/Simpson38.
//   - ErrInvalidInput if n < 1 for Rectangle/Trapezoid, or n < 0 for any rule.
//
// Complexity: O(n) time and memory.
func Weights(rule Rule, n int) ([]float64, error) {
	if !rule.Valid() {
		return nil, quadErrorf(MethodWeights, ErrUnsupportedConfiguration, "unknown rule %s", rule)
	}
	if n < 0 {
		return nil, quadErrorf(MethodWeights, ErrInvalidInput, "negative sample count %d", n)
	}

	switch rule {
	case Rectangle:
		return rectangleWeights(n)
	case Trapezoid:
		return trapezoidWeights(n)
	case Simpson13:
		return simpson13Weights(n)
	case Simpson38:
		return simpson38Weights(n)
	default:
		return nil, quadErrorf(MethodWeights, ErrUnsupportedConfiguration, "unknown rule %s", rule)
	}
}

// Scale returns the factor applied to Σ w[i]·y[i] for the given rule and
// step: dx, dx/2, dx·2/6 or dx·3/8. Unknown rules yield 0.
func Scale(rule Rule, dx float64) float64 {
	switch rule {
	case Rectangle:
		return dx
	case Trapezoid:
		return dx / 2
	case Simpson13:
		return dx * 2 / 6
	case Simpson38:
		return dx * 3 / 8
	default:
		return 0
	}
}

// Step returns the sample spacing for rule over [x1, x2] with n samples.
// Rectangle divides by n; every other rule divides by n−1. When the divisor
// is zero the step is 0, which makes single-sample integrals vanish.
func Step(rule Rule, n int, x1, x2 float64) float64 {
	div := n - 1
	if rule == Rectangle {
		div = n
	}
	if div <= 0 {
		return 0
	}
	return (x2 - x1) / float64(div)
}

// rectangleWeights: all ones. Exact for constants because Σ c·dx = n·c·(x2−x1)/n.
func rectangleWeights(n int) ([]float64, error) {
	if n < 1 {
		return nil, quadErrorf(MethodWeights, ErrInvalidInput, "%s needs at least 1 sample, got %d", Rectangle, n)
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w, nil
}

// trapezoidWeights: [1,2,…,2,1], exact for linear functions. A single sample
// spans no interval and gets weight 0.
func trapezoidWeights(n int) ([]float64, error) {
	if n < 1 {
		return nil, quadErrorf(MethodWeights, ErrInvalidInput, "%s needs at least 1 sample, got %d", Trapezoid, n)
	}
	w := make([]float64, n)
	if n == 1 {
		return w, nil
	}
	for i := range w {
		w[i] = 2
	}
	w[0], w[n-1] = 1, 1
	return w, nil
}

// simpson13Weights builds the 1/3-rule vector.
//
//	n odd  ≥ 3: [1,4,2,4,…,2,4,1]            exact up to cubics
//	n even ≥ 4: [1,4,2,…,4,2.5,1.5]          last interval blended; exact up to linear
//	n = 2:      [1.5, 1.5]                   trapezoid in 1/3 units
//	n = 1:      [3]                          single point; dx is 0
func simpson13Weights(n int) ([]float64, error) {
	switch {
	case n == 0:
		return nil, quadErrorf(MethodWeights, ErrUnsupportedConfiguration, "%s needs at least 1 sample", Simpson13)
	case n == 1:
		return []float64{3}, nil
	case n == 2:
		return []float64{1.5, 1.5}, nil
	}

	w := make([]float64, n)
	for i := range w {
		// 3 − (−1)^i: 2 on even indices, 4 on odd ones.
		if i%2 == 0 {
			w[i] = 2
		} else {
			w[i] = 4
		}
	}
	w[0] = 1
	if n%2 == 1 {
		w[n-1] = 1
	} else {
		w[n-2], w[n-1] = 2.5, 1.5
	}
	return w, nil
}

// simpson38Weights builds the 3/8-rule vector.
//
//	n ≥ 4: [1,3,3, 2,3,3, …] (⌊(n−1)/3⌋ units) + tail by n mod 3:
//	       1 → [1]; 2 → [7/3, 4/3]; 0 → [17/9, 32/9, 8/9]
//	n = 3: [8/9, 32/9, 8/9]                  Simpson 1/3 in 3/8 units
//	n = 2: [4/3, 4/3]                        trapezoid in 3/8 units
//	n = 1: [8/3]                             single point; dx is 0
func simpson38Weights(n int) ([]float64, error) {
	switch {
	case n == 0:
		return nil, quadErrorf(MethodWeights, ErrUnsupportedConfiguration, "%s needs at least 1 sample", Simpson38)
	case n == 1:
		return []float64{8.0 / 3}, nil
	case n == 2:
		return []float64{4.0 / 3, 4.0 / 3}, nil
	case n == 3:
		return []float64{8.0 / 9, 32.0 / 9, 8.0 / 9}, nil
	}

	units := (n - 1) / 3
	w := make([]float64, 0, n)
	for u := 0; u < units; u++ {
		w = append(w, simpson38Unit[:]...)
	}
	w[0] = 1

	switch n % 3 {
	case 1:
		w = append(w, simpson38TailOne...)
	case 2:
		w = append(w, simpson38TailTwo...)
	default:
		w = append(w, simpson38TailThree...)
	}
	return w, nil
}
