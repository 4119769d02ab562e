// SPDX-License-Identifier: MIT
// Package: lvquad/quadrature
//
// integrate.go — the two public calling forms.
//
//   • Integrate:     pre-sampled values + (x1, x2).
//   • IntegrateFunc: scalar function + (x1, x2, n); samples on a uniform
//                    grid and delegates to Integrate.
//
// Validation order (first failure wins):
//   rule → sample count → non-finite samples → weight length.

package quadrature

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvquad/sampler"
)

// Integrate approximates ∫ f(x) dx over [x1, x2] from samples f(x_i) taken at
// evenly spaced abscissas. x2 < x1 is allowed and flips the sign of the result.
//
// Steps:
//  1. Reject unknown rules (ErrUnsupportedConfiguration).
//  2. Apply the non-finite policy.
//  3. w := Weights(rule, n) (or the configured WeightSource).
//  4. return (w · samples) · Scale(rule, Step(rule, n, x1, x2)).
//
// Complexity: O(n) time, O(n) memory for the weight vector.
func Integrate(samples []float64, rule Rule, x1, x2 float64, opts ...Option) (float64, error) {
	if !rule.Valid() {
		return 0, quadErrorf(MethodIntegrate, ErrUnsupportedConfiguration, "unknown rule %s", rule)
	}

	cfg := newConfig(opts...)
	n := len(samples)

	if cfg.nonFinite == Reject {
		for i, y := range samples {
			if math.IsNaN(y) || math.IsInf(y, 0) {
				return 0, quadErrorf(MethodIntegrate, ErrInvalidInput, "non-finite sample %v at index %d", y, i)
			}
		}
	}

	w, err := cfg.source.Weights(rule, n)
	if err != nil {
		return 0, err
	}
	if len(w) != n {
		return 0, quadErrorf(MethodIntegrate, ErrInvalidInput, "weight vector has %d entries for %d samples", len(w), n)
	}

	dx := Step(rule, n, x1, x2)

	return floats.Dot(w, samples) * Scale(rule, dx), nil
}

// IntegrateFunc samples f at n evenly spaced points covering [x1, x2]
// (endpoints included) and integrates the result with Integrate.
//
// Errors:
//   - ErrInvalidInput for a nil f or n < 1.
//   - anything Integrate returns.
func IntegrateFunc(f func(float64) float64, rule Rule, x1, x2 float64, n int, opts ...Option) (float64, error) {
	if !rule.Valid() {
		return 0, quadErrorf(MethodIntegrateFunc, ErrUnsupportedConfiguration, "unknown rule %s", rule)
	}
	if f == nil {
		return 0, quadErrorf(MethodIntegrateFunc, ErrInvalidInput, "nil function")
	}
	if n < 1 {
		return 0, quadErrorf(MethodIntegrateFunc, ErrInvalidInput, "sample count must be ≥ 1, got %d", n)
	}

	ys, err := sampler.Sample(f, x1, x2, n)
	if err != nil {
		return 0, quadErrorf(MethodIntegrateFunc, ErrInvalidInput, "sampling: %v", err)
	}

	return Integrate(ys, rule, x1, x2, opts...)
}
