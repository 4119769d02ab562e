// SPDX-License-Identifier: MIT
// Package: lvquad/sampler
//
// grid.go — uniform grids and function sampling.

package sampler

import (
	"gonum.org/v1/gonum/floats"
)

// MinSamples is the smallest sample count a grid may have.
const MinSamples = 1

// Linspace returns n evenly spaced points from x1 to x2 inclusive.
// n == 1 yields [x1]. x2 < x1 produces a descending grid.
//
// Complexity: O(n) time and memory.
func Linspace(x1, x2 float64, n int) ([]float64, error) {
	if n < MinSamples {
		return nil, samplerErrorf(MethodLinspace, ErrBadSize, "n must be ≥ %d, got %d", MinSamples, n)
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = x1
		return xs, nil
	}
	return floats.Span(xs, x1, x2), nil
}

// Sample evaluates f at Linspace(x1, x2, n) and returns the values.
func Sample(f Func, x1, x2 float64, n int) ([]float64, error) {
	if f == nil {
		return nil, samplerErrorf(MethodSample, ErrNilFunc, "f is nil")
	}
	xs, err := Linspace(x1, x2, n)
	if err != nil {
		return nil, err
	}
	for i, x := range xs {
		xs[i] = f(x)
	}
	return xs, nil
}
