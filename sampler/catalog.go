// SPDX-License-Identifier: MIT
// Package: lvquad/sampler
//
// catalog.go — named scalar functions for CLI flags and job files.

package sampler

import (
	"math"
	"sort"
	"strings"
)

// Func is a real scalar function.
type Func func(x float64) float64

// Gauss is exp(−x²); its integral over ℝ is √π.
func Gauss(x float64) float64 { return math.Exp(-x * x) }

// Square is x².
func Square(x float64) float64 { return x * x }

// Cube is x³.
func Cube(x float64) float64 { return x * x * x }

// One is the constant 1.
func One(float64) float64 { return 1 }

var catalog = map[string]Func{
	"gauss":  Gauss,
	"sin":    math.Sin,
	"cos":    math.Cos,
	"exp":    math.Exp,
	"square": Square,
	"cube":   Cube,
	"one":    One,
}

// Lookup returns the catalog function registered under name (case-insensitive).
func Lookup(name string) (Func, bool) {
	f, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// Resolve is Lookup with an ErrUnknownFunc error instead of a bool.
func Resolve(name string) (Func, error) {
	if f, ok := Lookup(name); ok {
		return f, nil
	}
	return nil, samplerErrorf(MethodResolve, ErrUnknownFunc, "%q (known: %s)", name, strings.Join(Names(), ", "))
}

// Names lists the catalog in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
