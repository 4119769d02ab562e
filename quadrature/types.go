// SPDX-License-Identifier: MIT
// Package: lvquad/quadrature
//
// types.go — the closed Rule enumeration and the non-finite policy.

package quadrature

import (
	"strconv"
	"strings"
)

// Rule selects the composite integration rule.
//
//   - Rectangle — sample sum scaled by (x2−x1)/n.
//   - Trapezoid — piecewise-linear interpolation, stencil width 2.
//   - Simpson13 — piecewise-quadratic (Simpson's 1/3), stencil width 3.
//   - Simpson38 — piecewise-cubic (Simpson's 3/8), stencil width 4.
//
// The set is closed. Any other value is rejected with
// ErrUnsupportedConfiguration.
type Rule int

const (
	// Rectangle sums the samples and multiplies by (x2−x1)/n.
	Rectangle Rule = iota

	// Trapezoid applies the composite trapezoid rule.
	Trapezoid

	// Simpson13 applies Simpson's 1/3 rule generalized to any sample count.
	Simpson13

	// Simpson38 applies Simpson's 3/8 rule generalized to any sample count.
	Simpson38
)

// Rules lists every supported rule in declaration order.
var Rules = []Rule{Rectangle, Trapezoid, Simpson13, Simpson38}

var ruleNames = map[Rule]string{
	Rectangle: "rectangle",
	Trapezoid: "trapezoid",
	Simpson13: "simpson13",
	Simpson38: "simpson38",
}

// ruleAliases maps accepted spellings onto rules. Lookups are lower-cased.
var ruleAliases = map[string]Rule{
	"rectangle":   Rectangle,
	"rect":        Rectangle,
	"trapezoid":   Trapezoid,
	"trap":        Trapezoid,
	"simpson13":   Simpson13,
	"simpson_1_3": Simpson13,
	"simpson":     Simpson13,
	"simpson38":   Simpson38,
	"simpson_3_8": Simpson38,
}

// Valid reports whether r is one of the supported rules.
func (r Rule) Valid() bool {
	_, ok := ruleNames[r]
	return ok
}

// String returns the canonical lower-case name, or "rule(N)" for unknown values.
func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "rule(" + strconv.Itoa(int(r)) + ")"
}

// Degree returns the polynomial exactness degree of the rule on its standard
// stencil, or -1 for an unknown rule.
func (r Rule) Degree() int {
	switch r {
	case Rectangle:
		return 0
	case Trapezoid:
		return 1
	case Simpson13, Simpson38:
		return 3
	default:
		return -1
	}
}

// Stencil returns the number of consecutive samples one application of the
// base formula consumes (1 for Rectangle), or 0 for an unknown rule.
func (r Rule) Stencil() int {
	switch r {
	case Rectangle:
		return 1
	case Trapezoid:
		return 2
	case Simpson13:
		return 3
	case Simpson38:
		return 4
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, quadErrorf(MethodParseRule, ErrUnsupportedConfiguration, "cannot encode %s", r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseRule.
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRule resolves a rule name such as "simpson13" or "Trapezoid".
// Unknown names yield ErrUnsupportedConfiguration.
func ParseRule(name string) (Rule, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if r, ok := ruleAliases[key]; ok {
		return r, nil
	}
	return 0, quadErrorf(MethodParseRule, ErrUnsupportedConfiguration, "unknown rule %q", name)
}

// NonFinitePolicy decides what happens to NaN and ±Inf samples.
type NonFinitePolicy int

const (
	// Propagate lets non-finite samples flow into the weighted sum; the
	// result is then NaN or ±Inf, as IEEE arithmetic dictates.
	Propagate NonFinitePolicy = iota

	// Reject fails the call with ErrInvalidInput before any summation.
	Reject
)

// String returns "propagate" or "reject".
func (p NonFinitePolicy) String() string {
	if p == Reject {
		return "reject"
	}
	return "propagate"
}

// ParseNonFinitePolicy maps "propagate"/"reject" (case-insensitive) to a policy.
func ParseNonFinitePolicy(name string) (NonFinitePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "propagate":
		return Propagate, nil
	case "reject":
		return Reject, nil
	default:
		return Propagate, quadErrorf(MethodParseRule, ErrInvalidInput, "unknown non-finite policy %q", name)
	}
}

// WeightSource supplies weight vectors. The package-level Weights function is
// the default source; batch callers may plug in a cache.
type WeightSource interface {
	Weights(rule Rule, n int) ([]float64, error)
}

// WeightSourceFunc adapts an ordinary function to WeightSource.
type WeightSourceFunc func(rule Rule, n int) ([]float64, error)

// Weights calls f(rule, n).
func (f WeightSourceFunc) Weights(rule Rule, n int) ([]float64, error) {
	return f(rule, n)
}
