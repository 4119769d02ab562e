// SPDX-License-Identifier: MIT
// Package: lvquad/quadrature
//
// errors.go — sentinel errors for the quadrature package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Call sites attach the method name and the offending value with %w.
//   • Nothing here is retried: every error is fatal to the single call.

package quadrature

import (
	"errors"
	"fmt"
)

// ErrUnsupportedConfiguration indicates a rule selector outside the closed
// Rule set, or a sample count of zero for a rule that needs a coefficient
// table (Simpson13, Simpson38).
var ErrUnsupportedConfiguration = errors.New("quadrature: unsupported configuration")

// ErrInvalidInput indicates unusable input data: an empty sample sequence for
// Rectangle/Trapezoid, a non-positive sample count, a nil function, a weight
// vector of the wrong length, or non-finite samples under the Reject policy.
var ErrInvalidInput = errors.New("quadrature: invalid input")

// Method names used as error prefixes.
const (
	MethodIntegrate     = "Integrate"
	MethodIntegrateFunc = "IntegrateFunc"
	MethodWeights       = "Weights"
	MethodParseRule     = "ParseRule"
)

// quadErrorf prefixes a sentinel with method context:
// "<Method>: <message>: <sentinel>".
func quadErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
