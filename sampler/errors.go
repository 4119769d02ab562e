// SPDX-License-Identifier: MIT
// Package: lvquad/sampler
//
// errors.go — sentinel errors for the sampler package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with samplerErrorf (method prefix + %w).
//   • Algorithms never panic; option constructors may.

package sampler

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a sample count below the minimum for the call
// (n < 1 for grids and signals).
var ErrBadSize = errors.New("sampler: invalid size/length")

// ErrNilFunc indicates that Sample received a nil function.
var ErrNilFunc = errors.New("sampler: function is nil")

// ErrUnknownFunc indicates a catalog lookup for a name that is not registered.
var ErrUnknownFunc = errors.New("sampler: unknown function")

// Method names used as error prefixes.
const (
	MethodLinspace = "Linspace"
	MethodSample   = "Sample"
	MethodPulse    = "Pulse"
	MethodChirp    = "Chirp"
	MethodResolve  = "Resolve"
)

// samplerErrorf returns "<Method>: <message>: <sentinel>".
func samplerErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
