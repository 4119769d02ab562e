// SPDX-License-Identifier: MIT
// Package: lvquad/ode
//
// errors.go — sentinel errors for the ode package.

package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrBadStep indicates a non-positive or non-finite step, or a span
	// t1 ≤ t0 that produces an empty grid.
	ErrBadStep = errors.New("ode: invalid step or span")

	// ErrNilFunc indicates a nil right-hand side.
	ErrNilFunc = errors.New("ode: function is nil")

	// ErrLengthMismatch indicates trajectories on different grids.
	ErrLengthMismatch = errors.New("ode: trajectory length mismatch")
)

// Method names used as error prefixes.
const (
	MethodEuler      = "Euler"
	MethodRK4        = "RK4"
	MethodMaxAbsDiff = "MaxAbsDiff"
)

func odeErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
