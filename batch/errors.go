// SPDX-License-Identifier: MIT
// Package: lvquad/batch
//
// errors.go — sentinel errors for the batch package.

package batch

import "errors"

// ErrBadJob indicates a job description that cannot be evaluated: both or
// neither of samples/func given, n < 1 for a func job, or an unknown rule.
var ErrBadJob = errors.New("batch: invalid job")
