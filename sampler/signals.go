// SPDX-License-Identifier: MIT
// Package: lvquad/sampler
//
// signals.go — deterministic pulse and chirp sequences.
//
// Purpose:
//   • Reproducible 1-D inputs for integration tests, benchmarks and the CLI.
//   • Shape + optional linear trend + optional seeded Gaussian noise.
//
// Contract:
//   • Pulse/Chirp(n, seed, opts...) return exactly n samples or ErrBadSize.
//   • O(n) time, O(n) memory. No global state.

package sampler

import (
	"math"
)

const (
	defPulseFreq = 0.125 // cycles/sample; period 8
	defPulseDuty = 0.5   // fraction of each period at amplitude A
	defChirpF0   = 0.02  // start frequency, cycles/sample
	defChirpF1   = 0.25  // end frequency, cycles/sample
)

const tau = 2.0 * math.Pi

// Pulse returns a length-n rectangular pulse train:
//
//	frac = (i·f0) mod 1
//	y[i] = A if frac < duty else 0,  then + trend·i + noise
//
// Integrating a noiseless pulse over many periods gives ≈ A·duty·length,
// which makes it a convenient check for the rectangle rule.
func Pulse(n int, seed int64, opts ...SignalOption) ([]float64, error) {
	if n < MinSamples {
		return nil, samplerErrorf(MethodPulse, ErrBadSize, "n must be ≥ %d, got %d", MinSamples, n)
	}
	cfg := newSignalConfig(opts...)
	f0 := cfg.frequency
	if f0 == 0 {
		f0 = defPulseFreq
	}
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	for i := range out {
		frac := math.Mod(float64(i)*f0, 1)
		v := 0.0
		if frac < defPulseDuty {
			v = cfg.amplitude
		}
		v += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			v += cfg.sigma * rng.NormFloat64()
		}
		out[i] = v
	}
	return out, nil
}

// Chirp returns a length-n linear chirp sweeping from f0 to f1 cycles/sample:
//
//	f_i   = f0 + (f1 − f0)·i/(n−1)
//	θ_i+1 = θ_i + 2π·f_i
//	y[i]  = A·sin(θ_i) + trend·i + noise
func Chirp(n int, seed int64, opts ...SignalOption) ([]float64, error) {
	if n < MinSamples {
		return nil, samplerErrorf(MethodChirp, ErrBadSize, "n must be ≥ %d, got %d", MinSamples, n)
	}
	cfg := newSignalConfig(opts...)
	f0, f1 := defChirpF0, defChirpF1
	if cfg.frequency > 0 {
		f1 = cfg.frequency * defChirpF1 / defChirpF0
		f0 = cfg.frequency
	}
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	theta := 0.0
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = cfg.amplitude * math.Sin(theta)
		theta += tau * (f0 + (f1-f0)*t)

		out[i] += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			out[i] += cfg.sigma * rng.NormFloat64()
		}
	}
	return out, nil
}
