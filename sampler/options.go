// SPDX-License-Identifier: MIT
// Package: lvquad/sampler
//
// options.go — functional options and resolved config for signal builders.
//
// Contract:
//   • SignalOption mutates signalConfig; options apply in order (last wins).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Pulse/Chirp themselves never panic.
//   • Determinism is explicit: WithSeed/WithRand take priority over the
//     seed argument of the builder.

package sampler

import (
	"math/rand"
)

// SignalOption customizes Pulse and Chirp.
type SignalOption func(*signalConfig)

// signalConfig aggregates all signal knobs. Passed by value to builders.
type signalConfig struct {
	rng       *rand.Rand // nil → local source seeded by the builder's seed
	amplitude float64    // > 0
	frequency float64    // > 0; 0 means "builder default"
	trend     float64    // added per sample index
	sigma     float64    // Gaussian noise stdev ≥ 0
}

const (
	defaultAmplitude = 1.0
	defaultTrend     = 0.0
	defaultSigma     = 0.0
)

func newSignalConfig(opts ...SignalOption) signalConfig {
	cfg := signalConfig{
		amplitude: defaultAmplitude,
		trend:     defaultTrend,
		sigma:     defaultSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local source
// seeded by seed.
func rngFrom(cfg signalConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(seed))
}

// WithAmplitude sets the peak amplitude A (> 0). Panics if A <= 0.
func WithAmplitude(A float64) SignalOption {
	if A <= 0 {
		panic("sampler: WithAmplitude(A<=0)")
	}
	return func(c *signalConfig) {
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency in cycles/sample (> 0).
// For Chirp it is the start frequency; the end frequency keeps its ratio to
// the default sweep. Panics if f <= 0.
func WithFrequency(f float64) SignalOption {
	if f <= 0 {
		panic("sampler: WithFrequency(f<=0)")
	}
	return func(c *signalConfig) {
		c.frequency = f
	}
}

// WithTrend adds k·i to sample i. Any real k is accepted.
func WithTrend(k float64) SignalOption {
	return func(c *signalConfig) {
		c.trend = k
	}
}

// WithNoise adds N(0, sigma²) noise per sample. Panics if sigma < 0.
func WithNoise(sigma float64) SignalOption {
	if sigma < 0 {
		panic("sampler: WithNoise(sigma<0)")
	}
	return func(c *signalConfig) {
		c.sigma = sigma
	}
}

// WithSeed installs a fresh source seeded with seed.
func WithSeed(seed int64) SignalOption {
	return func(c *signalConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit RNG across builders. Panics on nil.
func WithRand(r *rand.Rand) SignalOption {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *signalConfig) {
		c.rng = r
	}
}
