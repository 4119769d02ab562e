// SPDX-License-Identifier: MIT
// Package: lvquad/quadrature
//
// options.go — functional options for Integrate and IntegrateFunc.
//
// Contract:
//   • Option constructors validate and panic on programmer error (nil source,
//     unknown policy). Integrate itself never panics.
//   • Options apply in order; later ones win.

package quadrature

// Option customizes a single Integrate/IntegrateFunc call.
type Option func(*config)

// config is the resolved per-call configuration, passed by value.
type config struct {
	nonFinite NonFinitePolicy
	source    WeightSource
}

// defaultSource builds weights on every call.
var defaultSource WeightSource = WeightSourceFunc(Weights)

func newConfig(opts ...Option) config {
	cfg := config{
		nonFinite: Propagate,
		source:    defaultSource,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNonFinite sets how NaN/±Inf samples are treated. Panics on an unknown policy.
func WithNonFinite(p NonFinitePolicy) Option {
	if p != Propagate && p != Reject {
		panic("quadrature: WithNonFinite(unknown policy)")
	}
	return func(c *config) {
		c.nonFinite = p
	}
}

// WithWeightSource replaces the weight builder, e.g. with a cache.
// Panics on nil.
func WithWeightSource(src WeightSource) Option {
	if src == nil {
		panic("quadrature: WithWeightSource(nil)")
	}
	return func(c *config) {
		c.source = src
	}
}
