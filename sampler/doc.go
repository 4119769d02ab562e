// Package sampler produces the sample sequences that quadrature consumes.
//
// It provides three things:
//
//   - Uniform grids: Linspace(x1, x2, n) returns n evenly spaced abscissas with
//     both endpoints included, and Sample(f, x1, x2, n) evaluates f on them.
//   - A small catalog of named scalar functions (gauss, sin, cos, exp, ...)
//     used by the CLI and batch job files: Lookup(name), Names().
//   - Deterministic test signals (Pulse, Chirp) with functional options for
//     amplitude, frequency, trend and seeded Gaussian noise.
//
// Determinism:
//
//	Grid and catalog functions are pure. Signals are reproducible per
//	(n, seed, options); WithSeed/WithRand override the seed argument.
//
// Errors are package sentinels (ErrBadSize, ErrNilFunc, ErrUnknownFunc)
// wrapped with method context; check them with errors.Is. Option constructors
// panic on meaningless values (WithAmplitude(0), WithNoise(-1), WithRand(nil)).
package sampler
