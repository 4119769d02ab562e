// Package lvquad computes definite integrals from uniformly spaced samples
// with composite Newton–Cotes rules that work for any sample count.
//
// What is in the box?
//
//	quadrature/ — Rectangle, Trapezoid, Simpson 1/3 and Simpson 3/8 weight
//	              vectors (remainder segments included) and the two calling
//	              forms: Integrate (pre-sampled) and IntegrateFunc (f + n)
//	sampler/    — uniform grids, a catalog of named functions and
//	              deterministic test signals (Pulse, Chirp)
//	batch/      — worker-pool dispatcher for many integrals, YAML job files
//	              and a TTL cache of weight vectors
//	ode/        — explicit Euler and fixed-step RK4 with trajectory comparison
//	radiolysis/ — embedded table of water-radiolysis equilibrium constants
//	cmd/lvquad  — command-line front end (integrate, weights, batch, ode, ...)
//
// Quick example:
//
//	v, err := quadrature.IntegrateFunc(sampler.Gauss, quadrature.Simpson13, -100, 100, 1001)
//	// v ≈ √π
//
// Spacing is dx = (x2−x1)/(n−1) for every rule except Rectangle, which uses
// (x2−x1)/n. Errors are sentinels matched with errors.Is.
//
//	go get github.com/katalvlaran/lvquad
package lvquad
