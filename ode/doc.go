// Package ode integrates scalar first-order initial value problems
//
//	dy/dt = f(t, y),  y(t0) = y0
//
// on a fixed grid t0, t0+dt, … (strictly below t1). Two steppers are
// provided so their trajectories can be compared:
//
//   - Euler: explicit first-order method, y_{k+1} = y_k + dt·f(t_k, y_k).
//   - RK4:   classical fourth-order Runge–Kutta, used as the reference.
//
// MaxAbsDiff reports the largest pointwise gap between two trajectories on
// the same grid.
package ode
