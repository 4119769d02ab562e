// SPDX-License-Identifier: MIT
// Package: lvquad/ode
//
// ode.go — fixed-step Euler and RK4 steppers.

package ode

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Func is the right-hand side f(t, y) of dy/dt = f(t, y).
type Func func(t, y float64) float64

// Trajectory holds the grid T and the state Y[i] at T[i].
type Trajectory struct {
	T []float64
	Y []float64
}

// Len returns the number of grid points.
func (tr Trajectory) Len() int { return len(tr.T) }

// Final returns the last state, or NaN for an empty trajectory.
func (tr Trajectory) Final() float64 {
	if len(tr.Y) == 0 {
		return math.NaN()
	}
	return tr.Y[len(tr.Y)-1]
}

// stepper advances y by one step of size dt from t.
type stepper func(f Func, t, y, dt float64) float64

func eulerStep(f Func, t, y, dt float64) float64 {
	return y + f(t, y)*dt
}

func rk4Step(f Func, t, y, dt float64) float64 {
	const (
		half     = 0.5
		oneSixth = 1 / 6.0
	)
	k1 := f(t, y)
	k2 := f(t+half*dt, y+half*dt*k1)
	k3 := f(t+half*dt, y+half*dt*k2)
	k4 := f(t+dt, y+dt*k3)
	return y + dt*oneSixth*(k1+2*k2+2*k3+k4)
}

// Euler integrates with the explicit Euler method.
//
// The grid is t_k = t0 + k·dt for every t_k < t1, and Y[k] is the state at
// t_k (Y[0] = y0).
//
// Errors: ErrNilFunc, ErrBadStep (dt ≤ 0, non-finite inputs, or t1 ≤ t0).
func Euler(f Func, t0, t1, dt, y0 float64) (Trajectory, error) {
	return solve(MethodEuler, eulerStep, f, t0, t1, dt, y0)
}

// RK4 integrates with the classical fourth-order Runge–Kutta method on the
// same grid as Euler.
func RK4(f Func, t0, t1, dt, y0 float64) (Trajectory, error) {
	return solve(MethodRK4, rk4Step, f, t0, t1, dt, y0)
}

func solve(method string, step stepper, f Func, t0, t1, dt, y0 float64) (Trajectory, error) {
	if f == nil {
		return Trajectory{}, odeErrorf(method, ErrNilFunc, "f is nil")
	}
	for _, v := range []float64{t0, t1, dt, y0} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Trajectory{}, odeErrorf(method, ErrBadStep, "non-finite argument %v", v)
		}
	}
	if dt <= 0 {
		return Trajectory{}, odeErrorf(method, ErrBadStep, "dt must be > 0, got %v", dt)
	}
	n := int(math.Ceil((t1 - t0) / dt))
	if n < 1 {
		return Trajectory{}, odeErrorf(method, ErrBadStep, "empty grid for [%v, %v) with dt=%v", t0, t1, dt)
	}

	tr := Trajectory{T: make([]float64, n), Y: make([]float64, n)}
	y := y0
	for k := 0; k < n; k++ {
		t := t0 + float64(k)*dt
		tr.T[k] = t
		tr.Y[k] = y
		y = step(f, t, y, dt)
	}
	return tr, nil
}

// MaxAbsDiff returns max_k |a.Y[k] − b.Y[k]| for trajectories of equal length.
func MaxAbsDiff(a, b Trajectory) (float64, error) {
	if len(a.Y) != len(b.Y) {
		return 0, odeErrorf(MethodMaxAbsDiff, ErrLengthMismatch, "%d vs %d points", len(a.Y), len(b.Y))
	}
	if len(a.Y) == 0 {
		return 0, nil
	}
	return floats.Distance(a.Y, b.Y, math.Inf(1)), nil
}
