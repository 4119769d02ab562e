package quadrature_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/lvquad/quadrature"
	"github.com/katalvlaran/lvquad/sampler"
)

// reversed returns a reversed copy of ys.
func reversed(ys []float64) []float64 {
	out := make([]float64, len(ys))
	for i, y := range ys {
		out[len(ys)-1-i] = y
	}
	return out
}

// TestIntegrate_ConstantExact covers constant-function exactness for the
// rectangle and trapezoid rules over several sample counts.
func TestIntegrate_ConstantExact(t *testing.T) {
	const c, x1, x2 = 2.5, -1.0, 3.0
	for _, rule := range []quadrature.Rule{quadrature.Rectangle, quadrature.Trapezoid} {
		for n := 2; n <= 17; n++ {
			ys := make([]float64, n)
			for i := range ys {
				ys[i] = c
			}
			got, err := quadrature.Integrate(ys, rule, x1, x2)
			require.NoError(t, err)
			assert.InDelta(t, c*(x2-x1), got, 1e-12, "%s n=%d", rule, n)
		}
	}
}

// TestIntegrate_Simpson13_PolynomialExact checks degree ≤ 3 exactness for odd n.
func TestIntegrate_Simpson13_PolynomialExact(t *testing.T) {
	ys, err := sampler.Sample(sampler.Square, 0, 1, 5)
	require.NoError(t, err)
	got, err := quadrature.Integrate(ys, quadrature.Simpson13, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, got, 1e-12)

	cubic := func(x float64) float64 { return 4*x*x*x - 3*x*x + 2*x - 1 }
	exact := func(x float64) float64 { return x*x*x*x - x*x*x + x*x - x }
	for _, n := range []int{3, 7, 21, 101} {
		got, err := quadrature.IntegrateFunc(cubic, quadrature.Simpson13, -2, 1.5, n)
		require.NoError(t, err)
		assert.InDelta(t, exact(1.5)-exact(-2), got, 1e-10, "n=%d", n)
	}
}

// TestIntegrate_Simpson38_CubicExact checks degree ≤ 3 exactness when the
// 3/8 stencils tile exactly (n ≡ 1 mod 3).
func TestIntegrate_Simpson38_CubicExact(t *testing.T) {
	for _, n := range []int{4, 7, 10, 31} {
		got, err := quadrature.IntegrateFunc(sampler.Cube, quadrature.Simpson38, 0, 2, n)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, got, 1e-12, "n=%d", n)
	}
}

// TestIntegrate_RemainderLinearExact verifies the blended remainder tails of
// both Simpson rules still integrate linear functions exactly.
func TestIntegrate_RemainderLinearExact(t *testing.T) {
	line := func(x float64) float64 { return 3*x + 1 }
	// ∫_0^2 (3x+1) dx = 8
	for _, tc := range []struct {
		rule quadrature.Rule
		n    int
	}{
		{quadrature.Simpson13, 2},
		{quadrature.Simpson13, 4},
		{quadrature.Simpson13, 10},
		{quadrature.Simpson38, 2},
		{quadrature.Simpson38, 3},
		{quadrature.Simpson38, 5},
		{quadrature.Simpson38, 6},
		{quadrature.Simpson38, 7},
		{quadrature.Simpson38, 8},
		{quadrature.Simpson38, 9},
	} {
		got, err := quadrature.IntegrateFunc(line, tc.rule, 0, 2, tc.n)
		require.NoError(t, err)
		assert.InDelta(t, 8.0, got, 1e-12, "%s n=%d", tc.rule, tc.n)
	}
}

// TestIntegrate_Simpson38_RemainderTiling checks n = 7, 8, 9 against the
// explicit [2,3,3]×2 tiling plus the documented tail.
func TestIntegrate_Simpson38_RemainderTiling(t *testing.T) {
	tails := map[int][]float64{
		7: {1},
		8: {7.0 / 3, 4.0 / 3},
		9: {17.0 / 9, 32.0 / 9, 8.0 / 9},
	}
	for n, tail := range tails {
		ys, err := sampler.Sample(math.Sin, 0, 1, n)
		require.NoError(t, err)

		coeff := append([]float64{1, 3, 3, 2, 3, 3}, tail...)
		require.Len(t, coeff, n)
		want := 0.0
		for i := range ys {
			want += coeff[i] * ys[i]
		}
		want *= (1.0 / float64(n-1)) * 3 / 8

		got, err := quadrature.Integrate(ys, quadrature.Simpson38, 0, 1)
		require.NoError(t, err, "n=%d", n)
		assert.InDelta(t, want, got, 1e-14, "n=%d", n)
		assert.InDelta(t, 1-math.Cos(1), got, 1e-3, "n=%d", n)
	}
}

// TestIntegrate_SingleSample returns a finite zero for every rule but
// Rectangle, which keeps its (x2−x1)/n spacing.
func TestIntegrate_SingleSample(t *testing.T) {
	for _, rule := range []quadrature.Rule{quadrature.Trapezoid, quadrature.Simpson13, quadrature.Simpson38} {
		got, err := quadrature.Integrate([]float64{7}, rule, 0, 1)
		require.NoError(t, err, rule.String())
		assert.False(t, math.IsNaN(got) || math.IsInf(got, 0), rule.String())
		assert.Equal(t, 0.0, got, rule.String())
	}

	got, err := quadrature.Integrate([]float64{7}, quadrature.Rectangle, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 14.0, got)
}

// TestIntegrate_ReversalSymmetry integrates exp(−x²) over [−A, A]: reversing
// the samples leaves the result unchanged, and additionally negating the
// bounds flips only the sign.
func TestIntegrate_ReversalSymmetry(t *testing.T) {
	const A = 3.0
	for _, rule := range quadrature.Rules {
		for _, n := range []int{5, 11, 31} {
			ys, err := sampler.Sample(sampler.Gauss, -A, A, n)
			require.NoError(t, err)

			fwd, err := quadrature.Integrate(ys, rule, -A, A)
			require.NoError(t, err)
			rev, err := quadrature.Integrate(reversed(ys), rule, -A, A)
			require.NoError(t, err)
			assert.InDelta(t, fwd, rev, 1e-12, "%s n=%d", rule, n)

			neg, err := quadrature.Integrate(reversed(ys), rule, A, -A)
			require.NoError(t, err)
			assert.InDelta(t, -fwd, neg, 1e-12, "%s n=%d", rule, n)
		}
	}
}

// TestIntegrate_SinTrapezoid: sin on linspace(0, π/2, 12) ≈ 1.
func TestIntegrate_SinTrapezoid(t *testing.T) {
	ys, err := sampler.Sample(math.Sin, 0, math.Pi/2, 12)
	require.NoError(t, err)
	got, err := quadrature.Integrate(ys, quadrature.Trapezoid, 0, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-2)
}

// TestIntegrateFunc_Gauss: ∫ exp(−x²) over [−100, 100] with 1001 samples ≈ √π.
func TestIntegrateFunc_Gauss(t *testing.T) {
	got, err := quadrature.IntegrateFunc(sampler.Gauss, quadrature.Simpson13, -100, 100, 1001)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(math.Pi), got, 1e-3)
}

// TestIntegrateFunc_CosZero: ∫_0^π cos ≈ 0 with a fine grid.
func TestIntegrateFunc_CosZero(t *testing.T) {
	got, err := quadrature.IntegrateFunc(math.Cos, quadrature.Simpson13, 0, math.Pi, 100001)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-9)
}

// TestIntegrate_MatchesGonum cross-checks the trapezoid and odd-n Simpson
// results against gonum's integrate package.
func TestIntegrate_MatchesGonum(t *testing.T) {
	for _, n := range []int{3, 9, 51, 257} {
		xs, err := sampler.Linspace(0.5, 4, n)
		require.NoError(t, err)
		ys := make([]float64, n)
		for i, x := range xs {
			ys[i] = math.Log(x) * math.Sin(x)
		}

		trap, err := quadrature.Integrate(ys, quadrature.Trapezoid, 0.5, 4)
		require.NoError(t, err)
		assert.InDelta(t, integrate.Trapezoidal(xs, ys), trap, 1e-12, "trapezoid n=%d", n)

		simp, err := quadrature.Integrate(ys, quadrature.Simpson13, 0.5, 4)
		require.NoError(t, err)
		assert.InDelta(t, integrate.Simpsons(xs, ys), simp, 1e-10, "simpson n=%d", n)
	}
}

// TestIntegrate_Errors covers the error taxonomy of both calling forms.
func TestIntegrate_Errors(t *testing.T) {
	calls := 0
	counting := quadrature.WeightSourceFunc(func(r quadrature.Rule, n int) ([]float64, error) {
		calls++
		return quadrature.Weights(r, n)
	})

	_, err := quadrature.Integrate([]float64{1, 2, 3}, quadrature.Rule(17), 0, 1, quadrature.WithWeightSource(counting))
	assert.ErrorIs(t, err, quadrature.ErrUnsupportedConfiguration)
	assert.Zero(t, calls, "unknown rule must not reach weight construction")

	_, err = quadrature.Integrate(nil, quadrature.Simpson13, 0, 1)
	assert.ErrorIs(t, err, quadrature.ErrUnsupportedConfiguration)

	_, err = quadrature.Integrate([]float64{}, quadrature.Simpson38, 0, 1)
	assert.ErrorIs(t, err, quadrature.ErrUnsupportedConfiguration)

	_, err = quadrature.Integrate(nil, quadrature.Trapezoid, 0, 1)
	assert.ErrorIs(t, err, quadrature.ErrInvalidInput)

	_, err = quadrature.IntegrateFunc(nil, quadrature.Trapezoid, 0, 1, 10)
	assert.ErrorIs(t, err, quadrature.ErrInvalidInput)

	_, err = quadrature.IntegrateFunc(math.Sin, quadrature.Trapezoid, 0, 1, 0)
	assert.ErrorIs(t, err, quadrature.ErrInvalidInput)

	_, err = quadrature.IntegrateFunc(math.Sin, quadrature.Rule(-1), 0, 1, 10)
	assert.ErrorIs(t, err, quadrature.ErrUnsupportedConfiguration)
}

// TestIntegrate_NonFinitePolicy contrasts Propagate (default) and Reject.
func TestIntegrate_NonFinitePolicy(t *testing.T) {
	ys := []float64{1, math.NaN(), 1}

	got, err := quadrature.Integrate(ys, quadrature.Simpson13, 0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	_, err = quadrature.Integrate(ys, quadrature.Simpson13, 0, 1, quadrature.WithNonFinite(quadrature.Reject))
	assert.ErrorIs(t, err, quadrature.ErrInvalidInput)

	_, err = quadrature.Integrate([]float64{1, math.Inf(-1)}, quadrature.Trapezoid, 0, 1, quadrature.WithNonFinite(quadrature.Reject))
	assert.ErrorIs(t, err, quadrature.ErrInvalidInput)
}

// TestIntegrate_WeightSource covers a custom source and a length mismatch.
func TestIntegrate_WeightSource(t *testing.T) {
	doubled := quadrature.WeightSourceFunc(func(r quadrature.Rule, n int) ([]float64, error) {
		w, err := quadrature.Weights(r, n)
		for i := range w {
			w[i] *= 2
		}
		return w, err
	})
	got, err := quadrature.Integrate([]float64{1, 1, 1}, quadrature.Trapezoid, 0, 1, quadrature.WithWeightSource(doubled))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-15)

	short := quadrature.WeightSourceFunc(func(quadrature.Rule, int) ([]float64, error) {
		return []float64{1}, nil
	})
	_, err = quadrature.Integrate([]float64{1, 1, 1}, quadrature.Trapezoid, 0, 1, quadrature.WithWeightSource(short))
	assert.ErrorIs(t, err, quadrature.ErrInvalidInput)

	boom := errors.New("boom")
	failing := quadrature.WeightSourceFunc(func(quadrature.Rule, int) ([]float64, error) {
		return nil, boom
	})
	_, err = quadrature.Integrate([]float64{1, 1}, quadrature.Trapezoid, 0, 1, quadrature.WithWeightSource(failing))
	assert.ErrorIs(t, err, boom)
}

// TestOptions_Panics verifies option constructors fail fast.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { quadrature.WithWeightSource(nil) })
	assert.Panics(t, func() { quadrature.WithNonFinite(quadrature.NonFinitePolicy(7)) })
}
