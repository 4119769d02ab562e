package quadrature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvquad/quadrature"
)

// TestWeights_Tables pins every length class of every rule.
func TestWeights_Tables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule quadrature.Rule
		n    int
		want []float64
	}{
		{"rectangle_1", quadrature.Rectangle, 1, []float64{1}},
		{"rectangle_4", quadrature.Rectangle, 4, []float64{1, 1, 1, 1}},
		{"trapezoid_1", quadrature.Trapezoid, 1, []float64{0}},
		{"trapezoid_2", quadrature.Trapezoid, 2, []float64{1, 1}},
		{"trapezoid_5", quadrature.Trapezoid, 5, []float64{1, 2, 2, 2, 1}},
		{"simpson13_1", quadrature.Simpson13, 1, []float64{3}},
		{"simpson13_2", quadrature.Simpson13, 2, []float64{1.5, 1.5}},
		{"simpson13_3", quadrature.Simpson13, 3, []float64{1, 4, 1}},
		{"simpson13_4", quadrature.Simpson13, 4, []float64{1, 4, 2.5, 1.5}},
		{"simpson13_5", quadrature.Simpson13, 5, []float64{1, 4, 2, 4, 1}},
		{"simpson13_6", quadrature.Simpson13, 6, []float64{1, 4, 2, 4, 2.5, 1.5}},
		{"simpson38_1", quadrature.Simpson38, 1, []float64{8.0 / 3}},
		{"simpson38_2", quadrature.Simpson38, 2, []float64{4.0 / 3, 4.0 / 3}},
		{"simpson38_3", quadrature.Simpson38, 3, []float64{8.0 / 9, 32.0 / 9, 8.0 / 9}},
		{"simpson38_4", quadrature.Simpson38, 4, []float64{1, 3, 3, 1}},
		{"simpson38_5", quadrature.Simpson38, 5, []float64{1, 3, 3, 7.0 / 3, 4.0 / 3}},
		{"simpson38_6", quadrature.Simpson38, 6, []float64{1, 3, 3, 17.0 / 9, 32.0 / 9, 8.0 / 9}},
		{"simpson38_7", quadrature.Simpson38, 7, []float64{1, 3, 3, 2, 3, 3, 1}},
		{"simpson38_8", quadrature.Simpson38, 8, []float64{1, 3, 3, 2, 3, 3, 7.0 / 3, 4.0 / 3}},
		{"simpson38_9", quadrature.Simpson38, 9, []float64{1, 3, 3, 2, 3, 3, 17.0 / 9, 32.0 / 9, 8.0 / 9}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w, err := quadrature.Weights(tc.rule, tc.n)
			require.NoError(t, err)
			assert.Len(t, w, tc.n)
			assert.InDeltaSlice(t, tc.want, w, 1e-15)
		})
	}
}

// TestWeights_ConstantSum checks Σw·Scale(rule, 1) equals the number of
// intervals for every rule and length ≥ 2: constants are always exact.
func TestWeights_ConstantSum(t *testing.T) {
	for _, rule := range []quadrature.Rule{quadrature.Trapezoid, quadrature.Simpson13, quadrature.Simpson38} {
		for n := 2; n <= 40; n++ {
			w, err := quadrature.Weights(rule, n)
			require.NoError(t, err)
			sum := 0.0
			for _, v := range w {
				sum += v
			}
			assert.InDelta(t, float64(n-1), sum*quadrature.Scale(rule, 1), 1e-12, "%s n=%d", rule, n)
		}
	}
}

// TestWeights_Errors covers the error taxonomy for bad (rule, n) pairs.
func TestWeights_Errors(t *testing.T) {
	_, err := quadrature.Weights(quadrature.Simpson13, 0)
	assert.ErrorIs(t, err, quadrature.ErrUnsupportedConfiguration)

	_, err = quadrature.Weights(quadrature.Simpson38, 0)
	assert.ErrorIs(t, err, quadrature.ErrUnsupportedConfiguration)

	_, err = quadrature.Weights(quadrature.Rectangle, 0)
	assert.ErrorIs(t, err, quadrature.ErrInvalidInput)

	_, err = quadrature.Weights(quadrature.Trapezoid, 0)
	assert.ErrorIs(t, err, quadrature.ErrInvalidInput)

	_, err = quadrature.Weights(quadrature.Trapezoid, -4)
	assert.ErrorIs(t, err, quadrature.ErrInvalidInput)

	_, err = quadrature.Weights(quadrature.Rule(42), 5)
	assert.ErrorIs(t, err, quadrature.ErrUnsupportedConfiguration)
}

// TestWeights_FreshSlice guarantees callers may mutate the result.
func TestWeights_FreshSlice(t *testing.T) {
	a, err := quadrature.Weights(quadrature.Simpson38, 5)
	require.NoError(t, err)
	a[4] = 100
	b, err := quadrature.Weights(quadrature.Simpson38, 5)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3, b[4], 1e-15)
}

// TestStepAndScale covers the rectangle spacing asymmetry and n == 1.
func TestStepAndScale(t *testing.T) {
	assert.Equal(t, 0.25, quadrature.Step(quadrature.Rectangle, 4, 0, 1))
	assert.InDelta(t, 1.0/3, quadrature.Step(quadrature.Trapezoid, 4, 0, 1), 1e-15)
	assert.Equal(t, -0.5, quadrature.Step(quadrature.Simpson13, 3, 1, 0))
	assert.Equal(t, 0.0, quadrature.Step(quadrature.Simpson38, 1, 0, 1))
	assert.Equal(t, 1.0, quadrature.Step(quadrature.Rectangle, 1, 0, 1))

	assert.Equal(t, 2.0, quadrature.Scale(quadrature.Rectangle, 2))
	assert.Equal(t, 1.0, quadrature.Scale(quadrature.Trapezoid, 2))
	assert.InDelta(t, 2.0/3, quadrature.Scale(quadrature.Simpson13, 2), 1e-15)
	assert.Equal(t, 0.75, quadrature.Scale(quadrature.Simpson38, 2))
	assert.Equal(t, 0.0, quadrature.Scale(quadrature.Rule(-1), 2))
}
