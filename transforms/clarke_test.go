package transforms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptecltd/transix/mathfuncs"
	"github.com/synaptecltd/transix/signals"
	"github.com/synaptecltd/transix/transforms"
)

func balancedSet(t *testing.T, duration float64) (a, b, c []float64) {
	t.Helper()
	a, b, c, err := signals.GenerateABC(230, 50, duration, 50000, 0)
	require.NoError(t, err)
	return a, b, c
}

func TestClarkeBalancedThreePhaseSignal(t *testing.T) {
	a, b, c := balancedSet(t, 0.1)

	for _, variant := range []transforms.Variant{transforms.PowerInvariant, transforms.PowerVariant} {
		t.Run(variant.String(), func(t *testing.T) {
			alpha, beta, zero, err := transforms.AbcToAlphaBeta0Slice(a, b, c, variant)
			require.NoError(t, err)

			assert.Len(t, alpha, len(a))
			assert.Len(t, beta, len(a))
			require.Len(t, zero, len(a))
			for i := range zero {
				assert.InDelta(t, 0.0, zero[i], 1e-9, "zero component at sample %d", i)
			}
		})
	}
}

func TestClarkeDefaultVariantIsPowerInvariant(t *testing.T) {
	var variant transforms.Variant
	assert.Equal(t, transforms.PowerInvariant, variant)
}

func TestClarkeWrongVariant(t *testing.T) {
	a, b, c := balancedSet(t, 0.1)

	_, _, _, err := transforms.AbcToAlphaBeta0Slice(a, b, c, transforms.Variant(7))
	assert.EqualError(t, err, "variant must be 'power_invariant' or 'power_variant'")
	assert.ErrorIs(t, err, mathfuncs.ErrInvalidArgument)

	_, _, _, err = transforms.AbcToAlphaBeta0(1.0, 2.0, 3.0, transforms.Variant(-1))
	assert.ErrorIs(t, err, mathfuncs.ErrInvalidArgument)
}

// Peak amplitudes over one cycle of a balanced set of RMS magnitude 230 V.
func TestClarkePowerVariantAndInvariant(t *testing.T) {
	a, b, c := balancedSet(t, 0.02)
	peak := 230 * math.Sqrt2

	testCases := []struct {
		variant   transforms.Variant
		alphaPeak float64 // expected peak of alpha and beta
	}{
		{variant: transforms.PowerVariant, alphaPeak: peak},
		{variant: transforms.PowerInvariant, alphaPeak: peak * math.Sqrt(3.0/2.0)},
	}

	for _, tc := range testCases {
		t.Run(tc.variant.String(), func(t *testing.T) {
			alpha, beta, _, err := transforms.AbcToAlphaBeta0Slice(a, b, c, tc.variant)
			require.NoError(t, err)

			assert.InDelta(t, tc.alphaPeak, maxOf(alpha), 1e-6)
			assert.InDelta(t, tc.alphaPeak, maxOf(beta), 1e-3) // beta peaks between samples

			// the stationary vector has constant length for a balanced set
			for i := range alpha {
				assert.InDelta(t, tc.alphaPeak, math.Hypot(alpha[i], beta[i]), 1e-6)
			}
		})
	}
}

func TestClarkeScalarFormulas(t *testing.T) {
	a, b, c := 3.0, -1.0, 4.0

	alpha, beta, zero, err := transforms.AbcToAlphaBeta0(a, b, c, transforms.PowerInvariant)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2.0/3.0)*(a-b/2-c/2), alpha, 1e-12)
	assert.InDelta(t, math.Sqrt(2.0/3.0)*(math.Sqrt(3)/2)*(b-c), beta, 1e-12)
	assert.InDelta(t, (a+b+c)/math.Sqrt(3), zero, 1e-12)

	alpha, beta, zero, err = transforms.AbcToAlphaBeta0(a, b, c, transforms.PowerVariant)
	require.NoError(t, err)
	assert.InDelta(t, (2.0/3.0)*(a-b/2-c/2), alpha, 1e-12)
	assert.InDelta(t, (2.0/3.0)*(math.Sqrt(3)/2)*(b-c), beta, 1e-12)
	assert.InDelta(t, (a+b+c)/3, zero, 1e-12)
}

func TestClarkeComplexInput(t *testing.T) {
	x := complex(2, 0.3)
	a, b, c := x, x*complex(-0.5, -math.Sqrt(3)/2), x*complex(-0.5, math.Sqrt(3)/2)

	alpha, beta, zero, err := transforms.AbcToAlphaBeta0(a, b, c, transforms.PowerVariant)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, real(zero), 1e-12)
	assert.InDelta(t, 0.0, imag(zero), 1e-12)
	// power variant keeps alpha equal to phase a for a balanced set
	assert.InDelta(t, real(a), real(alpha), 1e-12)
	assert.InDelta(t, imag(a), imag(alpha), 1e-12)
	// beta lags alpha by 90 degrees
	assert.InDelta(t, real(alpha*complex(0, -1)), real(beta), 1e-12)
	assert.InDelta(t, imag(alpha*complex(0, -1)), imag(beta), 1e-12)
}

func TestClarkeInverseRoundTrip(t *testing.T) {
	a := []float64{1.5, -0.2, 7}
	b := []float64{0.3, 2.2, -4}
	c := []float64{-2, 0.1, 0.5}

	for _, variant := range []transforms.Variant{transforms.PowerInvariant, transforms.PowerVariant} {
		t.Run(variant.String(), func(t *testing.T) {
			alpha, beta, zero, err := transforms.AbcToAlphaBeta0Slice(a, b, c, variant)
			require.NoError(t, err)

			ra, rb, rc, err := transforms.AlphaBeta0ToAbcSlice(alpha, beta, zero, variant)
			require.NoError(t, err)
			assert.InDeltaSlice(t, a, ra, 1e-12)
			assert.InDeltaSlice(t, b, rb, 1e-12)
			assert.InDeltaSlice(t, c, rc, 1e-12)
		})
	}

	_, _, _, err := transforms.AlphaBeta0ToAbcSlice(a, b, c, transforms.Variant(2))
	assert.ErrorIs(t, err, mathfuncs.ErrInvalidArgument)
}

func TestClarkeShapes(t *testing.T) {
	alpha, _, zero, err := transforms.AbcToAlphaBeta0Slice([]float64{1, 2, 3}, []float64{1}, []float64{1}, transforms.PowerVariant)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 2.0 / 3.0, 4.0 / 3.0}, alpha, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 4.0 / 3.0, 5.0 / 3.0}, zero, 1e-12)

	_, _, _, err = transforms.AbcToAlphaBeta0Slice([]float64{1, 2, 3}, []float64{1, 2}, []float64{1}, transforms.PowerVariant)
	assert.ErrorIs(t, err, mathfuncs.ErrShapeMismatch)
}

func maxOf(x []float64) float64 {
	m := math.Inf(-1)
	for _, v := range x {
		m = math.Max(m, v)
	}
	return m
}
