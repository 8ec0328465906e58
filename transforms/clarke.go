package transforms

import (
	"math"

	"github.com/synaptecltd/transix/mathfuncs"
)

const (
	sqrt3        = 1.73205080756887729352744634150587236694280525381038062805580697945193301690880003708114618675724857567562614142
	halfSqrt3    = sqrt3 / 2
	sqrtTwoThird = math.Sqrt2 / sqrt3 // sqrt(2/3)
	sqrtHalf     = 1 / math.Sqrt2     // sqrt(1/2)
)

// AbcToAlphaBeta0 computes the Clarke alpha, beta and zero components of a
// single set of abc quantities. The quantities may be real samples or complex
// phasors.
//
// The power invariant variant computes
//
//	alpha = sqrt(2/3) * (a - b/2 - c/2)
//	beta  = sqrt(2/3) * (sqrt(3)/2) * (b - c)
//	zero  = sqrt(2/3) * sqrt(1/2) * (a + b + c)
//
// and the power variant form computes
//
//	alpha = (2/3) * (a - b/2 - c/2)
//	beta  = (2/3) * (sqrt(3)/2) * (b - c)
//	zero  = (2/3) * (1/2) * (a + b + c)
//
// For a balanced set (a+b+c = 0) the zero component vanishes in both variants.
func AbcToAlphaBeta0[T mathfuncs.Number](a, b, c T, variant Variant) (alpha, beta, zero T, err error) {
	switch variant {
	case PowerInvariant:
		alpha = sqrtTwoThird * (a - b/2 - c/2)
		beta = sqrtTwoThird * (halfSqrt3 * (b - c))
		zero = sqrtTwoThird * (sqrtHalf * (a + b + c))
	case PowerVariant:
		alpha = (2.0 / 3.0) * (a - b/2 - c/2)
		beta = (2.0 / 3.0) * (halfSqrt3 * (b - c))
		zero = (2.0 / 3.0) * ((a + b + c) / 2)
	default:
		err = mathfuncs.InvalidArgument(variantErrMsg)
	}
	return alpha, beta, zero, err
}

// AbcToAlphaBeta0Slice applies AbcToAlphaBeta0 elementwise to three-phase
// sample slices. A length-1 slice is broadcast against the others; any other
// length disagreement returns ErrShapeMismatch.
func AbcToAlphaBeta0Slice[T mathfuncs.Number](a, b, c []T, variant Variant) (alpha, beta, zero []T, err error) {
	if err := variant.Validate(); err != nil {
		return nil, nil, nil, err
	}
	n, err := mathfuncs.Broadcast(a, b, c)
	if err != nil {
		return nil, nil, nil, err
	}

	alpha = make([]T, n)
	beta = make([]T, n)
	zero = make([]T, n)
	for i := range n {
		alpha[i], beta[i], zero[i], _ = AbcToAlphaBeta0(mathfuncs.At(a, i), mathfuncs.At(b, i), mathfuncs.At(c, i), variant)
	}
	return alpha, beta, zero, nil
}

// AlphaBeta0ToAbc is the inverse Clarke transform for the given variant.
// The power invariant matrix is orthonormal, so its inverse is the transpose.
func AlphaBeta0ToAbc[T mathfuncs.Number](alpha, beta, zero T, variant Variant) (a, b, c T, err error) {
	switch variant {
	case PowerInvariant:
		z := sqrtHalf * zero
		a = sqrtTwoThird * (alpha + z)
		b = sqrtTwoThird * (-alpha/2 + halfSqrt3*beta + z)
		c = sqrtTwoThird * (-alpha/2 - halfSqrt3*beta + z)
	case PowerVariant:
		a = alpha + zero
		b = -alpha/2 + halfSqrt3*beta + zero
		c = -alpha/2 - halfSqrt3*beta + zero
	default:
		err = mathfuncs.InvalidArgument(variantErrMsg)
	}
	return a, b, c, err
}

// AlphaBeta0ToAbcSlice applies AlphaBeta0ToAbc elementwise with the same
// broadcasting rules as AbcToAlphaBeta0Slice.
func AlphaBeta0ToAbcSlice[T mathfuncs.Number](alpha, beta, zero []T, variant Variant) (a, b, c []T, err error) {
	if err := variant.Validate(); err != nil {
		return nil, nil, nil, err
	}
	n, err := mathfuncs.Broadcast(alpha, beta, zero)
	if err != nil {
		return nil, nil, nil, err
	}

	a = make([]T, n)
	b = make([]T, n)
	c = make([]T, n)
	for i := range n {
		a[i], b[i], c[i], _ = AlphaBeta0ToAbc(mathfuncs.At(alpha, i), mathfuncs.At(beta, i), mathfuncs.At(zero, i), variant)
	}
	return a, b, c, nil
}
