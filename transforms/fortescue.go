package transforms

import (
	"math"
	"math/cmplx"

	"github.com/synaptecltd/transix/mathfuncs"
)

// Rotation operator a = exp(j*2*pi/3) and its square.
var (
	rotation  = cmplx.Exp(complex(0, 2*math.Pi/3))
	rotation2 = rotation * rotation
)

// Triple holds one value per phase, in the order a, b, c.
type Triple[T any] [3]T

// Sequence holds the symmetrical components of a three-phase set, each
// expressed in the abc frame. Zero[0], Zero[1] and Zero[2] are always equal.
type Sequence[T any] struct {
	Zero Triple[T]
	Pos  Triple[T]
	Neg  Triple[T]
}

// Sequence components in positional order.
const (
	ZeroSeq = iota
	PosSeq
	NegSeq
)

// Returns the components in the fixed order zero, positive, negative.
func (s Sequence[T]) Components() [3]Triple[T] {
	return [3]Triple[T]{s.Zero, s.Pos, s.Neg}
}

// Returns component i, where 0 is zero, 1 is positive and 2 is negative sequence.
// It panics if i is out of range, like indexing an array.
func (s Sequence[T]) At(i int) Triple[T] {
	return s.Components()[i]
}

// Returns the number of components, always 3.
func (s Sequence[T]) Len() int {
	return 3
}

// AbcToSequence computes the Fortescue symmetrical components of a set of
// phasors a, b and c:
//
//	a0 = (a + b + c) / 3
//	a1 = (a + a*b + a^2*c) / 3
//	a2 = (a + a^2*b + a*c) / 3
//
// where a = exp(j*2*pi/3). The result holds zero = (a0, a0, a0),
// pos = (a1, a^2*a1, a*a1) and neg = (a2, a*a2, a^2*a2), so that
// Zero[i] + Pos[i] + Neg[i] reconstructs phase i.
func AbcToSequence(a, b, c complex128) Sequence[complex128] {
	a0 := (a + b + c) / 3
	a1 := (a + rotation*b + rotation2*c) / 3
	a2 := (a + rotation2*b + rotation*c) / 3

	return Sequence[complex128]{
		Zero: Triple[complex128]{a0, a0, a0},
		Pos:  Triple[complex128]{a1, rotation2 * a1, rotation * a1},
		Neg:  Triple[complex128]{a2, rotation * a2, rotation2 * a2},
	}
}

// AbcToSequenceSlice applies AbcToSequence elementwise to phasor slices.
// A length-1 slice is broadcast against the others. The three zero sequence
// entries share one backing slice.
func AbcToSequenceSlice(a, b, c []complex128) (Sequence[[]complex128], error) {
	n, err := mathfuncs.Broadcast(a, b, c)
	if err != nil {
		return Sequence[[]complex128]{}, err
	}

	a0 := make([]complex128, n)
	var pos, neg Triple[[]complex128]
	for k := range pos {
		pos[k] = make([]complex128, n)
		neg[k] = make([]complex128, n)
	}

	for i := range n {
		s := AbcToSequence(mathfuncs.At(a, i), mathfuncs.At(b, i), mathfuncs.At(c, i))
		a0[i] = s.Zero[0]
		for k := range pos {
			pos[k][i] = s.Pos[k]
			neg[k][i] = s.Neg[k]
		}
	}

	return Sequence[[]complex128]{
		Zero: Triple[[]complex128]{a0, a0, a0},
		Pos:  pos,
		Neg:  neg,
	}, nil
}

// AbcToSequenceReal promotes real inputs to complex and calls AbcToSequenceSlice.
func AbcToSequenceReal(a, b, c []float64) (Sequence[[]complex128], error) {
	return AbcToSequenceSlice(mathfuncs.ToComplex(a), mathfuncs.ToComplex(b), mathfuncs.ToComplex(c))
}

// SequenceToAbc sums the sequence components back into phases a, b and c.
func SequenceToAbc(s Sequence[complex128]) (a, b, c complex128) {
	var abc Triple[complex128]
	for k := range abc {
		abc[k] = s.Zero[k] + s.Pos[k] + s.Neg[k]
	}
	return abc[0], abc[1], abc[2]
}

// SequenceToAbcSlice is the elementwise form of SequenceToAbc.
func SequenceToAbcSlice(s Sequence[[]complex128]) (a, b, c []complex128, err error) {
	var abc Triple[[]complex128]
	for k := range abc {
		n, err := mathfuncs.Broadcast(s.Zero[k], s.Pos[k], s.Neg[k])
		if err != nil {
			return nil, nil, nil, err
		}
		abc[k] = make([]complex128, n)
		for i := range n {
			abc[k][i] = mathfuncs.At(s.Zero[k], i) + mathfuncs.At(s.Pos[k], i) + mathfuncs.At(s.Neg[k], i)
		}
	}
	return abc[0], abc[1], abc[2], nil
}

// Unbalance returns the negative and zero sequence unbalance factors
// |a2|/|a1| and |a0|/|a1|. A zero positive sequence gives +Inf, or NaN
// when the numerator is also zero.
func Unbalance(s Sequence[complex128]) (negative, zero float64) {
	pos := cmplx.Abs(s.Pos[0])
	return cmplx.Abs(s.Neg[0]) / pos, cmplx.Abs(s.Zero[0]) / pos
}

// UnbalanceSlice returns the per-sample unbalance factors of a slice result.
func UnbalanceSlice(s Sequence[[]complex128]) (negative, zero []float64, err error) {
	n, err := mathfuncs.Broadcast(s.Zero[0], s.Pos[0], s.Neg[0])
	if err != nil {
		return nil, nil, err
	}

	posMag := mathfuncs.Abs(broadcastTo(s.Pos[0], n))
	negMag := mathfuncs.Abs(broadcastTo(s.Neg[0], n))
	zeroMag := mathfuncs.Abs(broadcastTo(s.Zero[0], n))

	negative = make([]float64, n)
	zero = make([]float64, n)
	for i := range n {
		negative[i] = negMag[i] / posMag[i]
		zero[i] = zeroMag[i] / posMag[i]
	}
	return negative, zero, nil
}

func broadcastTo(x []complex128, n int) []complex128 {
	if len(x) == n {
		return x
	}
	out := make([]complex128, n)
	for i := range out {
		out[i] = x[0]
	}
	return out
}
