// Package transix generates synthetic three-phase waveforms and converts
// three-phase quantities between the abc frame, the Clarke alpha-beta-zero
// frame and the Fortescue symmetrical component frame.
//
// The functions here are thin wrappers over the signals, transforms and
// mathfuncs packages, which also offer generic scalar and complex forms.
package transix

import (
	"github.com/synaptecltd/transix/mathfuncs"
	"github.com/synaptecltd/transix/signals"
	"github.com/synaptecltd/transix/transforms"
)

// Variant selects the scaling of the Clarke transform.
type Variant = transforms.Variant

const (
	PowerInvariant = transforms.PowerInvariant
	PowerVariant   = transforms.PowerVariant
)

// Errors returned by the package. Use errors.Is to match them.
var (
	ErrInvalidArgument = mathfuncs.ErrInvalidArgument
	ErrShapeMismatch   = mathfuncs.ErrShapeMismatch
)

// TimeBase returns floor(duration*fs)+1 sample times spaced exactly 1/fs apart,
// starting at 0.
func TimeBase(duration, fs float64) ([]float64, error) {
	return mathfuncs.TimeArray(duration, fs)
}

// GenerateSine returns sqrt(2)*mag*sin(2*pi*f*t + phaseShiftDeg*pi/180) over TimeBase(duration, fs).
func GenerateSine(mag, f, duration, fs, phaseShiftDeg float64) ([]float64, error) {
	return signals.GenerateSine(mag, f, duration, fs, phaseShiftDeg)
}

// GenerateABC returns a balanced set with b and c lagging a by 120 and 240 degrees.
func GenerateABC(mag, f, duration, fs, phaseShiftDeg float64) (a, b, c []float64, err error) {
	return signals.GenerateABC(mag, f, duration, fs, phaseShiftDeg)
}

// AbcToAlphaBeta0 applies the Clarke transform sample by sample. Length one
// inputs are broadcast against longer ones.
func AbcToAlphaBeta0(a, b, c []float64, variant Variant) (alpha, beta, zero []float64, err error) {
	return transforms.AbcToAlphaBeta0Slice(a, b, c, variant)
}

// AbcToSequence returns the zero, positive and negative sequence components of a phasor set.
func AbcToSequence(a, b, c complex128) transforms.Sequence[complex128] {
	return transforms.AbcToSequence(a, b, c)
}
