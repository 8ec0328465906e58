package signals

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"github.com/synaptecltd/transix/mathfuncs"
)

// Phase displacement of phases b and c relative to phase a, in degrees.
const (
	PhaseBShiftDeg = -120.0
	PhaseCShiftDeg = -240.0
)

// GenerateSine returns v(t) = sqrt(2)*mag*sin(2*pi*f*t + phaseShiftDeg*pi/180)
// sampled on the time base of mathfuncs.TimeArray(duration, fs).
//
// mag is the RMS magnitude, so the peak is sqrt(2)*mag. Negative mag or f
// flip polarity or phase and are accepted.
func GenerateSine(mag, f, duration, fs, phaseShiftDeg float64) ([]float64, error) {
	times, err := mathfuncs.TimeArray(duration, fs)
	if err != nil {
		return nil, err
	}

	w := 2 * math.Pi * f
	phi := mathfuncs.Deg2Rad(phaseShiftDeg)

	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = math.Sin(w*t + phi)
	}
	vecmath.ScaleBlockInPlace(out, math.Sqrt2*mag)

	return out, nil
}

// GenerateABC returns a balanced positive sequence set. Phases b and c lag
// phase a by 120 and 240 degrees; each phase is a GenerateSine call with
// the common phaseShiftDeg added.
func GenerateABC(mag, f, duration, fs, phaseShiftDeg float64) (a, b, c []float64, err error) {
	if a, err = GenerateSine(mag, f, duration, fs, phaseShiftDeg); err != nil {
		return nil, nil, nil, err
	}
	if b, err = GenerateSine(mag, f, duration, fs, phaseShiftDeg+PhaseBShiftDeg); err != nil {
		return nil, nil, nil, err
	}
	if c, err = GenerateSine(mag, f, duration, fs, phaseShiftDeg+PhaseCShiftDeg); err != nil {
		return nil, nil, nil, err
	}
	return a, b, c, nil
}

// Returns the phasor mag∠angleDeg.
func Phasor(mag, angleDeg float64) complex128 {
	return cmplx.Rect(mag, mathfuncs.Deg2Rad(angleDeg))
}
