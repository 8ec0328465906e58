package signals

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/synaptecltd/transix/mathfuncs"
)

const twoPiOverThree = 2 * math.Pi / 3

// ThreePhase describes a deterministic, possibly unbalanced three-phase set
// built from positive, negative and zero sequence fundamentals plus harmonics.
// Angles are in degrees and sine referenced, matching GenerateSine.
type ThreePhase struct {
	PosSeqMag       float64   `mapstructure:"pos_seq_mag" yaml:"pos_seq_mag"`   // RMS magnitude of the positive sequence
	PhaseOffset     float64   `mapstructure:"phase_offset" yaml:"phase_offset"` // phase a angle at t=0
	NegSeqMag       float64   `mapstructure:"neg_seq_mag" yaml:"neg_seq_mag"`   // pu, relative to PosSeqMag
	NegSeqAng       float64   `mapstructure:"neg_seq_ang" yaml:"neg_seq_ang"`   // relative to the positive sequence
	ZeroSeqMag      float64   `mapstructure:"zero_seq_mag" yaml:"zero_seq_mag"` // pu, relative to PosSeqMag
	ZeroSeqAng      float64   `mapstructure:"zero_seq_ang" yaml:"zero_seq_ang"` // relative to the positive sequence
	HarmonicNumbers []float64 `mapstructure:"harmonic_numbers,omitempty" yaml:"harmonic_numbers,flow"`
	HarmonicMags    []float64 `mapstructure:"harmonic_mags,omitempty" yaml:"harmonic_mags,flow"` // pu, relative to PosSeqMag
	HarmonicAngs    []float64 `mapstructure:"harmonic_angs,omitempty" yaml:"harmonic_angs,flow"`
}

// Validate checks that the harmonic tables line up.
func (e *ThreePhase) Validate() error {
	if len(e.HarmonicNumbers) != len(e.HarmonicMags) || len(e.HarmonicNumbers) != len(e.HarmonicAngs) {
		return mathfuncs.InvalidArgument("harmonic numbers, magnitudes and angles must have equal lengths, got %d, %d and %d",
			len(e.HarmonicNumbers), len(e.HarmonicMags), len(e.HarmonicAngs))
	}
	return nil
}

// Generate samples the set at frequency f over the time base of
// mathfuncs.TimeArray(duration, fs). With no unbalance or harmonics the
// result is the same set as GenerateABC(PosSeqMag, f, duration, fs, PhaseOffset).
func (e *ThreePhase) Generate(f, duration, fs float64) (a, b, c []float64, err error) {
	if err := e.Validate(); err != nil {
		return nil, nil, nil, err
	}
	times, err := mathfuncs.TimeArray(duration, fs)
	if err != nil {
		return nil, nil, nil, err
	}

	n := len(times)
	a = make([]float64, n)
	b = make([]float64, n)
	c = make([]float64, n)

	w := 2 * math.Pi * f
	offset := mathfuncs.Deg2Rad(e.PhaseOffset)
	negAng := mathfuncs.Deg2Rad(e.NegSeqAng)
	zeroAng := mathfuncs.Deg2Rad(e.ZeroSeqAng)

	// all terms are built in pu of the positive sequence peak, then scaled once
	ah := make([]float64, n)
	bh := make([]float64, n)
	ch := make([]float64, n)
	for i, t := range times {
		posSeqPhase := w*t + offset

		// positive sequence
		a[i] = math.Sin(posSeqPhase)
		b[i] = math.Sin(posSeqPhase - twoPiOverThree)
		c[i] = math.Sin(posSeqPhase + twoPiOverThree)

		// negative sequence
		if e.NegSeqMag != 0 {
			a[i] += math.Sin(posSeqPhase+negAng) * e.NegSeqMag
			b[i] += math.Sin(posSeqPhase+twoPiOverThree+negAng) * e.NegSeqMag
			c[i] += math.Sin(posSeqPhase-twoPiOverThree+negAng) * e.NegSeqMag
		}

		// zero sequence
		if e.ZeroSeqMag != 0 {
			abc0 := math.Sin(posSeqPhase+zeroAng) * e.ZeroSeqMag
			a[i] += abc0
			b[i] += abc0
			c[i] += abc0
		}

		// harmonics
		for k, h := range e.HarmonicNumbers {
			mag := e.HarmonicMags[k]
			ang := mathfuncs.Deg2Rad(e.HarmonicAngs[k])

			ah[i] += math.Sin(h*posSeqPhase+ang) * mag
			bh[i] += math.Sin(h*(posSeqPhase-twoPiOverThree)+ang) * mag
			ch[i] += math.Sin(h*(posSeqPhase+twoPiOverThree)+ang) * mag
		}
	}

	if len(e.HarmonicNumbers) > 0 {
		vecmath.AddBlockInPlace(a, ah)
		vecmath.AddBlockInPlace(b, bh)
		vecmath.AddBlockInPlace(c, ch)
	}

	peak := math.Sqrt2 * e.PosSeqMag
	vecmath.ScaleBlockInPlace(a, peak)
	vecmath.ScaleBlockInPlace(b, peak)
	vecmath.ScaleBlockInPlace(c, peak)

	return a, b, c, nil
}

// Phasors returns the RMS fundamental phasors of phases a, b and c. Passing
// them to transforms.AbcToSequence recovers PosSeqMag∠PhaseOffset as the
// positive sequence, and the configured negative and zero sequences.
func (e *ThreePhase) Phasors() (a, b, c complex128) {
	pos := Phasor(e.PosSeqMag, e.PhaseOffset)
	neg := Phasor(e.NegSeqMag*e.PosSeqMag, e.PhaseOffset+e.NegSeqAng)
	zero := Phasor(e.ZeroSeqMag*e.PosSeqMag, e.PhaseOffset+e.ZeroSeqAng)

	lag := Phasor(1, PhaseBShiftDeg)
	lead := Phasor(1, -PhaseBShiftDeg)

	a = pos + neg + zero
	b = pos*lag + neg*lead + zero
	c = pos*lead + neg*lag + zero
	return a, b, c
}
