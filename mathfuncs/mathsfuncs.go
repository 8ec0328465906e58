package mathfuncs

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Number is the element type accepted by the three-phase transforms: real
// time-domain samples or complex phasors.
type Number interface {
	float64 | complex128
}

// Returns an evenly spaced time base starting at 0 with spacing 1/fs.
// The sample count is floor(duration*fs)+1, so both endpoints are included
// when duration*fs is integral.
func TimeArray(duration, fs float64) ([]float64, error) {
	if !(fs > 0) || math.IsInf(fs, 0) {
		return nil, InvalidArgument("sampling frequency must be a positive finite value, got %v", fs)
	}
	if !(duration >= 0) || math.IsInf(duration, 0) {
		return nil, InvalidArgument("duration must be a non-negative finite value, got %v", duration)
	}

	dt := 1.0 / fs
	n := int(math.Floor(duration*fs)) + 1

	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) * dt
	}
	return t, nil
}

// Converts an angle in degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Converts an angle in radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// Returns the common length of three slices under the broadcasting rule:
// lengths must be equal, except that a length-1 slice stretches to match
// the others.
func Broadcast[T any](a, b, c []T) (int, error) {
	n := 1
	for _, l := range [3]int{len(a), len(b), len(c)} {
		if l == 1 {
			continue
		}
		if n != 1 && l != n {
			return 0, fmt.Errorf("%w: lengths %d, %d and %d cannot be broadcast together",
				ErrShapeMismatch, len(a), len(b), len(c))
		}
		n = l
	}
	return n, nil
}

// Returns x[i], or x[0] when x is a broadcast length-1 slice.
func At[T any](x []T, i int) T {
	if len(x) == 1 {
		return x[0]
	}
	return x[i]
}

// Promotes real samples to complex values with zero imaginary part.
func ToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// Splits complex values into separate real and imaginary planes.
func SplitComplex(x []complex128) (re, im []float64) {
	re = make([]float64, len(x))
	im = make([]float64, len(x))
	for i, v := range x {
		re[i] = real(v)
		im[i] = imag(v)
	}
	return re, im
}

// Returns the elementwise magnitude |x[i]|.
func Abs(x []complex128) []float64 {
	re, im := SplitComplex(x)
	out := make([]float64, len(x))
	vecmath.Magnitude(out, re, im)
	return out
}
