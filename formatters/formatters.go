// Package formatters renders numeric outputs for charts and reports.
package formatters

import (
	"fmt"
	"math"

	"github.com/synaptecltd/transix/mathfuncs"
)

// maxSeconds is the largest time whose millisecond count fits in an int64.
const maxSeconds = math.MaxInt64 / 1000

// MMSS renders a time in seconds as "mm:ss.mmm", rounding to the nearest
// millisecond first so that 59.9999 becomes "01:00.000". Minutes are not
// wrapped into hours. Negative, NaN and out of range times are rejected.
func MMSS(seconds float64) (string, error) {
	if !(seconds >= 0) || math.IsInf(seconds, 0) {
		return "", mathfuncs.InvalidArgument("time must be a non-negative finite number of seconds, got %v", seconds)
	}
	if seconds >= maxSeconds {
		return "", mathfuncs.InvalidArgument("time %v s is too large to format", seconds)
	}

	ms := int64(math.Round(seconds * 1000))
	m := ms / 60000
	s := float64(ms%60000) / 1000

	return fmt.Sprintf("%02d:%06.3f", m, s), nil
}

// TickFunc adapts MMSS to a chart tick labeller, which cannot report errors.
// Invalid values are labelled with an empty string.
func TickFunc(seconds float64) string {
	label, err := MMSS(seconds)
	if err != nil {
		return ""
	}
	return label
}
