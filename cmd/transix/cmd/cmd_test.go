package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synaptecltd/transix/mathfuncs"
)

func execute(ctx context.Context, args ...string) (string, error) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func readWaveform(t *testing.T, out string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, waveformHeader, records[0])
	return records[1:]
}

func parseColumn(t *testing.T, record []string, column int) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(record[column], 64)
	require.NoError(t, err)
	return v
}

func TestWaveformCommand(t *testing.T) {
	out, err := execute(context.Background(), "waveform", "-c", filepath.Join("testdata", "short.yaml"))
	require.NoError(t, err)

	rows := readWaveform(t, out)
	require.Len(t, rows, 21)
	assert.Equal(t, "00:00.000", rows[0][0])
	assert.Equal(t, "00:00.005", rows[5][0])
	assert.Equal(t, "00:00.020", rows[20][0])

	peak := 230 * math.Sqrt2
	quarter := rows[5]
	assert.InDelta(t, peak, parseColumn(t, quarter, 1), 1e-5)
	assert.InDelta(t, peak*math.Sqrt(1.5), parseColumn(t, quarter, 4), 1e-5)

	for _, row := range rows {
		assert.InDelta(t, 0, parseColumn(t, row, 6), 1e-5, "zero column at %s", row[0])
	}
}

func TestWaveformVariantFlag(t *testing.T) {
	out, err := execute(context.Background(),
		"waveform", "-c", filepath.Join("testdata", "short.yaml"), "--variant", "power_variant")
	require.NoError(t, err)

	rows := readWaveform(t, out)
	quarter := rows[5]
	assert.InDelta(t, parseColumn(t, quarter, 1), parseColumn(t, quarter, 4), 1e-5, "alpha equals a")
}

func TestWaveformDefaultScenario(t *testing.T) {
	out, err := execute(context.Background(), "waveform")
	require.NoError(t, err)
	assert.Len(t, readWaveform(t, out), 1001)
}

func TestWaveformErrors(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "bad variant",
			args:     []string{"waveform", "--variant", "wrong_variant"},
			contains: "variant must be 'power_invariant' or 'power_variant'",
		},
		{
			name:     "missing scenario",
			args:     []string{"waveform", "-c", filepath.Join("testdata", "missing.yaml")},
			contains: "missing.yaml",
		},
		{
			name:     "unknown log level",
			args:     []string{"waveform", "--log-level", "verbose"},
			contains: "unknown log level",
		},
		{
			name:     "unexpected argument",
			args:     []string{"waveform", "extra"},
			contains: "unknown command",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(context.Background(), tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestWaveformCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := execute(ctx, "waveform", "-c", filepath.Join("testdata", "short.yaml"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSequenceCommandBalanced(t *testing.T) {
	out, err := execute(context.Background(), "sequence", "230@0", "230@-120", "230@120")
	require.NoError(t, err)

	assert.Contains(t, out, "zero      a=0.0000∠0.00° b=0.0000∠0.00° c=0.0000∠0.00°\n")
	assert.Contains(t, out, "positive  a=230.0000∠0.00° b=230.0000∠-120.00° c=230.0000∠120.00°\n")
	assert.Contains(t, out, "negative  a=0.0000∠0.00°")
	assert.Contains(t, out, "negative unbalance: 0.00%\n")
	assert.Contains(t, out, "zero unbalance: 0.00%\n")
}

func TestSequenceCommandScenario(t *testing.T) {
	out, err := execute(context.Background(), "sequence", "-c", filepath.Join("testdata", "unbalanced.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "positive  a=100.0000∠0.00°")
	assert.Contains(t, out, "negative  a=5.0000∠30.00°")
	assert.Contains(t, out, "zero      a=2.0000∠-45.00°")
	assert.Contains(t, out, "negative unbalance: 5.00%\n")
	assert.Contains(t, out, "zero unbalance: 2.00%\n")
}

func TestSequenceCommandErrors(t *testing.T) {
	_, err := execute(context.Background(), "sequence", "230@0", "230@-120")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 0 or 3 phasors")

	_, err = execute(context.Background(), "sequence", "230", "230@-120", "230@120")
	require.ErrorIs(t, err, mathfuncs.ErrInvalidArgument)
	assert.EqualError(t, err, `phasor "230" must be written as MAG@DEG`)

	_, err = execute(context.Background(), "sequence", "230@0", "230@x", "230@120")
	require.ErrorIs(t, err, mathfuncs.ErrInvalidArgument)

	out, err := execute(context.Background(),
		"sequence", "-c", filepath.Join("testdata", "unbalanced.yaml"), "230@0", "230@-120", "230@120")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined with --config")
	assert.Empty(t, out)
}

func TestParsePhasor(t *testing.T) {
	testCases := []struct {
		input    string
		expected complex128
	}{
		{input: "1@0", expected: 1},
		{input: "2@90", expected: 2i},
		{input: " 1.5 @ 180 ", expected: -1.5},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			z, err := parsePhasor(tc.input)
			require.NoError(t, err)
			assert.InDelta(t, real(tc.expected), real(z), 1e-12)
			assert.InDelta(t, imag(tc.expected), imag(z), 1e-12)
		})
	}
}

func TestFormatPolar(t *testing.T) {
	assert.Equal(t, "1.0000∠180.00°", formatPolar(complex(-1, -1e-17)))
	assert.Equal(t, "0.0000∠0.00°", formatPolar(complex(1e-17, -1e-17)))
	assert.Equal(t, "2.0000∠-90.00°", formatPolar(-2i))
}
