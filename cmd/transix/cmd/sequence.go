package cmd

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/synaptecltd/transix/internal/logger"
	"github.com/synaptecltd/transix/mathfuncs"
	"github.com/synaptecltd/transix/signals"
	"github.com/synaptecltd/transix/transforms"
)

var sequenceNames = [3]string{"zero", "positive", "negative"}

func newSequenceCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sequence [MAG@DEG MAG@DEG MAG@DEG]",
		Short: "Decompose three phasors into symmetrical components.",
		Long: `Decompose the phase a, b and c phasors into zero, positive and negative
sequence components and print them in polar form with the unbalance factors.

Phasors are given as magnitude@angle in degrees, for example 230@0 230@-120 230@120.
Without arguments the fundamental phasors of the scenario are used.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("accepts 0 or 3 phasors, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				abc [3]complex128
				err error
			)

			ctx := cmd.Context()
			if len(args) == 0 {
				s, scenarioCtx, err := opts.loadScenario(ctx)
				if err != nil {
					return err
				}
				ctx = scenarioCtx
				abc[0], abc[1], abc[2] = s.Waveform.Phasors()
			} else {
				if opts.configPath != "" {
					return fmt.Errorf("phasor arguments cannot be combined with --config %q", opts.configPath)
				}
				for i, arg := range args {
					if abc[i], err = parsePhasor(arg); err != nil {
						return err
					}
				}
			}

			seq := transforms.AbcToSequence(abc[0], abc[1], abc[2])
			negative, zero := transforms.Unbalance(seq)
			if err := writeSequence(cmd.OutOrStdout(), seq, negative, zero); err != nil {
				return err
			}

			logger.DebugKV(ctx, "sequence decomposed", "negative_unbalance", negative, "zero_unbalance", zero)
			return nil
		},
	}
}

// parsePhasor parses "MAG@DEG" into a complex phasor.
func parsePhasor(s string) (complex128, error) {
	magText, angText, ok := strings.Cut(s, "@")
	if !ok {
		return 0, mathfuncs.InvalidArgument("phasor %q must be written as MAG@DEG", s)
	}

	mag, err := strconv.ParseFloat(strings.TrimSpace(magText), 64)
	if err != nil {
		return 0, mathfuncs.InvalidArgument("phasor %q has an invalid magnitude", s)
	}
	ang, err := strconv.ParseFloat(strings.TrimSpace(angText), 64)
	if err != nil {
		return 0, mathfuncs.InvalidArgument("phasor %q has an invalid angle", s)
	}

	return signals.Phasor(mag, ang), nil
}

func writeSequence(w io.Writer, seq transforms.Sequence[complex128], negative, zero float64) error {
	for i, comp := range seq.Components() {
		if _, err := fmt.Fprintf(w, "%-9s a=%s b=%s c=%s\n",
			sequenceNames[i], formatPolar(comp[0]), formatPolar(comp[1]), formatPolar(comp[2])); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "negative unbalance: %.2f%%\nzero unbalance: %.2f%%\n", 100*negative, 100*zero)
	return err
}

// formatPolar renders z as mag∠deg with round-off noise folded to zero.
func formatPolar(z complex128) string {
	mag := cmplx.Abs(z)
	deg := 0.0
	if mag >= 1e-9 {
		deg = math.Round(mathfuncs.Rad2Deg(cmplx.Phase(z))*100) / 100
	}
	if deg == 0 || deg == -180 {
		deg = math.Abs(deg)
	}
	if mag < 5e-5 {
		mag = 0
	}
	return fmt.Sprintf("%.4f∠%.2f°", mag, deg)
}
