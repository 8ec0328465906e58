package cmd

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/synaptecltd/transix/config"
	"github.com/synaptecltd/transix/formatters"
	"github.com/synaptecltd/transix/internal/logger"
	"github.com/synaptecltd/transix/mathfuncs"
	"github.com/synaptecltd/transix/transforms"
)

var waveformHeader = []string{"time", "a", "b", "c", "alpha", "beta", "zero"}

func newWaveformCommand(opts *options) *cobra.Command {
	var variant transforms.Variant

	waveformCmd := &cobra.Command{
		Use:   "waveform",
		Short: "Write the scenario waveform and its Clarke transform as CSV.",
		Long: `Generate the scenario's three-phase set and write one CSV row per sample
to stdout with the columns time,a,b,c,alpha,beta,zero.

Time is rendered as mm:ss.mmm. The Clarke variant is taken from the scenario
unless --variant is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, ctx, err := opts.loadScenario(cmd.Context())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("variant") {
				s.Variant = variant
			}

			rows, err := writeWaveform(cmd, s)
			if err != nil {
				return err
			}

			logger.InfoKV(ctx, "waveform written", "rows", rows, "variant", s.Variant.String())
			return nil
		},
	}

	waveformCmd.Flags().Var(&variant, "variant", "Clarke variant: power_invariant or power_variant")

	return waveformCmd
}

// writeWaveform generates s and streams it to the command output, checking
// for cancellation between rows.
func writeWaveform(cmd *cobra.Command, s *config.Scenario) (int, error) {
	ctx := cmd.Context()

	times, err := mathfuncs.TimeArray(s.Duration, s.SamplingRate)
	if err != nil {
		return 0, err
	}
	a, b, c, err := s.Waveform.Generate(s.Frequency, s.Duration, s.SamplingRate)
	if err != nil {
		return 0, err
	}
	alpha, beta, zero, err := transforms.AbcToAlphaBeta0Slice(a, b, c, s.Variant)
	if err != nil {
		return 0, err
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write(waveformHeader); err != nil {
		return 0, err
	}

	record := make([]string, len(waveformHeader))
	for i, t := range times {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		if record[0], err = formatters.MMSS(t); err != nil {
			return i, err
		}
		for k, column := range [][]float64{a, b, c, alpha, beta, zero} {
			record[k+1] = formatSample(column[i])
		}
		if err := w.Write(record); err != nil {
			return i, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	w.Flush()
	return len(times), w.Error()
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
