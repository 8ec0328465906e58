package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/synaptecltd/transix/config"
	"github.com/synaptecltd/transix/internal/logger"
)

// options holds the persistent flags shared by all subcommands.
type options struct {
	// configPath stores the path to the scenario YAML file. Empty means the built-in default scenario.
	configPath string
	// logLevel is the minimum level written to stderr.
	logLevel string
}

// NewRootCommand builds the transix command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "transix",
		Short: "Generate three-phase waveforms and analyse them.",
		Long: `Generate deterministic three-phase test waveforms and analyse them with the
Clarke (alpha-beta-zero) and Fortescue (symmetrical components) transforms.

Scenarios are read from a YAML file given with --config. Without one, a
balanced 230 V, 50 Hz set sampled at 10 kHz for 0.1 s is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(opts.logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", opts.logLevel)
			}
			logger.SetLevel(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to scenario file, e.g. "+config.DefaultConfigFilename)
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newWaveformCommand(opts), newSequenceCommand(opts))

	return rootCmd
}

// Execute runs the transix CLI and exits with non-zero status on error.
func Execute() {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.ErrorKV(ctx, "command failed", "error", err)
		_ = logger.Logger().Sync()
		os.Exit(1)
	}
}

// loadScenario reads the scenario named by --config, or the default one.
func (o *options) loadScenario(ctx context.Context) (*config.Scenario, context.Context, error) {
	var (
		s   *config.Scenario
		err error
	)
	if o.configPath == "" {
		s = config.Default()
	} else if s, err = config.Load(o.configPath); err != nil {
		return nil, ctx, err
	}

	ctx = logger.WithKV(ctx, "scenario_id", s.ID.String(), "scenario", s.Name)
	logger.DebugKV(ctx, "scenario loaded", "path", o.configPath, "variant", s.Variant.String())

	return s, ctx, nil
}
