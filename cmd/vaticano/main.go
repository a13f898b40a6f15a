package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/freeeve/vaticano/internal/logx"
	"github.com/freeeve/vaticano/internal/metrics"
	"github.com/freeeve/vaticano/internal/scan"
	"github.com/freeeve/vaticano/internal/stats"
)

type options struct {
	reportEvery int
	metricsFile string
	logLevel    string

	// reportEveryErr is a VATICANO_REPORT_EVERY value that is not a number.
	reportEveryErr error
}

func defaultOptions() options {
	opts := options{
		reportEvery: stats.DefaultReportEvery,
		metricsFile: os.Getenv("VATICANO_METRICS_FILE"),
		logLevel:    os.Getenv("VATICANO_LOG_LEVEL"),
	}
	if env := os.Getenv("VATICANO_REPORT_EVERY"); env != "" {
		n, err := strconv.Atoi(env)
		if err != nil {
			opts.reportEveryErr = fmt.Errorf("VATICANO_REPORT_EVERY=%q: not an integer", env)
		} else {
			opts.reportEvery = n
		}
	}
	if opts.logLevel == "" {
		opts.logLevel = "info"
	}
	return opts
}

func newRootCmd(logger *zerolog.Logger) *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "vaticano [file.pgn[.zst] | dir ...]",
		Short: "Count flanking-bishops (Il Vaticano) positions in PGN archives",
		Long: `vaticano replays the mainline of every game in the given PGN archives
(zstd, gzip or plain text) and counts the positions where the side to move
has two bishops flanking two enemy pawns on one rank.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.reportEveryErr != nil && !cmd.Flags().Changed("report-every") {
				return opts.reportEveryErr
			}
			level, err := logx.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			*logger = logx.NewLogger(cmd.ErrOrStderr(), level)

			cfg := scan.Config{
				ReportEvery: opts.reportEvery,
				Out:         cmd.OutOrStdout(),
				Logger:      *logger,
			}
			if cfg.ReportEvery == 0 {
				cfg.ReportEvery = -1
			}
			if opts.metricsFile != "" {
				cfg.Metrics = metrics.New()
			}

			paths, err := scan.ExpandPaths(args)
			if err != nil {
				return err
			}
			if err := scan.Run(paths, cfg); err != nil {
				return err
			}

			if cfg.Metrics != nil {
				if err := cfg.Metrics.WriteTextfile(opts.metricsFile); err != nil {
					return err
				}
				logger.Info().Str("path", opts.metricsFile).Msg("wrote metrics")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.reportEvery, "report-every", opts.reportEvery, "Print a progress report every N games (0 = never)")
	flags.StringVar(&opts.metricsFile, "metrics-file", opts.metricsFile, "Write Prometheus textfile metrics here after the run")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level (debug, info, warn, error)")
	return cmd
}

func main() {
	logger := logx.NewLogger(os.Stderr, zerolog.InfoLevel)
	if err := newRootCmd(&logger).Execute(); err != nil {
		logger.Fatal().Err(err).Msg("scan failed")
	}
}
