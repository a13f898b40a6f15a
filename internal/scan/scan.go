// Package scan counts flanking-bishops positions across PGN archives.
package scan

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/freeeve/vaticano/internal/metrics"
	"github.com/freeeve/vaticano/internal/pgnstream"
	"github.com/freeeve/vaticano/internal/stats"
)

// Config configures a scan.
type Config struct {
	ReportEvery int               // Games between progress reports (default 100000, <0 disables)
	Out         io.Writer         // Report output (default stdout)
	Logger      zerolog.Logger    // Logger
	Metrics     *metrics.Recorder // Optional per-file totals
}

func (cfg Config) withDefaults() Config {
	if cfg.ReportEvery == 0 {
		cfg.ReportEvery = stats.DefaultReportEvery
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return cfg
}

// Run scans each path in order and prints the total elapsed time. The first
// failure stops the run; reports already printed stay valid.
func Run(paths []string, cfg Config) error {
	cfg = cfg.withDefaults()
	start := time.Now()

	for _, path := range paths {
		if _, err := ScanFile(path, cfg); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(cfg.Out, stats.FormatTotal(time.Since(start)))
	return err
}

// ScanFile scans one archive and prints its summary.
func ScanFile(path string, cfg Config) (stats.Snapshot, error) {
	cfg = cfg.withDefaults()
	cfg.Logger.Info().Str("file", path).Msg("starting scan")

	rc, err := pgnstream.Open(path)
	if err != nil {
		return stats.Snapshot{}, fmt.Errorf("open archive: %w", err)
	}
	defer rc.Close()

	snap, err := Scan(rc, cfg)
	if err != nil {
		return snap, fmt.Errorf("scan %s: %w", path, err)
	}

	if _, err := fmt.Fprintln(cfg.Out, stats.FormatSummary(path, snap)); err != nil {
		return snap, err
	}
	if cfg.Metrics != nil {
		cfg.Metrics.Record(path, snap)
	}
	cfg.Logger.Info().
		Str("file", path).
		Uint64("games", snap.Games).
		Uint64("halfmoves", snap.HalfMoves).
		Uint64("vaticanos", snap.Confirmed).
		Uint64("passed", snap.Passed).
		Dur("elapsed", snap.Elapsed).
		Float64("games_per_sec", float64(snap.Games)/snap.Elapsed.Seconds()).
		Msg("scan complete")
	return snap, nil
}

// Scan counts the motif over every game in r, printing progress reports to
// cfg.Out.
func Scan(r io.Reader, cfg Config) (stats.Snapshot, error) {
	cfg = cfg.withDefaults()
	st := stats.New(cfg.ReportEvery)
	counter := NewCounter(st, cfg.Out, cfg.Logger)
	err := pgnstream.Walk(pgnstream.NewReader(r), counter)
	return st.Snapshot(), err
}
