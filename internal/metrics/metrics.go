// Package metrics exports scan totals in the Prometheus text format so batch
// runs can be picked up by a node_exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/freeeve/vaticano/internal/stats"
)

const namespace = "vaticano"

// Recorder accumulates per-file totals on a private registry.
type Recorder struct {
	reg *prometheus.Registry

	games     *prometheus.CounterVec
	halfMoves *prometheus.CounterVec
	passes    *prometheus.CounterVec
	motifs    *prometheus.CounterVec
	duration  *prometheus.GaugeVec
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, []string{"file"})
	}
	r := &Recorder{
		reg:       prometheus.NewRegistry(),
		games:     counter("games_total", "Games scanned."),
		halfMoves: counter("halfmoves_total", "Mainline half-moves scanned."),
		passes:    counter("prefilter_passes_total", "Positions that passed the bitboard filters."),
		motifs:    counter("motifs_total", "Positions with the flanking-bishops motif."),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Wall-clock time spent scanning the file.",
		}, []string{"file"}),
	}
	r.reg.MustRegister(r.games, r.halfMoves, r.passes, r.motifs, r.duration)
	return r
}

// Record adds a finished file's counters under the path as given.
func (r *Recorder) Record(path string, s stats.Snapshot) {
	r.games.WithLabelValues(path).Add(float64(s.Games))
	r.halfMoves.WithLabelValues(path).Add(float64(s.HalfMoves))
	r.passes.WithLabelValues(path).Add(float64(s.Passed))
	r.motifs.WithLabelValues(path).Add(float64(s.Confirmed))
	r.duration.WithLabelValues(path).Set(s.Elapsed.Seconds())
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
