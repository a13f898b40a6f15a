// Package stats keeps the per-file motif counters and formats the reports.
package stats

import (
	"fmt"
	"time"

	"github.com/freeeve/vaticano/internal/motif"
)

// DefaultReportEvery is the number of games between progress reports.
const DefaultReportEvery = 100_000

// GameStats holds the counters for one archive file. The zero value is not
// usable; call New.
type GameStats struct {
	Games     uint64
	HalfMoves uint64
	Confirmed uint64
	Passed    uint64
	Start     time.Time

	every uint64
}

// New starts the clock for a file. reportEvery <= 0 disables progress
// reports.
func New(reportEvery int) *GameStats {
	s := &GameStats{Start: time.Now()}
	if reportEvery > 0 {
		s.every = uint64(reportEvery)
	}
	return s
}

// AddHalfMove counts one mainline half-move.
func (s *GameStats) AddHalfMove() {
	s.HalfMoves++
}

// AddOutcome records the detector result for a half-move.
func (s *GameStats) AddOutcome(o motif.Outcome) {
	if o.Passed() {
		s.Passed++
	}
	if o == motif.Confirmed {
		s.Confirmed++
	}
}

// EndGame counts a completed game and reports whether a progress report is
// due.
func (s *GameStats) EndGame() bool {
	s.Games++
	return s.every > 0 && s.Games%s.every == 0
}

// Snapshot copies the counters along with the time elapsed since New.
func (s *GameStats) Snapshot() Snapshot {
	return Snapshot{
		Games:     s.Games,
		HalfMoves: s.HalfMoves,
		Confirmed: s.Confirmed,
		Passed:    s.Passed,
		Elapsed:   time.Since(s.Start),
	}
}

// Snapshot is a point-in-time copy of GameStats.
type Snapshot struct {
	Games     uint64
	HalfMoves uint64
	Confirmed uint64
	Passed    uint64
	Elapsed   time.Duration
}

// Valid reports whether Confirmed <= Passed <= HalfMoves.
func (s Snapshot) Valid() bool {
	return s.Confirmed <= s.Passed && s.Passed <= s.HalfMoves
}

// PositionRate is confirmations as a percentage of half-moves.
func (s Snapshot) PositionRate() float64 {
	return percent(s.Confirmed, s.HalfMoves)
}

// GameRate is confirmations as a percentage of games.
func (s Snapshot) GameRate() float64 {
	return percent(s.Confirmed, s.Games)
}

func percent(n, d uint64) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d) * 100
}

// FormatProgress renders the periodic report.
func FormatProgress(s Snapshot) string {
	return fmt.Sprintf("%d games, %d il vaticanos, %d positions, %d passed, %.5f%% positions %.5f%% games\n%s",
		s.Games, s.Confirmed, s.HalfMoves, s.Passed, s.PositionRate(), s.GameRate(), FormatTotal(s.Elapsed))
}

// FormatSummary renders the end-of-file report.
func FormatSummary(path string, s Snapshot) string {
	return fmt.Sprintf("%s: games=%d halfmoves=%d vaticanos=%d passed=%d elapsed_ms=%d",
		path, s.Games, s.HalfMoves, s.Confirmed, s.Passed, s.Elapsed.Milliseconds())
}

// FormatTotal renders an elapsed time line.
func FormatTotal(d time.Duration) string {
	return fmt.Sprintf("Took %d ms.", d.Milliseconds())
}
