package scan

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/freeeve/vaticano/internal/motif"
	"github.com/freeeve/vaticano/internal/pgnstream"
	"github.com/freeeve/vaticano/internal/position"
	"github.com/freeeve/vaticano/internal/stats"
)

// IllegalMoveError is a SAN token that does not resolve in the position the
// mainline reached. Archives are expected to hold only legal games, so the
// scan stops.
type IllegalMoveError struct {
	Game uint64 // 1-based game number within the file
	Ply  int    // 1-based half-move number within the game
	SAN  string
	FEN  string
	Site string
	Err  error
}

func (e *IllegalMoveError) Error() string {
	msg := fmt.Sprintf("game %d ply %d: %q in %s", e.Game, e.Ply, e.SAN, e.FEN)
	if e.Site != "" {
		msg += " (" + e.Site + ")"
	}
	return msg + ": " + e.Err.Error()
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}

// Counter replays the mainline of each game and runs the motif detector on
// the position before every half-move. It implements pgnstream.Visitor.
type Counter struct {
	pos   *position.Position
	stats *stats.GameStats
	out   io.Writer
	log   zerolog.Logger
	site  string
}

var _ pgnstream.Visitor = (*Counter)(nil)

// NewCounter returns a Counter adding to st and writing progress reports to
// out.
func NewCounter(st *stats.GameStats, out io.Writer, log zerolog.Logger) *Counter {
	return &Counter{
		pos:   position.New(),
		stats: st,
		out:   out,
		log:   log,
	}
}

func (c *Counter) BeginGame() {
	c.pos.Reset()
	c.site = ""
}

func (c *Counter) Tag(name, value string) {
	if name == "Site" {
		c.site = value
	}
}

// BeginVariation always skips; only the mainline is replayed.
func (c *Counter) BeginVariation() bool {
	return true
}

func (c *Counter) EndVariation() {}

func (c *Counter) SAN(san string) error {
	c.stats.AddHalfMove()

	outcome := motif.Detect(c.pos.Board(), c.pos.Turn(), c.pos.Placement)
	c.stats.AddOutcome(outcome)
	if outcome == motif.Confirmed {
		if e := c.log.Debug(); e.Enabled() {
			e.Uint64("game", c.stats.Games+1).
				Int("ply", c.pos.Ply()+1).
				Str("site", c.site).
				Str("fen", c.pos.FEN()).
				Msg("il vaticano")
		}
	}

	if err := c.pos.Play(san); err != nil {
		return &IllegalMoveError{
			Game: c.stats.Games + 1,
			Ply:  c.pos.Ply() + 1,
			SAN:  san,
			FEN:  c.pos.FEN(),
			Site: c.site,
			Err:  err,
		}
	}
	return nil
}

func (c *Counter) EndGame() error {
	if !c.stats.EndGame() {
		return nil
	}
	_, err := fmt.Fprintln(c.out, stats.FormatProgress(c.stats.Snapshot()))
	return err
}
