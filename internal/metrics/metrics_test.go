package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/vaticano/internal/stats"
)

func TestRecord(t *testing.T) {
	r := New()
	r.Record("/data/a.pgn.zst", stats.Snapshot{Games: 3, HalfMoves: 200, Passed: 5, Confirmed: 1, Elapsed: 2 * time.Second})
	r.Record("/data/a.pgn.zst", stats.Snapshot{Games: 2, HalfMoves: 100})
	r.Record("b.pgn", stats.Snapshot{Games: 7})

	assert.Equal(t, 5.0, testutil.ToFloat64(r.games.WithLabelValues("/data/a.pgn.zst")))
	assert.Equal(t, 300.0, testutil.ToFloat64(r.halfMoves.WithLabelValues("/data/a.pgn.zst")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.passes.WithLabelValues("/data/a.pgn.zst")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.motifs.WithLabelValues("/data/a.pgn.zst")))
	assert.Equal(t, 7.0, testutil.ToFloat64(r.games.WithLabelValues("b.pgn")))

	n, err := testutil.GatherAndCount(r.Gatherer(), "vaticano_games_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecordKeepsSameNamedFilesApart(t *testing.T) {
	r := New()
	r.Record("2013/01/games.pgn.zst", stats.Snapshot{Games: 4})
	r.Record("2014/01/games.pgn.zst", stats.Snapshot{Games: 6})

	assert.Equal(t, 4.0, testutil.ToFloat64(r.games.WithLabelValues("2013/01/games.pgn.zst")))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.games.WithLabelValues("2014/01/games.pgn.zst")))

	n, err := testutil.GatherAndCount(r.Gatherer(), "vaticano_games_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.Record("games.pgn", stats.Snapshot{Games: 4, HalfMoves: 10, Passed: 2, Confirmed: 1})

	path := filepath.Join(t.TempDir(), "vaticano.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	for _, line := range []string{
		`vaticano_games_total{file="games.pgn"} 4`,
		`vaticano_halfmoves_total{file="games.pgn"} 10`,
		`vaticano_prefilter_passes_total{file="games.pgn"} 2`,
		`vaticano_motifs_total{file="games.pgn"} 1`,
	} {
		assert.True(t, strings.Contains(text, line), "missing %q in\n%s", line, text)
	}
}
