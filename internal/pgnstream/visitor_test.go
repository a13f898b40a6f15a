package pgnstream

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	skip    bool
	calls   []string
	failSAN string
}

func (r *recorder) BeginGame()             { r.calls = append(r.calls, "begin") }
func (r *recorder) Tag(name, value string) { r.calls = append(r.calls, "tag:"+name) }
func (r *recorder) BeginVariation() bool {
	r.calls = append(r.calls, "(")
	return r.skip
}
func (r *recorder) EndVariation() { r.calls = append(r.calls, ")") }
func (r *recorder) SAN(san string) error {
	if san == r.failSAN {
		return errors.New("boom")
	}
	r.calls = append(r.calls, san)
	return nil
}
func (r *recorder) EndGame() error {
	r.calls = append(r.calls, "end")
	return nil
}

const nested = `[Site "x"]

1. e4 e5 (1... c5 2. Nf3 (2. c3 d5) 2... d6) 2. Nf3 (2. f4 exf4) 2... Nc6 *
`

func TestWalkSkipsVariations(t *testing.T) {
	rec := &recorder{skip: true}
	require.NoError(t, Walk(NewReader(strings.NewReader(nested)), rec))
	assert.Equal(t, []string{
		"begin", "tag:Site", "e4", "e5", "(", "Nf3", "(", "Nc6", "end",
	}, rec.calls)
}

func TestWalkDescends(t *testing.T) {
	rec := &recorder{skip: false}
	require.NoError(t, Walk(NewReader(strings.NewReader(nested)), rec))
	assert.Equal(t, []string{
		"begin", "tag:Site", "e4", "e5",
		"(", "c5", "Nf3", "(", "c3", "d5", ")", "d6", ")",
		"Nf3", "(", "f4", "exf4", ")", "Nc6", "end",
	}, rec.calls)
}

func TestWalkStopsOnCallbackError(t *testing.T) {
	rec := &recorder{skip: true, failSAN: "Nf3"}
	err := Walk(NewReader(strings.NewReader(nested)), rec)
	require.EqualError(t, err, "boom")
	assert.Equal(t, []string{"begin", "tag:Site", "e4", "e5", "("}, rec.calls)
}

func TestWalkPropagatesSyntaxError(t *testing.T) {
	err := Walk(NewReader(strings.NewReader("1. e4 ) *")), &recorder{})
	var se *SyntaxError
	assert.True(t, errors.As(err, &se))
}
