// Package pgnstream reads PGN movetext as a flat stream of events and folds
// it over a Visitor, one game at a time.
package pgnstream

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader turns PGN text into events. It is single-use: once Next returns an
// error, every later call returns the same error.
type Reader struct {
	r   *bufio.Reader
	err error

	line          int
	lineStart     bool
	prevLineStart bool
	started       bool

	inGame     bool
	inMovetext bool
	depth      int

	pending []Event
	buf     []byte
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:         bufio.NewReaderSize(r, 256<<10),
		line:      1,
		lineStart: true,
	}
}

// Next returns the next event, or io.EOF after the last game ended.
func (r *Reader) Next() (Event, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return Event{}, r.err
		}
		r.err = r.scan()
	}
	ev := r.pending[0]
	n := copy(r.pending, r.pending[1:])
	r.pending = r.pending[:n]
	return ev, nil
}

func (r *Reader) emit(ev Event) {
	if ev.Line == 0 {
		ev.Line = r.line
	}
	r.pending = append(r.pending, ev)
}

func (r *Reader) syntax(msg string) error {
	return &SyntaxError{Line: r.line, Msg: msg}
}

func (r *Reader) readByte() (byte, error) {
	c, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	r.prevLineStart = r.lineStart
	r.lineStart = c == '\n'
	if c == '\n' {
		r.line++
	}
	return c, nil
}

func (r *Reader) unreadByte(c byte) {
	_ = r.r.UnreadByte()
	r.lineStart = r.prevLineStart
	if c == '\n' {
		r.line--
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func (r *Reader) skipSpace() (byte, error) {
	for {
		c, err := r.readByte()
		if err != nil {
			return 0, err
		}
		if !isSpace(c) {
			return c, nil
		}
	}
}

func (r *Reader) skipLine() error {
	for {
		c, err := r.readByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

func (r *Reader) endGame() {
	r.emit(Event{Kind: GameEnd})
	r.inGame = false
	r.inMovetext = false
	r.depth = 0
}

// scan consumes input until it has queued at least one event or hit an
// error. A nil return with nothing queued means scan should be called again.
func (r *Reader) scan() error {
	if !r.started {
		r.started = true
		if head, err := r.r.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
			_, _ = r.r.Discard(len(utf8BOM))
		}
	}

	c, err := r.skipSpace()
	if err == io.EOF {
		if r.inGame {
			if r.depth > 0 {
				return r.syntax("unterminated variation at end of input")
			}
			r.endGame()
		}
		return io.EOF
	}
	if err != nil {
		return err
	}

	// Comments and escape lines never start a game.
	switch {
	case c == '%' && r.prevLineStart:
		return r.skipLine()
	case c == '{':
		return r.skipComment()
	case c == ';':
		return r.skipLine()
	}

	if !r.inGame {
		r.inGame = true
		r.emit(Event{Kind: GameStart})
	}

	switch c {
	case '[':
		if r.inMovetext {
			// Tag section of the next game; this one had no result token.
			if r.depth > 0 {
				return r.syntax("unterminated variation before next game")
			}
			r.unreadByte(c)
			r.endGame()
			return nil
		}
		return r.scanTag()
	case '(':
		r.inMovetext = true
		r.depth++
		r.emit(Event{Kind: VariationStart})
		return nil
	case ')':
		if r.depth == 0 {
			return r.syntax("unbalanced ')'")
		}
		r.depth--
		r.emit(Event{Kind: VariationEnd})
		return nil
	case '$':
		r.inMovetext = true
		_, err := r.readToken(c)
		return err
	case ']', '}':
		return r.syntax("unexpected '" + string(c) + "'")
	}

	tok, err := r.readToken(c)
	if err != nil {
		return err
	}
	return r.scanSymbol(tok)
}

func (r *Reader) skipComment() error {
	for {
		c, err := r.readByte()
		if err == io.EOF {
			return r.syntax("unterminated comment")
		}
		if err != nil {
			return err
		}
		if c == '}' {
			return nil
		}
	}
}

func isDelimiter(c byte) bool {
	return isSpace(c) || strings.IndexByte("{}();[]$", c) >= 0
}

// readToken reads a symbol starting with first up to the next delimiter.
func (r *Reader) readToken(first byte) (string, error) {
	r.buf = append(r.buf[:0], first)
	for {
		c, err := r.readByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isDelimiter(c) {
			r.unreadByte(c)
			break
		}
		r.buf = append(r.buf, c)
	}
	return string(r.buf), nil
}

// scanSymbol classifies a movetext symbol: result, move number, bare
// annotation glyph or SAN.
func (r *Reader) scanSymbol(tok string) error {
	r.inMovetext = true

	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		if r.depth > 0 {
			return r.syntax("game result inside a variation")
		}
		r.emit(Event{Kind: Result, Value: tok})
		r.endGame()
		return nil
	}

	// Move numbers: "12.", "12...", "12.e4". Digits without dots are kept
	// so that "0-0" survives.
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	j := i
	for j < len(tok) && tok[j] == '.' {
		j++
	}
	if j > i || i == len(tok) {
		tok = tok[j:]
	}
	// Import-format en passant marker, alone or glued to the capture.
	tok = strings.TrimSuffix(tok, "e.p.")
	if strings.Trim(tok, "!?") == "" {
		return nil
	}

	r.emit(Event{Kind: Move, Value: tok})
	return nil
}

func (r *Reader) scanTag() error {
	c, err := r.skipSpace()
	if err != nil {
		return r.tagErr(err)
	}
	var name []byte
	for !isSpace(c) && c != '"' && c != ']' {
		name = append(name, c)
		if c, err = r.readByte(); err != nil {
			return r.tagErr(err)
		}
	}
	if len(name) == 0 {
		return r.syntax("tag without a name")
	}
	if isSpace(c) {
		if c, err = r.skipSpace(); err != nil {
			return r.tagErr(err)
		}
	}
	if c != '"' {
		return r.syntax("tag " + string(name) + ": expected quoted value")
	}

	var value []byte
	for {
		if c, err = r.readByte(); err != nil {
			return r.tagErr(err)
		}
		if c == '\\' {
			if c, err = r.readByte(); err != nil {
				return r.tagErr(err)
			}
		} else if c == '"' {
			break
		}
		value = append(value, c)
	}

	if c, err = r.skipSpace(); err != nil {
		return r.tagErr(err)
	}
	if c != ']' {
		return r.syntax("tag " + string(name) + ": expected ']'")
	}
	r.emit(Event{Kind: Tag, Name: string(name), Value: string(value)})
	return nil
}

func (r *Reader) tagErr(err error) error {
	if err == io.EOF {
		return r.syntax("unterminated tag")
	}
	return err
}
