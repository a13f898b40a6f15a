// Package position tracks one game's board through the pgn rules engine and
// exposes it as bitboards for the motif detector.
package position

import (
	"errors"
	"fmt"
	"strings"

	"github.com/freeeve/pgn/v3"

	"github.com/freeeve/vaticano/internal/board"
)

// ErrIllegalMove is returned when a SAN token does not resolve to a legal
// move in the current position.
var ErrIllegalMove = errors.New("illegal move")

var startBoard = mustStartBoard()

func mustStartBoard() board.Board {
	b, err := board.ParsePlacement(board.StartPlacement)
	if err != nil {
		panic(err)
	}
	return *b
}

// Position is the live board of the game being replayed.
type Position struct {
	gs    *pgn.GameState
	board board.Board
	ply   int
}

// New returns the standard starting position.
func New() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// Reset discards the current game and returns to the starting position.
func (p *Position) Reset() {
	p.gs = pgn.NewStartingPosition()
	p.board = startBoard
	p.ply = 0
}

// Board returns the piece occupancy before the next move.
func (p *Position) Board() *board.Board {
	return &p.board
}

// Turn returns the side to move.
func (p *Position) Turn() board.Color {
	if p.gs.SideToMove == pgn.Black {
		return board.Black
	}
	return board.White
}

// Placement renders the FEN piece-placement field of the current position.
func (p *Position) Placement() string {
	placement, _, _ := strings.Cut(p.gs.ToFEN(), " ")
	return placement
}

// FEN returns the full FEN of the current position.
func (p *Position) FEN() string {
	return p.gs.ToFEN()
}

// Ply returns the number of half-moves played since the last Reset.
func (p *Position) Ply() int {
	return p.ply
}

// Play resolves san against the current position and applies it.
func (p *Position) Play(san string) error {
	token := NormalizeSAN(san)
	mv, err := pgn.ParseSAN(p.gs, token)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrIllegalMove, san, err)
	}
	if err := pgn.ApplyMove(p.gs, mv); err != nil {
		return fmt.Errorf("%w: apply %q: %v", ErrIllegalMove, san, err)
	}
	p.ply++
	p.update(mv)
	return nil
}

// update copies the squares mv changed from the engine into the bitboards:
// origin and target, the pawn taken en passant, and the back rank when the
// king castles.
func (p *Position) update(mv pgn.Mv) {
	p.refresh(mv.From)
	p.refresh(mv.To)
	switch p.gs.PieceAt(mv.To) {
	case 'P', 'p':
		if mv.From.File() != mv.To.File() {
			p.refresh(pgn.MakeSquare(mv.To.File(), mv.From.Rank()))
		}
	case 'K', 'k':
		if d := mv.To.File() - mv.From.File(); d > 1 || d < -1 {
			for file := 0; file < 8; file++ {
				p.refresh(pgn.MakeSquare(file, mv.From.Rank()))
			}
		}
	}
}

func (p *Position) refresh(sq pgn.Square) {
	if piece, ok := board.PieceFromLetter(p.gs.PieceAt(sq)); ok {
		p.board.Put(int(sq), piece)
		return
	}
	p.board.Clear(int(sq))
}

// NormalizeSAN strips check, mate and annotation suffixes and rewrites
// zero-style castling, e.g. "0-0+" -> "O-O", "Nf3!?" -> "Nf3".
func NormalizeSAN(san string) string {
	san = strings.TrimRight(san, "+#!?")
	switch san {
	case "0-0":
		return "O-O"
	case "0-0-0":
		return "O-O-O"
	}
	return san
}
