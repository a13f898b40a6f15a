// Package motif detects the flanking-bishops pattern ("Il Vaticano"): two
// bishops of the side to move on the same rank as two enemy pawns, standing
// bishop, pawn, pawn, bishop on four adjacent squares.
package motif

import (
	"strings"

	"github.com/freeeve/vaticano/internal/board"
)

// Outcome is the result of running the detector on one position.
type Outcome uint8

const (
	// Skip means a cheap filter ruled the motif out.
	Skip Outcome = iota
	// PassOnly means the bitboard filters passed but the board encoding
	// has no bishop, pawn, pawn, bishop run.
	PassOnly
	// Confirmed means the motif is on the board.
	Confirmed
)

func (o Outcome) String() string {
	switch o {
	case Skip:
		return "skip"
	case PassOnly:
		return "pass-only"
	case Confirmed:
		return "confirmed"
	}
	return "unknown"
}

// Passed reports whether the bitboard filters let the position through.
func (o Outcome) Passed() bool {
	return o != Skip
}

// Patterns searched in the FEN placement, by side to move. The mover's
// bishops flank two of the opponent's pawns.
const (
	whitePattern = "BppB"
	blackPattern = "bPPb"
)

// Pattern returns the placement substring that confirms the motif for turn.
func Pattern(turn board.Color) string {
	if turn == board.White {
		return whitePattern
	}
	return blackPattern
}

// Detect runs the three stages against the position before turn moves.
// placement is only called when both bitboard filters pass; it must return
// the FEN piece-placement field of b.
func Detect(b *board.Board, turn board.Color, placement func() string) Outcome {
	bishops := b.Pieces(turn, board.Bishop)
	if bishops&board.BishopBand == 0 {
		return Skip
	}

	pawns := b.Pieces(turn.Other(), board.Pawn)
	if !rankPair(bishops, pawns) {
		return Skip
	}

	if strings.Contains(placement(), Pattern(turn)) {
		return Confirmed
	}
	return PassOnly
}

// DetectBoard is Detect with the placement rendered from b itself.
func DetectBoard(b *board.Board, turn board.Color) Outcome {
	return Detect(b, turn, b.Placement)
}

// rankPair reports whether some inner rank holds at least two bishops and at
// least two pawns.
func rankPair(bishops, pawns board.Bitboard) bool {
	for _, rank := range board.InnerRanks {
		if (bishops&rank).Count() >= 2 && (pawns&rank).Count() >= 2 {
			return true
		}
	}
	return false
}

// Flanked tests the motif geometrically on bitboards: a bishop of turn, two
// enemy pawns and another bishop of turn on four adjacent squares of one
// rank, in that order.
func Flanked(b *board.Board, turn board.Color) bool {
	bishops := b.Pieces(turn, board.Bishop)
	pawns := b.Pieces(turn.Other(), board.Pawn)
	// Shifting by one file moves every square toward the H file; masking
	// the A file drops squares that wrapped onto the next rank.
	right := func(bb board.Bitboard, n int) board.Bitboard {
		for i := 0; i < n; i++ {
			bb = (bb << 1) &^ board.FileA
		}
		return bb
	}
	// Squares holding the right-hand bishop of a complete run.
	run := right(bishops, 3) & right(pawns, 2) & right(pawns, 1) & bishops
	return run != 0
}
