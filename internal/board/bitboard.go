// Package board holds the bitboard view of a chess position used by the
// motif detector, plus the FEN piece-placement codec.
package board

import "math/bits"

// Bitboard is a set of squares. Bit i is square i (A1=0, B1=1, ..., H8=63).
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileC Bitboard = FileA << 2
	FileD Bitboard = FileA << 3
	FileE Bitboard = FileA << 4
	FileF Bitboard = FileA << 5
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7
)

// Rank masks
const (
	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank3 Bitboard = Rank1 << (8 * 2)
	Rank4 Bitboard = Rank1 << (8 * 3)
	Rank5 Bitboard = Rank1 << (8 * 4)
	Rank6 Bitboard = Rank1 << (8 * 5)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)
)

// BackRanks are the first and last rank.
const BackRanks = Rank1 | Rank8

// BishopBand is the D, E and F files without the back ranks (d2-f7).
// A bishop of the side to move has to stand here for the motif to exist.
const BishopBand = (FileD | FileE | FileF) &^ BackRanks

// InnerRanks lists ranks 2 through 7, lowest first.
var InnerRanks = [6]Bitboard{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Has reports whether sq is in the set.
func (b Bitboard) Has(sq int) bool {
	return b&(1<<uint(sq)) != 0
}

// Set returns b with sq added.
func (b Bitboard) Set(sq int) Bitboard {
	return b | 1<<uint(sq)
}
