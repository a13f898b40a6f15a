package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadPlacement is returned for a malformed FEN piece-placement field.
var ErrBadPlacement = errors.New("bad piece placement")

// Color is a side.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Role is a piece type independent of color.
type Role uint8

const (
	Pawn Role = iota
	Knight
	Bishop
	Rook
	Queen
	King
	numRoles
)

// roleLetters are the uppercase FEN letters indexed by Role.
const roleLetters = "PNBRQK"

// Piece is a colored role.
type Piece struct {
	Color Color
	Role  Role
}

// Letter returns the FEN letter: uppercase for white, lowercase for black.
func (p Piece) Letter() byte {
	l := roleLetters[p.Role]
	if p.Color == Black {
		l += 'a' - 'A'
	}
	return l
}

// PieceFromLetter parses a FEN piece letter.
func PieceFromLetter(l byte) (Piece, bool) {
	color := White
	if l >= 'a' && l <= 'z' {
		color = Black
		l -= 'a' - 'A'
	}
	i := strings.IndexByte(roleLetters, l)
	if i < 0 {
		return Piece{}, false
	}
	return Piece{Color: color, Role: Role(i)}, true
}

// Board is piece occupancy split by color and role.
type Board struct {
	pieces [2][numRoles]Bitboard
}

// Pieces returns the squares holding pieces of color c and role r.
func (b *Board) Pieces(c Color, r Role) Bitboard {
	return b.pieces[c][r]
}

// ByColor returns every square occupied by color c.
func (b *Board) ByColor(c Color) Bitboard {
	var out Bitboard
	for _, bb := range b.pieces[c] {
		out |= bb
	}
	return out
}

// Occupied returns every occupied square.
func (b *Board) Occupied() Bitboard {
	return b.ByColor(White) | b.ByColor(Black)
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq int) (Piece, bool) {
	for c := White; c <= Black; c++ {
		for r := Pawn; r < numRoles; r++ {
			if b.pieces[c][r].Has(sq) {
				return Piece{Color: c, Role: r}, true
			}
		}
	}
	return Piece{}, false
}

// Put places p on sq, replacing whatever stood there.
func (b *Board) Put(sq int, p Piece) {
	b.Clear(sq)
	b.pieces[p.Color][p.Role] = b.pieces[p.Color][p.Role].Set(sq)
}

// Clear empties sq.
func (b *Board) Clear(sq int) {
	mask := ^Bitboard(1 << uint(sq))
	for c := range b.pieces {
		for r := range b.pieces[c] {
			b.pieces[c][r] &= mask
		}
	}
}

// ParsePlacement parses the first field of a FEN, e.g.
// "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR".
func ParsePlacement(s string) (*Board, error) {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: %d ranks in %q", ErrBadPlacement, len(ranks), s)
	}
	b := &Board{}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return nil, fmt.Errorf("%w: rank %d overflows in %q", ErrBadPlacement, rank+1, s)
				}
				continue
			}
			p, ok := PieceFromLetter(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q in %q", ErrBadPlacement, ch, s)
			}
			if file > 7 {
				return nil, fmt.Errorf("%w: rank %d overflows in %q", ErrBadPlacement, rank+1, s)
			}
			b.pieces[p.Color][p.Role] = b.pieces[p.Color][p.Role].Set(Square(file, rank))
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files in %q", ErrBadPlacement, rank+1, file, s)
		}
	}
	return b, nil
}

// Placement renders the board as a FEN piece-placement field: rank 8 first,
// ranks separated by '/', runs of empty squares written as a digit.
func (b *Board) Placement() string {
	var sb strings.Builder
	sb.Grow(71)
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p, ok := b.PieceAt(Square(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// StartPlacement is the standard initial arrangement.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
