package position

import (
	"errors"
	"strings"
	"testing"

	"github.com/freeeve/vaticano/internal/board"
)

func play(t *testing.T, p *Position, sans ...string) {
	t.Helper()
	for _, san := range sans {
		if err := p.Play(san); err != nil {
			t.Fatalf("Play(%q): %v", san, err)
		}
	}
}

func TestNewPosition(t *testing.T) {
	p := New()
	if p.Placement() != board.StartPlacement {
		t.Errorf("Placement() = %q, want start", p.Placement())
	}
	if p.Turn() != board.White {
		t.Errorf("Turn() = %s, want white", p.Turn())
	}
	if p.Ply() != 0 {
		t.Errorf("Ply() = %d, want 0", p.Ply())
	}
	if p.Board().Occupied().Count() != 32 {
		t.Errorf("occupied = %d, want 32", p.Board().Occupied().Count())
	}
}

func TestPlayTracksBoard(t *testing.T) {
	p := New()
	play(t, p, "e4")

	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR"
	if p.Placement() != want {
		t.Errorf("Placement() = %q, want %q", p.Placement(), want)
	}
	if p.Turn() != board.Black {
		t.Errorf("Turn() = %s, want black", p.Turn())
	}
	if !p.Board().Pieces(board.White, board.Pawn).Has(board.Square(4, 3)) {
		t.Error("white pawn missing from e4")
	}
	if p.Board().Placement() != p.Placement() {
		t.Errorf("board renders %q, engine says %q", p.Board().Placement(), p.Placement())
	}
}

func TestPlayFlankingLine(t *testing.T) {
	p := New()
	play(t, p, "e4", "d6", "d4", "e6", "Bg5", "a5", "Bf6", "a4", "Bb5+", "Nd7", "Bc6", "a3")

	want := "r1bqkbnr/1ppn1ppp/2BppB2/8/3PP3/p7/PPP2PPP/RN1QK1NR"
	if p.Placement() != want {
		t.Fatalf("Placement() = %q, want %q", p.Placement(), want)
	}
	if p.Turn() != board.White {
		t.Errorf("Turn() = %s, want white", p.Turn())
	}
	if p.Ply() != 12 {
		t.Errorf("Ply() = %d, want 12", p.Ply())
	}
	if got := p.Board().Pieces(board.White, board.Bishop).Count(); got != 2 {
		t.Errorf("white bishops = %d, want 2", got)
	}
}

func TestBoardFollowsEngine(t *testing.T) {
	// En passant, promotion with capture, and castling on both wings.
	line := []string{
		"e4", "d5", "e5", "f5", "exf6", "Nc6", "fxg7", "Be6", "gxh8=Q", "Qd6",
		"Nf3", "O-O-O", "Bc4", "Kb8", "O-O",
	}
	p := New()
	for _, san := range line {
		play(t, p, san)
		want, err := board.ParsePlacement(p.Placement())
		if err != nil {
			t.Fatalf("after %s: %v", san, err)
		}
		if *p.Board() != *want {
			t.Fatalf("after %s: bitboards render %q, engine has %q", san, p.Board().Placement(), p.Placement())
		}
		side := strings.Fields(p.FEN())[1]
		if (side == "w") != (p.Turn() == board.White) {
			t.Fatalf("after %s: Turn() = %s, FEN side %q", san, p.Turn(), side)
		}
	}

	want := "rk1r1bnQ/ppp1p2p/2nqb3/3p4/2B5/5N2/PPPP1PPP/RNBQ1RK1"
	if p.Placement() != want {
		t.Errorf("Placement() = %q, want %q", p.Placement(), want)
	}
	if p.Turn() != board.Black {
		t.Errorf("Turn() = %s, want black", p.Turn())
	}
}

func TestPlayIllegal(t *testing.T) {
	p := New()
	for _, san := range []string{"Nf6", "zz9"} {
		err := p.Play(san)
		if !errors.Is(err, ErrIllegalMove) {
			t.Errorf("Play(%q) error = %v, want ErrIllegalMove", san, err)
		}
	}
	if p.Placement() != board.StartPlacement || p.Ply() != 0 {
		t.Errorf("failed Play changed the position: %q ply %d", p.Placement(), p.Ply())
	}
}

func TestReset(t *testing.T) {
	p := New()
	play(t, p, "d4", "d5", "c4")
	p.Reset()
	if p.Placement() != board.StartPlacement {
		t.Errorf("Placement() after Reset = %q", p.Placement())
	}
	if p.Turn() != board.White || p.Ply() != 0 {
		t.Errorf("Reset left turn %s ply %d", p.Turn(), p.Ply())
	}
	if *p.Board() != startBoard {
		t.Error("Reset did not restore the starting bitboards")
	}
	play(t, p, "e4")
}

func TestNormalizeSAN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"e4", "e4"},
		{"Bb5+", "Bb5"},
		{"Qxf7#", "Qxf7"},
		{"Nf3!?", "Nf3"},
		{"e8=Q+", "e8=Q"},
		{"0-0", "O-O"},
		{"0-0-0+", "O-O-O"},
		{"O-O", "O-O"},
	}
	for _, tt := range tests {
		if got := NormalizeSAN(tt.in); got != tt.want {
			t.Errorf("NormalizeSAN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
