package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/daystram/sandgoby/position"
)

func TestMutation(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	e1, e2, d4 := mustSquare(t, "e1"), mustSquare(t, "e2"), mustSquare(t, "d4")

	if err := b.Insert(d4, NewPiece(SideBlack, KindQueen)); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if p, ok := b.Get(d4); !ok || p != NewPiece(SideBlack, KindQueen) {
		t.Errorf("unexpected piece: got=%v", p)
	}
	if err := b.Remove(d4); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, ok := b.Get(d4); ok {
		t.Error("expected d4 empty")
	}

	// moving the king through Remove and Insert keeps the cache in sync
	king, _ := b.Get(e1)
	_ = b.Remove(e1)
	if err := b.Insert(e2, king); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := b.King(SideWhite); got != e2 {
		t.Errorf("unexpected king: got=%s want=%s", got, e2)
	}

	if err := b.SetKing(SideWhite, e1); !errors.Is(err, ErrKingCacheMismatch) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrKingCacheMismatch)
	}
	if err := b.SetKing(SideBlack, e2); !errors.Is(err, ErrKingCacheMismatch) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrKingCacheMismatch)
	}
	if err := b.SetKing(SideWhite, e2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := b.Insert(position.Square{Rank: -1, File: 0}, king); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrOutOfBounds)
	}
	if err := b.Remove(position.Square{Rank: 0, File: 8}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrOutOfBounds)
	}
	if err := b.Insert(d4, Piece{}); !errors.Is(err, ErrEmptySquare) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrEmptySquare)
	}
	if got := b.King(SideUnknown); got != position.NoSquare {
		t.Errorf("unexpected king: got=%+v", got)
	}
}

func TestMetadata(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)

	if err := b.SetRound(0); !errors.Is(err, ErrRoundIsZero) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrRoundIsZero)
	}
	if err := b.SetRound(7); err != nil || b.Round() != 7 {
		t.Errorf("unexpected round: got=%d err=%v", b.Round(), err)
	}
	if err := b.SetEnPassant(mustSquare(t, "e3")); err != nil {
		t.Fatal("unexpected error:", err)
	}
	b.SetTurn(SideBlack)
	b.SetHalfMoveClock(3)
	rights := b.CastleRights()
	rights.Set(CastleDirectionWhiteLeft, false)
	b.SetCastleRights(rights)

	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b Kkq e3 3 7"
	if got := b.FEN(); got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}

	b.ClearEnPassant()
	if _, ok := b.EnPassant(); ok {
		t.Error("unexpected enpassant target")
	}
	if err := b.SetEnPassant(position.NoSquare); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrOutOfBounds)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	bb := b.Clone()
	_ = bb.Remove(mustSquare(t, "e2"))
	bb.SetTurn(SideBlack)
	if b.FEN() != DefaultStartingPositionFEN {
		t.Errorf("unexpected FEN after clone mutation: got=%s", b.FEN())
	}
	if bb.FEN() == DefaultStartingPositionFEN {
		t.Error("expected clone to diverge")
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	dump := b.Dump()
	if !strings.Contains(dump, " 8 | r | n | b | q | k | b | n | r |") {
		t.Errorf("unexpected dump:\n%s", dump)
	}
	if draw := b.Draw(); !strings.Contains(draw, "♔") {
		t.Errorf("unexpected draw:\n%s", draw)
	}
	if !strings.Contains(b.DebugString(), "king: e1 e8") {
		t.Errorf("unexpected debug string:\n%s", b.DebugString())
	}
}

func TestCastleRights(t *testing.T) {
	t.Parallel()
	tests := []struct {
		field string
		want  string
	}{
		{field: "-", want: "-"},
		{field: "KQkq", want: "KQkq"},
		{field: "qkQK", want: "KQkq"},
		{field: "k", want: "k"},
		{field: "", want: "-"},
		{field: "KK", want: "K"},
		{field: "KKQ", want: "KQ"},
		{field: "KQkqx", want: "KQkq"},
		{field: "-K", want: "K"},
		{field: "xyz", want: "-"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.field, func(t *testing.T) {
			t.Parallel()
			if got := ParseCastleRights(tt.field); got.String() != tt.want {
				t.Errorf("unexpected rights: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestPieceSymbols(t *testing.T) {
	t.Parallel()
	for _, sym := range []byte("PNBRQKpnbrqk") {
		p, ok := PieceFromSymbol(sym)
		if !ok {
			t.Fatalf("unexpected unknown symbol: %c", sym)
		}
		if got := p.SymbolFEN(); got != sym {
			t.Errorf("unexpected symbol: got=%c want=%c", got, sym)
		}
	}
	for _, sym := range []byte("xX1/ ") {
		if _, ok := PieceFromSymbol(sym); ok {
			t.Errorf("unexpected piece for symbol %q", sym)
		}
	}
}
