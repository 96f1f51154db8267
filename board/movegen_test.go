package board

import (
	"errors"
	"sort"
	"testing"

	"github.com/daystram/sandgoby/position"
)

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := NewBoard(WithFEN(fen))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return b
}

func mustSquare(t *testing.T, n string) position.Square {
	t.Helper()
	sq, err := position.NewSquareFromNotation(n)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return sq
}

func destinations(mvs []PossibleMove) []string {
	var dst []string
	for _, mv := range mvs {
		dst = append(dst, mv.To.Notation())
	}
	sort.Strings(dst)
	return dst
}

func findMove(mvs []PossibleMove, to position.Square) (PossibleMove, bool) {
	for _, mv := range mvs {
		if mv.To == to {
			return mv, true
		}
	}
	return PossibleMove{}, false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCountMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{name: "starting position", fen: DefaultStartingPositionFEN, want: 20},
		{name: "black reply", fen: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", want: 20},
		{name: "kiwipete", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", want: 48},
		{name: "rook endgame", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", want: 14},
		{name: "checkmated", fen: "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", want: 0},
		{name: "stalemated", fen: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			if got := b.CountMoves(); got != tt.want {
				t.Errorf("unexpected moves: got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestMovesFrom(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "knight",
			fen:  "7k/8/2N5/8/8/8/8/7K w - - 1 1",
			from: "c6",
			want: []string{"a5", "a7", "b4", "b8", "d4", "d8", "e5", "e7"},
		},
		{
			name: "bishop capture and own blocker",
			fen:  "7k/1p1P4/2B5/8/8/8/8/7K w - - 1 1",
			from: "c6",
			want: []string{"a4", "b5", "b7", "d5", "e4", "f3", "g2"},
		},
		{
			name: "pawn enpassant advance and capture",
			fen:  "7k/8/4p3/2pP4/8/8/8/7K w - c6 1 1",
			from: "d5",
			want: []string{"c6", "d6", "e6"},
		},
		{
			name: "pawn without captures",
			fen:  "7k/8/8/2pP4/8/8/8/7K w - - 1 1",
			from: "d5",
			want: []string{"d6"},
		},
		{
			name: "pawn double step",
			fen:  DefaultStartingPositionFEN,
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "black pawn double step",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			from: "d7",
			want: []string{"d5", "d6"},
		},
		{
			name: "pawn double step blocked",
			fen:  "7k/8/8/8/4p3/8/4P3/7K w - - 1 1",
			from: "e2",
			want: []string{"e3"},
		},
		{
			name: "rook",
			fen:  "7k/8/8/8/8/8/1p6/R6K w - - 1 1",
			from: "a1",
			want: []string{"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1", "d1", "e1", "f1", "g1"},
		},
		{
			name: "queen in corner",
			fen:  "7k/8/8/8/8/8/PP6/QK6 w - - 1 1",
			from: "a1",
			want: nil,
		},
		{
			name: "king avoids attacked squares",
			fen:  "7k/8/8/8/8/8/r7/4K3 w - - 1 1",
			from: "e1",
			want: []string{"d1", "f1"},
		},
		{
			name: "king cannot capture protected piece",
			fen:  "7k/8/8/8/8/8/4q2r/4K3 w - - 1 1",
			from: "e1",
			want: nil,
		},
		{
			name: "interposition is legal",
			fen:  "4k3/4r3/8/8/8/8/3B4/4K3 w - - 0 1",
			from: "d2",
			want: []string{"e3"},
		},
		{
			name: "pinned knight",
			fen:  "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			from: "e2",
			want: nil,
		},
		{
			name: "pinned rook slides along the pin",
			fen:  "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e3", "e4", "e5", "e6", "e7"},
		},
		{
			name: "enpassant exposing the king",
			fen:  "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
			from: "e5",
			want: []string{"e6"},
		},
		{
			name: "capture of the checking piece",
			fen:  "4k3/8/8/8/8/8/3q4/2B1K3 w - - 0 1",
			from: "c1",
			want: []string{"d2"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			mvs, err := b.MovesFrom(mustSquare(t, tt.from))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := destinations(mvs); !equalStrings(got, tt.want) {
				t.Errorf("unexpected destinations: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestMoveFlags(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, "7k/P7/8/8/8/8/8/7K w - - 1 1")
	mvs, err := b.MovesFrom(mustSquare(t, "a7"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	mv, ok := findMove(mvs, mustSquare(t, "a8"))
	if !ok || !mv.IsPromote {
		t.Errorf("unexpected promotion: got=%+v found=%v", mv, ok)
	}

	b = mustBoard(t, "7k/8/4p3/2pP4/8/8/8/7K w - c6 1 1")
	mvs, _ = b.MovesFrom(mustSquare(t, "d5"))
	if mv, _ := findMove(mvs, mustSquare(t, "c6")); !mv.IsEnPassant || !mv.IsCapture {
		t.Errorf("unexpected enpassant flags: got=%+v", mv)
	}
	if mv, _ := findMove(mvs, mustSquare(t, "e6")); mv.IsEnPassant || !mv.IsCapture {
		t.Errorf("unexpected capture flags: got=%+v", mv)
	}
	if mv, _ := findMove(mvs, mustSquare(t, "d6")); mv.IsCapture || mv.IsPromote {
		t.Errorf("unexpected advance flags: got=%+v", mv)
	}

	b = mustBoard(t, "4k3/8/8/8/8/8/8/4K3 b - - 1 1")
	mvs, _ = b.MovesFrom(mustSquare(t, "e8"))
	for _, mv := range mvs {
		if mv.IsPromote || mv.IsCapture {
			t.Errorf("unexpected king flags: got=%+v", mv)
		}
	}

	b = mustBoard(t, "4k3/8/8/8/8/8/p7/4K3 b - - 1 1")
	mvs, _ = b.MovesFrom(mustSquare(t, "a2"))
	if mv, ok := findMove(mvs, mustSquare(t, "a1")); !ok || !mv.IsPromote {
		t.Errorf("unexpected black promotion: got=%+v found=%v", mv, ok)
	}
}

func TestCastling(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		from string
		want []CastleDirection
	}{
		{
			name: "both sides",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from: "e1",
			want: []CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft},
		},
		{
			name: "black both sides",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			from: "e8",
			want: []CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft},
		},
		{
			name: "rights lost",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Qk - 0 1",
			from: "e1",
			want: []CastleDirection{CastleDirectionWhiteLeft},
		},
		{
			name: "crossing attacked square",
			fen:  "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1",
			from: "e1",
			want: []CastleDirection{CastleDirectionWhiteLeft},
		},
		{
			name: "landing on attacked square",
			fen:  "4k3/8/8/8/8/8/2r5/R3K2R w KQ - 0 1",
			from: "e1",
			want: []CastleDirection{CastleDirectionWhiteRight},
		},
		{
			name: "attacked rook square does not matter",
			fen:  "4k3/8/8/8/8/8/1r6/R3K2R w KQ - 0 1",
			from: "e1",
			want: []CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft},
		},
		{
			name: "in check",
			fen:  "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1",
			from: "e1",
			want: nil,
		},
		{
			name: "blocked",
			fen:  "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1",
			from: "e1",
			want: nil,
		},
		{
			name: "rook missing",
			fen:  "4k3/8/8/8/8/8/8/4K2R w KQ - 0 1",
			from: "e1",
			want: []CastleDirection{CastleDirectionWhiteRight},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			mvs, err := b.MovesFrom(mustSquare(t, tt.from))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			var got []CastleDirection
			for _, mv := range mvs {
				if mv.Castle == CastleDirectionUnknown {
					continue
				}
				got = append(got, mv.Castle)
				wantRookFrom, wantTo, wantRookTo := "h", "g", "f"
				if !mv.Castle.IsRight() {
					wantRookFrom, wantTo, wantRookTo = "a", "c", "d"
				}
				rank := tt.from[1:]
				if mv.To.Notation() != wantTo+rank || mv.RookFrom.Notation() != wantRookFrom+rank || mv.RookTo.Notation() != wantRookTo+rank {
					t.Errorf("unexpected castle squares: got=%s %s->%s", mv, mv.RookFrom, mv.RookTo)
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("unexpected castles: got=%v want=%v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("unexpected castle: got=%v want=%v", got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPossibleMoves(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	mvs := b.PossibleMoves()
	// 8 pawns and 2 knights
	if len(mvs) != 10 {
		t.Errorf("unexpected origins: got=%d want=%d", len(mvs), 10)
	}
	if _, ok := mvs[mustSquare(t, "a1")]; ok {
		t.Error("unexpected origin without moves: a1")
	}
	if got := destinations(mvs[mustSquare(t, "g1")]); !equalStrings(got, []string{"f3", "h3"}) {
		t.Errorf("unexpected destinations: got=%v", got)
	}

	// pinned pieces are left out
	b = mustBoard(t, "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	if _, ok := b.PossibleMoves()[mustSquare(t, "e2")]; ok {
		t.Error("unexpected origin: pinned e2")
	}

	// repeated queries on an unchanged board agree
	fen := b.FEN()
	first, second := b.CountMoves(), b.CountMoves()
	if first != second || b.FEN() != fen {
		t.Errorf("unexpected mutation: got=%d,%d fen=%s", first, second, b.FEN())
	}
}

func TestMovesFromErrors(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	if _, err := b.MovesFrom(mustSquare(t, "e4")); !errors.Is(err, ErrEmptySquare) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrEmptySquare)
	}
	if _, err := b.PseudoMovesFrom(position.Square{Rank: 8, File: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrOutOfBounds)
	}
}

func TestPseudoMovesFrom(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	pseudo, err := b.PseudoMovesFrom(mustSquare(t, "e2"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(pseudo) != 6 {
		t.Errorf("unexpected pseudo moves: got=%v", destinations(pseudo))
	}
	for _, mv := range pseudo {
		if b.IsLegal(mv) {
			t.Errorf("unexpected legal move: %s", mv)
		}
	}
}

func TestVariantShapeMoves(t *testing.T) {
	t.Parallel()
	wide, _ := position.NewShape(10, 6)
	b, err := NewBoard(WithFEN("k9/10/10/10/P9/9K w - - 0 1"), WithShape(wide))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	mvs, err := b.MovesFrom(position.Square{Rank: 4, File: 0})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(mvs) != 2 {
		t.Errorf("unexpected pawn moves: got=%+v", mvs)
	}

	// rook rays stop at a hole in the board
	holed, _ := position.NewShape(8, 8, position.WithCells(func(sq position.Square) bool {
		return sq != position.Square{Rank: 7, File: 3}
	}))
	b, err = NewBoard(WithFEN("7k/8/8/8/8/8/8/R6K w - - 0 1"), WithShape(holed))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	mvs, _ = b.MovesFrom(position.Square{Rank: 7, File: 0})
	if got := len(mvs); got != 9 {
		t.Errorf("unexpected rook moves: got=%d want=%d", got, 9)
	}
}
