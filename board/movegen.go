package board

import (
	"fmt"

	"github.com/daystram/sandgoby/position"
)

// PossibleMoves maps every square holding a piece of the side to move to its legal moves.
// Squares without legal moves are omitted.
func (b *Board) PossibleMoves() map[position.Square][]PossibleMove {
	mvs := make(map[position.Square][]PossibleMove)
	for i, p := range b.cells {
		if p.IsEmpty() || p.Side != b.turn {
			continue
		}
		from := b.shape.SquareAt(i)
		legal := b.legalMovesFrom(from, p)
		if len(legal) == 0 {
			continue
		}
		mvs[from] = legal
	}
	return mvs
}

// CountMoves returns the number of legal moves of the side to move.
func (b *Board) CountMoves() int {
	var n int
	for _, mvs := range b.PossibleMoves() {
		n += len(mvs)
	}
	return n
}

// MovesFrom returns the legal moves of the piece on sq.
func (b *Board) MovesFrom(sq position.Square) ([]PossibleMove, error) {
	p, err := b.occupant(sq)
	if err != nil {
		return nil, err
	}
	return b.legalMovesFrom(sq, p), nil
}

// PseudoMovesFrom returns the moves the piece on sq can physically make, whether or not they
// leave its own King attacked.
func (b *Board) PseudoMovesFrom(sq position.Square) ([]PossibleMove, error) {
	p, err := b.occupant(sq)
	if err != nil {
		return nil, err
	}
	return b.genPseudoMoves(sq, p), nil
}

// IsLegal reports whether mv, made by the piece on mv.From, keeps its own King safe.
func (b *Board) IsLegal(mv PossibleMove) bool {
	p, ok := b.Get(mv.From)
	if !ok {
		return false
	}
	kingPos := b.kings[p.Side]
	if p.Kind == KindKing {
		kingPos = mv.To
	}
	return !isThreatened(b.after(p, mv), kingPos, p.Side)
}

func (b *Board) occupant(sq position.Square) (Piece, error) {
	if !b.shape.InBounds(sq) {
		return Piece{}, fmt.Errorf("%w: %+v", ErrOutOfBounds, sq)
	}
	p, ok := b.Get(sq)
	if !ok {
		return Piece{}, fmt.Errorf("%w: %s", ErrEmptySquare, b.shape.Notation(sq))
	}
	return p, nil
}

func (b *Board) legalMovesFrom(from position.Square, p Piece) []PossibleMove {
	pseudo := b.genPseudoMoves(from, p)
	legal := pseudo[:0]
	for _, mv := range pseudo {
		if b.IsLegal(mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// genPseudoMoves generates the moves of p standing on from.
// This generate function is not strictly legal (e.g., king may be left in check).
func (b *Board) genPseudoMoves(from position.Square, p Piece) []PossibleMove {
	switch p.Kind {
	case KindPawn:
		return b.genPawnMoves(from, p.Side)
	case KindBishop:
		return b.genRays(from, p.Side, diagonalDirs[:])
	case KindKnight:
		return b.genKnightMoves(from, p.Side)
	case KindRook:
		return b.genRays(from, p.Side, lateralDirs[:])
	case KindQueen:
		return b.genRays(from, p.Side, allDirs[:])
	case KindKing:
		return append(b.genKingSteps(from, p.Side), b.genCastleMoves(from, p.Side)...)
	default:
		return nil
	}
}

// target reports whether a piece of side s may land on sq, and whether it captures there.
func (b *Board) target(sq position.Square, s Side) (ok, capture bool) {
	if !b.shape.InBounds(sq) {
		return false, false
	}
	other, occupied := b.Get(sq)
	if !occupied {
		return true, false
	}
	return other.Side != s, other.Side != s
}

func (b *Board) genRays(from position.Square, s Side, dirs []position.Direction) []PossibleMove {
	var mvs []PossibleMove
	for _, d := range dirs {
		for to := from.Step(d, 1); ; to = to.Step(d, 1) {
			ok, capture := b.target(to, s)
			if !ok {
				break
			}
			mvs = append(mvs, PossibleMove{From: from, To: to, IsCapture: capture})
			if capture {
				break
			}
		}
	}
	return mvs
}

func (b *Board) genKnightMoves(from position.Square, s Side) []PossibleMove {
	var mvs []PossibleMove
	fwd := s.Forwards()
	for _, o := range knightOffsets {
		to := from.Offset(fwd, fwd.Sideways(), o[0], o[1])
		if ok, capture := b.target(to, s); ok {
			mvs = append(mvs, PossibleMove{From: from, To: to, IsCapture: capture})
		}
	}
	return mvs
}

func (b *Board) genKingSteps(from position.Square, s Side) []PossibleMove {
	var mvs []PossibleMove
	for _, d := range allDirs {
		to := from.Step(d, 1)
		if ok, capture := b.target(to, s); ok {
			mvs = append(mvs, PossibleMove{From: from, To: to, IsCapture: capture})
		}
	}
	return mvs
}

func (b *Board) genPawnMoves(from position.Square, s Side) []PossibleMove {
	var mvs []PossibleMove
	fwd := s.Forwards()
	promotes := func(to position.Square) bool {
		return !b.shape.InBounds(to.Forwards(fwd, 1))
	}

	one := from.Forwards(fwd, 1)
	if _, occupied := b.Get(one); b.shape.InBounds(one) && !occupied {
		mvs = append(mvs, PossibleMove{From: from, To: one, IsPromote: promotes(one)})

		two := from.Forwards(fwd, 2)
		if _, occupied := b.Get(two); from.Rank == s.PawnRank(b.shape) && b.shape.InBounds(two) && !occupied {
			mvs = append(mvs, PossibleMove{From: from, To: two, IsPromote: promotes(two), IsDoubleStep: true})
		}
	}

	enPassant, hasEnPassant := b.EnPassant()
	for _, side := range [2]int8{-1, 1} {
		to := one.Sideways(side)
		if !b.shape.InBounds(to) {
			continue
		}
		if other, occupied := b.Get(to); occupied && other.Side != s {
			mvs = append(mvs, PossibleMove{From: from, To: to, IsPromote: promotes(to), IsCapture: true})
		} else if !occupied && hasEnPassant && to == enPassant {
			mvs = append(mvs, PossibleMove{From: from, To: to, IsCapture: true, IsEnPassant: true})
		}
	}
	return mvs
}

// genCastleMoves generates castling for the King on from. The King must stand on its back rank with an
// own Rook in the corner, nothing in between, and must neither start on nor cross an attacked square.
func (b *Board) genCastleMoves(from position.Square, s Side) []PossibleMove {
	if !b.castleRights.IsSideAllowed(s) || from.Rank != s.BackRank(b.shape) || b.IsThreatened(from, s) {
		return nil
	}
	var mvs []PossibleMove
castleLoop:
	for _, d := range CastleDirectionsOf(s) {
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		step := d.FileStep()
		rookFrom := d.RookSquare(b.shape)
		if position.Sign(rookFrom.File-from.File) != step || (rookFrom.File-from.File)*step < 3 {
			continue
		}
		if rook, ok := b.Get(rookFrom); !ok || rook != NewPiece(s, KindRook) {
			continue
		}
		for sq := from.Sideways(step); sq != rookFrom; sq = sq.Sideways(step) {
			if _, occupied := b.Get(sq); occupied || !b.shape.InBounds(sq) {
				continue castleLoop
			}
		}
		kingTo := from.Sideways(2 * step)
		if b.IsThreatened(from.Sideways(step), s) || b.IsThreatened(kingTo, s) {
			continue
		}
		mvs = append(mvs, PossibleMove{
			From:     from,
			To:       kingTo,
			Castle:   d,
			RookFrom: rookFrom,
			RookTo:   from.Sideways(step),
		})
	}
	return mvs
}
