package game

import (
	"errors"
	"fmt"

	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/position"
)

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidPromotion = errors.New("invalid promotion")
)

// Apply plays mv, as produced by move generation on b, and passes the turn. promote selects the piece a
// promoting pawn becomes; KindUnknown promotes to a Queen. mv is not checked for legality, but b is left
// untouched when mv does not fit the placement.
func Apply(b *board.Board, mv board.PossibleMove, promote board.Kind) (board.Move, error) {
	shape := b.Shape()
	if !shape.InBounds(mv.From) || !shape.InBounds(mv.To) {
		return board.Move{}, fmt.Errorf("%w: %s out of bounds", ErrIllegalMove, mv.Notation(shape))
	}
	p, ok := b.Get(mv.From)
	if !ok || p.Side != b.Turn() {
		return board.Move{}, fmt.Errorf("%w: no %s piece on %s", ErrIllegalMove, b.Turn(), shape.Notation(mv.From))
	}
	promote, err := promotionOf(shape, mv, promote)
	if err != nil {
		return board.Move{}, err
	}
	if mv.Castle != board.CastleDirectionUnknown {
		if rook, ok := b.Get(mv.RookFrom); !ok || rook != board.NewPiece(p.Side, board.KindRook) || !shape.InBounds(mv.RookTo) {
			return board.Move{}, fmt.Errorf("%w: no %s Rook to castle with on %s", ErrIllegalMove, p.Side, shape.Notation(mv.RookFrom))
		}
	}

	move := board.Move{
		From:      mv.From,
		To:        mv.To,
		Piece:     p,
		Kind:      board.MoveRegular,
		RookFrom:  position.NoSquare,
		RookTo:    position.NoSquare,
		IsCapture: mv.IsCapture,
		Shape:     shape,
	}
	if err := b.Remove(mv.From); err != nil {
		return board.Move{}, err
	}

	placed := p
	switch {
	case mv.IsEnPassant:
		move.Kind = board.MoveEnPassant
		if err := b.Remove(position.Square{Rank: mv.From.Rank, File: mv.To.File}); err != nil {
			return board.Move{}, err
		}
	case mv.Castle != board.CastleDirectionUnknown:
		move.Kind = board.MoveCastle
		move.RookFrom, move.RookTo = mv.RookFrom, mv.RookTo
		rook, _ := b.Get(mv.RookFrom)
		if err := b.Remove(mv.RookFrom); err != nil {
			return board.Move{}, err
		}
		if err := b.Insert(mv.RookTo, rook); err != nil {
			return board.Move{}, err
		}
	case mv.IsPromote:
		move.Kind = board.MovePromotion
		move.Promote = promote
		placed = board.NewPiece(p.Side, promote)
	}
	// captured piece, if any, is overwritten
	if err := b.Insert(mv.To, placed); err != nil {
		return board.Move{}, err
	}

	// update enPassant
	b.ClearEnPassant()
	if mv.IsDoubleStep {
		if err := b.SetEnPassant(mv.From.Forwards(p.Side.Forwards(), 1)); err != nil {
			return board.Move{}, err
		}
	}

	// update castleRights
	rights := b.CastleRights()
	if p.Kind == board.KindKing {
		for _, d := range board.CastleDirectionsOf(p.Side) {
			rights.Set(d, false)
		}
	}
	for _, s := range board.Sides {
		for _, d := range board.CastleDirectionsOf(s) {
			if corner := d.RookSquare(shape); corner == mv.From || corner == mv.To {
				rights.Set(d, false)
			}
		}
	}
	b.SetCastleRights(rights)

	// update half move clock
	if p.Kind == board.KindPawn || mv.IsCapture {
		b.SetHalfMoveClock(0)
	} else {
		b.SetHalfMoveClock(b.HalfMoveClock() + 1)
	}

	// update full move clock
	if p.Side == board.SideBlack {
		_ = b.SetRound(b.Round() + 1)
	}

	b.SetTurn(p.Side.Opposite())

	move.IsCheck = b.InCheck(b.Turn())
	move.IsCheckmate = move.IsCheck && !hasLegalMove(b)
	return move, nil
}

func promotionOf(shape position.Shape, mv board.PossibleMove, promote board.Kind) (board.Kind, error) {
	if !mv.IsPromote {
		if promote != board.KindUnknown {
			return board.KindUnknown, fmt.Errorf("%w: %s does not promote", ErrInvalidPromotion, mv.Notation(shape))
		}
		return board.KindUnknown, nil
	}
	if promote == board.KindUnknown {
		return board.KindQueen, nil
	}
	for _, k := range board.PromoteCandidates {
		if k == promote {
			return k, nil
		}
	}
	return board.KindUnknown, fmt.Errorf("%w: cannot promote to %s", ErrInvalidPromotion, promote)
}
