package game

import (
	"fmt"

	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/position"
)

// FindMove resolves coordinate notation such as e2e4 or e7e8q to a legal move of the side to move.
// Ranks may have more than one digit on tall boards, e.g. a10a11.
func FindMove(b *board.Board, uci string) (board.PossibleMove, board.Kind, error) {
	from, to, promote, err := parseUCI(b.Shape(), uci)
	if err != nil {
		return board.PossibleMove{}, board.KindUnknown, err
	}
	p, ok := b.Get(from)
	if !ok || p.Side != b.Turn() {
		return board.PossibleMove{}, board.KindUnknown, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
	}
	mvs, err := b.MovesFrom(from)
	if err != nil {
		return board.PossibleMove{}, board.KindUnknown, fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	for _, mv := range mvs {
		if mv.To != to {
			continue
		}
		promote, err := promotionOf(b.Shape(), mv, promote)
		if err != nil {
			return board.PossibleMove{}, board.KindUnknown, err
		}
		return mv, promote, nil
	}
	return board.PossibleMove{}, board.KindUnknown, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
}

// Play looks the move up with FindMove and applies it.
func Play(b *board.Board, uci string) (board.Move, error) {
	mv, promote, err := FindMove(b, uci)
	if err != nil {
		return board.Move{}, err
	}
	return Apply(b, mv, promote)
}

func parseUCI(shape position.Shape, uci string) (from, to position.Square, promote board.Kind, err error) {
	split := func(n string) (string, string) {
		i := 1
		for i < len(n) && n[i] >= '0' && n[i] <= '9' {
			i++
		}
		return n[:i], n[i:]
	}
	if uci == "" {
		return position.NoSquare, position.NoSquare, board.KindUnknown, fmt.Errorf("%w: empty move", ErrIllegalMove)
	}
	fromN, rest := split(uci)
	if rest == "" {
		return position.NoSquare, position.NoSquare, board.KindUnknown, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
	}
	toN, rest := split(rest)
	if from, err = shape.ParseSquare(fromN); err != nil {
		return position.NoSquare, position.NoSquare, board.KindUnknown, fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	if to, err = shape.ParseSquare(toN); err != nil {
		return position.NoSquare, position.NoSquare, board.KindUnknown, fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	switch len(rest) {
	case 0:
	case 1:
		if promote = board.KindFromSymbol(rest[0]); promote == board.KindUnknown {
			return position.NoSquare, position.NoSquare, board.KindUnknown, fmt.Errorf("%w: unknown piece '%s'", ErrInvalidPromotion, rest)
		}
	default:
		return position.NoSquare, position.NoSquare, board.KindUnknown, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
	}
	return from, to, promote, nil
}
