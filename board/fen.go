package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/sandgoby/position"
)

// UnmarshalFEN reads the six-field position string into b, whose shape decides the expected dimensions.
// The en passant target is taken as given; an occupied target never yields an en passant capture.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	shape := b.shape
	cells := make([]Piece, shape.Cells())
	kings := [3]position.Square{position.NoSquare, position.NoSquare, position.NoSquare}
	err := position.ScanPlacement(segments[0], shape, func(sq position.Square, symbol byte) error {
		p, ok := PieceFromSymbol(symbol)
		if !ok {
			return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(symbol))
		}
		if !shape.InBounds(sq) {
			return fmt.Errorf("%w: piece outside the board at rank %d file %d", ErrIllegalPosition, sq.Rank, sq.File)
		}
		if p.Kind == KindKing {
			if kings[p.Side] != position.NoSquare {
				return fmt.Errorf("%w: two %s Kings", ErrIllegalPosition, p.Side)
			}
			kings[p.Side] = sq
		}
		cells[shape.Index(sq)] = p
		return nil
	})
	if errors.Is(err, position.ErrInvalidPlacement) {
		return fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	if err != nil {
		return err
	}
	for _, s := range Sides {
		if kings[s] == position.NoSquare {
			return fmt.Errorf("%w: %s King missing", ErrIllegalPosition, s)
		}
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	castleRights := ParseCastleRights(segments[2])

	enPassant := position.NoSquare
	if segments[3] != "-" {
		enPassant, err = shape.ParseSquare(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %w", ErrInvalidFEN, err)
		}
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	if fullMoveClock == 0 {
		return ErrRoundIsZero
	}

	b.cells = cells
	b.kings = kings
	b.turn = turn
	b.castleRights = castleRights
	b.enPassant = enPassant
	b.halfMoveClock = halfMoveClock
	b.fullMoveClock = fullMoveClock
	return nil
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString(position.FormatPlacement(b.shape, func(sq position.Square) byte {
		p, _ := b.Get(sq)
		return p.SymbolFEN()
	}))

	_, _ = builder.WriteString(" " + b.turn.symbolFEN() + " ")
	_, _ = builder.WriteString(b.castleRights.String())
	_ = builder.WriteByte(' ')

	if ep, ok := b.EnPassant(); ok {
		_, _ = builder.WriteString(b.shape.Notation(ep))
	} else {
		_ = builder.WriteByte('-')
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String(), nil
}

func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}
