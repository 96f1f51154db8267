package variant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/position"
)

// Setup reads a two-team position string with roster supplying the roles. Upper-case letters belong to
// team 0, lower-case ones to team 1. The castling and en passant fields are not modelled and are
// ignored.
func Setup(fen string, shape position.Shape, roster Roster) (*Board[Man], error) {
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return nil, fmt.Errorf("%w: incorrect number of segments", board.ErrInvalidFEN)
	}

	placement := make(map[position.Square]Man)
	err := position.ScanPlacement(segments[0], shape, func(sq position.Square, symbol byte) error {
		team := 0
		if symbol >= 'a' && symbol <= 'z' {
			team = 1
		}
		role, ok := roster[symbol&^0x20]
		if !ok {
			return fmt.Errorf("%w: unknown symbol '%s'", board.ErrInvalidFEN, string(symbol))
		}
		placement[sq] = NewMan(role, team, TwoTeams[team])
		return nil
	})
	if errors.Is(err, position.ErrInvalidPlacement) {
		return nil, fmt.Errorf("%w: %v", board.ErrInvalidFEN, err)
	}
	if err != nil {
		return nil, err
	}

	var current int
	switch segments[1] {
	case "w":
		current = 0
	case "b":
		current = 1
	default:
		return nil, fmt.Errorf("%w: invalid turn", board.ErrInvalidFEN)
	}

	halfMoves, err := strconv.ParseUint(segments[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid half move clock", board.ErrInvalidFEN)
	}
	round, err := strconv.ParseUint(segments[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid full move clock", board.ErrInvalidFEN)
	}

	return Assemble(shape, len(TwoTeams), placement, current, round, halfMoves)
}

// Format writes a two-team board back as a position string with empty castling and en passant fields.
func Format(b *Board[Man]) string {
	placement := position.FormatPlacement(b.shape, func(sq position.Square) byte {
		if m, ok := b.Get(sq); ok {
			return m.Symbol()
		}
		return 0
	})
	turn := "w"
	if b.current == 1 {
		turn = "b"
	}
	return fmt.Sprintf("%s %s - - %d %d", placement, turn, b.halfMoves, b.round)
}
