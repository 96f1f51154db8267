package variant

import (
	"fmt"

	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/position"
)

type cell[P any] struct {
	piece P
	ok    bool
}

// Board is a position of an N-team game on an arbitrary shape.
type Board[P Piece[P]] struct {
	shape position.Shape
	teams int

	// grid data
	cells []cell[P]

	// meta
	current   int
	halfMoves uint64
	round     uint64

	// cache, derived from cells
	kings []position.Square
}

// Assemble builds a board for teams teams, each of which must own exactly one king.
func Assemble[P Piece[P]](shape position.Shape, teams int, placement map[position.Square]P, current int, round, halfMoves uint64) (*Board[P], error) {
	if teams < 1 {
		return nil, fmt.Errorf("%w: %d teams", board.ErrNotEnoughKings, teams)
	}
	if current < 0 || current >= teams {
		return nil, fmt.Errorf("%w: team %d to move out of %d", board.ErrIllegalPosition, current, teams)
	}
	if round == 0 {
		return nil, board.ErrRoundIsZero
	}

	b := &Board[P]{
		shape:     shape,
		teams:     teams,
		cells:     make([]cell[P], shape.Cells()),
		current:   current,
		halfMoves: halfMoves,
		round:     round,
		kings:     make([]position.Square, teams),
	}
	for i := range b.kings {
		b.kings[i] = position.NoSquare
	}
	for sq, p := range placement {
		if !shape.InBounds(sq) {
			return nil, fmt.Errorf("%w: piece outside the board at rank %d file %d", board.ErrIllegalPosition, sq.Rank, sq.File)
		}
		if p.Team() < 0 || p.Team() >= teams {
			return nil, fmt.Errorf("%w: unknown team %d", board.ErrIllegalPosition, p.Team())
		}
		if p.IsKing() {
			if b.kings[p.Team()] != position.NoSquare {
				return nil, fmt.Errorf("%w: two kings for team %d", board.ErrIllegalPosition, p.Team())
			}
			b.kings[p.Team()] = sq
		}
		b.cells[shape.Index(sq)] = cell[P]{piece: p, ok: true}
	}
	for team, sq := range b.kings {
		if sq == position.NoSquare {
			return nil, fmt.Errorf("%w: team %d has no king", board.ErrNotEnoughKings, team)
		}
	}
	return b, nil
}

func (b *Board[P]) Shape() position.Shape {
	return b.shape
}

func (b *Board[P]) Teams() int {
	return b.teams
}

// Current is the team to move.
func (b *Board[P]) Current() int {
	return b.current
}

func (b *Board[P]) Round() uint64 {
	return b.round
}

func (b *Board[P]) HalfMoves() uint64 {
	return b.halfMoves
}

// Get returns the piece on sq, false when sq is empty or out of bounds.
func (b *Board[P]) Get(sq position.Square) (P, bool) {
	if !b.shape.InBounds(sq) {
		var none P
		return none, false
	}
	c := b.cells[b.shape.Index(sq)]
	return c.piece, c.ok
}

// Insert places p on sq, replacing any occupant. Placing a king re-synchronizes the king cache.
func (b *Board[P]) Insert(sq position.Square, p P) error {
	if !b.shape.InBounds(sq) {
		return fmt.Errorf("%w: %+v", board.ErrOutOfBounds, sq)
	}
	if p.Team() < 0 || p.Team() >= b.teams {
		return fmt.Errorf("%w: unknown team %d", board.ErrIllegalPosition, p.Team())
	}
	b.cells[b.shape.Index(sq)] = cell[P]{piece: p, ok: true}
	if p.IsKing() {
		b.kings[p.Team()] = sq
	}
	return nil
}

func (b *Board[P]) Remove(sq position.Square) error {
	if !b.shape.InBounds(sq) {
		return fmt.Errorf("%w: %+v", board.ErrOutOfBounds, sq)
	}
	b.cells[b.shape.Index(sq)] = cell[P]{}
	return nil
}

// King returns the cached square of the team's king.
func (b *Board[P]) King(team int) position.Square {
	if team < 0 || team >= b.teams {
		return position.NoSquare
	}
	return b.kings[team]
}

// SetKing points the cache at sq, which must hold the team's king.
func (b *Board[P]) SetKing(team int, sq position.Square) error {
	p, ok := b.Get(sq)
	if !ok || !p.IsKing() || p.Team() != team {
		return fmt.Errorf("%w: no king of team %d on %s", board.ErrKingCacheMismatch, team, b.shape.Notation(sq))
	}
	b.kings[team] = sq
	return nil
}

func (b *Board[P]) Clone() *Board[P] {
	bb := *b
	bb.cells = make([]cell[P], len(b.cells))
	copy(bb.cells, b.cells)
	bb.kings = make([]position.Square, len(b.kings))
	copy(bb.kings, b.kings)
	return &bb
}
