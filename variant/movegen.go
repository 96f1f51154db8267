package variant

import (
	"errors"
	"fmt"

	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/position"
)

var (
	ErrIllegalStep = errors.New("illegal step")
)

// IsThreatened reports whether sq is attacked by a piece that may capture there. An occupied square is
// attacked by pieces that can capture its occupant, an empty one by any piece outside team.
func (b *Board[P]) IsThreatened(sq position.Square, team int) bool {
	victim, occupied := b.Get(sq)
	for i, c := range b.cells {
		if !c.ok {
			continue
		}
		if occupied && !c.piece.CanCapture(victim) || !occupied && c.piece.Team() == team {
			continue
		}
		for _, at := range c.piece.Attacks(b, b.shape.SquareAt(i)) {
			if at == sq {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether the team's king is attacked.
func (b *Board[P]) InCheck(team int) bool {
	return b.IsThreatened(b.King(team), team)
}

// PossibleSteps maps every square holding a piece of the team to move to its legal steps.
// Squares without legal steps are omitted.
func (b *Board[P]) PossibleSteps() map[position.Square][]Step {
	steps := make(map[position.Square][]Step)
	for i, c := range b.cells {
		if !c.ok || c.piece.Team() != b.current {
			continue
		}
		from := b.shape.SquareAt(i)
		legal := b.legalSteps(from, c.piece)
		if len(legal) == 0 {
			continue
		}
		steps[from] = legal
	}
	return steps
}

// LegalSteps returns the steps of the piece on from that keep its king safe.
func (b *Board[P]) LegalSteps(from position.Square) ([]Step, error) {
	if !b.shape.InBounds(from) {
		return nil, fmt.Errorf("%w: %+v", board.ErrOutOfBounds, from)
	}
	p, ok := b.Get(from)
	if !ok {
		return nil, fmt.Errorf("%w: %s", board.ErrEmptySquare, b.shape.Notation(from))
	}
	return b.legalSteps(from, p), nil
}

// legalSteps drops steps that leave the mover's king attacked. Kings are never captured, so with more
// than two teams a king exposed by a third team's move stays on the board.
func (b *Board[P]) legalSteps(from position.Square, p P) []Step {
	pseudo := p.Steps(b, from)
	legal := pseudo[:0]
	for _, s := range pseudo {
		if target, ok := b.Get(s.To); ok && target.IsKing() {
			continue
		}
		if b.isSafe(p, s) {
			legal = append(legal, s)
		}
	}
	return legal
}

// isSafe plays s on a copy of the grid and tests the mover's king there.
func (b *Board[P]) isSafe(p P, s Step) bool {
	bb := b.Clone()
	if err := bb.move(p, s); err != nil {
		return false
	}
	return !bb.InCheck(p.Team())
}

func (b *Board[P]) move(p P, s Step) error {
	if err := b.Remove(s.From); err != nil {
		return err
	}
	if s.IsPromote {
		if pr, ok := any(p).(promoter[P]); ok {
			p = pr.Promote()
		}
	}
	return b.Insert(s.To, p)
}

// Apply plays a legal step of the team to move and passes the turn. The round advances once every
// team has moved.
func (b *Board[P]) Apply(s Step) error {
	p, ok := b.Get(s.From)
	if !ok || p.Team() != b.current {
		return fmt.Errorf("%w: no piece of team %d on %s", ErrIllegalStep, b.current, b.shape.Notation(s.From))
	}
	var found bool
	for _, legal := range b.legalSteps(s.From, p) {
		if legal.To == s.To {
			s, found = legal, true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrIllegalStep, s.Notation(b.shape))
	}
	if err := b.move(p, s); err != nil {
		return err
	}

	// update half move clock
	if r, ok := any(p).(clockResetter); s.IsCapture || ok && r.ResetsClock() {
		b.halfMoves = 0
	} else {
		b.halfMoves++
	}

	b.current = (b.current + 1) % b.teams
	if b.current == 0 {
		b.round++
	}
	return nil
}
