package board

import "github.com/daystram/sandgoby/position"

// IsThreatened reports whether any piece of defender's opponent attacks sq. The square does not need
// to be occupied, which lets castling test the squares the King crosses.
func (b *Board) IsThreatened(sq position.Square, defender Side) bool {
	return isThreatened(b, sq, defender)
}

// InCheck reports whether the side's King is attacked.
func (b *Board) InCheck(s Side) bool {
	return b.IsThreatened(b.King(s), s)
}

// GivesCheck reports whether mv leaves the opposing King attacked. A promoting move is tested with the
// piece it promotes to, Queen when promote is KindUnknown.
func (b *Board) GivesCheck(mv PossibleMove, promote Kind) bool {
	p, ok := b.Get(mv.From)
	if !ok {
		return false
	}
	if mv.IsPromote {
		if promote == KindUnknown {
			promote = KindQueen
		}
		p = NewPiece(p.Side, promote)
	}
	opp := p.Side.Opposite()
	return isThreatened(b.after(p, mv), b.King(opp), opp)
}

func isThreatened(g placement, sq position.Square, defender Side) bool {
	attacker := defender.Opposite()
	isAttacker := func(at position.Square, k Kind) bool {
		p, ok := g.pieceAt(at)
		return ok && p == NewPiece(attacker, k)
	}

	fwd := defender.Forwards()
	for _, o := range knightOffsets {
		if isAttacker(sq.Offset(fwd, fwd.Sideways(), o[0], o[1]), KindKnight) {
			return true
		}
	}
	if rayHits(g, sq, lateralDirs[:], attacker, KindRook, KindQueen) {
		return true
	}
	if rayHits(g, sq, diagonalDirs[:], attacker, KindBishop, KindQueen) {
		return true
	}
	ahead := sq.Forwards(fwd, 1)
	if isAttacker(ahead.Sideways(-1), KindPawn) || isAttacker(ahead.Sideways(1), KindPawn) {
		return true
	}
	for _, d := range allDirs {
		if isAttacker(sq.Step(d, 1), KindKing) {
			return true
		}
	}
	return false
}

// rayHits walks each ray from sq to the first occupant, which hits when it belongs to attacker and
// is either k1 or k2. Any other occupant blocks the ray, as does the edge of the board.
func rayHits(g placement, sq position.Square, dirs []position.Direction, attacker Side, k1, k2 Kind) bool {
	for _, d := range dirs {
		for at := sq.Step(d, 1); g.inBounds(at); at = at.Step(d, 1) {
			p, ok := g.pieceAt(at)
			if !ok {
				continue
			}
			if p.Side == attacker && (p.Kind == k1 || p.Kind == k2) {
				return true
			}
			break
		}
	}
	return false
}
