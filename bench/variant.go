package bench

import "github.com/daystram/sandgoby/variant"

// CountSteps is the node count of a perft walk over a variant board.
func CountSteps[P variant.Piece[P]](b *variant.Board[P], depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, steps := range b.PossibleSteps() {
		if depth == 1 {
			nodes += uint64(len(steps))
			continue
		}
		for _, s := range steps {
			bb := b.Clone()
			if err := bb.Apply(s); err != nil {
				continue
			}
			nodes += CountSteps(bb, depth-1)
		}
	}
	return nodes
}
