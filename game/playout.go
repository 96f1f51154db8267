package game

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/position"
)

// PseudoRand is a xorshift64* generator. The same seed replays the same playout.
type PseudoRand struct {
	s uint64
}

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

// Seed resets the state. Zero is a fixed point of xorshift and is replaced.
func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Intn returns a number in [0, n).
func (r *PseudoRand) Intn(n int) int {
	return int(r.Uint64() % uint64(n))
}

// SortedMoves flattens PossibleMoves, ordered top row first and by file within a row.
func SortedMoves(b *board.Board) []board.PossibleMove {
	mvs := b.PossibleMoves()
	froms := maps.Keys(mvs)
	sort.Slice(froms, func(i, j int) bool {
		return less(froms[i], froms[j])
	})
	var flat []board.PossibleMove
	for _, from := range froms {
		flat = append(flat, mvs[from]...)
	}
	return flat
}

func less(a, b position.Square) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.File < b.File
}

// Playout plays up to plies random legal moves, stopping early once the game is over. each, when set,
// sees every move right after it is applied.
func Playout(b *board.Board, plies int, r *PseudoRand, each func(board.Move)) (State, error) {
	for i := 0; i < plies; i++ {
		mvs := SortedMoves(b)
		if len(mvs) == 0 {
			break
		}
		mv := mvs[r.Intn(len(mvs))]
		promote := board.KindUnknown
		if mv.IsPromote {
			promote = board.PromoteCandidates[r.Intn(len(board.PromoteCandidates))]
		}
		applied, err := Apply(b, mv, promote)
		if err != nil {
			return StateUnknown, err
		}
		if each != nil {
			each(applied)
		}
		if applied.IsCheckmate {
			break
		}
	}
	return StateOf(b), nil
}
