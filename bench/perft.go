package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/sandgoby/board"
	"github.com/daystram/sandgoby/game"
	"github.com/daystram/sandgoby/position"
)

// Counts tallies the leaves of a perft walk. Every promotion choice is a separate leaf.
type Counts struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (c Counts) String() string {
	return message.NewPrinter(language.English).
		Sprintf("nodes=%d cap=%d enp=%d cas=%d pro=%d chk=%d",
			c.Nodes, c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks)
}

// Perft parses fen on a board of the given shape and reports the walk to out, one line per root move
// when verbose.
func Perft(depth int, fen string, shape position.Shape, parallel, verbose bool, out chan<- string) error {
	b, err := board.NewBoard(
		board.WithFEN(fen),
		board.WithShape(shape),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	c := Divide(b, depth, parallel, func(mv string, nodes uint64) {
		if verbose {
			out <- fmt.Sprintf("%s: %d", mv, nodes)
		}
	})
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d %s rate=%dn/s (%.3fs elapsed)",
			depth, c, int(float64(c.Nodes)/elapsed.Seconds()), elapsed.Seconds())
	return nil
}

// Count walks every legal line depth plies deep from b. b is left untouched.
func Count(b *board.Board, depth int, parallel bool) Counts {
	return Divide(b, depth, parallel, nil)
}

// Divide is Count that also reports the leaf count below each root move to report, which may be
// called concurrently in parallel mode.
func Divide(b *board.Board, depth int, parallel bool, report func(mv string, nodes uint64)) Counts {
	var c Counts
	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}
	run(b, depth, report, &c)
	return c
}

type perftFunc func(b *board.Board, d int, report func(string, uint64), c *Counts) uint64

type edge struct {
	mv      board.PossibleMove
	promote board.Kind
}

func (e edge) name(shape position.Shape) string {
	n := shape.Notation(e.mv.From) + shape.Notation(e.mv.To)
	if e.promote != board.KindUnknown {
		n += string(board.NewPiece(board.SideBlack, e.promote).SymbolFEN())
	}
	return n
}

// edges lists the legal moves of the side to move, one per promotion choice.
func edges(b *board.Board) []edge {
	var es []edge
	for _, mv := range game.SortedMoves(b) {
		if !mv.IsPromote {
			es = append(es, edge{mv: mv})
			continue
		}
		for _, k := range board.PromoteCandidates {
			es = append(es, edge{mv: mv, promote: k})
		}
	}
	return es
}

func leaf(b *board.Board, e edge) Counts {
	c := Counts{Nodes: 1}
	if e.mv.IsCapture {
		c.Captures++
	}
	if e.mv.IsEnPassant {
		c.EnPassants++
	}
	if e.mv.Castle != board.CastleDirectionUnknown {
		c.Castles++
	}
	if e.promote != board.KindUnknown {
		c.Promotions++
	}
	if b.GivesCheck(e.mv, e.promote) {
		c.Checks++
	}
	return c
}

func runPerft(b *board.Board, d int, report func(string, uint64), c *Counts) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	var sum uint64
	for _, e := range edges(b) {
		var child uint64
		if d == 1 {
			l := leaf(b, e)
			c.Nodes += l.Nodes
			c.Captures += l.Captures
			c.EnPassants += l.EnPassants
			c.Castles += l.Castles
			c.Promotions += l.Promotions
			c.Checks += l.Checks
			child = 1
		} else {
			bb := b.Clone()
			if _, err := game.Apply(bb, e.mv, e.promote); err != nil {
				continue
			}
			child = runPerft(bb, d-1, nil, c)
		}
		if report != nil {
			report(e.name(b.Shape()), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, report func(string, uint64), c *Counts) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, e := range edges(b) {
		e := e
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			if d == 1 {
				l := leaf(b, e)
				atomic.AddUint64(&c.Nodes, l.Nodes)
				atomic.AddUint64(&c.Captures, l.Captures)
				atomic.AddUint64(&c.EnPassants, l.EnPassants)
				atomic.AddUint64(&c.Castles, l.Castles)
				atomic.AddUint64(&c.Promotions, l.Promotions)
				atomic.AddUint64(&c.Checks, l.Checks)
				child = 1
			} else {
				bb := b.Clone()
				if _, err := game.Apply(bb, e.mv, e.promote); err != nil {
					return
				}
				child = runPerftParallel(bb, d-1, nil, c)
			}
			if report != nil {
				report(e.name(b.Shape()), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
