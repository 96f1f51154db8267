package board

import "github.com/daystram/sandgoby/position"

// placement answers "what stands on sq" for the threat detector.
type placement interface {
	pieceAt(sq position.Square) (Piece, bool)
	inBounds(sq position.Square) bool
}

func (b *Board) pieceAt(sq position.Square) (Piece, bool) {
	return b.Get(sq)
}

func (b *Board) inBounds(sq position.Square) bool {
	return b.shape.InBounds(sq)
}

// overlay is a board with up to four squares rewritten on top of it. Later writes shadow earlier ones.
// It lets a move be tested without touching the underlying grid.
type overlay struct {
	base    *Board
	n       int
	squares [4]position.Square
	pieces  [4]Piece
}

func (o *overlay) set(sq position.Square, p Piece) {
	o.squares[o.n] = sq
	o.pieces[o.n] = p
	o.n++
}

func (o *overlay) inBounds(sq position.Square) bool {
	return o.base.shape.InBounds(sq)
}

func (o *overlay) pieceAt(sq position.Square) (Piece, bool) {
	if !o.base.shape.InBounds(sq) {
		return Piece{}, false
	}
	for i := o.n - 1; i >= 0; i-- {
		if o.squares[i] == sq {
			return o.pieces[i], !o.pieces[i].IsEmpty()
		}
	}
	return o.base.Get(sq)
}

// ignoring treats sq as empty.
func (b *Board) ignoring(sq position.Square) *overlay {
	o := &overlay{base: b}
	o.set(sq, Piece{})
	return o
}

// after returns the placement once mv has been played by the piece p.
func (b *Board) after(p Piece, mv PossibleMove) *overlay {
	o := b.ignoring(mv.From)
	if mv.IsEnPassant {
		o.set(position.Square{Rank: mv.From.Rank, File: mv.To.File}, Piece{})
	}
	if mv.Castle != CastleDirectionUnknown {
		o.set(mv.RookFrom, Piece{})
		o.set(mv.RookTo, NewPiece(p.Side, KindRook))
	}
	o.set(mv.To, p)
	return o
}
