package position

import (
	"errors"
	"fmt"
)

const (
	// MaxWidth is bounded by the file letters a..z.
	MaxWidth = 26
	// MaxHeight keeps rank numbers within two digits.
	MaxHeight = 99
)

var (
	// ErrInvalidShape represents board dimensions the notation cannot express.
	ErrInvalidShape = errors.New("invalid shape")
)

// Classical is the standard 8x8 board.
var Classical = Shape{Width: 8, Height: 8}

// Shape describes the board dimensions and, for non-rectangular boards, which cells exist.
type Shape struct {
	Width, Height int8

	// cells reports whether an in-rectangle square is part of the board. nil means every square is.
	cells func(Square) bool
}

type ShapeOption func(*Shape)

// WithCells restricts the rectangle to the squares accepted by f.
func WithCells(f func(Square) bool) ShapeOption {
	return func(s *Shape) {
		s.cells = f
	}
}

func NewShape(width, height int, opts ...ShapeOption) (Shape, error) {
	if width < 1 || width > MaxWidth || height < 1 || height > MaxHeight {
		return Shape{}, fmt.Errorf("%w: %dx%d", ErrInvalidShape, width, height)
	}
	s := Shape{Width: int8(width), Height: int8(height)}
	for _, f := range opts {
		f(&s)
	}
	return s, nil
}

// InBounds reports whether sq lies inside the rectangle and is accepted by the cell predicate.
func (s Shape) InBounds(sq Square) bool {
	if sq.Rank < 0 || sq.Rank >= s.Height || sq.File < 0 || sq.File >= s.Width {
		return false
	}
	return s.cells == nil || s.cells(sq)
}

// Cells is the number of squares in the bounding rectangle.
func (s Shape) Cells() int {
	return int(s.Width) * int(s.Height)
}

// Index maps sq to its row-major offset in the bounding rectangle.
func (s Shape) Index(sq Square) int {
	return int(sq.Rank)*int(s.Width) + int(sq.File)
}

// SquareAt is the inverse of Index.
func (s Shape) SquareAt(i int) Square {
	return Square{Rank: int8(i / int(s.Width)), File: int8(i % int(s.Width))}
}

// Squares lists every in-bounds square, top row first.
func (s Shape) Squares() []Square {
	sqs := make([]Square, 0, s.Cells())
	for i := 0; i < s.Cells(); i++ {
		if sq := s.SquareAt(i); s.InBounds(sq) {
			sqs = append(sqs, sq)
		}
	}
	return sqs
}
