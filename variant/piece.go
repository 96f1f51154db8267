package variant

import "github.com/daystram/sandgoby/position"

// Piece is the capability set a Board needs from the pieces it holds. P is the implementing type
// itself, so captures and step generation stay statically typed.
type Piece[P any] interface {
	// Team is the owner's index in turn order.
	Team() int
	// Forwards and Sideways are the owner's frame; movement offsets are expressed in it.
	Forwards() position.Direction
	Sideways() position.Direction
	CanCapture(other P) bool
	// IsKing marks the royal piece whose safety decides legality.
	IsKing() bool
	// Steps lists the pseudo-legal steps from from.
	Steps(g Grid[P], from position.Square) []Step
	// Attacks lists the squares the piece would capture on, were an enemy standing there.
	Attacks(g Grid[P], from position.Square) []position.Square
}

// Grid is the read-only view of a board a piece generates steps against.
type Grid[P any] interface {
	Shape() position.Shape
	Get(sq position.Square) (P, bool)
}

// Step is a candidate transition of a variant piece.
type Step struct {
	From, To  position.Square
	IsCapture bool
	IsPromote bool
}

func (s Step) Notation(shape position.Shape) string {
	return shape.Notation(s.From) + shape.Notation(s.To)
}

// promoter is implemented by pieces that change on a promoting step.
type promoter[P any] interface {
	Promote() P
}

// clockResetter is implemented by pieces whose moves reset the halfmove clock.
type clockResetter interface {
	ResetsClock() bool
}
