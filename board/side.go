package board

import "github.com/daystram/sandgoby/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// Sides lists the playing sides in turn order.
var Sides = []Side{SideWhite, SideBlack}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forwards points from the side's own back rank towards the opponent's.
func (s Side) Forwards() position.Direction {
	if s == SideBlack {
		return position.South
	}
	return position.North
}

// BackRank is the rank index the side's pieces start on.
func (s Side) BackRank(shape position.Shape) int8 {
	if s == SideBlack {
		return 0
	}
	return shape.Height - 1
}

// PawnRank is the rank index the side's pawns start on.
func (s Side) PawnRank(shape position.Shape) int8 {
	return s.BackRank(shape) + s.Forwards().Rank
}

func (s Side) symbolFEN() string {
	if s == SideBlack {
		return "b"
	}
	return "w"
}
