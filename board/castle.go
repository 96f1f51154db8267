package board

import (
	"strings"

	"github.com/daystram/sandgoby/position"
)

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

var (
	maskCastleRights = [5]CastleRights{
		CastleDirectionWhiteRight: 0b1000,
		CastleDirectionWhiteLeft:  0b0100,
		CastleDirectionBlackRight: 0b0010,
		CastleDirectionBlackLeft:  0b0001,
	}

	// castleDirections lists the directions in position string order (KQkq).
	castleDirections = []CastleDirection{
		CastleDirectionWhiteRight,
		CastleDirectionWhiteLeft,
		CastleDirectionBlackRight,
		CastleDirectionBlackLeft,
	}
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

func (d CastleDirection) Side() Side {
	switch d {
	case CastleDirectionUnknown:
		return SideUnknown
	case CastleDirectionWhiteRight, CastleDirectionWhiteLeft:
		return SideWhite
	default:
		return SideBlack
	}
}

// FileStep is +1 towards the right-hand rook and -1 towards the left-hand one.
func (d CastleDirection) FileStep() int8 {
	if d.IsRight() {
		return 1
	}
	return -1
}

// RookSquare is the corner of the side's back rank the paired rook starts on.
func (d CastleDirection) RookSquare(shape position.Shape) position.Square {
	sq := position.Square{Rank: d.Side().BackRank(shape), File: 0}
	if d.IsRight() {
		sq.File = shape.Width - 1
	}
	return sq
}

func (d CastleDirection) symbol() byte {
	switch d {
	case CastleDirectionWhiteRight:
		return 'K'
	case CastleDirectionWhiteLeft:
		return 'Q'
	case CastleDirectionBlackRight:
		return 'k'
	case CastleDirectionBlackLeft:
		return 'q'
	default:
		return 0
	}
}

// CastleDirectionsOf returns the right and left directions of s.
func CastleDirectionsOf(s Side) []CastleDirection {
	if s == SideBlack {
		return []CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft}
	}
	return []CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft}
}

type CastleRights uint8

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteLeft]|maskCastleRights[CastleDirectionWhiteRight]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackLeft]|maskCastleRights[CastleDirectionBlackRight]) != 0
}

// String returns the position string field, "-" when no rights remain.
func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	builder := strings.Builder{}
	for _, d := range castleDirections {
		if c.IsAllowed(d) {
			_ = builder.WriteByte(d.symbol())
		}
	}
	return builder.String()
}

// ParseCastleRights reads the castling field. Each of the letters KQkq present grants its right; any
// other character, "-" included, is ignored.
func ParseCastleRights(field string) CastleRights {
	var c CastleRights
	for _, d := range castleDirections {
		if strings.IndexByte(field, d.symbol()) >= 0 {
			c.Set(d, true)
		}
	}
	return c
}
