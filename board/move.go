package board

import "github.com/daystram/sandgoby/position"

// PossibleMove is a candidate transition produced by move generation.
type PossibleMove struct {
	From, To position.Square

	// RookFrom and RookTo relocate the paired rook when Castle is set.
	Castle           CastleDirection
	RookFrom, RookTo position.Square

	IsPromote    bool
	IsCapture    bool
	IsEnPassant  bool
	IsDoubleStep bool
}

// String renders the move on the classical board. Use Notation for other shapes.
func (m PossibleMove) String() string {
	return m.Notation(position.Classical)
}

func (m PossibleMove) Notation(shape position.Shape) string {
	return shape.Notation(m.From) + shape.Notation(m.To)
}

type MoveKind uint8

const (
	MoveRegular MoveKind = iota
	MoveEnPassant
	MoveCastle
	MovePromotion
)

func (k MoveKind) String() string {
	switch k {
	case MoveRegular:
		return "Regular"
	case MoveEnPassant:
		return "EnPassant"
	case MoveCastle:
		return "Castle"
	case MovePromotion:
		return "Promotion"
	default:
		return ""
	}
}

// Move is a committed transition. The observational flags are filled in by the move-application layer.
type Move struct {
	From, To position.Square
	Piece    Piece
	Kind     MoveKind

	RookFrom, RookTo position.Square
	Promote          Kind

	IsCapture   bool
	IsCheck     bool
	IsCheckmate bool

	// Shape of the board the move was played on. The zero value means the classical board.
	Shape position.Shape
}

func (m Move) String() string {
	return m.UCI()
}

// UCI renders the move in coordinate notation on the board it was played on, e.g. e7e8q.
func (m Move) UCI() string {
	if m.Shape.Width == 0 {
		return m.Notation(position.Classical)
	}
	return m.Notation(m.Shape)
}

func (m Move) Notation(shape position.Shape) string {
	nt := shape.Notation(m.From) + shape.Notation(m.To)
	if m.Kind == MovePromotion {
		nt += string(NewPiece(SideBlack, m.Promote).SymbolFEN())
	}
	return nt
}
