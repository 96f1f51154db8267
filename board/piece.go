package board

// Kind is the movement class of a piece.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindBishop
	KindKnight
	KindRook
	KindQueen
	KindKing
)

// PromoteCandidates represents the candidates for pawn promotion.
var PromoteCandidates = []Kind{KindBishop, KindKnight, KindRook, KindQueen}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

// Symbol returns the upper-case letter of the kind.
func (k Kind) Symbol() byte {
	switch k {
	case KindPawn:
		return 'P'
	case KindBishop:
		return 'B'
	case KindKnight:
		return 'N'
	case KindRook:
		return 'R'
	case KindQueen:
		return 'Q'
	case KindKing:
		return 'K'
	default:
		return 0
	}
}

// KindFromSymbol maps a letter of either case to its kind.
func KindFromSymbol(sym byte) Kind {
	switch sym | 0x20 {
	case 'p':
		return KindPawn
	case 'b':
		return KindBishop
	case 'n':
		return KindKnight
	case 'r':
		return KindRook
	case 'q':
		return KindQueen
	case 'k':
		return KindKing
	default:
		return KindUnknown
	}
}

// Piece is a kind owned by a side. The zero value is no piece.
type Piece struct {
	Side Side
	Kind Kind
}

func NewPiece(s Side, k Kind) Piece {
	return Piece{Side: s, Kind: k}
}

func (p Piece) IsEmpty() bool {
	return p.Kind == KindUnknown
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Side.String() + " " + p.Kind.Name()
}

// SymbolFEN returns the position string letter, lower case for Black.
func (p Piece) SymbolFEN() byte {
	sym := p.Kind.Symbol()
	if sym != 0 && p.Side == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return sym
}

// PieceFromSymbol is the inverse of SymbolFEN.
func PieceFromSymbol(sym byte) (Piece, bool) {
	k := KindFromSymbol(sym)
	if k == KindUnknown {
		return Piece{}, false
	}
	s := SideWhite
	if sym >= 'a' && sym <= 'z' {
		s = SideBlack
	}
	return NewPiece(s, k), true
}

func (p Piece) SymbolUnicode() string {
	switch p.Side {
	case SideWhite:
		switch p.Kind {
		case KindPawn:
			return "♙"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		}
	case SideBlack:
		switch p.Kind {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		}
	}
	return ""
}
