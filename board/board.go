package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/sandgoby/position"
)

const (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	ErrInvalidFEN        = errors.New("invalid fen")
	ErrIllegalPosition   = errors.New("illegal position")
	ErrNotEnoughKings    = errors.New("not enough kings")
	ErrRoundIsZero       = errors.New("round is zero")
	ErrEmptySquare       = errors.New("empty square")
	ErrOutOfBounds       = errors.New("square out of bounds")
	ErrKingCacheMismatch = errors.New("king cache mismatch")
)

// Board holds the placement grid, row-major over the bounding rectangle of its shape,
// together with the game metadata of the position string.
type Board struct {
	shape position.Shape

	// grid data
	cells []Piece

	// meta
	turn          Side
	castleRights  CastleRights
	enPassant     position.Square
	halfMoveClock uint64
	fullMoveClock uint64

	// cache, derived from cells
	kings [3]position.Square
}

type boardConfig struct {
	fen   string
	shape position.Shape
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// WithShape sets the board dimensions the position string is read against.
func WithShape(shape position.Shape) BoardOption {
	return func(cfg *boardConfig) {
		cfg.shape = shape
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen:   DefaultStartingPositionFEN,
		shape: position.Classical,
	}
	for _, f := range opts {
		f(cfg)
	}
	b := newEmptyBoard(cfg.shape)
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func newEmptyBoard(shape position.Shape) *Board {
	return &Board{
		shape:         shape,
		cells:         make([]Piece, shape.Cells()),
		turn:          SideWhite,
		enPassant:     position.NoSquare,
		fullMoveClock: 1,
		kings:         [3]position.Square{position.NoSquare, position.NoSquare, position.NoSquare},
	}
}

func (b *Board) Shape() position.Shape {
	return b.shape
}

// Get returns the piece on sq, false when sq is empty or out of bounds.
func (b *Board) Get(sq position.Square) (Piece, bool) {
	if !b.shape.InBounds(sq) {
		return Piece{}, false
	}
	p := b.cells[b.shape.Index(sq)]
	return p, !p.IsEmpty()
}

// Insert places p on sq, replacing any occupant. Placing a king re-synchronizes the king cache.
func (b *Board) Insert(sq position.Square, p Piece) error {
	if !b.shape.InBounds(sq) {
		return fmt.Errorf("%w: %+v", ErrOutOfBounds, sq)
	}
	if p.IsEmpty() || p.Side == SideUnknown {
		return fmt.Errorf("%w: cannot insert %q", ErrEmptySquare, p)
	}
	b.cells[b.shape.Index(sq)] = p
	if p.Kind == KindKing {
		b.kings[p.Side] = sq
	}
	return nil
}

// Remove empties sq. Removing a king leaves the cache pointing at sq until the king is inserted again.
func (b *Board) Remove(sq position.Square) error {
	if !b.shape.InBounds(sq) {
		return fmt.Errorf("%w: %+v", ErrOutOfBounds, sq)
	}
	b.cells[b.shape.Index(sq)] = Piece{}
	return nil
}

// King returns the cached square of the side's king.
func (b *Board) King(s Side) position.Square {
	if s != SideWhite && s != SideBlack {
		return position.NoSquare
	}
	return b.kings[s]
}

// SetKing points the cache at sq, which must hold the side's king.
func (b *Board) SetKing(s Side, sq position.Square) error {
	if p, ok := b.Get(sq); !ok || p != NewPiece(s, KindKing) {
		return fmt.Errorf("%w: no %s King on %s", ErrKingCacheMismatch, s, b.shape.Notation(sq))
	}
	b.kings[s] = sq
	return nil
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) SetTurn(s Side) {
	b.turn = s
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

func (b *Board) SetCastleRights(c CastleRights) {
	b.castleRights = c
}

// EnPassant returns the en passant target, false when there is none.
func (b *Board) EnPassant() (position.Square, bool) {
	return b.enPassant, b.enPassant != position.NoSquare
}

func (b *Board) SetEnPassant(sq position.Square) error {
	if !b.shape.InBounds(sq) {
		return fmt.Errorf("%w: %+v", ErrOutOfBounds, sq)
	}
	b.enPassant = sq
	return nil
}

func (b *Board) ClearEnPassant() {
	b.enPassant = position.NoSquare
}

func (b *Board) HalfMoveClock() uint64 {
	return b.halfMoveClock
}

func (b *Board) SetHalfMoveClock(n uint64) {
	b.halfMoveClock = n
}

// Round is the full move number, starting at 1.
func (b *Board) Round() uint64 {
	return b.fullMoveClock
}

func (b *Board) SetRound(n uint64) error {
	if n == 0 {
		return ErrRoundIsZero
	}
	b.fullMoveClock = n
	return nil
}

func (b *Board) Clone() *Board {
	bb := *b
	bb.cells = make([]Piece, len(b.cells))
	copy(bb.cells, b.cells)
	return &bb
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	line := "   +" + strings.Repeat("---+", int(b.shape.Width)) + "\n"
	for r := int8(0); r < b.shape.Height; r++ {
		_, _ = builder.WriteString(line)
		_, _ = builder.WriteString(fmt.Sprintf("%2d |", b.shape.Height-r))
		for f := int8(0); f < b.shape.Width; f++ {
			sq := position.Square{Rank: r, File: f}
			sym := " "
			if p, ok := b.Get(sq); ok {
				sym = string(p.SymbolFEN())
			} else if !b.shape.InBounds(sq) {
				sym = "#"
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString(line + "   ")
	for f := int8(0); f < b.shape.Width; f++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %c ", 'a'+f))
	}
	return builder.String()
}

var (
	drawLight = color.New(color.FgBlack, color.BgHiGreen)
	drawDark  = color.New(color.FgBlack, color.BgGreen)
	drawLabel = color.New(color.Bold)
)

// Draw renders the board with coloured cells. Colour is dropped when the output is not a terminal.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for r := int8(0); r < b.shape.Height; r++ {
		_, _ = builder.WriteString(drawLabel.Sprintf("%2d ", b.shape.Height-r))
		for f := int8(0); f < b.shape.Width; f++ {
			sq := position.Square{Rank: r, File: f}
			if !b.shape.InBounds(sq) {
				_, _ = builder.WriteString("   ")
				continue
			}
			sym := " "
			if p, ok := b.Get(sq); ok {
				sym = p.SymbolUnicode()
			}
			cell := drawDark
			if (r+f)%2 == 0 {
				cell = drawLight
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for f := int8(0); f < b.shape.Width; f++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %c ", 'a'+f))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	ep, ok := b.EnPassant()
	enPassant := "-"
	if ok {
		enPassant = b.shape.Notation(ep)
	}
	return fmt.Sprintf("turn: %s\ncast: %s\nenp:  %s\nhalf: %4d\nfull: %4d\nking: %s %s",
		b.turn, b.castleRights, enPassant, b.halfMoveClock, b.fullMoveClock,
		b.shape.Notation(b.kings[SideWhite]), b.shape.Notation(b.kings[SideBlack]))
}
