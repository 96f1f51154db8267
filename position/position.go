package position

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// NoSquare marks the absence of a square, e.g. no en passant target.
var NoSquare = Square{Rank: -1, File: -1}

// Square is a rank/file pair. Rank 0 is the top row of a position string.
type Square struct {
	Rank, File int8
}

// Direction is a unit step along both axes.
type Direction struct {
	Rank, File int8
}

var (
	North = Direction{Rank: -1}
	South = Direction{Rank: 1}
	East  = Direction{File: 1}
	West  = Direction{File: -1}
)

func (d Direction) Opposite() Direction {
	return Direction{Rank: -d.Rank, File: -d.File}
}

// Step returns the square n steps away along d.
func (sq Square) Step(d Direction, n int8) Square {
	return Square{Rank: sq.Rank + n*d.Rank, File: sq.File + n*d.File}
}

// Forwards moves n steps along the owner's forward direction.
func (sq Square) Forwards(forward Direction, n int8) Square {
	return sq.Step(forward, n)
}

// Sideways shifts the file by n, independent of side.
func (sq Square) Sideways(n int8) Square {
	return Square{Rank: sq.Rank, File: sq.File + n}
}

// Offset returns the square f steps along forward and s steps along sideways.
func (sq Square) Offset(forward, sideways Direction, f, s int8) Square {
	return sq.Step(forward, f).Step(sideways, s)
}

// Sideways returns the positive axis perpendicular to d.
func (d Direction) Sideways() Direction {
	return Direction{Rank: abs(d.File), File: abs(d.Rank)}
}

func (sq Square) String() string {
	return sq.Notation()
}

// Notation encodes sq on the classical board.
func (sq Square) Notation() string {
	return Classical.Notation(sq)
}

// NewSquareFromNotation decodes n on the classical board.
func NewSquareFromNotation(n string) (Square, error) {
	return Classical.ParseSquare(n)
}

// Notation encodes sq as file letter followed by the decimal rank counted from the bottom row.
func (s Shape) Notation(sq Square) string {
	if !s.InBounds(sq) {
		return ""
	}
	return string(rune('a'+sq.File)) + strconv.Itoa(int(s.Height-sq.Rank))
}

// ParseSquare is the inverse of Notation.
func (s Shape) ParseSquare(n string) (Square, error) {
	if len(n) < 2 {
		return NoSquare, ErrInvalidNotation
	}
	file, err := notationToFile(n[0], s.Width)
	if err != nil {
		return NoSquare, err
	}
	rank, err := notationToRank(n[1:], s.Height)
	if err != nil {
		return NoSquare, err
	}
	sq := Square{Rank: rank, File: file}
	if !s.InBounds(sq) {
		return NoSquare, ErrInvalidNotation
	}
	return sq, nil
}

func notationToFile(c byte, width int8) (int8, error) {
	if c < 'a' || c > 'z' {
		return 0, ErrInvalidNotation
	}
	file := int8(c - 'a')
	if file >= width {
		return 0, ErrInvalidNotation
	}
	return file, nil
}

func notationToRank(n string, height int8) (int8, error) {
	if n[0] < '1' || n[0] > '9' {
		return 0, ErrInvalidNotation
	}
	for i := 1; i < len(n); i++ {
		if n[i] < '0' || n[i] > '9' {
			return 0, ErrInvalidNotation
		}
	}
	r, err := strconv.Atoi(n)
	if err != nil || r > int(height) {
		return 0, ErrInvalidNotation
	}
	return height - int8(r), nil
}
