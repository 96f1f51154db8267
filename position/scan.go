package position

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPlacement represents a malformed placement field.
	ErrInvalidPlacement = errors.New("invalid placement")
)

// ScanPlacement walks the placement field of a position string, top row first. Runs of decimal
// digits are accumulated into a single count of empty squares; any other byte is handed to put
// together with the square it occupies. Every row must cover exactly s.Width squares.
func ScanPlacement(field string, s Shape, put func(sq Square, symbol byte) error) error {
	rows := strings.Split(field, "/")
	if len(rows) != int(s.Height) {
		return fmt.Errorf("%w: got %d rows, want %d", ErrInvalidPlacement, len(rows), s.Height)
	}
	for r, row := range rows {
		if err := scanRow(row, int8(r), s, put); err != nil {
			return err
		}
	}
	return nil
}

func scanRow(row string, rank int8, s Shape, put func(sq Square, symbol byte) error) error {
	var file, run int
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c >= '0' && c <= '9' {
			if run == 0 && c == '0' {
				return fmt.Errorf("%w: zero-length skip in row %d", ErrInvalidPlacement, rank+1)
			}
			run = run*10 + int(c-'0')
			if file+run > int(s.Width) {
				return fmt.Errorf("%w: row %d overflows %d files", ErrInvalidPlacement, rank+1, s.Width)
			}
			continue
		}
		file, run = file+run, 0
		if file >= int(s.Width) {
			return fmt.Errorf("%w: row %d overflows %d files", ErrInvalidPlacement, rank+1, s.Width)
		}
		if err := put(Square{Rank: rank, File: int8(file)}, c); err != nil {
			return err
		}
		file++
	}
	file += run
	if file != int(s.Width) {
		return fmt.Errorf("%w: row %d covers %d of %d files", ErrInvalidPlacement, rank+1, file, s.Width)
	}
	return nil
}

// FormatPlacement is the inverse of ScanPlacement. symbol returns the letter at sq, or 0 when empty.
// Squares outside a non-rectangular shape are written as empty.
func FormatPlacement(s Shape, symbol func(sq Square) byte) string {
	builder := strings.Builder{}
	for r := int8(0); r < s.Height; r++ {
		skip := 0
		for f := int8(0); f < s.Width; f++ {
			sym := symbol(Square{Rank: r, File: f})
			if sym == 0 {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteString(fmt.Sprint(skip))
				skip = 0
			}
			_ = builder.WriteByte(sym)
		}
		if skip != 0 {
			_, _ = builder.WriteString(fmt.Sprint(skip))
		}
		if r < s.Height-1 {
			_ = builder.WriteByte('/')
		}
	}
	return builder.String()
}
