package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Recoverable parse failures. Each error returned by Parse wraps exactly one
// of these, so callers can classify with errors.Is.
var (
	// ErrFormat means the dimension header is malformed or non-positive.
	ErrFormat = errors.New("malformed board header")

	// ErrInvalidCell means a row contains a character outside '0'..'5'.
	ErrInvalidCell = errors.New("invalid cell character")

	// ErrIncompleteInput means the input ended before all rows were read.
	ErrIncompleteInput = errors.New("incomplete board input")
)

// Parse reads a board from its text form:
//
//	<width> <height>
//	<height rows of cell digits, top row first>
//
// Text row r maps to grid row y = height-1-r. Characters past width and rows
// past height are ignored; rows shorter than width leave the missing cells
// empty. Parsing is all-or-nothing: on error no board is returned.
func Parse(r io.Reader) (*Board, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing header line: %w", ErrFormat)
	}

	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return nil, fmt.Errorf("header must be exactly \"<width> <height>\": %w", ErrFormat)
	}

	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("bad width %q: %w", fields[0], ErrFormat)
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("bad height %q: %w", fields[1], ErrFormat)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("dimensions must be positive, got %dx%d: %w", w, h, ErrFormat)
	}

	b := &Board{w: w, h: h, cells: make([]uint8, w*h)}
	for row := 0; row < h; row++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("want %d rows, got %d: %w", h, row, ErrIncompleteInput)
		}

		line := sc.Text()
		y := h - 1 - row
		for x := 0; x < w && x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '0'+Colors {
				return nil, fmt.Errorf("row %d, column %d: %q: %w", row, x, c, ErrInvalidCell)
			}
			b.cells[b.idx(x, y)] = c - '0'
		}
	}

	return b, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Board, error) {
	return Parse(strings.NewReader(s))
}

// Encode renders the board in the text form accepted by Parse.
// Encode and Parse round-trip exactly.
func (b *Board) Encode() string {
	var sb strings.Builder
	sb.Grow((b.w+1)*b.h + 16)

	fmt.Fprintf(&sb, "%d %d\n", b.w, b.h)
	for y := b.h - 1; y >= 0; y-- {
		for x := 0; x < b.w; x++ {
			sb.WriteByte('0' + b.At(x, y))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
