// Package board implements the SameGame rule engine: a rectangular grid of
// colored tiles with connected-component discovery, group erasure with
// gravity and column compaction, and deadlock detection.
// This package is UI-agnostic and deterministic.
package board

import (
	"fmt"
	"math/rand"
	"time"
)

// Colors is the number of distinct tile colors. Cell values are 0 (empty)
// or 1..Colors, which also bounds the digit range of the text format.
const Colors = 5

// Point is a grid coordinate. X increases to the right, Y increases upward:
// row 0 is the bottom row, so gravity moves tiles toward decreasing Y.
type Point struct {
	X, Y int
}

// Board is a fixed-size grid of cells. Cells are stored column-major,
// bottom-to-top within each column: index = h*x + y. Dimensions never
// change after construction; the only mutator is EraseComponent.
type Board struct {
	w, h  int
	cells []uint8
}

// Random creates a board with every cell drawn uniformly from 1..Colors.
// Each call uses its own time-seeded RNG. Panics if w or h is not positive.
func Random(w, h int) *Board {
	return RandomFrom(rand.New(rand.NewSource(time.Now().UnixNano())), w, h)
}

// RandomFrom is Random with a caller-supplied RNG for deterministic boards.
func RandomFrom(rng *rand.Rand, w, h int) *Board {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("board: dimensions must be positive, got %dx%d", w, h))
	}

	cells := make([]uint8, w*h)
	for i := range cells {
		cells[i] = uint8(1 + rng.Intn(Colors))
	}

	return &Board{w: w, h: h, cells: cells}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// idx converts a coordinate to a flat cell index.
// Out-of-range coordinates are caller bugs.
func (b *Board) idx(x, y int) int {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		panic(fmt.Sprintf("board: coordinate (%d,%d) out of range for %dx%d board", x, y, b.w, b.h))
	}
	return b.h*x + y
}

// At returns the color at (x, y): 0 for empty, 1..Colors otherwise.
func (b *Board) At(x, y int) uint8 {
	return b.cells[b.idx(x, y)]
}

// Remaining returns the number of non-empty cells.
func (b *Board) Remaining() int {
	n := 0
	for _, c := range b.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]uint8, len(b.cells))
	copy(cells, b.cells)
	return &Board{w: b.w, h: b.h, cells: cells}
}

// Equal reports whether two boards have identical dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if b.w != other.w || b.h != other.h {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// appendNeighbors appends the in-bounds orthogonal neighbors of (x, y).
func (b *Board) appendNeighbors(buf []Point, x, y int) []Point {
	if x > 0 {
		buf = append(buf, Point{x - 1, y})
	}
	if x < b.w-1 {
		buf = append(buf, Point{x + 1, y})
	}
	if y > 0 {
		buf = append(buf, Point{x, y - 1})
	}
	if y < b.h-1 {
		buf = append(buf, Point{x, y + 1})
	}
	return buf
}

// CalcComponent returns the coordinates of the orthogonally-connected group
// of same-colored cells containing (x, y), in unspecified order. Groups of
// size 1 are not erasable, so both an empty cell and an isolated tile yield
// a nil result.
func (b *Board) CalcComponent(x, y int) []Point {
	color := b.At(x, y)
	if color == 0 {
		return nil
	}

	visited := make([]bool, b.w*b.h)
	visited[b.idx(x, y)] = true

	var comp []Point
	var nbuf [4]Point
	stack := []Point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, p)

		for _, n := range b.appendNeighbors(nbuf[:0], p.X, p.Y) {
			i := b.idx(n.X, n.Y)
			if visited[i] || b.cells[i] != color {
				continue
			}
			visited[i] = true
			stack = append(stack, n)
		}
	}

	if len(comp) == 1 {
		return nil
	}
	return comp
}

// IsFinished reports whether no erasable group remains: no two orthogonally
// adjacent non-empty cells share a color. True on an empty board.
func (b *Board) IsFinished() bool {
	for x := 0; x < b.w; x++ {
		for y := 0; y < b.h; y++ {
			c := b.At(x, y)
			if c == 0 {
				continue
			}
			if x > 0 && b.At(x-1, y) == c {
				return false
			}
			if y > 0 && b.At(x, y-1) == c {
				return false
			}
		}
	}
	return true
}

// EraseComponent removes the group containing (x, y), lets the tiles above
// fall, and shifts emptied columns left. Returns the number of cells removed;
// 0 if (x, y) is empty or has no same-colored neighbor, in which case the
// board is left untouched.
func (b *Board) EraseComponent(x, y int) int {
	color := b.At(x, y)
	if color == 0 {
		return 0
	}

	// Cells are zeroed as they are pushed, which doubles as the visited
	// marker: a zeroed cell can no longer match color.
	b.cells[b.idx(x, y)] = 0
	removed := 0

	var nbuf [4]Point
	stack := []Point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		removed++

		for _, n := range b.appendNeighbors(nbuf[:0], p.X, p.Y) {
			i := b.idx(n.X, n.Y)
			if b.cells[i] != color {
				continue
			}
			b.cells[i] = 0
			stack = append(stack, n)
		}
	}

	if removed == 1 {
		// Singleton groups are not erasable: undo the single overwrite.
		b.cells[b.idx(x, y)] = color
		return 0
	}

	b.packCellwise()
	b.packColwise()

	return removed
}

// packCellwise drops the tiles of every column toward the bottom: a stable
// in-place partition moving non-empty cells to the low-Y end of the column,
// preserving their relative order.
func (b *Board) packCellwise() {
	for x := 0; x < b.w; x++ {
		col := b.cells[x*b.h : (x+1)*b.h]
		i := 0
		for j := 0; j < b.h; j++ {
			if col[j] != 0 {
				col[i], col[j] = col[j], col[i]
				i++
			}
		}
	}
}

// packColwise shifts non-empty columns left over fully emptied ones,
// preserving their order. The copy goes through a scratch column so the
// pass does not depend on source and destination ranges being disjoint.
func (b *Board) packColwise() {
	scratch := make([]uint8, b.h)
	target := 0
	for x := 0; x < b.w; x++ {
		col := b.cells[x*b.h : (x+1)*b.h]

		empty := true
		for _, c := range col {
			if c != 0 {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		if target != x {
			copy(scratch, col)
			copy(b.cells[target*b.h:(target+1)*b.h], scratch)
			for i := range col {
				col[i] = 0
			}
		}
		target++
	}
}
