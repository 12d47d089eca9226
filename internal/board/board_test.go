package board

import (
	"errors"
	"math/rand"
	"sort"
	"testing"
)

const scenarioText = "4 3\n2102\n1154\n5135\n"

func mustParse(t *testing.T, text string) *Board {
	t.Helper()
	b, err := ParseString(text)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	return b
}

func sortPoints(ps []Point) []Point {
	sorted := append([]Point(nil), ps...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	return sorted
}

func TestRandom(t *testing.T) {
	b := RandomFrom(rand.New(rand.NewSource(1)), 3, 14)

	if b.Width() != 3 {
		t.Errorf("Width() = %d, expected 3", b.Width())
	}
	if b.Height() != 14 {
		t.Errorf("Height() = %d, expected 14", b.Height())
	}

	for i, c := range b.cells {
		if c < 1 || c > Colors {
			t.Errorf("cell %d = %d, expected 1..%d", i, c, Colors)
		}
	}
}

func TestRandomPanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Random(0, 5) should panic")
		}
	}()
	Random(0, 5)
}

func TestAtPanicsOutOfRange(t *testing.T) {
	b := mustParse(t, scenarioText)

	defer func() {
		if recover() == nil {
			t.Error("At(4, 0) on a 4x3 board should panic")
		}
	}()
	b.At(4, 0)
}

func TestParse(t *testing.T) {
	b := mustParse(t, "4 3\n0123\n1234\n2345\n")

	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, expected 4x3", b.Width(), b.Height())
	}

	// Column-major, bottom-to-top within each column.
	expected := []uint8{2, 1, 0, 3, 2, 1, 4, 3, 2, 5, 4, 3}
	for i, c := range expected {
		if b.cells[i] != c {
			t.Errorf("cells[%d] = %d, expected %d", i, b.cells[i], c)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
	}{
		{"empty input", "", ErrFormat},
		{"one header token", "4\n", ErrFormat},
		{"three header tokens", "4 3 7\n0123\n1234\n2345\n", ErrFormat},
		{"non-numeric width", "x 3\n", ErrFormat},
		{"zero width", "0 3\n", ErrFormat},
		{"negative height", "4 -1\n", ErrFormat},
		{"bad cell character", "4 3\n0123\n12a4\n2345\n", ErrInvalidCell},
		{"digit above max color", "4 3\n0123\n1264\n2345\n", ErrInvalidCell},
		{"missing rows", "4 3\n0123\n1234\n", ErrIncompleteInput},
		{"header only", "4 3\n", ErrIncompleteInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tc.kind) {
				t.Errorf("error %v, expected kind %v", err, tc.kind)
			}
		})
	}
}

func TestParseIgnoresTrailingInput(t *testing.T) {
	// Characters past width and rows past height are not validated.
	b, err := ParseString("2 2\n12xyz\n34\n!!!!\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if b.At(0, 1) != 1 || b.At(1, 1) != 2 || b.At(0, 0) != 3 || b.At(1, 0) != 4 {
		t.Error("trailing input changed parsed cells")
	}
}

func TestParseShortRowLeavesEmptyCells(t *testing.T) {
	b, err := ParseString("3 2\n12\n321\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if b.At(2, 1) != 0 {
		t.Errorf("At(2,1) = %d, expected 0 for missing character", b.At(2, 1))
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	b := mustParse(t, scenarioText)

	if b.Encode() != scenarioText {
		t.Errorf("Encode() = %q, expected %q", b.Encode(), scenarioText)
	}

	again, err := ParseString(b.Encode())
	if err != nil {
		t.Fatalf("re-parsing encoded board failed: %v", err)
	}
	if !b.Equal(again) {
		t.Error("round trip did not reproduce the board")
	}

	rb := RandomFrom(rand.New(rand.NewSource(7)), 20, 10)
	again, err = ParseString(rb.Encode())
	if err != nil {
		t.Fatalf("re-parsing encoded random board failed: %v", err)
	}
	if !rb.Equal(again) {
		t.Error("random board round trip did not reproduce the board")
	}
}

func TestCalcComponent(t *testing.T) {
	b := mustParse(t, scenarioText)

	if got := b.CalcComponent(0, 0); got != nil {
		t.Errorf("CalcComponent(0,0) = %v, expected none (isolated tile)", got)
	}

	got := sortPoints(b.CalcComponent(0, 1))
	want := []Point{{0, 1}, {1, 0}, {1, 1}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("CalcComponent(0,1) = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CalcComponent(0,1)[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestCalcComponentEmptyCell(t *testing.T) {
	b := mustParse(t, "2 2\n01\n23\n")
	if got := b.CalcComponent(1, 1); got != nil {
		t.Errorf("CalcComponent on empty cell = %v, expected none", got)
	}
}

func TestCalcComponentDoesNotMutate(t *testing.T) {
	b := mustParse(t, scenarioText)
	before := b.Clone()
	b.CalcComponent(0, 1)
	if !b.Equal(before) {
		t.Error("CalcComponent mutated the board")
	}
}

func TestEraseComponentScenario(t *testing.T) {
	b := mustParse(t, scenarioText)

	if b.IsFinished() {
		t.Error("IsFinished() = true on a board with an erasable group")
	}

	if n := b.EraseComponent(0, 0); n != 0 {
		t.Errorf("EraseComponent(0,0) = %d, expected 0 (singleton)", n)
	}
	if n := b.EraseComponent(3, 0); n != 0 {
		t.Errorf("EraseComponent(3,0) = %d, expected 0 (singleton)", n)
	}

	if n := b.EraseComponent(1, 1); n != 4 {
		t.Errorf("EraseComponent(1,1) = %d, expected 4", n)
	}

	expected := []uint8{5, 2, 0, 3, 5, 0, 5, 4, 2, 0, 0, 0}
	for i, c := range expected {
		if b.cells[i] != c {
			t.Errorf("cells[%d] = %d, expected %d", i, b.cells[i], c)
		}
	}

	if !b.IsFinished() {
		t.Error("IsFinished() = false after the last group was erased")
	}
}

func TestEraseComponentNoOpLeavesBoardUnchanged(t *testing.T) {
	b := mustParse(t, scenarioText)
	before := b.Clone()

	// (0,0) is an isolated '5', (3,2) is '2' with no same-colored neighbor.
	if n := b.EraseComponent(0, 0); n != 0 {
		t.Fatalf("EraseComponent(0,0) = %d, expected 0", n)
	}
	if !b.Equal(before) {
		t.Error("failed singleton erase mutated the board")
	}

	// Empty a column, then erase on the now-empty cell.
	b2 := mustParse(t, "2 2\n10\n10\n")
	if n := b2.EraseComponent(0, 0); n != 2 {
		t.Fatalf("EraseComponent(0,0) = %d, expected 2", n)
	}
	before = b2.Clone()
	if n := b2.EraseComponent(1, 1); n != 0 {
		t.Errorf("EraseComponent on empty cell = %d, expected 0", n)
	}
	if !b2.Equal(before) {
		t.Error("erase on empty cell mutated the board")
	}
}

// checkPacked verifies the post-erase invariant: within each column the
// empty cells sit on top, and no empty column precedes a non-empty one.
func checkPacked(t *testing.T, b *Board) {
	t.Helper()

	for x := 0; x < b.Width(); x++ {
		seenEmpty := false
		for y := 0; y < b.Height(); y++ {
			if b.At(x, y) == 0 {
				seenEmpty = true
			} else if seenEmpty {
				t.Fatalf("column %d has a tile above an empty cell", x)
			}
		}
	}

	seenEmptyCol := false
	for x := 0; x < b.Width(); x++ {
		if b.At(x, 0) == 0 {
			seenEmptyCol = true
		} else if seenEmptyCol {
			t.Fatalf("non-empty column %d follows an empty column", x)
		}
	}
}

func TestErasePacksUntilFinished(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := RandomFrom(rng, 20, 10)

	// Repeatedly erase the first available group. Must terminate: each
	// successful erase strictly decreases the tile count.
	for !b.IsFinished() {
		erased := false
		for x := 0; x < b.Width() && !erased; x++ {
			for y := 0; y < b.Height() && !erased; y++ {
				if b.EraseComponent(x, y) > 0 {
					erased = true
				}
			}
		}
		if !erased {
			t.Fatal("IsFinished() is false but no group could be erased")
		}
		checkPacked(t, b)
	}
}

func TestIsFinishedEmptyBoard(t *testing.T) {
	b := mustParse(t, "2 2\n00\n00\n")
	if !b.IsFinished() {
		t.Error("IsFinished() = false on an empty board")
	}
}

func TestDegenerateShapes(t *testing.T) {
	// 1-wide column of one color.
	tall := mustParse(t, "1 4\n3\n3\n3\n3\n")
	if got := len(tall.CalcComponent(0, 0)); got != 4 {
		t.Errorf("1-wide component size = %d, expected 4", got)
	}
	if n := tall.EraseComponent(0, 2); n != 4 {
		t.Errorf("1-wide erase = %d, expected 4", n)
	}
	if tall.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", tall.Remaining())
	}

	// 1-tall row with two groups.
	wide := mustParse(t, "4 1\n1122\n")
	if n := wide.EraseComponent(3, 0); n != 2 {
		t.Errorf("1-tall erase = %d, expected 2", n)
	}
	checkPacked(t, wide)
	if wide.At(0, 0) != 1 || wide.At(1, 0) != 1 {
		t.Error("surviving group did not compact to the left edge")
	}
}

func TestRemaining(t *testing.T) {
	b := mustParse(t, scenarioText)
	if b.Remaining() != 12 {
		t.Errorf("Remaining() = %d, expected 12", b.Remaining())
	}
	b.EraseComponent(1, 1)
	if b.Remaining() != 8 {
		t.Errorf("Remaining() = %d after erasing 4, expected 8", b.Remaining())
	}
}
