package numbertiles

import (
	"errors"
	"reflect"
	"testing"
)

func mustBoard(t *testing.T, tiles [][]int) *Board {
	t.Helper()
	b, err := NewBoard(tiles)
	if err != nil {
		t.Fatalf("NewBoard(%v) failed: %v", tiles, err)
	}
	return b
}

func TestNewBoardValidation(t *testing.T) {
	tests := []struct {
		name  string
		tiles [][]int
		valid bool
	}{
		{
			name:  "valid 2x2",
			tiles: [][]int{{1, 2}, {3, 4}},
			valid: true,
		},
		{
			name:  "valid 1x1",
			tiles: [][]int{{7}},
			valid: true,
		},
		{
			name:  "valid with empties",
			tiles: [][]int{{Empty, 2}, {Empty, Empty}},
			valid: true,
		},
		{
			name:  "empty matrix",
			tiles: [][]int{},
			valid: false,
		},
		{
			name:  "ragged rows",
			tiles: [][]int{{1, 2}, {3}},
			valid: false,
		},
		{
			name:  "non-square",
			tiles: [][]int{{1, 2, 3}, {4, 5, 6}},
			valid: false,
		},
		{
			name:  "negative value",
			tiles: [][]int{{1, -2}, {3, 4}},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.tiles)
			if tt.valid {
				if err != nil {
					t.Fatalf("NewBoard(%v) failed: %v", tt.tiles, err)
				}
				if b.Size() != len(tt.tiles) {
					t.Errorf("Size() = %d, want %d", b.Size(), len(tt.tiles))
				}
				return
			}
			if err == nil {
				t.Fatalf("NewBoard(%v) succeeded, want error", tt.tiles)
			}
			if !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("error = %v, want ErrInvalidBoard", err)
			}
		})
	}
}

func TestNewBoardCopiesInput(t *testing.T) {
	tiles := [][]int{{1, 2}, {3, 4}}
	b := mustBoard(t, tiles)

	tiles[0][0] = 99
	if got, _ := b.At(0, 0); got != 1 {
		t.Errorf("board changed with caller's slice: At(0,0) = %d, want 1", got)
	}

	// And the other direction: mutating the Tiles() copy is isolated too.
	snapshot := b.Tiles()
	snapshot[1][1] = 99
	if got, _ := b.At(1, 1); got != 4 {
		t.Errorf("board changed through Tiles() copy: At(1,1) = %d, want 4", got)
	}
}

func TestAtOutOfRange(t *testing.T) {
	b := mustBoard(t, [][]int{{1, 2}, {3, 4}})

	for _, c := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := b.At(c.Row, c.Col); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At%v error = %v, want ErrOutOfRange", c, err)
		}
	}
}

func TestNeighborsOrder(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	tests := []struct {
		name     string
		row, col int
		expected []Coord
	}{
		{
			name: "center has all four in up/down/left/right order",
			row:  1, col: 1,
			expected: []Coord{{0, 1}, {2, 1}, {1, 0}, {1, 2}},
		},
		{
			name: "top-left corner",
			row:  0, col: 0,
			expected: []Coord{{1, 0}, {0, 1}},
		},
		{
			name: "bottom-right corner",
			row:  2, col: 2,
			expected: []Coord{{1, 2}, {2, 1}},
		},
		{
			name: "top edge",
			row:  0, col: 1,
			expected: []Coord{{1, 1}, {0, 0}, {0, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.neighbors(tt.row, tt.col)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("neighbors(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.expected)
			}
		})
	}
}

func TestNeighborsSingleCell(t *testing.T) {
	b := mustBoard(t, [][]int{{1}})
	if got := b.neighbors(0, 0); len(got) != 0 {
		t.Errorf("neighbors on 1x1 board = %v, want none", got)
	}
}

func TestComponent(t *testing.T) {
	tests := []struct {
		name     string
		tiles    [][]int
		start    Coord
		expected []Coord
	}{
		{
			name: "L-shaped component",
			tiles: [][]int{
				{1, 1},
				{1, 2},
			},
			start:    Coord{0, 0},
			expected: []Coord{{0, 0}, {0, 1}, {1, 0}},
		},
		{
			name: "isolated tile",
			tiles: [][]int{
				{1, 2},
				{3, 4},
			},
			start:    Coord{0, 0},
			expected: []Coord{{0, 0}},
		},
		{
			name: "uniform board is one component",
			tiles: [][]int{
				{2, 2},
				{2, 2},
			},
			start:    Coord{1, 1},
			expected: []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		},
		{
			name: "diagonal does not connect",
			tiles: [][]int{
				{1, 2},
				{2, 1},
			},
			start:    Coord{0, 0},
			expected: []Coord{{0, 0}},
		},
		{
			name: "snaking path",
			tiles: [][]int{
				{1, 1, 2},
				{2, 1, 1},
				{2, 2, 1},
			},
			start:    Coord{0, 0},
			expected: []Coord{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.tiles)
			got := b.component(tt.start)

			if len(got) != len(tt.expected) {
				t.Fatalf("component%v has %d cells, want %d: %v", tt.start, len(got), len(tt.expected), got)
			}
			for _, c := range tt.expected {
				if _, ok := got[c]; !ok {
					t.Errorf("component%v missing %v", tt.start, c)
				}
			}
		})
	}
}

func TestMaxTile(t *testing.T) {
	b := mustBoard(t, [][]int{{1, 9}, {3, 4}})
	if got := b.MaxTile(); got != 9 {
		t.Errorf("MaxTile() = %d, want 9", got)
	}

	empty := mustBoard(t, [][]int{{Empty, Empty}, {Empty, Empty}})
	if got := empty.MaxTile(); got != 0 {
		t.Errorf("MaxTile() on empty board = %d, want 0", got)
	}
}

func TestBoardString(t *testing.T) {
	b := mustBoard(t, [][]int{{1, Empty}, {12, 3}})

	want := " 1  .\n12  3"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
