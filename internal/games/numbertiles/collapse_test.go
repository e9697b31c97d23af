package numbertiles

import (
	"errors"
	"reflect"
	"testing"
)

func TestCollapseAt(t *testing.T) {
	tests := []struct {
		name      string
		tiles     [][]int
		row, col  int
		expected  [][]int
		wantScore int
	}{
		{
			name: "vertical pair collapses and column shifts",
			tiles: [][]int{
				{1, 2},
				{3, 2},
			},
			row: 0, col: 1,
			expected: [][]int{
				{1, 3},
				{0, 3},
			},
			wantScore: 2,
		},
		{
			name: "pivot keeps its place in the row",
			tiles: [][]int{
				{1, 1},
				{2, 1},
			},
			row: 0, col: 0,
			expected: [][]int{
				{0, 2},
				{0, 2},
			},
			wantScore: 2,
		},
		{
			name: "singleton component increments without scoring",
			tiles: [][]int{
				{1, 2},
				{3, 4},
			},
			row: 0, col: 0,
			expected: [][]int{
				{2, 2},
				{3, 4},
			},
			wantScore: 0,
		},
		{
			name: "three-tile component scores both removed tiles",
			tiles: [][]int{
				{1, 1},
				{1, 2},
			},
			row: 1, col: 0,
			expected: [][]int{
				{0, 0},
				{2, 2},
			},
			wantScore: 2,
		},
		{
			name: "uniform board collapses to one tile",
			tiles: [][]int{
				{3, 3, 3},
				{3, 3, 3},
				{3, 3, 3},
			},
			row: 1, col: 1,
			expected: [][]int{
				{0, 0, 0},
				{0, 0, 4},
				{0, 0, 0},
			},
			wantScore: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.tiles)
			if err := b.CollapseAt(tt.row, tt.col); err != nil {
				t.Fatalf("CollapseAt(%d, %d) failed: %v", tt.row, tt.col, err)
			}
			if got := b.Tiles(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("tiles after collapse = %v, want %v", got, tt.expected)
			}
			if b.Score() != tt.wantScore {
				t.Errorf("Score() = %d, want %d", b.Score(), tt.wantScore)
			}
		})
	}
}

func TestCollapseAtAccumulatesScore(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 1, 2},
		{3, 2, 2},
		{3, 4, 5},
	})

	if err := b.CollapseAt(0, 0); err != nil {
		t.Fatalf("first collapse failed: %v", err)
	}
	if b.Score() != 1 {
		t.Fatalf("score after first collapse = %d, want 1", b.Score())
	}

	// The pivot's new 2 joined the existing 2-component, so the second
	// collapse removes three tiles.
	if err := b.CollapseAt(1, 2); err != nil {
		t.Fatalf("second collapse failed: %v", err)
	}
	if b.Score() != 7 {
		t.Errorf("score after second collapse = %d, want 7", b.Score())
	}
}

func TestCollapseAtErrorsLeaveBoardUntouched(t *testing.T) {
	tiles := [][]int{
		{1, Empty},
		{2, 3},
	}

	tests := []struct {
		name     string
		row, col int
		wantErr  error
	}{
		{"row too small", -1, 0, ErrOutOfRange},
		{"row too large", 2, 0, ErrOutOfRange},
		{"col too large", 0, 2, ErrOutOfRange},
		{"empty cell", 0, 1, ErrEmptyCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tiles)
			err := b.CollapseAt(tt.row, tt.col)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CollapseAt(%d, %d) error = %v, want %v", tt.row, tt.col, err, tt.wantErr)
			}
			if got := b.Tiles(); !reflect.DeepEqual(got, tiles) {
				t.Errorf("tiles changed on failed collapse: %v", got)
			}
			if b.Score() != 0 {
				t.Errorf("score changed on failed collapse: %d", b.Score())
			}
		})
	}
}

func TestDrop(t *testing.T) {
	tests := []struct {
		name     string
		tiles    [][]int
		expected [][]int
	}{
		{
			name: "empties float left per row",
			tiles: [][]int{
				{1, Empty, 2},
				{Empty, Empty, 3},
				{4, 5, Empty},
			},
			expected: [][]int{
				{0, 1, 2},
				{0, 0, 3},
				{0, 4, 5},
			},
		},
		{
			name: "order of survivors is preserved",
			tiles: [][]int{
				{5, Empty, 1, Empty},
				{Empty, 9, Empty, 2},
				{Empty, Empty, Empty, Empty},
				{1, 2, 3, 4},
			},
			expected: [][]int{
				{0, 0, 5, 1},
				{0, 0, 9, 2},
				{0, 0, 0, 0},
				{1, 2, 3, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.tiles)
			b.Drop()
			if got := b.Tiles(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("tiles after Drop = %v, want %v", got, tt.expected)
			}

			// Idempotent: a second Drop changes nothing.
			b.Drop()
			if got := b.Tiles(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Drop is not idempotent: %v", got)
			}
		})
	}
}

func TestIsCollapsibleAt(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 1, 2},
		{3, Empty, 2},
		{3, 4, 5},
	})

	tests := []struct {
		name     string
		row, col int
		expected bool
	}{
		{"horizontal pair", 0, 0, true},
		{"vertical pair", 0, 2, true},
		{"isolated tile", 2, 1, false},
		{"empty cell", 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.IsCollapsibleAt(tt.row, tt.col)
			if err != nil {
				t.Fatalf("IsCollapsibleAt(%d, %d) failed: %v", tt.row, tt.col, err)
			}
			if got != tt.expected {
				t.Errorf("IsCollapsibleAt(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.expected)
			}
		})
	}

	if _, err := b.IsCollapsibleAt(5, 5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("IsCollapsibleAt(5, 5) error = %v, want ErrOutOfRange", err)
	}
}

func TestIsCollapsible(t *testing.T) {
	tests := []struct {
		name     string
		tiles    [][]int
		expected bool
	}{
		{
			name:     "all distinct",
			tiles:    [][]int{{1, 2}, {3, 4}},
			expected: false,
		},
		{
			name:     "one matching pair",
			tiles:    [][]int{{1, 2}, {1, 4}},
			expected: true,
		},
		{
			name:     "all empty",
			tiles:    [][]int{{Empty, Empty}, {Empty, Empty}},
			expected: false,
		},
		{
			name:     "equal values separated by an empty",
			tiles:    [][]int{{1, Empty, 1}, {2, 3, 4}, {5, 6, 7}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.tiles)
			if got := b.IsCollapsible(); got != tt.expected {
				t.Errorf("IsCollapsible() = %v, want %v", got, tt.expected)
			}
		})
	}
}
