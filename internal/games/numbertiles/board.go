// Package numbertiles implements the Number Tiles collapse puzzle.
// The Board type holds the rules engine and is UI-agnostic; the Game
// type in this package adapts it to the platform's tick loop.
package numbertiles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Empty marks a cell that holds no tile. Tile values are always >= 1.
const Empty = 0

// Engine contract violations. Operations that return one of these leave
// the board unmodified.
var (
	ErrInvalidBoard = errors.New("numbertiles: invalid board")
	ErrOutOfRange   = errors.New("numbertiles: index out of range")
	ErrEmptyCell    = errors.New("numbertiles: invalid operation on empty cell")
)

// Coord identifies a cell by row and column. Row increases downward,
// column increases rightward.
type Coord struct {
	Row int
	Col int
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is a square matrix of numbered tiles with an attached score.
// The size is fixed at construction. The zero value is not usable;
// create boards with NewBoard or RandomBoard.
//
// Board performs no locking; callers sharing one instance across
// goroutines must serialize access themselves.
type Board struct {
	tiles [][]int
	score int
}

// NewBoard creates a board from the given matrix of tiles.
// The matrix must be non-empty and square, and every entry must be a
// positive tile value or Empty. The input is copied.
func NewBoard(tiles [][]int) (*Board, error) {
	n := len(tiles)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrInvalidBoard)
	}
	copied := make([][]int, n)
	for i, row := range tiles {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidBoard, i, len(row), n)
		}
		for j, v := range row {
			if v < Empty {
				return nil, fmt.Errorf("%w: entry (%d,%d) = %d", ErrInvalidBoard, i, j, v)
			}
		}
		copied[i] = make([]int, n)
		copy(copied[i], row)
	}
	return &Board{tiles: copied}, nil
}

// Size returns the number of rows (equal to the number of columns).
func (b *Board) Size() int {
	return len(b.tiles)
}

// Score returns the accumulated score. The score starts at zero and is
// increased by CollapseAt only; it never decreases.
func (b *Board) Score() int {
	return b.score
}

// At returns the tile value at (i, j), or Empty for an empty cell.
func (b *Board) At(i, j int) (int, error) {
	if !b.inBounds(i, j) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, i, j)
	}
	return b.tiles[i][j], nil
}

// Tiles returns a copy of the tile matrix. Mutating the copy does not
// affect the board.
func (b *Board) Tiles() [][]int {
	out := make([][]int, len(b.tiles))
	for i, row := range b.tiles {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

// MaxTile returns the largest tile value on the board.
// Empty cells count as zero, so a fully empty board yields 0.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, row := range b.tiles {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// inBounds reports whether (i, j) addresses a cell on the board.
func (b *Board) inBounds(i, j int) bool {
	n := len(b.tiles)
	return i >= 0 && i < n && j >= 0 && j < n
}

// neighbors returns the existing orthogonal neighbors of (i, j) in the
// order up, down, left, right. Edge and corner cells yield fewer than
// four. The caller guarantees (i, j) is in bounds.
func (b *Board) neighbors(i, j int) []Coord {
	n := len(b.tiles)
	out := make([]Coord, 0, 4)
	if i > 0 {
		out = append(out, Coord{i - 1, j})
	}
	if i < n-1 {
		out = append(out, Coord{i + 1, j})
	}
	if j > 0 {
		out = append(out, Coord{i, j - 1})
	}
	if j < n-1 {
		out = append(out, Coord{i, j + 1})
	}
	return out
}

// component returns the set of cells connected to start through paths of
// tiles whose value equals the start cell's value. The start cell itself
// is always included. The search is a breadth-first frontier expansion;
// the match value is captured before traversal, so the result is
// unaffected by later board mutation.
func (b *Board) component(start Coord) map[Coord]struct{} {
	value := b.tiles[start.Row][start.Col]
	seen := make(map[Coord]struct{})
	frontier := map[Coord]struct{}{start: {}}
	for len(frontier) > 0 {
		next := make(map[Coord]struct{})
		for c := range frontier {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			for _, nb := range b.neighbors(c.Row, c.Col) {
				if _, ok := seen[nb]; ok {
					continue
				}
				if b.tiles[nb.Row][nb.Col] == value {
					next[nb] = struct{}{}
				}
			}
		}
		frontier = next
	}
	return seen
}

// String renders the board one row per line, with empty cells shown as
// a dot. Columns are padded to the widest tile for alignment.
func (b *Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	if width < 1 {
		width = 1
	}
	var sb strings.Builder
	for i, row := range b.tiles {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v == Empty {
				sb.WriteString(fmt.Sprintf("%*s", width, "."))
			} else {
				sb.WriteString(fmt.Sprintf("%*d", width, v))
			}
		}
	}
	return sb.String()
}
