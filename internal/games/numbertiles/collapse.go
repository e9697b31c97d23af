package numbertiles

import "fmt"

// CollapseAt removes every tile connected to (i, j) through a path of
// equal-valued neighbors, except the pivot at (i, j) itself. Each removed
// tile's value is added to the score. The pivot's value is then
// incremented by one — even when the component has size one — and the
// board is compacted with Drop.
//
// Collapsing an out-of-range coordinate returns ErrOutOfRange; collapsing
// an empty cell returns ErrEmptyCell. In both cases the board and score
// are left untouched.
func (b *Board) CollapseAt(i, j int) error {
	if !b.inBounds(i, j) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, i, j)
	}
	if b.tiles[i][j] == Empty {
		return fmt.Errorf("%w: (%d,%d)", ErrEmptyCell, i, j)
	}

	pivot := Coord{i, j}
	for c := range b.component(pivot) {
		if c == pivot {
			continue
		}
		b.score += b.tiles[c.Row][c.Col]
		b.tiles[c.Row][c.Col] = Empty
	}
	b.tiles[i][j]++
	b.Drop()
	return nil
}

// Drop compacts every row independently: empty cells float to a
// contiguous prefix on the left while the remaining tiles keep their
// relative order. Applying Drop twice is the same as applying it once.
// The score is unaffected.
func (b *Board) Drop() {
	for _, row := range b.tiles {
		compactRow(row)
	}
}

// compactRow rearranges one row in place so that empties form a left
// prefix and tiles keep their order.
func compactRow(row []int) {
	write := len(row)
	for i := len(row) - 1; i >= 0; i-- {
		if row[i] != Empty {
			write--
			row[write] = row[i]
		}
	}
	for i := 0; i < write; i++ {
		row[i] = Empty
	}
}

// IsCollapsibleAt reports whether the tile at (i, j) has at least one
// orthogonal neighbor with the same value, i.e. whether collapsing there
// removes anything. Empty cells are never collapsible.
func (b *Board) IsCollapsibleAt(i, j int) (bool, error) {
	if !b.inBounds(i, j) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, i, j)
	}
	v := b.tiles[i][j]
	if v == Empty {
		return false, nil
	}
	for _, nb := range b.neighbors(i, j) {
		if b.tiles[nb.Row][nb.Col] == v {
			return true, nil
		}
	}
	return false, nil
}

// IsCollapsible reports whether any cell on the board is collapsible.
// When it returns false the player has no move left that scores, which
// callers treat as the game-over signal.
func (b *Board) IsCollapsible() bool {
	for i := range b.tiles {
		for j := range b.tiles[i] {
			ok, err := b.IsCollapsibleAt(i, j)
			if err == nil && ok {
				return true
			}
		}
	}
	return false
}
