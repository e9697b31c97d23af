package numbertiles

import (
	"fmt"
	"math"
	"math/rand"
)

// paretoShape is the shape parameter for tile-value draws. Shape 1 makes
// small values far more likely than large ones.
const paretoShape = 1.0

// DefaultStartBound is the exclusive upper bound on tile values for
// randomly generated starting boards, so fresh boards contain only
// ones and twos.
const DefaultStartBound = 3

// boundedPareto draws from a Pareto distribution with the given shape,
// rejecting samples until one falls strictly below bound. The caller
// guarantees bound > 1; Pareto samples are always >= 1, so a smaller
// bound would never terminate.
func boundedPareto(rng *rand.Rand, shape, bound float64) float64 {
	for {
		// Inverse-CDF sampling: 1-Float64 is uniform in (0, 1].
		v := 1.0 / math.Pow(1.0-rng.Float64(), 1.0/shape)
		if v < bound {
			return v
		}
	}
}

// RandomTile draws a tile value in [1, bound) from the bounded Pareto
// distribution. Bounds of 1 or less cannot be satisfied by rejection
// sampling, so the minimum tile value 1 is returned instead; this covers
// refilling a fully empty board.
func RandomTile(rng *rand.Rand, bound int) int {
	if bound <= 1 {
		return 1
	}
	return int(boundedPareto(rng, paretoShape, float64(bound)))
}

// Refill assigns a freshly drawn tile to every empty cell. The draw for
// each cell is bounded by the board's maximum at that moment, so tiles
// placed earlier in the same pass count toward the bound for later ones.
// The score is unaffected.
func (b *Board) Refill(rng *rand.Rand) {
	for i := range b.tiles {
		for j, v := range b.tiles[i] {
			if v == Empty {
				b.tiles[i][j] = RandomTile(rng, b.MaxTile())
			}
		}
	}
}

// RandomBoard creates a size×size board of random tiles drawn from the
// bounded Pareto distribution with the given exclusive upper bound.
// Pass DefaultStartBound for a standard starting board.
func RandomBoard(size, bound int, rng *rand.Rand) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidBoard, size)
	}
	tiles := make([][]int, size)
	for i := range tiles {
		tiles[i] = make([]int, size)
		for j := range tiles[i] {
			tiles[i][j] = RandomTile(rng, bound)
		}
	}
	return &Board{tiles: tiles}, nil
}
