package numbertiles

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestRandomTileBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, bound := range []int{2, 3, 5, 10} {
		for i := 0; i < 1000; i++ {
			v := RandomTile(rng, bound)
			if v < 1 || v >= bound {
				t.Fatalf("RandomTile(bound=%d) = %d, want in [1, %d)", bound, v, bound)
			}
		}
	}
}

func TestRandomTileDegenerateBound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, bound := range []int{1, 0, -5} {
		if v := RandomTile(rng, bound); v != 1 {
			t.Errorf("RandomTile(bound=%d) = %d, want 1", bound, v)
		}
	}
}

func TestRandomTileFavorsSmallValues(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	counts := make(map[int]int)
	for i := 0; i < 5000; i++ {
		counts[RandomTile(rng, 10)]++
	}
	if counts[1] <= counts[2] {
		t.Errorf("expected 1 to dominate 2: got %d ones, %d twos", counts[1], counts[2])
	}
	if counts[2] <= counts[9] {
		t.Errorf("expected 2 to dominate 9: got %d twos, %d nines", counts[2], counts[9])
	}
}

func TestRandomBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	b, err := RandomBoard(5, DefaultStartBound, rng)
	if err != nil {
		t.Fatalf("RandomBoard failed: %v", err)
	}
	if b.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", b.Size())
	}
	if b.Score() != 0 {
		t.Errorf("fresh board score = %d, want 0", b.Score())
	}
	for _, row := range b.Tiles() {
		for _, v := range row {
			if v < 1 || v >= DefaultStartBound {
				t.Fatalf("tile %d outside [1, %d)", v, DefaultStartBound)
			}
		}
	}
}

func TestRandomBoardInvalidSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, size := range []int{0, -3} {
		if _, err := RandomBoard(size, DefaultStartBound, rng); !errors.Is(err, ErrInvalidBoard) {
			t.Errorf("RandomBoard(size=%d) error = %v, want ErrInvalidBoard", size, err)
		}
	}
}

func TestRandomBoardDeterministic(t *testing.T) {
	a, err := RandomBoard(6, DefaultStartBound, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("RandomBoard failed: %v", err)
	}
	b, err := RandomBoard(6, DefaultStartBound, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("RandomBoard failed: %v", err)
	}
	if !reflect.DeepEqual(a.Tiles(), b.Tiles()) {
		t.Error("same seed produced different boards")
	}
}

func TestRefillFillsEveryEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	b := mustBoard(t, [][]int{
		{Empty, 4, Empty},
		{Empty, Empty, 2},
		{1, Empty, Empty},
	})
	b.Refill(rng)

	for _, row := range b.Tiles() {
		for _, v := range row {
			if v == Empty {
				t.Fatalf("empty cell survived Refill: %v", b.Tiles())
			}
			if v < 1 || v > 4 {
				t.Errorf("refilled tile %d outside [1, 4]", v)
			}
		}
	}

	// Pre-existing tiles stay put.
	if got, _ := b.At(0, 1); got != 4 {
		t.Errorf("At(0,1) = %d, want 4", got)
	}
	if got, _ := b.At(1, 2); got != 2 {
		t.Errorf("At(1,2) = %d, want 2", got)
	}
	if got, _ := b.At(2, 0); got != 1 {
		t.Errorf("At(2,0) = %d, want 1", got)
	}
}

func TestRefillFullyEmptyBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	b := mustBoard(t, [][]int{
		{Empty, Empty},
		{Empty, Empty},
	})
	b.Refill(rng)

	// The first refilled cell has no positive maximum to bound it, so it
	// becomes 1; every later draw is bounded by what is already placed.
	for _, row := range b.Tiles() {
		for _, v := range row {
			if v != 1 {
				t.Errorf("refill of empty board placed %d, want all ones", v)
			}
		}
	}
}

func TestRefillBoundTracksBoardMax(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	tiles := make([][]int, 10)
	for i := range tiles {
		tiles[i] = make([]int, 10)
	}
	tiles[4][4] = 10
	b := mustBoard(t, tiles)

	b.Refill(rng)

	for _, row := range b.Tiles() {
		for _, v := range row {
			if v < 1 || v > 10 {
				t.Fatalf("refilled tile %d outside [1, 10]", v)
			}
		}
	}
	if got := b.MaxTile(); got != 10 {
		t.Errorf("MaxTile() after refill = %d, want 10", got)
	}
}
