package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3, 2) = %q, want %q", got, '#')
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, want space", got)
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, want space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10, 0) = %q, want space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetCell(1, 1, '5', ColorBrightYellow)

	cell := s.GetCell(1, 1)
	if cell.Rune != '5' {
		t.Errorf("GetCell(1, 1).Rune = %q, want %q", cell.Rune, '5')
	}
	if cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(1, 1).Color = %d, want ColorBrightYellow", cell.Color)
	}

	// Out-of-bounds reads are default-colored spaces
	cell = s.GetCell(9, 9)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("GetCell(9, 9) = %+v, want default space", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'x', ColorRed)

	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(2, 2) = %+v, want default space", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if got := s.Row(1); got != "  hi      " {
		t.Errorf("Row(1) = %q, want %q", got, "  hi      ")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q, want %q", got, "        ab")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "abcd")
	if got := s.Row(0); got != "   abcd   " {
		t.Errorf("Row(0) = %q, want %q", got, "   abcd   ")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'a')
	s.Set(5, 3, 'z')

	s.Resize(4, 3)

	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size after resize = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != 'a' {
		t.Errorf("Get(1, 1) after shrink = %q, want %q", got, 'a')
	}
	// 'z' was outside the new bounds
	if got := s.Get(5, 3); got != ' ' {
		t.Errorf("Get(5, 3) after shrink = %q, want space", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if lines := strings.Split(s.String(), "\n"); len(lines) != 2 {
		t.Errorf("String() has %d lines, want 2", len(lines))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(0, 0, 5, 4)

	if got := s.Get(0, 0); got != '┌' {
		t.Errorf("top-left = %q, want ┌", got)
	}
	if got := s.Get(4, 0); got != '┐' {
		t.Errorf("top-right = %q, want ┐", got)
	}
	if got := s.Get(0, 3); got != '└' {
		t.Errorf("bottom-left = %q, want └", got)
	}
	if got := s.Get(4, 3); got != '┘' {
		t.Errorf("bottom-right = %q, want ┘", got)
	}
	if got := s.Get(2, 0); got != '─' {
		t.Errorf("top edge = %q, want ─", got)
	}
	if got := s.Get(0, 2); got != '│' {
		t.Errorf("left edge = %q, want │", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
