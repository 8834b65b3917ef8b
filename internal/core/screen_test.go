package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	// Out of bounds is silently ignored / returns space
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '▓', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '▓' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red '▓'", cell)
	}

	if cell := s.GetCell(99, 99); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected default space", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(0, 0, 'A', ColorGreen)

	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear left %+v at (0,0)", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'X' {
		t.Errorf("content lost on grow, Get(2, 2) = %q", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'X' {
		t.Errorf("content lost on shrink, Get(2, 2) = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi", ColorWhite)
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place runes")
	}

	// Clipped at the right edge, no panic
	s.DrawText(8, 0, "long", ColorWhite)
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should draw the visible prefix")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)

	s.FillRect(1, 1, 3, 2, '▓', ColorRed)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '▓' {
				t.Errorf("FillRect missed (%d, %d)", x, y)
			}
		}
	}
	if s.Get(4, 1) == '▓' || s.Get(1, 3) == '▓' {
		t.Error("FillRect overflowed its bounds")
	}
}

func TestScreenTint(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(0, 0, '█', ColorGreen)
	s.SetCell(4, 4, '▓', ColorRed)

	s.Tint(ColorGray)

	if c := s.GetCell(0, 0); c.Color != ColorGray || c.Rune != '█' {
		t.Errorf("Tint should recolor but keep runes, got %+v", c)
	}
	if c := s.GetCell(4, 4); c.Color != ColorGray {
		t.Errorf("Tint missed (4, 4): %+v", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	expected := "a  \n  b"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should join rows with newlines")
	}
}
