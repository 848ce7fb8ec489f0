package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenPenColor(t *testing.T) {
	s := NewScreen(10, 2)

	s.SetColor(ColorOrange)
	s.DrawText(0, 0, "2048")
	s.SetColor(ColorDefault)
	s.Set(5, 0, '|')

	for x := 0; x < 4; x++ {
		if c := s.GetCell(x, 0); c.Color != ColorOrange {
			t.Errorf("cell %d color = %d, expected orange", x, c.Color)
		}
	}
	if c := s.GetCell(5, 0); c.Color != ColorDefault {
		t.Errorf("cell 5 color = %d, expected default", c.Color)
	}

	s.Clear()
	s.Set(0, 1, 'x')
	if c := s.GetCell(0, 1); c.Color != ColorDefault {
		t.Error("Clear should reset the pen color")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawText(0, 0, "abcde")

	s.Resize(3, 2)
	if got := s.Row(0); got != "abc" {
		t.Errorf("Row(0) after shrink = %q, expected %q", got, "abc")
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "abc   " {
		t.Errorf("Row(0) after grow = %q, expected %q", got, "abc   ")
	}
	if s.Height() != 3 {
		t.Errorf("Height() = %d, expected 3", s.Height())
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3))

	expected := strings.Join([]string{
		"┌──┐",
		"│  │",
		"└──┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "hi")
	if got := s.Row(0); got != "    hi    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(20, 10, 6, 4)
	if r.X != 7 || r.Y != 3 {
		t.Errorf("CenteredRect = %+v, expected origin (7, 3)", r)
	}

	small := CenteredRect(4, 4, 10, 10)
	if small.X != 0 || small.Y != 0 {
		t.Errorf("CenteredRect on small area = %+v, expected origin (0, 0)", small)
	}
	if !r.Contains(7, 3) || r.Contains(13, 3) {
		t.Error("Contains should include origin and exclude right edge")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Set/Has mismatch")
	}
	if f.Empty() {
		t.Error("frame with an action should not be empty")
	}

	f.Clear()
	if f.Has(ActionLeft) || !f.Empty() {
		t.Error("Clear should remove all actions")
	}

	if ActionRight.String() != "Right" {
		t.Errorf("ActionRight.String() = %q", ActionRight.String())
	}
}
