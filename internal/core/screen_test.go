package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 4)

	if s.Width() != 20 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 20x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(" ", 20) {
			t.Errorf("row %d = %q, expected blanks", y, s.Row(y))
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 1)
	end := s.DrawText(1, 0, "hello", ColorCyan)

	if end != 6 {
		t.Errorf("DrawText returned %d, expected 6", end)
	}
	if s.Row(0) != " hello      " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(1, 0).Color != ColorCyan {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawTextWide(t *testing.T) {
	s := NewScreen(6, 1)
	end := s.DrawText(0, 0, "界a", ColorDefault)

	if end != 3 {
		t.Errorf("DrawText returned %d, expected 3 (wide rune takes two cells)", end)
	}
	if s.GetCell(1, 0).Rune != 0 {
		t.Error("second half of a wide rune should be a marker cell")
	}
	if s.Row(0) != "界a   " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorDefault)

	if s.Row(0) != "    ab    " {
		t.Errorf("Row(0) = %q, expected centered text", s.Row(0))
	}
}

func TestScreenDrawLabelBox(t *testing.T) {
	s := NewScreen(10, 3)
	r := s.DrawLabelBox(0, 0, "cat", ColorDefault)

	if r.W != 7 || r.H != 3 {
		t.Errorf("box = %+v, expected 7x3", r)
	}
	expected := []string{"┌─────┐   ", "│ cat │   ", "└─────┘   "}
	for y, want := range expected {
		if s.Row(y) != want {
			t.Errorf("row %d = %q, expected %q", y, s.Row(y), want)
		}
	}
	if !s.Contains("cat") {
		t.Error("Contains(cat) should be true")
	}
}

func TestClampAndWrap(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{3, 1, 5, 3},
		{0, 1, 5, 1},
		{9, 1, 5, 5},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if Wrap(-1, 4) != 3 || Wrap(4, 4) != 0 || Wrap(2, 4) != 2 {
		t.Error("Wrap should cycle through [0, n)")
	}
}

func TestLevelID(t *testing.T) {
	if !LevelWords.IsLesson() || !LevelStory.IsLesson() {
		t.Error("levels 1-6 should be lessons")
	}
	if LevelWelcome.IsLesson() || LevelCompletion.IsLesson() {
		t.Error("welcome and completion are not lessons")
	}
	if LevelStory.Next() != LevelCompletion || LevelCompletion.Next() != LevelCompletion {
		t.Error("Next() should stop at completion")
	}
	if LevelID(8).Valid() || LevelID(-1).Valid() {
		t.Error("ids outside 0..7 are invalid")
	}
}
