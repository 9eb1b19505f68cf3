package levels

import (
	"testing"

	"github.com/vovakirdan/diffusion-adventure/internal/core"
)

func TestLevelsAreDenseAndOrdered(t *testing.T) {
	if Count() != 8 {
		t.Fatalf("Count() = %d, expected 8", Count())
	}
	for i, lvl := range Levels {
		if int(lvl.ID) != i {
			t.Errorf("Levels[%d].ID = %d, expected index", i, lvl.ID)
		}
		if lvl.Title == "" || lvl.Icon == "" {
			t.Errorf("level %d is missing display metadata", i)
		}
	}
}

func TestLessonsHaveContent(t *testing.T) {
	lessons := Lessons()
	if len(lessons) != core.LessonCount {
		t.Fatalf("Lessons() returned %d, expected %d", len(lessons), core.LessonCount)
	}
	for _, lvl := range lessons {
		if lvl.Explanation == "" || lvl.Activity == "" || lvl.NextLabel == "" || lvl.Badge == "" {
			t.Errorf("lesson %v is missing content: %+v", lvl.ID, lvl)
		}
	}
	if len(Badges()) != 6 || Badges()[0] != "Word Master" {
		t.Errorf("Badges() = %v", Badges())
	}
}

func TestGet(t *testing.T) {
	if Get(core.LevelPatterns).Title != "The Pattern Detective" {
		t.Error("Get(3) returned the wrong level")
	}
	if Get(core.LevelID(8)) != nil || Get(core.LevelID(-1)) != nil {
		t.Error("Get should return nil outside 0..7")
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		id       core.LevelID
		expected float64
	}{
		{core.LevelWelcome, 0},
		{core.LevelPatterns, 0.5},
		{core.LevelStory, 1},
		{core.LevelCompletion, 1},
	}
	for _, tc := range tests {
		if got := ProgressPercent(tc.id); got != tc.expected {
			t.Errorf("ProgressPercent(%v) = %v, expected %v", tc.id, got, tc.expected)
		}
	}
}
