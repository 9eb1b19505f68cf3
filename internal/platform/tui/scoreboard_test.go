package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/diffusion-adventure/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "hall.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, r := range []storage.Run{
		{Player: "ada", PatternScore: 3, AttentionScore: 4, Duration: 3 * time.Minute},
		{Player: "bob", PatternScore: 1, AttentionScore: 3, Duration: 2 * time.Minute},
		{Player: "cy", PatternScore: 3, AttentionScore: 4, Duration: 4 * time.Minute},
	} {
		r.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardTabs(t *testing.T) {
	sb := NewScoreboardModel(seededStore(t), 100, 30)

	if sb.tab != tabBest || len(sb.runs) != 3 || sb.runs[0].Player != "ada" {
		t.Fatalf("best tab = %+v", sb.runs)
	}

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb = next.(ScoreboardModel)
	if sb.tab != tabRecent || sb.runs[0].Player != "cy" {
		t.Errorf("recent tab first run = %s, expected cy", sb.runs[0].Player)
	}

	next, _ = sb.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	sb = next.(ScoreboardModel)
	if sb.tab != tabBest {
		t.Errorf("tab = %d after shift+tab, expected best", sb.tab)
	}
}

func TestScoreboardStatsLine(t *testing.T) {
	sb := NewScoreboardModel(seededStore(t), 100, 30)
	line := sb.statsLine()
	for _, want := range []string{"3 runs by 3 players", "2 perfect", "fastest 2m0s"} {
		if !strings.Contains(line, want) {
			t.Errorf("statsLine() = %q, missing %q", line, want)
		}
	}
	if !strings.Contains(sb.View(), "HALL OF FAME") {
		t.Error("view missing title")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	sb := NewScoreboardModel(nil, 80, 24)
	if sb.statsLine() != "" {
		t.Error("no stats without a store")
	}
	if !strings.Contains(sb.View(), "not available") {
		t.Error("expected an unavailable message")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	sb := NewScoreboardModel(nil, 80, 24)
	next, cmd := sb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should go back and end a standalone program")
	}

	sb.embedded = true
	next, cmd = sb.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd != nil {
		t.Error("embedded hall of fame leaves quitting to the adventure")
	}
}
