package dashboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/anubhav/gitaguide/internal/progress"
	"github.com/anubhav/gitaguide/internal/router"
)

func sample() progress.Progress {
	return progress.Progress{
		DaysActive:       3,
		QuestionsAsked:   12,
		VersesSaved:      4,
		LastActiveDate:   "2024-01-03",
		ExploredChapters: []int{1, 2, 12},
	}
}

func TestDashboard_View(t *testing.T) {
	d := New("Arjun", sample())

	view := d.View(100, 30)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	if !strings.Contains(view, "Arjun") {
		t.Error("view should carry the seeker's name")
	}
	if !strings.Contains(view, "2024-01-03") {
		t.Error("view should show the last active date")
	}
}

func TestDashboard_EscPops(t *testing.T) {
	d := New("Arjun", sample())

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the dashboard")
	}
}

func TestDashboard_Status(t *testing.T) {
	d := New("Arjun", sample())
	if got := d.Status(); got != "Arjun · day 3" {
		t.Errorf("status = %q", got)
	}
}
