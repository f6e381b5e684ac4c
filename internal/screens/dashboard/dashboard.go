package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anubhav/gitaguide/internal/chapters"
	"github.com/anubhav/gitaguide/internal/progress"
	"github.com/anubhav/gitaguide/internal/router"
	"github.com/anubhav/gitaguide/internal/screen"
	"github.com/anubhav/gitaguide/internal/ui/components"
	"github.com/anubhav/gitaguide/internal/ui/layout"
	"github.com/anubhav/gitaguide/internal/ui/theme"
)

const (
	statCardWidth = 18
	gridColumns   = 6
)

// DashboardScreen shows the seeker's journey so far.
type DashboardScreen struct {
	userName string
	prog     progress.Progress
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)
var _ screen.StatusProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen over a snapshot of the seeker's progress.
func New(userName string, prog progress.Progress) *DashboardScreen {
	return &DashboardScreen{
		userName: userName,
		prog:     prog,
	}
}

func (d *DashboardScreen) Title() string {
	return "Your Journey"
}

func (d *DashboardScreen) Status() string {
	return fmt.Sprintf("%s · day %d", d.userName, d.prog.DaysActive)
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back to chat"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "q":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s's Journey Through the Gita", d.userName))

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		components.NewStatCard("🌅", "Days Active", d.prog.DaysActive, statCardWidth).View(),
		" ",
		components.NewStatCard("❓", "Questions Asked", d.prog.QuestionsAsked, statCardWidth).View(),
		" ",
		components.NewStatCard("📿", "Verses Saved", d.prog.VersesSaved, statCardWidth).View(),
	)

	total := chapters.MaxChapter - chapters.MinChapter + 1
	bar := components.NewProgressBar("Chapters Explored",
		len(d.prog.ExploredChapters), total, min(width-8, 60)).View()

	grid := d.renderChapterGrid()

	lastActive := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Last active: " + d.prog.LastActiveDate)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		cards,
		"",
		bar,
		"",
		grid,
		"",
		lastActive,
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderChapterGrid renders all eighteen chapters, highlighting the
// explored ones.
func (d *DashboardScreen) renderChapterGrid() string {
	explored := make(map[int]bool, len(d.prog.ExploredChapters))
	for _, ch := range d.prog.ExploredChapters {
		explored[ch] = true
	}

	var rows []string
	var row []string
	for ch := chapters.MinChapter; ch <= chapters.MaxChapter; ch++ {
		cell := fmt.Sprintf("%2d", ch)
		if explored[ch] {
			row = append(row, theme.ChapterExplored.Render(cell))
		} else {
			row = append(row, theme.ChapterUnexplored.Render(cell))
		}
		if len(row) == gridColumns {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}

	return strings.Join(rows, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
