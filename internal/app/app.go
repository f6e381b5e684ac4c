package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	conv "github.com/anubhav/gitaguide/internal/chat"
	"github.com/anubhav/gitaguide/internal/guidance"
	"github.com/anubhav/gitaguide/internal/llm"
	"github.com/anubhav/gitaguide/internal/progress"
	"github.com/anubhav/gitaguide/internal/router"
	"github.com/anubhav/gitaguide/internal/screen"
	chatscreen "github.com/anubhav/gitaguide/internal/screens/chat"
	"github.com/anubhav/gitaguide/internal/screens/dashboard"
	"github.com/anubhav/gitaguide/internal/screens/login"
	"github.com/anubhav/gitaguide/internal/ui/layout"
)

// Options carry the wired dependencies for the TUI.
type Options struct {
	Provider      llm.Provider
	ProgressStore *progress.Store
	Log           *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the login screen.
func newAppModel(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	svc := guidance.NewService(opts.Provider)

	chatFactory := func(name string) screen.Screen {
		session := conv.NewSession(context.Background(), name, guidance.Greeting(name), opts.ProgressStore, log)
		dashboardFactory := func() screen.Screen {
			return dashboard.New(session.UserName, session.Progress)
		}
		return chatscreen.New(session, svc, dashboardFactory)
	}

	return AppModel{
		router: router.New(login.New(chatFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
