package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anubhav/gitaguide/internal/router"
	"github.com/anubhav/gitaguide/internal/screen"
	"github.com/anubhav/gitaguide/internal/ui/components"
	"github.com/anubhav/gitaguide/internal/ui/layout"
	"github.com/anubhav/gitaguide/internal/ui/theme"
)

const maxNameLen = 40

// LoginScreen asks the seeker for their name before opening the conversation.
type LoginScreen struct {
	input       components.TextInput
	chatFactory func(name string) screen.Screen
	hint        string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen. chatFactory builds the chat screen for the
// entered name.
func New(chatFactory func(name string) screen.Screen) *LoginScreen {
	return &LoginScreen{
		input:       components.NewTextInput("Your name...", maxNameLen),
		chatFactory: chatFactory,
	}
}

func (l *LoginScreen) Title() string {
	return "Welcome"
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name := strings.TrimSpace(l.input.Value())
		if name == "" {
			l.hint = "Please tell me your name first."
			return l, nil
		}
		chatScreen := l.chatFactory(name)
		return l, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: chatScreen}
		}
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *LoginScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Render("🕉  Welcome, Seeker")

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render("Walk the path of the Bhagavad Gita, one question at a time.")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("What shall I call you?")

	card := theme.Card.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			prompt,
			"",
			l.input.View(),
		),
	)

	sections := []string{title, "", subtitle, "", card}

	if l.hint != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(l.hint))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
