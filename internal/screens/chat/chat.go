package chat

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	conv "github.com/anubhav/gitaguide/internal/chat"
	"github.com/anubhav/gitaguide/internal/guidance"
	"github.com/anubhav/gitaguide/internal/llm"
	"github.com/anubhav/gitaguide/internal/router"
	"github.com/anubhav/gitaguide/internal/screen"
	"github.com/anubhav/gitaguide/internal/ui/components"
	"github.com/anubhav/gitaguide/internal/ui/layout"
)

const (
	maxQuestionLen = 500
	thinkInterval  = 400 * time.Millisecond
)

// ChatScreen is the conversation between the seeker and the guide.
type ChatScreen struct {
	session *conv.Session
	svc     *guidance.Service

	input            components.TextInput
	selected         int // index into session.Messages, -1 when nothing is selected
	thinkFrame       int
	dashboardFactory func() screen.Screen
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.StatusProvider = (*ChatScreen)(nil)

// New creates a ChatScreen over an open session. dashboardFactory builds
// the progress dashboard when the seeker asks for it.
func New(session *conv.Session, svc *guidance.Service, dashboardFactory func() screen.Screen) *ChatScreen {
	return &ChatScreen{
		session:          session,
		svc:              svc,
		input:            components.NewTextInput("Ask about the Gita...", maxQuestionLen),
		selected:         -1,
		dashboardFactory: dashboardFactory,
	}
}

func (c *ChatScreen) Title() string {
	return "Gita Guide"
}

// Status reports the seeker and their journey day for the header.
func (c *ChatScreen) Status() string {
	return statusLine(c.session.UserName, c.session.Progress.DaysActive)
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.session.Awaiting {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
	}
	if len(c.session.Messages) > 1 {
		hints = append(hints,
			layout.KeyHint{Key: "↑/↓", Description: "Select answer"},
			layout.KeyHint{Key: "Ctrl+S", Description: "Save verse"},
		)
	}
	hints = append(hints,
		layout.KeyHint{Key: "Ctrl+P", Description: "Progress"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.session.Reply(context.Background(), msg.Text)
		c.selected = len(c.session.Messages) - 1
		return c, nil

	case failMsg:
		c.session.Fail(context.Background(), guidance.ApologyMessage, msg.Err)
		c.selected = -1
		return c, nil

	case thinkTickMsg:
		if !c.session.Awaiting {
			return c, nil
		}
		c.thinkFrame++
		return c, thinkTick()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return c.submit()

	case "up":
		c.selectPrev()
		return c, nil

	case "down":
		c.selectNext()
		return c, nil

	case "ctrl+s":
		if c.selected >= 0 {
			c.session.SaveVerse(context.Background(), c.selected)
		}
		return c, nil

	case "ctrl+p":
		// Replies are delivered to the active screen only, so the
		// dashboard stays closed while a request is in flight.
		if c.session.Awaiting {
			return c, nil
		}
		dash := c.dashboardFactory()
		return c, func() tea.Msg {
			return router.PushScreenMsg{Screen: dash}
		}
	}

	if c.session.Awaiting {
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// submit sends the typed question to the guide.
func (c *ChatScreen) submit() (screen.Screen, tea.Cmd) {
	if !c.session.Submit(context.Background(), c.input.Value()) {
		return c, nil
	}
	c.input.Reset()
	c.selected = -1
	c.thinkFrame = 0
	return c, tea.Batch(c.requestGuidance(), thinkTick())
}

// requestGuidance asks the guide asynchronously. The transcript is copied
// so the in-flight request never races the update loop.
func (c *ChatScreen) requestGuidance() tea.Cmd {
	transcript := make([]conv.Message, len(c.session.Messages))
	copy(transcript, c.session.Messages)
	userName := c.session.UserName
	snapshot := c.session.Progress
	sessionID := c.session.ID

	return func() tea.Msg {
		ctx := llm.WithSession(context.Background(), sessionID)
		text, err := c.svc.Guide(ctx, transcript, userName, snapshot)
		if err != nil {
			return failMsg{Err: err}
		}
		return replyMsg{Text: text}
	}
}

// selectPrev moves the selection to the previous guide answer.
func (c *ChatScreen) selectPrev() {
	start := c.selected
	if start < 0 {
		start = len(c.session.Messages)
	}
	for i := start - 1; i > 0; i-- {
		if c.session.Messages[i].Role == conv.RoleModel {
			c.selected = i
			return
		}
	}
}

// selectNext moves the selection to the next guide answer.
func (c *ChatScreen) selectNext() {
	if c.selected < 0 {
		return
	}
	for i := c.selected + 1; i < len(c.session.Messages); i++ {
		if c.session.Messages[i].Role == conv.RoleModel {
			c.selected = i
			return
		}
	}
	// Past the last answer clears the selection.
	c.selected = -1
}

func thinkTick() tea.Cmd {
	return tea.Tick(thinkInterval, func(t time.Time) tea.Msg {
		return thinkTickMsg(t)
	})
}
