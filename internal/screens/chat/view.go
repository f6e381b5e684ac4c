package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	conv "github.com/anubhav/gitaguide/internal/chat"
	"github.com/anubhav/gitaguide/internal/ui/theme"
)

var thinkFrames = []string{"·", "··", "···", "··"}

func statusLine(name string, daysActive int) string {
	return fmt.Sprintf("%s · day %d", name, daysActive)
}

func (c *ChatScreen) View(width, height int) string {
	inputArea := c.renderInputArea(width)
	inputHeight := lipgloss.Height(inputArea)

	transcript := c.renderTranscript(width, height-inputHeight-1)

	return transcript + "\n" + inputArea
}

// renderTranscript renders the conversation, keeping the newest lines
// visible when it overflows.
func (c *ChatScreen) renderTranscript(width, height int) string {
	var blocks []string
	for i, m := range c.session.Messages {
		blocks = append(blocks, c.renderBubble(i, m, width))
	}

	if c.session.Awaiting {
		frame := thinkFrames[c.thinkFrame%len(thinkFrames)]
		thinking := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("  The guide is reflecting " + frame)
		blocks = append(blocks, thinking)
	}

	all := strings.Join(blocks, "\n\n")

	lines := strings.Split(all, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	body := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(body)
}

// renderBubble renders one message, right-aligned for the seeker and
// left-aligned for the guide.
func (c *ChatScreen) renderBubble(index int, m conv.Message, width int) string {
	bubbleWidth := width * 7 / 10
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	if m.Role == conv.RoleUser {
		style := theme.BubbleUser
		if lipgloss.Width(m.Content) > bubbleWidth {
			style = style.Width(bubbleWidth)
		}
		bubble := style.Render(m.Content)
		return lipgloss.PlaceHorizontal(width-2, lipgloss.Right, bubble)
	}

	style := theme.BubbleGuide
	if index == c.selected {
		style = theme.BubbleGuideSelected
	}
	if lipgloss.Width(m.Content) > bubbleWidth {
		style = style.Width(bubbleWidth)
	}
	bubble := style.Render(m.Content)

	if index == c.selected {
		marker := lipgloss.NewStyle().
			Foreground(theme.Primary).
			Render("  📿 selected")
		bubble += "\n" + marker
	}

	return "  " + strings.ReplaceAll(bubble, "\n", "\n  ")
}

func (c *ChatScreen) renderInputArea(width int) string {
	divider := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-4, 4)))

	prompt := "  " + c.input.View()
	if c.session.Awaiting {
		prompt = "  " + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Waiting for the guide...")
	}

	return divider + "\n" + prompt
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
