package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/anubhav/gitaguide/internal/ui/theme"
)

// StatCard displays a single statistic with an icon and a label.
type StatCard struct {
	Icon  string
	Label string
	Value int
	Width int
}

// NewStatCard creates a new stat card.
func NewStatCard(icon, label string, value, width int) StatCard {
	return StatCard{
		Icon:  icon,
		Label: label,
		Value: value,
		Width: width,
	}
}

// View renders the stat card.
func (c StatCard) View() string {
	value := theme.StatValue.Render(fmt.Sprintf("%s %d", c.Icon, c.Value))
	label := theme.StatLabel.Render(c.Label)

	inner := lipgloss.JoinVertical(lipgloss.Center, value, label)

	return theme.Card.
		Width(c.Width).
		Align(lipgloss.Center).
		Render(inner)
}
