package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// StatCard is a small bordered card: label, large value, and a colored note
// line such as "+15% from last month".
type StatCard struct {
	Label string
	Value string
	Note  string
	Color lipgloss.Color // value color; zero means TextPrimary
	Width int
}

// Render returns the styled card.
func (c StatCard) Render() string {
	width := c.Width
	if width <= 0 {
		width = 20
	}
	color := c.Color
	if color == "" {
		color = styles.TextPrimary
	}

	inner := width - 4
	lines := []string{
		styles.Label.Render(styles.TruncateWithEllipsis(c.Label, inner)),
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(c.Value),
	}
	if c.Note != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(c.Note))
	}

	return styles.Card.
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// StatRow lays out cards side by side, splitting width evenly.
func StatRow(cards []StatCard, width int) string {
	if len(cards) == 0 {
		return ""
	}
	each := (width - (len(cards) - 1)) / len(cards)
	blocks := make([]string, len(cards))
	for i, c := range cards {
		c.Width = each
		blocks[i] = c.Render()
	}
	return Columns(blocks...)
}

// GaugeColor color-codes value against [warn, critical] thresholds. When
// highIsGood, values at or below critical are errors; otherwise values at
// or above critical are.
func GaugeColor(value, warn, critical float64, highIsGood bool) lipgloss.Color {
	if highIsGood {
		switch {
		case value <= critical:
			return styles.StatusError
		case value <= warn:
			return styles.StatusWarn
		default:
			return styles.StatusOK
		}
	}
	switch {
	case value >= critical:
		return styles.StatusError
	case value >= warn:
		return styles.StatusWarn
	default:
		return styles.StatusOK
	}
}
