package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// ServiceCard shows a subscription plan.
type ServiceCard struct {
	Name        string
	Description string
	Price       float64
	Period      string // "monthly", "yearly"
	ROI         string
	Features    []string
	Popular     bool
	Subscribers float64
	Width       int
}

// periodSuffix abbreviates the billing period, "/mo" or "/yr".
func periodSuffix(period string) string {
	switch strings.ToLower(period) {
	case "monthly":
		return "/mo"
	case "yearly":
		return "/yr"
	case "":
		return ""
	default:
		return "/" + period
	}
}

// SplitFeatures splits a "; "-separated feature list.
func SplitFeatures(s string) []string {
	var out []string
	for f := range strings.SplitSeq(s, ";") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Render returns the styled plan card as a multi-line block.
func (s ServiceCard) Render() string {
	width := s.Width
	if width <= 0 {
		width = 36
	}
	inner := max(width-4, 10)

	name := lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true).
		Render(styles.TruncateWithEllipsis(s.Name, inner))
	lines := []string{name}
	if s.Popular {
		lines = append(lines, styles.Pill("Most Popular", styles.AccentPrimary))
	}

	price := lipgloss.NewStyle().Foreground(styles.AccentGold).Bold(true).Render(WholeMoney(s.Price)) +
		styles.Label.Render(periodSuffix(s.Period))
	lines = append(lines,
		price,
		lipgloss.NewStyle().Foreground(styles.TextSecondary).Width(inner).Render(s.Description),
	)

	for _, f := range s.Features {
		lines = append(lines, styles.Green("✓ ")+lipgloss.NewStyle().Foreground(styles.TextPrimary).
			Render(styles.TruncateWithEllipsis(f, inner-2)))
	}

	lines = append(lines,
		styles.Label.Render("ROI ")+styles.Purple(s.ROI),
		styles.Label.Render(fmt.Sprintf("%s subscribers", Count(s.Subscribers))),
	)

	border := styles.BorderNormal
	if s.Popular {
		border = styles.AccentPrimary
	}

	return styles.Card.
		BorderForeground(border).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
