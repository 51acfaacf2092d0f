package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// Header renders the app header bar.
type Header struct {
	Section    string // active section label
	ActiveBots int    // bots switched on
	TotalBots  int
	Revenue    float64 // monthly portal revenue
	Width      int
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}

	logo := lipgloss.NewStyle().
		Foreground(styles.AccentTertiary).
		Bold(true).
		Render(styles.CompactLogo)

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  │  ")

	section := lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true).Render(h.Section)

	botColor := styles.StatusOK
	if h.ActiveBots < h.TotalBots {
		botColor = styles.StatusWarn
	}
	if h.ActiveBots == 0 {
		botColor = styles.TextMuted
	}
	bots := styles.Label.Render("Bots: ") +
		lipgloss.NewStyle().Foreground(botColor).Bold(true).
			Render(fmt.Sprintf("%d/%d", h.ActiveBots, h.TotalBots))

	revenue := styles.Label.Render("Revenue: ") +
		lipgloss.NewStyle().Foreground(styles.AccentGold).Bold(true).Render(Money(h.Revenue))

	content := logo + sep + section + sep + bots + sep + revenue

	return lipgloss.NewStyle().
		Background(styles.BgDeep).
		Foreground(styles.TextPrimary).
		Width(width).
		PaddingLeft(1).
		PaddingRight(1).
		Render(content)
}
