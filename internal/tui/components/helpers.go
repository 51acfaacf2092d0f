package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// Panel wraps content in a bordered panel with a styled title. width is the
// full outer width including the border.
func Panel(title string, content string, width int) string {
	titleStr := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render(title)

	body := content
	if title != "" {
		body = titleStr + "\n" + content
	}

	innerWidth := width - 4 // border (2) + padding (2)
	if innerWidth < 10 {
		innerWidth = 10
	}

	return lipgloss.NewStyle().
		Background(styles.BgPanel).
		Border(styles.RoundedBorder).
		BorderForeground(styles.BorderNormal).
		Padding(0, 1).
		Width(innerWidth).
		Render(body)
}

// PadBetween places left and right on one line of the given width.
func PadBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// Money formats v as dollars with thousands separators and cents.
func Money(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// WholeMoney formats v as whole dollars, "$45,670".
func WholeMoney(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// Count formats an integer-valued float with thousands separators.
func Count(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// Percent formats v with one decimal place, "78.5%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Bar renders a fixed-width progress bar for ratio in [0, 1]. Values outside
// the range are clamped.
func Bar(ratio float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(ratio * float64(width)))
	filled = max(0, min(filled, width))

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(styles.TextMuted).Render(strings.Repeat("░", width-filled))
}

// Columns joins blocks horizontally with a one-space gutter.
func Columns(blocks ...string) string {
	parts := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
