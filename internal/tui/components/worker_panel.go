package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// WorkerPanel shows a single automation worker inside a bordered panel.
type WorkerPanel struct {
	Name           string
	Type           string // "automation", "monitoring", "processing"
	Status         string // "running", "idle", "stopped", "error"
	Description    string
	LastRun        time.Time
	NextRun        time.Time // zero when not scheduled
	TasksCompleted float64
	SuccessRate    float64
	AvgRunTime     string
	Width          int
	Focused        bool
}

// typeIcon returns a glyph for the worker type.
func typeIcon(kind string) string {
	switch strings.ToLower(kind) {
	case "automation":
		return "⚙"
	case "monitoring":
		return "◉"
	case "processing":
		return "⇄"
	default:
		return "•"
	}
}

// statusLabel capitalizes the first letter of a lowercase status.
func statusLabel(status string) string {
	if status == "" {
		return "Unknown"
	}
	return strings.ToUpper(status[:1]) + status[1:]
}

func formatRun(t time.Time) string {
	if t.IsZero() {
		return "---"
	}
	return t.Format("Jan 2 15:04")
}

// Render returns the styled panel string.
func (w WorkerPanel) Render() string {
	width := w.Width
	if width <= 0 {
		width = 40
	}

	border := styles.RoundedBorder
	borderColor := styles.BorderNormal
	if w.Focused {
		border = styles.DoubleBorder
		borderColor = styles.BorderFocused
	}

	innerWidth := max(width-4, 10)

	color := styles.StatusColor(w.Status)
	nameStr := lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true).
		Render(typeIcon(w.Type) + " " + w.Name)
	stateStr := lipgloss.NewStyle().Foreground(color).Render("● " + statusLabel(w.Status))
	line1 := PadBetween(nameStr, stateStr, innerWidth)

	line2 := lipgloss.NewStyle().Foreground(styles.TextSecondary).
		Render(styles.TruncateWithEllipsis(w.Description, innerWidth))

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render(" │ ")
	rateColor := GaugeColor(w.SuccessRate, 97, 90, true)
	rate := Bar(w.SuccessRate/100, 6, rateColor) + " " +
		lipgloss.NewStyle().Foreground(rateColor).Bold(true).Render(Percent(w.SuccessRate))
	line3 := styles.Label.Render("Tasks ") + styles.Value.Render(Count(w.TasksCompleted)) + sep +
		styles.Label.Render("Success ") + rate + sep +
		styles.Label.Render("Avg ") + styles.Value.Render(w.AvgRunTime)

	line4 := styles.Label.Render(fmt.Sprintf("Last %s  Next %s", formatRun(w.LastRun), formatRun(w.NextRun)))

	content := lipgloss.JoinVertical(lipgloss.Left, line1, line2, line3, line4)

	return lipgloss.NewStyle().
		Background(styles.BgPanel).
		Border(border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width - 2).
		Render(content)
}
