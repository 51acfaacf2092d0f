package health

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// category display order
var categoryOrder = []string{"config", "data", "runtime"}

func categoryLabel(cat string) string {
	switch cat {
	case "config":
		return "Configuration"
	case "data":
		return "Record Data"
	case "runtime":
		return "Runtime"
	case "":
		return "Other"
	default:
		return strings.ToUpper(cat[:1]) + cat[1:]
	}
}

// Summary returns "N/M passed" plus warning and failure counts.
func (r *Report) Summary() string {
	s := fmt.Sprintf("%d/%d passed", r.Passed, r.Total)
	if r.Warned > 0 {
		s += fmt.Sprintf(", %d warning(s)", r.Warned)
	}
	if r.Failed > 0 {
		s += fmt.Sprintf(", %d failed", r.Failed)
	}
	return s
}

// Overall returns HEALTHY, DEGRADED or UNHEALTHY.
func (r *Report) Overall() string {
	switch {
	case r.Failed > 0:
		return "UNHEALTHY"
	case r.Warned > 0:
		return "DEGRADED"
	default:
		return "HEALTHY"
	}
}

// JSONResult is the machine-readable form of a CheckResult.
type JSONResult struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	DurationMS int64  `json:"duration_ms"`
}

// JSONReport is the machine-readable form of a Report.
type JSONReport struct {
	Overall string       `json:"overall"`
	Healthy bool         `json:"healthy"`
	Passed  int          `json:"passed"`
	Warned  int          `json:"warned"`
	Failed  int          `json:"failed"`
	Results []JSONResult `json:"results"`
}

// JSON converts the report for --json output.
func (r *Report) JSON() JSONReport {
	out := JSONReport{
		Overall: r.Overall(),
		Healthy: r.Healthy,
		Passed:  r.Passed,
		Warned:  r.Warned,
		Failed:  r.Failed,
		Results: make([]JSONResult, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		out.Results = append(out.Results, JSONResult{
			Name:       res.Name,
			Category:   res.Category,
			Status:     res.Status.String(),
			Message:    res.Message,
			DurationMS: res.Duration.Milliseconds(),
		})
	}
	return out
}

// FormatReport renders the report grouped by category.
func FormatReport(r *Report) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render("RHNIS Health Check")
	b.WriteString("\n  " + title + "\n")
	b.WriteString("  " + styles.Divider(50) + "\n")

	grouped := make(map[string][]CheckResult)
	for _, res := range r.Results {
		grouped[res.Category] = append(grouped[res.Category], res)
	}

	nameStyle := lipgloss.NewStyle().Width(16).Foreground(styles.TextPrimary)
	msgStyle := lipgloss.NewStyle().Width(48).Foreground(styles.TextSecondary)
	durStyle := lipgloss.NewStyle().Width(8).Foreground(styles.TextMuted).Align(lipgloss.Right)
	catStyle := lipgloss.NewStyle().
		Foreground(styles.AccentSecondary).
		Bold(true).
		MarginTop(1)

	for _, cat := range categoryOrder {
		results := grouped[cat]
		if len(results) == 0 {
			continue
		}

		b.WriteString("\n  " + catStyle.Render(categoryLabel(cat)) + "\n")
		for _, res := range results {
			fmt.Fprintf(&b, "  %s %s %s %s\n",
				statusSymbol(res.Status),
				nameStyle.Render(res.Name),
				msgStyle.Render(styles.TruncateWithEllipsis(res.Message, 46)),
				durStyle.Render(formatDuration(res.Duration)),
			)
		}
	}

	b.WriteString("\n  " + styles.Divider(50) + "\n")
	b.WriteString("  " + lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(r.Summary()))
	b.WriteString("  " + overallBadge(r) + "\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(fmt.Sprintf("  completed in %s", formatDuration(r.Duration))) + "\n")

	return b.String()
}

func statusSymbol(s Status) string {
	return lipgloss.NewStyle().Foreground(statusColor(s)).Bold(true).Render(s.Symbol())
}

func statusColor(s Status) lipgloss.Color {
	switch s {
	case StatusPass:
		return styles.StatusOK
	case StatusWarn:
		return styles.StatusWarn
	case StatusFail:
		return styles.StatusError
	default:
		return styles.TextMuted
	}
}

func overallBadge(r *Report) string {
	c := styles.StatusOK
	switch {
	case r.Failed > 0:
		c = styles.StatusError
	case r.Warned > 0:
		c = styles.StatusWarn
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(r.Overall())
}

// formatDuration formats a duration to a short human-readable string.
func formatDuration(d interface{ Milliseconds() int64 }) string {
	ms := d.Milliseconds()
	if ms < 1 {
		return "<1ms"
	}
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000.0)
}
