package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// TabBar renders horizontal tab selection. When the tabs do not fit in
// Width, a window around the active tab is shown with arrow markers.
type TabBar struct {
	Tabs      []string
	ActiveTab int
	Width     int
}

// Render returns the styled tab bar string.
func (t TabBar) Render() string {
	if len(t.Tabs) == 0 {
		return ""
	}

	activeStyle := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Underline(true).
		PaddingLeft(1).
		PaddingRight(1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		PaddingLeft(1).
		PaddingRight(1)

	rendered := make([]string, len(t.Tabs))
	for i, tab := range t.Tabs {
		if i == t.ActiveTab {
			rendered[i] = activeStyle.Render(tab)
		} else {
			rendered[i] = inactiveStyle.Render(tab)
		}
	}

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("│")
	lo, hi := t.window(rendered, lipgloss.Width(sep))

	content := strings.Join(rendered[lo:hi], sep)
	marker := lipgloss.NewStyle().Foreground(styles.TextMuted)
	if lo > 0 {
		content = marker.Render("‹ ") + content
	}
	if hi < len(rendered) {
		content += marker.Render(" ›")
	}

	return lipgloss.NewStyle().
		Background(styles.BgDeep).
		Width(t.Width).
		Render(content)
}

// window returns the [lo, hi) range of tabs to draw. It grows outward from
// the active tab, alternating right then left, until the next tab would
// overflow Width. Width <= 0 means unbounded.
func (t TabBar) window(rendered []string, sepWidth int) (int, int) {
	if t.Width <= 0 {
		return 0, len(rendered)
	}
	active := max(0, min(t.ActiveTab, len(rendered)-1))

	budget := t.Width - 4 // room for both markers
	lo, hi := active, active+1
	used := lipgloss.Width(rendered[active])

	total := used
	for i, r := range rendered {
		if i != active {
			total += sepWidth + lipgloss.Width(r)
		}
	}
	if total <= t.Width {
		return 0, len(rendered)
	}

	for {
		grew := false
		if hi < len(rendered) {
			if w := sepWidth + lipgloss.Width(rendered[hi]); used+w <= budget {
				used += w
				hi++
				grew = true
			}
		}
		if lo > 0 {
			if w := sepWidth + lipgloss.Width(rendered[lo-1]); used+w <= budget {
				used += w
				lo--
				grew = true
			}
		}
		if !grew {
			return lo, hi
		}
	}
}
