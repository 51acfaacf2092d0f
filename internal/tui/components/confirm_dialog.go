package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// ConfirmDialog is a modal yes/no dialog.
type ConfirmDialog struct {
	Title     string
	Message   string
	Confirmed bool
	Done      bool
	selected  int // 0 = Yes, 1 = No
}

// NewConfirmDialog creates a dialog with Yes preselected.
func NewConfirmDialog(title, message string) ConfirmDialog {
	return ConfirmDialog{
		Title:   title,
		Message: message,
	}
}

// Update handles y/n, arrow selection and enter.
func (d ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch key.String() {
	case "y", "Y":
		d.Confirmed, d.Done = true, true
	case "n", "N", "esc":
		d.Confirmed, d.Done = false, true
	case "enter":
		d.Confirmed, d.Done = d.selected == 0, true
	case "left", "h":
		d.selected = 0
	case "right", "l":
		d.selected = 1
	case "tab", "shift+tab":
		d.selected = 1 - d.selected
	}
	return d, nil
}

// View returns the styled dialog.
func (d ConfirmDialog) View() string {
	title := lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true).Render(d.Title)
	message := lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(d.Message)

	selectedStyle := lipgloss.NewStyle().
		Background(styles.AccentPrimary).
		Foreground(styles.BgDeep).
		Bold(true).
		Padding(0, 1)
	unselectedStyle := lipgloss.NewStyle().
		Background(styles.BgSurface).
		Foreground(styles.TextSecondary).
		Padding(0, 1)

	yes, no := unselectedStyle, selectedStyle
	if d.selected == 0 {
		yes, no = selectedStyle, unselectedStyle
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yes.Render(" Yes "), "  ", no.Render(" No "))

	hint := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("y/n or ←→ + enter")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title, "", message, "", buttons, "", hint,
	)

	return lipgloss.NewStyle().
		Background(styles.BgPanel).
		Border(styles.RoundedBorder).
		BorderForeground(styles.AccentTertiary).
		Padding(1, 2).
		Width(52).
		Align(lipgloss.Center).
		Render(content)
}
