package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// KeyHint describes a single keybinding hint for display in the footer.
type KeyHint struct {
	Key  string // "q", "tab", "←→"
	Desc string // "quit", "section", "status"
}

// Footer renders context-aware keybinding hints.
type Footer struct {
	Hints []KeyHint
	Width int
}

// Render returns the styled footer string.
func (f Footer) Render() string {
	width := f.Width
	if width <= 0 {
		width = 80
	}

	keyStyle := lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	parts := make([]string, 0, len(f.Hints))
	for _, h := range f.Hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}

	content := strings.Join(parts, descStyle.Render(" • "))

	return lipgloss.NewStyle().
		Background(styles.BgDeep).
		Foreground(styles.TextMuted).
		Width(width).
		PaddingLeft(1).
		PaddingRight(1).
		Render(content)
}

// GlobalHints are shown after every section's own hints.
var GlobalHints = []KeyHint{
	{Key: "tab", Desc: "section"},
	{Key: "1-0", Desc: "jump"},
	{Key: "q", Desc: "quit"},
}

// SectionFooter returns a footer with the section hints followed by the
// global ones.
func SectionFooter(hints []KeyHint, width int) Footer {
	all := make([]KeyHint, 0, len(hints)+len(GlobalHints))
	all = append(all, hints...)
	all = append(all, GlobalHints...)
	return Footer{Hints: all, Width: width}
}

// InputFooter is shown while a text input has focus and global keys are
// suspended.
func InputFooter(width int) Footer {
	return Footer{
		Hints: []KeyHint{
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "cancel"},
		},
		Width: width,
	}
}
