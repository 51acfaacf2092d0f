package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CompactLogo is the single-line brand mark shown in the header.
const CompactLogo = "◆ RHNIS"

// ---------------------------------------------------------------------------
// Panel styles
// ---------------------------------------------------------------------------

// Panel is the default panel style: BgPanel background, rounded border in
// BorderNormal, with horizontal padding.
var Panel = lipgloss.NewStyle().
	Background(BgPanel).
	Border(RoundedBorder).
	BorderForeground(BorderNormal).
	Padding(0, 1)

// PanelFocused is identical to Panel but uses the focus border.
var PanelFocused = Panel.
	BorderForeground(BorderFocused)

// Card is a compact elevated surface with a thin border.
var Card = lipgloss.NewStyle().
	Background(BgSurface).
	Border(ThinBorder).
	BorderForeground(BorderNormal).
	Padding(0, 1)

// ---------------------------------------------------------------------------
// Badges
// ---------------------------------------------------------------------------

// Badge returns an inline colored badge such as "● RUNNING".
func Badge(text string, color lipgloss.Color) string {
	dot := lipgloss.NewStyle().Foreground(color).Render("●")
	label := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(text)
	return dot + " " + label
}

// StatusBadge renders a record status in its StatusColor.
func StatusBadge(status string) string {
	if status == "" {
		return Badge("UNKNOWN", TextMuted)
	}
	return Badge(strings.ToUpper(status), StatusColor(status))
}

// Pill renders text on a colored background, used for toggles and the
// "Most Popular" marker.
func Pill(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Background(color).
		Foreground(BgDeep).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

// ---------------------------------------------------------------------------
// Typography styles
// ---------------------------------------------------------------------------

// Title is bold AccentPrimary text for section headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// Subtitle is regular TextSecondary text for secondary headings.
var Subtitle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// Label is TextMuted text for field labels.
var Label = lipgloss.NewStyle().
	Foreground(TextMuted)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// ProfitText is bold green for positive P&L.
var ProfitText = lipgloss.NewStyle().
	Foreground(StatusOK).
	Bold(true)

// LossText is bold red for negative P&L.
var LossText = lipgloss.NewStyle().
	Foreground(StatusError).
	Bold(true)

// PnL picks ProfitText or LossText by sign.
func PnL(v float64) lipgloss.Style {
	if v < 0 {
		return LossText
	}
	return ProfitText
}

// ---------------------------------------------------------------------------
// Table helpers
// ---------------------------------------------------------------------------

// TableHeader is bold, underlined, TextSecondary for column headings.
var TableHeader = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Bold(true).
	Underline(true)

// TableRow returns a zebra-striped row style.
func TableRow(even bool) lipgloss.Style {
	bg := BgPanel
	if !even {
		bg = BgSurface
	}
	return lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(bg)
}

// Divider returns a horizontal rule of the given width.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(BorderNormal).Render(strings.Repeat("─", width))
}
