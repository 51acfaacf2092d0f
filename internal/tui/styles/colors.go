package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RHNIS Night -- Dark Palette
// Slate backgrounds with the control center's blue/purple gradient accents.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#0b1120") // Deepest -- main background
	BgPanel   = lipgloss.Color("#111827") // Panel/card background
	BgSurface = lipgloss.Color("#1f2937") // Elevated surface
	BgHover   = lipgloss.Color("#273449") // Hover/selected row

	// Accents
	AccentPrimary   = lipgloss.Color("#60a5fa") // Blue -- primary actions, focused borders
	AccentSecondary = lipgloss.Color("#22d3ee") // Cyan -- secondary info
	AccentTertiary  = lipgloss.Color("#a855f7") // Purple -- RHNIS identity
	AccentGold      = lipgloss.Color("#f5a623") // Gold -- revenue, highlights

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // Green
	StatusWarn  = lipgloss.Color("#f59e0b") // Amber
	StatusError = lipgloss.Color("#ef4444") // Red
	StatusInfo  = lipgloss.Color("#60a5fa") // Blue

	// Text
	TextPrimary   = lipgloss.Color("#f1f5f9") // High contrast
	TextSecondary = lipgloss.Color("#94a3b8") // Dimmed
	TextMuted     = lipgloss.Color("#64748b") // Very dim

	// Borders
	BorderNormal  = lipgloss.Color("#334155") // Subtle
	BorderFocused = lipgloss.Color("#60a5fa") // Blue focus ring
)

// StatusColor maps a record status or category value to a display color.
// Matching is case-insensitive so lead ("New") and bot lead ("NEW")
// statuses share colors.
func StatusColor(status string) lipgloss.Color {
	switch strings.ToLower(status) {
	case "new", "open", "up", "scheduled", "broadcasting":
		return StatusInfo
	case "contacted", "pending", "idle", "paused", "spreading":
		return StatusWarn
	case "quoted", "qualified", "growing", "tracking", "monthly":
		return AccentTertiary
	case "approved", "completed", "converted", "connected", "active",
		"running", "closed", "propagating", "armed", "yearly":
		return StatusOK
	case "disconnected", "error", "down", "cancelled", "stopped":
		return StatusError
	default:
		return TextMuted
	}
}
