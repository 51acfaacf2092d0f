package styles

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func fg(c lipgloss.Color, s string) string {
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// Cyan renders s in AccentSecondary.
func Cyan(s string) string { return fg(AccentSecondary, s) }

// Blue renders s in AccentPrimary.
func Blue(s string) string { return fg(AccentPrimary, s) }

// Purple renders s in AccentTertiary.
func Purple(s string) string { return fg(AccentTertiary, s) }

// Gold renders s in AccentGold.
func Gold(s string) string { return fg(AccentGold, s) }

// Green renders s in StatusOK.
func Green(s string) string { return fg(StatusOK, s) }

// Red renders s in StatusError.
func Red(s string) string { return fg(StatusError, s) }

// Dim renders s in TextMuted.
func Dim(s string) string { return fg(TextMuted, s) }

// Bold renders s in bold TextPrimary.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).Render(s)
}

// brailleRamp maps normalized 0..7 buckets to braille bar characters.
var brailleRamp = []rune{'⡀', '⡄', '⡆', '⡇', '⣇', '⣧', '⣷', '⣿'}

// Sparkline produces a compact braille bar chart of width columns. Values
// are resampled nearest-neighbour. Empty input renders "".
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	sampled := make([]float64, width)
	for i := range width {
		sampled[i] = values[min(i*len(values)/width, len(values)-1)]
	}

	lo, hi := slices.Min(sampled), slices.Max(sampled)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	top := len(brailleRamp) - 1
	var b strings.Builder
	b.Grow(width * 3)
	for _, v := range sampled {
		bucket := int(math.Round((v - lo) / span * float64(top)))
		b.WriteRune(brailleRamp[max(0, min(bucket, top))])
	}

	return fg(AccentPrimary, b.String())
}

// TruncateWithEllipsis shortens s to max runes, appending "..." when
// truncation occurs. If max is less than 4 the string is simply cut.
func TruncateWithEllipsis(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	if max < 4 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
