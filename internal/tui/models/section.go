package models

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/section"
	"github.com/Dallionking/rhnis-control-center/internal/ticker"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// Section is one screen of the dashboard. The app forwards key and
// component messages to the active section only.
type Section interface {
	section.Mountable
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	Hints() []components.KeyHint
	// Capturing reports whether a text input has focus. Single-letter
	// global keys are suspended while it does.
	Capturing() bool
}

// Env is what every section is built from.
type Env struct {
	Store  *record.Store
	Logger *zap.Logger
	Now    func() time.Time
	Seed   uint64
	Feed   *Activity
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// rng returns a random source private to one simulator. A non-zero seed
// is offset by salt so sections draw different sequences.
func (e Env) rng(salt uint64) ticker.Rand {
	if e.Seed == 0 {
		return ticker.NewRand(0)
	}
	return ticker.NewRand(e.Seed + salt)
}

// Activity collects user-visible events for the dashboard feed and mirrors
// them to the logger.
type Activity struct {
	feed   components.ActivityFeed
	logger *zap.Logger
	now    func() time.Time
}

const activityMax = 200

// NewActivity creates an empty feed.
func NewActivity(logger *zap.Logger, now func() time.Time) *Activity {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Activity{
		feed:   components.NewActivityFeed(60, 8, activityMax),
		logger: logger,
		now:    now,
	}
}

// Add appends an entry.
func (a *Activity) Add(level, source, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.feed.Add(components.Entry{Time: a.now(), Level: level, Source: source, Message: msg})

	fields := []zap.Field{zap.String("source", source)}
	switch level {
	case "error":
		a.logger.Error(msg, fields...)
	case "warn":
		a.logger.Warn(msg, fields...)
	default:
		a.logger.Info(msg, fields...)
	}
}

// Entries returns the retained entries, oldest first.
func (a *Activity) Entries() []components.Entry {
	return a.feed.Entries()
}

// Scroll forwards scroll keys to the feed viewport.
func (a *Activity) Scroll(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.feed, cmd = a.feed.Update(msg)
	return cmd
}

// View renders the feed at the given size.
func (a *Activity) View(width, height int) string {
	a.feed.SetSize(width, height)
	return a.feed.View()
}

// ---------------------------------------------------------------------------
// Rendering helpers shared by sections
// ---------------------------------------------------------------------------

func sectionTitle(title, right string, width int) string {
	left := lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true).Render(title)
	return components.PadBetween(left, right, width)
}

func toggleBadge(on bool, onText, offText string) string {
	if on {
		return styles.Pill(onText, styles.StatusOK)
	}
	return styles.Pill(offText, styles.TextMuted)
}

// halves splits width into two panel widths with a one-column gutter.
func halves(width int) (int, int) {
	left := (width - 1) / 2
	return left, width - 1 - left
}

// clip truncates a multi-line block to maxLines.
func clip(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n")
}

func cell(s string, width int, style lipgloss.Style) string {
	return style.Width(width).MaxWidth(width).Render(styles.TruncateWithEllipsis(s, width))
}

func signedMoney(v float64) string {
	if v >= 0 {
		return "+" + components.Money(v)
	}
	return components.Money(v)
}

func ago(now, t time.Time) string {
	if t.IsZero() {
		return "---"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 2")
	}
}

// emptyState renders the explicit no-results message, naming a data load
// failure when there is one.
func emptyState(msg string, loadErr error) string {
	style := lipgloss.NewStyle().Foreground(styles.TextMuted).PaddingTop(1).PaddingBottom(1).PaddingLeft(2)
	if loadErr != nil {
		return style.Render(msg) + "\n" +
			lipgloss.NewStyle().Foreground(styles.StatusError).PaddingLeft(2).
				Render("data load failed: "+loadErr.Error())
	}
	return style.Render(msg)
}
