package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// Entry is a single line in the activity feed.
type Entry struct {
	Time    time.Time
	Level   string // "info", "warn", "error", "success"
	Source  string // "TRADING", "LEADBOT", "DATA", ...
	Message string
}

// ActivityFeed is a scrollable, bounded list of entries backed by a
// viewport. New entries keep the view pinned to the bottom unless the
// user has scrolled up.
type ActivityFeed struct {
	entries    []Entry
	viewport   viewport.Model
	autoScroll bool
	maxEntries int
}

// NewActivityFeed creates a feed that keeps at most maxEntries lines.
func NewActivityFeed(width, height, maxEntries int) ActivityFeed {
	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle().Background(styles.BgPanel)
	return ActivityFeed{
		viewport:   vp,
		autoScroll: true,
		maxEntries: max(maxEntries, 1),
	}
}

// Update handles scroll keys. G jumps to the newest entry and resumes
// following.
func (f ActivityFeed) Update(msg tea.Msg) (ActivityFeed, tea.Cmd) {
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "G":
			f.autoScroll = true
			f.viewport.GotoBottom()
			return f, nil
		case "down", "j":
			f.viewport, cmd = f.viewport.Update(msg)
			f.autoScroll = f.viewport.AtBottom()
			return f, cmd
		}
	}

	f.viewport, cmd = f.viewport.Update(msg)
	if !f.viewport.AtBottom() {
		f.autoScroll = false
	}
	return f, cmd
}

// View returns the rendered viewport with a paused marker when the feed
// is not following.
func (f ActivityFeed) View() string {
	if f.autoScroll {
		return f.viewport.View()
	}
	paused := lipgloss.NewStyle().
		Foreground(styles.StatusWarn).
		Render("(paused, G to follow)")
	return paused + "\n" + f.viewport.View()
}

// SetSize resizes the viewport, keeping the content.
func (f *ActivityFeed) SetSize(width, height int) {
	f.viewport.Width = width
	f.viewport.Height = max(height, 1)
	f.viewport.SetContent(f.render())
	if f.autoScroll {
		f.viewport.GotoBottom()
	}
}

// Add appends an entry, dropping the oldest past the limit.
func (f *ActivityFeed) Add(e Entry) {
	f.entries = append(f.entries, e)
	if len(f.entries) > f.maxEntries {
		f.entries = f.entries[len(f.entries)-f.maxEntries:]
	}

	f.viewport.SetContent(f.render())
	if f.autoScroll {
		f.viewport.GotoBottom()
	}
}

// Entries returns the retained entries, oldest first.
func (f ActivityFeed) Entries() []Entry {
	return f.entries
}

// Following reports whether new entries scroll the view.
func (f ActivityFeed) Following() bool {
	return f.autoScroll
}

// LevelColor returns the foreground color for an entry level.
func LevelColor(level string) lipgloss.Color {
	switch strings.ToLower(level) {
	case "info":
		return styles.TextSecondary
	case "warn":
		return styles.StatusWarn
	case "error":
		return styles.StatusError
	case "success":
		return styles.StatusOK
	default:
		return styles.TextMuted
	}
}

func (f ActivityFeed) render() string {
	var b strings.Builder
	for i, e := range f.entries {
		color := LevelColor(e.Level)

		ts := lipgloss.NewStyle().Foreground(styles.TextMuted).Render(e.Time.Format("15:04:05"))
		src := lipgloss.NewStyle().Foreground(styles.AccentSecondary).
			Render(fmt.Sprintf("%-9s", e.Source))
		msg := lipgloss.NewStyle().Foreground(color).Render(e.Message)

		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ts + " " + src + " " + msg)
	}
	return b.String()
}
