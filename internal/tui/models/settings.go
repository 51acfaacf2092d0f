package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/Dallionking/rhnis-control-center/internal/config"
	"github.com/Dallionking/rhnis-control-center/internal/section"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
)

// SettingsModel renders the effective configuration and key reference as
// markdown.
type SettingsModel struct {
	cfg  *config.Config
	root string

	cacheWidth int
	cache      string
}

// NewSettingsModel creates the settings section.
func NewSettingsModel(cfg *config.Config, root string) *SettingsModel {
	return &SettingsModel{cfg: cfg, root: root}
}

func (m *SettingsModel) Mount()                      {}
func (m *SettingsModel) Unmount()                    {}
func (m *SettingsModel) Capturing() bool             { return false }
func (m *SettingsModel) Update(tea.Msg) tea.Cmd      { return nil }
func (m *SettingsModel) Hints() []components.KeyHint { return nil }

// Markdown returns the settings document before rendering.
func (m *SettingsModel) Markdown() string {
	c := m.cfg
	dataDir := c.Data.Dir
	if dataDir == "" {
		dataDir = "(built-in seed data)"
	}
	logFile := c.Log.File
	if logFile == "" {
		logFile = "(discarded)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	fmt.Fprintf(&b, "Project root: `%s`\n\n", m.root)
	b.WriteString("## Configuration\n\n")
	b.WriteString("| Key | Value |\n|---|---|\n")
	rows := [][2]string{
		{"data.dir", dataDir},
		{"data.watch", fmt.Sprint(c.Data.Watch)},
		{"dashboard.section", c.Dashboard.Section},
		{"dashboard.refresh", c.Dashboard.Refresh.String()},
		{"ticker.trading.interval", c.Ticker.Trading.Interval.String()},
		{"ticker.leadbot.interval", c.Ticker.LeadBot.Interval.String()},
		{"ticker.seed", fmt.Sprint(c.Ticker.Seed)},
		{"chat.reply_delay", c.Chat.ReplyDelay.String()},
		{"log.file", logFile},
		{"log.level", c.Log.Level},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", r[0], r[1])
	}

	b.WriteString("\n## Sections\n\n")
	for i, id := range section.All() {
		fmt.Fprintf(&b, "%d. **%s** (`%s`)\n", i+1, id.Label(), id)
	}

	b.WriteString("\n## Keys\n\n")
	b.WriteString("- `tab` / `shift+tab` next or previous section, `1`-`0` jump\n")
	b.WriteString("- `/` search, `←` `→` cycle the status filter, `esc` clear\n")
	b.WriteString("- `space` toggles the trading bot and lead bot auto-posting\n")
	b.WriteString("- `q` or `ctrl+c` quit\n")
	fmt.Fprintf(&b, "\nOverride any key with `%s_` environment variables, e.g. `%s_TICKER_TRADING_INTERVAL=2s`.\n",
		config.EnvPrefix, config.EnvPrefix)
	return b.String()
}

func (m *SettingsModel) View(width, height int) string {
	if m.cache == "" || m.cacheWidth != width {
		m.cache = renderMarkdown(m.Markdown(), max(width-4, 20))
		m.cacheWidth = width
	}
	return clip(m.cache, height)
}

func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
