package models

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

type statPair struct {
	key   string
	value string
}

// parseStats reads "revenue=$12,450; products=2,340" into ordered pairs.
// Entries without "=" are skipped.
func parseStats(s string) []statPair {
	var out []statPair
	for part := range strings.SplitSeq(s, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || strings.TrimSpace(k) == "" {
			continue
		}
		out = append(out, statPair{key: strings.TrimSpace(k), value: strings.TrimSpace(v)})
	}
	return out
}

// BusinessesModel shows one card per business.
type BusinessesModel struct {
	env     Env
	filters filterBar
	cursor  int
}

// NewBusinessesModel creates the businesses section.
func NewBusinessesModel(env Env) *BusinessesModel {
	return &BusinessesModel{
		env:     env,
		filters: newFilterBar(record.KindBusiness, "Search businesses..."),
	}
}

func (m *BusinessesModel) Mount() {}

func (m *BusinessesModel) Unmount() {
	m.filters.input.Blur()
}

func (m *BusinessesModel) Capturing() bool { return m.filters.editing() }

func (m *BusinessesModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.filters.update(msg)
	}
	if handled, cmd := m.filters.handleKey(key); handled {
		m.cursor = 0
		return cmd
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
	}
	return nil
}

func (m *BusinessesModel) Hints() []components.KeyHint {
	return append([]components.KeyHint{{Key: "↑↓", Desc: "focus"}}, filterHints...)
}

func (m *BusinessesModel) View(width, height int) string {
	v := m.filters.apply(m.env.Store.Records(record.KindBusiness))
	m.cursor = max(0, min(m.cursor, len(v.Records)-1))

	parts := []string{
		sectionTitle("My Businesses", styles.Dim(components.Count(float64(v.Total))+" ventures"), width),
		m.filters.View(width),
	}
	if v.Empty() {
		parts = append(parts, emptyState("No businesses found matching your criteria.", m.env.Store.LoadError()))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	cols := 1
	if width >= 120 {
		cols = 3
	}
	each := (width - (cols - 1)) / cols

	var row []string
	for i, b := range v.Records {
		row = append(row, m.renderCard(b, each, i == m.cursor))
		if len(row) == cols || i == len(v.Records)-1 {
			parts = append(parts, components.Columns(row...))
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *BusinessesModel) renderCard(b record.Record, width int, focused bool) string {
	inner := max(width-4, 10)
	stats := parseStats(b.Text("stats"))

	var cells []string
	if n := len(stats); n > 0 {
		cw := inner / n
		for _, s := range stats {
			cells = append(cells, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(
				styles.Bold(s.value)+"\n"+styles.Label.Render(strings.ToUpper(s.key[:1])+s.key[1:])))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		components.PadBetween(styles.Bold(b.Text("name")), styles.StatusBadge(b.Text("status")), inner),
		lipgloss.NewStyle().Foreground(styles.TextSecondary).Width(inner).Render(b.Text("description")),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
	)

	border := styles.RoundedBorder
	color := styles.StatusColor(b.Text("status"))
	if focused {
		border = styles.DoubleBorder
		color = styles.BorderFocused
	}
	return lipgloss.NewStyle().
		Background(styles.BgPanel).
		Border(border).
		BorderForeground(color).
		Padding(0, 1).
		Width(width - 2).
		Render(body)
}
