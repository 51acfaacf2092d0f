package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/filter"
	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// NoLeadsMessage is shown when no lead matches the current search and
// status filter.
const NoLeadsMessage = "No leads found matching your criteria."

var leadSorts = []struct {
	field string
	label string
}{
	{"", "Received"},
	{"date", "Date"},
	{"value", "Value"},
	{"name", "Name"},
}

// LeadsModel is the Lead Manager: a searchable, status-filtered list of
// fencing leads with a detail pane.
type LeadsModel struct {
	env     Env
	filters filterBar

	cursor  int
	sortIdx int
	sortAsc bool
	detail  bool
}

// NewLeadsModel creates the Lead Manager section.
func NewLeadsModel(env Env) *LeadsModel {
	return &LeadsModel{
		env:     env,
		filters: newFilterBar(record.KindLead, "Search leads..."),
	}
}

func (m *LeadsModel) Mount() {
	m.cursor = 0
}

func (m *LeadsModel) Unmount() {
	m.filters.input.Blur()
	m.detail = false
}

func (m *LeadsModel) Capturing() bool { return m.filters.editing() }

// visible returns the filtered leads in the selected sort order.
func (m *LeadsModel) visible() filter.View {
	v := m.filters.apply(m.env.Store.Records(record.KindLead))
	if f := leadSorts[m.sortIdx].field; f != "" {
		v.Records = filter.Sort(v.Records, f, m.sortAsc)
	}
	return v
}

func (m *LeadsModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.filters.update(msg)
	}

	if m.detail {
		switch key.String() {
		case "esc", "enter", "backspace":
			m.detail = false
		}
		return nil
	}

	if handled, cmd := m.filters.handleKey(key); handled {
		m.cursor = 0
		return cmd
	}

	n := len(m.visible().Records)
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "enter":
		if n > 0 {
			m.detail = true
		}
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(leadSorts)
		m.sortAsc = leadSorts[m.sortIdx].field == "name"
	case "r":
		m.sortAsc = !m.sortAsc
	}
	return nil
}

func (m *LeadsModel) Hints() []components.KeyHint {
	return append([]components.KeyHint{
		{Key: "↑↓", Desc: "select"},
		{Key: "enter", Desc: "details"},
		{Key: "s", Desc: "sort"},
	}, filterHints...)
}

func (m *LeadsModel) View(width, height int) string {
	v := m.visible()
	m.cursor = max(0, min(m.cursor, len(v.Records)-1))

	if m.detail && len(v.Records) > 0 {
		return m.renderDetail(v.Records[m.cursor], width)
	}

	sortLabel := leadSorts[m.sortIdx].label
	if leadSorts[m.sortIdx].field != "" {
		arrow := "v"
		if m.sortAsc {
			arrow = "^"
		}
		sortLabel += " " + arrow
	}

	lines := []string{
		sectionTitle("Lead Management", styles.Dim("Sort: "+sortLabel), width),
		m.filters.View(width),
		styles.Divider(width),
		lipgloss.NewStyle().Foreground(styles.TextSecondary).Bold(true).Render(fmt.Sprintf(
			"  %-18s %-16s %-14s %10s  %-10s %s", "NAME", "SERVICE", "LOCATION", "VALUE", "STATUS", "DATE")),
	}

	if v.Empty() {
		lines = append(lines, emptyState(NoLeadsMessage, m.env.Store.LoadError()))
	}

	maxRows := max(height-7, 3)
	offset := 0
	if m.cursor >= maxRows {
		offset = m.cursor - maxRows + 1
	}
	for i := offset; i < len(v.Records) && i < offset+maxRows; i++ {
		lines = append(lines, m.renderRow(v.Records[i], i, i == m.cursor, width))
	}

	lines = append(lines, styles.Label.Render(fmt.Sprintf("  %d of %d leads", len(v.Records), v.Total)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *LeadsModel) renderRow(r record.Record, idx int, selected bool, width int) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary)
	if selected {
		cursor = lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true).Render("> ")
		nameStyle = nameStyle.Bold(true).Foreground(styles.AccentPrimary)
	}

	date := "---"
	if t, ok := r.TimeField("date"); ok {
		date = t.Format("2006-01-02")
	}

	status := r.Text("status")
	row := cursor +
		cell(r.Text("name"), 18, nameStyle) + " " +
		cell(r.Text("service"), 16, lipgloss.NewStyle().Foreground(styles.TextSecondary)) + " " +
		cell(r.Text("location"), 14, styles.Label) + " " +
		lipgloss.NewStyle().Foreground(styles.StatusOK).Width(10).Align(lipgloss.Right).
			Render(components.WholeMoney(r.Num("value"))) + "  " +
		cell(status, 10, lipgloss.NewStyle().Foreground(styles.StatusColor(status)).Bold(true)) + " " +
		styles.Label.Render(date)

	bg := styles.BgPanel
	if idx%2 != 0 {
		bg = styles.BgSurface
	}
	if selected {
		bg = styles.BgHover
	}
	return lipgloss.NewStyle().Background(bg).Width(width).Render(row)
}

func (m *LeadsModel) renderDetail(r record.Record, width int) string {
	row := func(label, value string) string {
		return styles.Label.Width(10).Render(label) + lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(value)
	}

	date := "---"
	if t, ok := r.TimeField("date"); ok {
		date = t.Format("Mon Jan 2, 2006")
	}

	body := strings.Join([]string{
		lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true).Render(r.Text("name")) + "  " + styles.StatusBadge(r.Text("status")),
		"",
		row("Service", r.Text("service")),
		row("Value", components.WholeMoney(r.Num("value"))),
		row("Location", r.Text("location")),
		row("Email", r.Text("email")),
		row("Phone", r.Text("phone")),
		row("Date", date),
		"",
		lipgloss.NewStyle().Foreground(styles.TextSecondary).Width(max(width-8, 20)).Render(r.Text("notes")),
	}, "\n")

	return components.Panel("Lead "+r.ID(), body, width)
}
