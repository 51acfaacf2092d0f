package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

var portalTabs = []string{"Service Plans", "Subscribers", "Analytics"}

const (
	portalServices = iota
	portalSubscribers
	portalAnalytics
)

// PortalModel is the Customer Portal section.
type PortalModel struct {
	env     Env
	tab     int
	filters filterBar

	Revenue     float64
	Subscribers float64
	Growth      float64
	Rating      float64
}

// NewPortalModel creates the portal section on the service plans tab.
func NewPortalModel(env Env) *PortalModel {
	return &PortalModel{
		env:         env,
		filters:     newFilterBar(record.KindSubscriber, "Search subscribers..."),
		Revenue:     45670.25,
		Subscribers: 127,
		Growth:      18.5,
		Rating:      4.9,
	}
}

func (m *PortalModel) Mount() {}

func (m *PortalModel) Unmount() {
	m.filters.input.Blur()
}

func (m *PortalModel) Capturing() bool { return m.filters.editing() }

func (m *PortalModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.filters.update(msg)
	}
	if m.tab == portalSubscribers {
		if handled, cmd := m.filters.handleKey(key); handled {
			return cmd
		}
	}
	switch key.String() {
	case "]":
		m.tab = (m.tab + 1) % len(portalTabs)
	case "[":
		m.tab = (m.tab + len(portalTabs) - 1) % len(portalTabs)
	}
	return nil
}

func (m *PortalModel) Hints() []components.KeyHint {
	hints := []components.KeyHint{{Key: "[ ]", Desc: "tab"}}
	if m.tab == portalSubscribers {
		hints = append(hints, filterHints...)
	}
	return hints
}

func (m *PortalModel) View(width, height int) string {
	cards := []components.StatCard{
		{Label: "Monthly Revenue", Value: components.Money(m.Revenue), Note: "recurring", Color: styles.AccentGold},
		{Label: "Active Subscribers", Value: components.Count(m.Subscribers), Note: "all plans", Color: styles.AccentPrimary},
		{Label: "Growth Rate", Value: "+" + components.Percent(m.Growth), Note: "month over month", Color: styles.StatusOK},
		{Label: "Avg Rating", Value: fmt.Sprintf("%.1f/5", m.Rating), Note: "customer reviews", Color: styles.AccentTertiary},
	}

	var body string
	switch m.tab {
	case portalServices:
		body = m.renderServices(width)
	case portalSubscribers:
		body = components.Panel("Active Subscribers", m.filters.View(width-4)+"\n"+m.renderSubscribers(), width)
	case portalAnalytics:
		body = m.renderAnalytics(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("Customer Portal", styles.Dim("AI services subscription hub"), width),
		components.StatRow(cards, width),
		components.TabBar{Tabs: portalTabs, ActiveTab: m.tab, Width: width}.Render(),
		body,
	)
}

func (m *PortalModel) serviceCards() []components.ServiceCard {
	services := m.env.Store.Records(record.KindService)
	cards := make([]components.ServiceCard, 0, len(services))
	for _, s := range services {
		cards = append(cards, components.ServiceCard{
			Name:        s.Text("name"),
			Description: s.Text("description"),
			Price:       s.Num("price"),
			Period:      s.Text("period"),
			ROI:         s.Text("roi"),
			Features:    components.SplitFeatures(s.Text("features")),
			Popular:     s.Text("popular") == "true",
			Subscribers: s.Num("subscribers"),
		})
	}
	return cards
}

func (m *PortalModel) renderServices(width int) string {
	cards := m.serviceCards()
	if len(cards) == 0 {
		return emptyState("No service plans.", m.env.Store.LoadError())
	}

	cols := 2
	if width >= 140 {
		cols = 4
	}
	each := (width - (cols - 1)) / cols

	var rows []string
	for i := 0; i < len(cards); i += cols {
		var blocks []string
		for _, c := range cards[i:min(i+cols, len(cards))] {
			c.Width = each
			blocks = append(blocks, c.Render())
		}
		rows = append(rows, components.Columns(blocks...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *PortalModel) renderSubscribers() string {
	v := m.filters.apply(m.env.Store.Records(record.KindSubscriber))
	header := lipgloss.NewStyle().Foreground(styles.TextSecondary).Bold(true).Render(
		fmt.Sprintf("%-18s %-22s %-22s %-12s %9s  %s", "CUSTOMER", "EMAIL", "SERVICE", "JOIN DATE", "REVENUE", "STATUS"))
	if v.Empty() {
		return header + "\n" + emptyState("No subscribers found matching your criteria.", m.env.Store.LoadError())
	}

	lines := []string{header}
	for _, s := range v.Records {
		joined := "---"
		if t, ok := s.TimeField("joinDate"); ok {
			joined = t.Format("2006-01-02")
		}
		status := s.Text("status")
		lines = append(lines,
			cell(s.Text("name"), 18, lipgloss.NewStyle().Foreground(styles.TextPrimary))+" "+
				cell(s.Text("email"), 22, styles.Label)+" "+
				cell(s.Text("service"), 22, lipgloss.NewStyle().Foreground(styles.TextSecondary))+" "+
				cell(joined, 12, styles.Label)+" "+
				lipgloss.NewStyle().Width(9).Align(lipgloss.Right).Foreground(styles.StatusOK).Render(components.WholeMoney(s.Num("revenue")))+"  "+
				styles.StatusBadge(status))
	}
	lines = append(lines, styles.Label.Render(fmt.Sprintf("%d of %d subscribers", len(v.Records), v.Total)))
	return strings.Join(lines, "\n")
}

func (m *PortalModel) renderAnalytics(width int) string {
	services := m.env.Store.Records(record.KindService)
	if len(services) == 0 {
		return emptyState("No analytics yet.", m.env.Store.LoadError())
	}

	lw, rw := halves(width)
	barWidth := max(lw-32, 6)

	var perf, revenue []string
	total := 0.0
	for _, s := range services {
		share := s.Num("share")
		perf = append(perf, components.PadBetween(
			lipgloss.NewStyle().Foreground(styles.TextPrimary).Width(22).Render(styles.TruncateWithEllipsis(s.Text("name"), 22)),
			components.Bar(share/100, barWidth, styles.AccentPrimary)+styles.Label.Render(fmt.Sprintf(" %3.0f%%", share)),
			lw-4))

		r := s.Num("monthlyRevenue")
		total += r
		revenue = append(revenue, components.PadBetween(
			lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(s.Text("name")),
			styles.Gold(components.WholeMoney(r)),
			rw-4))
	}
	revenue = append(revenue,
		styles.Divider(rw-4),
		components.PadBetween(styles.Bold("Total Monthly Revenue"), styles.Green(components.WholeMoney(total)), rw-4))

	return components.Columns(
		components.Panel("Service Performance", strings.Join(perf, "\n"), lw),
		components.Panel("Revenue Breakdown", strings.Join(revenue, "\n"), rw),
	)
}
