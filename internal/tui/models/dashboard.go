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

// dashboardPreview is how many leads and workers the overview lists.
const dashboardPreview = 3

// DashboardModel is the overview: business stats, recent leads, NCS
// worker status and the activity feed.
type DashboardModel struct {
	env Env
}

// NewDashboardModel creates the overview section.
func NewDashboardModel(env Env) *DashboardModel {
	return &DashboardModel{env: env}
}

func (m *DashboardModel) Mount()          {}
func (m *DashboardModel) Unmount()        {}
func (m *DashboardModel) Capturing() bool { return false }

// Update scrolls the activity feed.
func (m *DashboardModel) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m.env.Feed.Scroll(msg)
	}
	return nil
}

func (m *DashboardModel) Hints() []components.KeyHint {
	return []components.KeyHint{{Key: "↑↓", Desc: "scroll activity"}, {Key: "G", Desc: "follow"}}
}

func (m *DashboardModel) View(width, height int) string {
	stats := m.env.Store.Records(record.KindStat)
	cards := make([]components.StatCard, 0, len(stats))
	for _, s := range stats {
		color := styles.StatusOK
		if s.Text("trend") == "down" {
			color = styles.StatusError
		}
		cards = append(cards, components.StatCard{
			Label: s.Text("label"),
			Value: s.Text("value"),
			Note:  s.Text("change") + " from last month",
			Color: color,
		})
	}

	parts := []string{sectionTitle("Control Center", styles.Dim(m.env.now().Format("Mon Jan 2 15:04")), width)}
	if len(cards) > 0 {
		parts = append(parts, components.StatRow(cards, width))
	} else {
		parts = append(parts, emptyState("No business stats.", m.env.Store.LoadError()))
	}

	lw, rw := halves(width)
	parts = append(parts, components.Columns(
		components.Panel("Recent Fencing Leads", m.renderLeads(lw-4), lw),
		components.Panel("Nick Control System (NCS)", m.renderWorkers(rw-4), rw),
	))

	used := lipgloss.Height(strings.Join(parts, "\n"))
	feedH := max(height-used-3, 3)
	parts = append(parts, components.Panel("Recent Activity", m.env.Feed.View(width-4, feedH), width))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *DashboardModel) renderLeads(width int) string {
	leads := m.env.Store.Records(record.KindLead)
	if len(leads) == 0 {
		return styles.Dim("No leads yet")
	}
	var lines []string
	for _, l := range leads[:min(dashboardPreview, len(leads))] {
		left := styles.Bold(l.Text("name")) + "\n" + styles.Label.Render(l.Text("service"))
		right := components.WholeMoney(l.Num("value")) + "\n" + styles.StatusBadge(l.Status())
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(max(width-lipgloss.Width(right), 1)).Render(left),
			lipgloss.NewStyle().Align(lipgloss.Right).Render(right),
		))
	}
	return strings.Join(lines, "\n")
}

func (m *DashboardModel) renderWorkers(width int) string {
	workers := m.env.Store.Records(record.KindWorker)
	if len(workers) == 0 {
		return styles.Dim("No workers configured")
	}
	running, _ := WorkerCounts(workers)

	lines := []string{styles.Label.Render(fmt.Sprintf("%d of %d running", running, len(workers)))}
	for _, w := range workers[:min(dashboardPreview, len(workers))] {
		dot := lipgloss.NewStyle().Foreground(styles.StatusColor(w.Status())).Render("●")
		lines = append(lines, components.PadBetween(
			lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(w.Text("name")),
			dot+" "+styles.Label.Render(w.Status()),
			width))
	}
	return strings.Join(lines, "\n")
}
