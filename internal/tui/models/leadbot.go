package models

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/ticker"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

const (
	autoCampaignPlatform = "Auto-Selected"
	autoCampaignContent  = "AI-Generated: Quality fencing solutions for your home. Professional installation, competitive prices!"
	autoCampaignDelay    = 30 * time.Minute
)

// LeadBotModel is the Lead Generation Bot section: auto-posting switch,
// lead counters, campaigns, social platforms and the filterable list of
// leads the bot collected.
type LeadBotModel struct {
	env      Env
	sim      *ticker.Simulator
	interval time.Duration
	onTick   func()

	TotalLeads     *ticker.Counter
	MonthlyLeads   *ticker.Counter
	ConversionRate float64

	filters filterBar
	confirm *components.ConfirmDialog
	newID   func() string
	created []record.Record

	active  bool
	mounted bool
}

// NewLeadBotModel creates the lead bot section with auto-posting on.
func NewLeadBotModel(env Env, interval time.Duration) *LeadBotModel {
	m := &LeadBotModel{
		env:            env,
		sim:            ticker.New("leadbot", ticker.WithLogger(env.Logger)),
		interval:       interval,
		TotalLeads:     ticker.NewCounter(847),
		MonthlyLeads:   ticker.NewCounter(156),
		ConversionRate: 23.5,
		filters:        newFilterBar(record.KindBotLead, "Search bot leads..."),
		newID:          uuid.NewString,
		active:         true,
	}
	m.onTick = ticker.Perturb(env.rng(2), ticker.LeadBotBindings(m.TotalLeads, m.MonthlyLeads)...)
	return m
}

func (m *LeadBotModel) Mount() {
	m.mounted = true
	m.sync()
}

func (m *LeadBotModel) Unmount() {
	m.mounted = false
	m.confirm = nil
	m.filters.input.Blur()
	m.sync()
}

func (m *LeadBotModel) sync() {
	if m.mounted && m.active {
		m.sim.Start(m.interval, m.onTick)
		return
	}
	m.sim.Stop()
}

// Running reports whether the simulator is ticking.
func (m *LeadBotModel) Running() bool {
	return m.sim.State() == ticker.Running
}

// Active reports the auto-posting switch.
func (m *LeadBotModel) Active() bool { return m.active }

// SetActive flips the auto-posting switch.
func (m *LeadBotModel) SetActive(on bool) {
	if on == m.active {
		return
	}
	m.active = on
	m.sync()
	if on {
		m.env.Feed.Add("success", "LEADBOT", "Auto-posting resumed")
	} else {
		m.env.Feed.Add("warn", "LEADBOT", "Auto-posting paused")
	}
}

// CreateCampaign schedules an auto-selected campaign half an hour out and
// lists it first.
func (m *LeadBotModel) CreateCampaign() record.Record {
	rec := record.New(record.KindCampaign, m.newID(), map[string]any{
		"platform":      autoCampaignPlatform,
		"content":       autoCampaignContent,
		"reach":         0,
		"leads":         0,
		"engagement":    0,
		"status":        "SCHEDULED",
		"scheduledTime": m.env.now().Add(autoCampaignDelay),
	})
	m.env.Store.Prepend(rec)
	m.created = append(m.created, rec)
	m.env.Feed.Add("success", "LEADBOT", "Campaign %s scheduled", shortID(rec.ID()))
	return rec
}

// Restore puts the campaigns created this session back on top of the
// store, oldest first, skipping ids the store already has. It returns how
// many were put back.
func (m *LeadBotModel) Restore() int {
	have := make(map[string]bool)
	for _, c := range m.env.Store.Records(record.KindCampaign) {
		have[c.ID()] = true
	}
	n := 0
	for _, rec := range m.created {
		if have[rec.ID()] {
			continue
		}
		m.env.Store.Prepend(rec)
		n++
	}
	return n
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m *LeadBotModel) Capturing() bool {
	return m.confirm != nil || m.filters.editing()
}

func (m *LeadBotModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.filters.update(msg)
	}

	if m.confirm != nil {
		d, cmd := m.confirm.Update(key)
		if d.Done {
			m.confirm = nil
			if d.Confirmed {
				m.CreateCampaign()
			}
			return cmd
		}
		m.confirm = &d
		return cmd
	}

	if handled, cmd := m.filters.handleKey(key); handled {
		return cmd
	}

	switch key.String() {
	case " ":
		m.SetActive(!m.active)
	case "n":
		d := components.NewConfirmDialog("Create Campaign",
			"Schedule an AI-generated campaign on an auto-selected platform in 30 minutes?")
		m.confirm = &d
	}
	return nil
}

func (m *LeadBotModel) Hints() []components.KeyHint {
	return append([]components.KeyHint{
		{Key: "space", Desc: "auto-posting"},
		{Key: "n", Desc: "new campaign"},
	}, filterHints...)
}

func (m *LeadBotModel) View(width, height int) string {
	if m.confirm != nil {
		return lipgloss.Place(width, max(height, 12), lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	campaigns := m.env.Store.Records(record.KindCampaign)
	running := 0
	for _, c := range campaigns {
		if c.Text("status") == "ACTIVE" {
			running++
		}
	}

	cards := []components.StatCard{
		{Label: "Total Leads", Value: components.Count(m.TotalLeads.Value()), Note: "all time", Color: styles.AccentPrimary},
		{Label: "This Month", Value: components.Count(m.MonthlyLeads.Value()), Note: "new leads", Color: styles.StatusOK},
		{Label: "Conversion Rate", Value: components.Percent(m.ConversionRate), Note: "lead to customer", Color: styles.AccentTertiary},
		{Label: "Active Campaigns", Value: fmt.Sprint(running), Note: fmt.Sprintf("%d total", len(campaigns)), Color: styles.AccentGold},
	}

	lw, rw := halves(width)
	panels := components.Columns(
		components.Panel("Campaigns", m.renderCampaigns(campaigns, lw-4), lw),
		components.Panel("Platform Connections", m.renderPlatforms(rw-4), rw),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("Lead Generation Bot", styles.Label.Render("Auto-Posting ")+toggleBadge(m.active, "ON", "OFF"), width),
		components.StatRow(cards, width),
		panels,
		components.Panel("Recent Leads", m.filters.View(width-4)+"\n"+m.renderLeads(), width),
	)
}

func (m *LeadBotModel) renderCampaigns(campaigns []record.Record, width int) string {
	if len(campaigns) == 0 {
		return styles.Dim("No campaigns. Press n to create one.")
	}
	now := m.env.now()
	var blocks []string
	for _, c := range campaigns {
		status := c.Text("status")
		head := components.PadBetween(styles.Bold(c.Text("platform")), styles.StatusBadge(status), width)
		body := lipgloss.NewStyle().Foreground(styles.TextSecondary).
			Render(styles.TruncateWithEllipsis(c.Text("content"), width))
		stats := styles.Label.Render(fmt.Sprintf("Reach %s  Leads %s  Engagement %.1f%%",
			components.Count(c.Num("reach")), components.Count(c.Num("leads")), c.Num("engagement")))
		if t, ok := c.TimeField("scheduledTime"); ok && status == "SCHEDULED" {
			stats += styles.Label.Render("  at ") + styles.Blue(t.Format("15:04"))
			if t.After(now) {
				stats += styles.Dim(fmt.Sprintf(" (in %s)", t.Sub(now).Round(time.Minute)))
			}
		}
		blocks = append(blocks, head+"\n"+body+"\n"+stats)
	}
	return strings.Join(blocks, "\n\n")
}

func (m *LeadBotModel) renderPlatforms(width int) string {
	platforms := m.env.Store.Records(record.KindSocialPlatform)
	if len(platforms) == 0 {
		return styles.Dim("No platforms.")
	}
	var lines []string
	for _, p := range platforms {
		left := styles.StatusBadge(p.Text("status")) + " " + styles.Bold(p.Text("name"))
		right := styles.Label.Render(fmt.Sprintf("%s posts  %s leads",
			components.Count(p.Num("posts")), components.Count(p.Num("leads"))))
		lines = append(lines, components.PadBetween(left, right, width))
	}
	return strings.Join(lines, "\n")
}

func (m *LeadBotModel) renderLeads() string {
	v := m.filters.apply(m.env.Store.Records(record.KindBotLead))
	header := lipgloss.NewStyle().Foreground(styles.TextSecondary).Bold(true).Render(
		fmt.Sprintf("%-18s %-15s %-18s %-10s %-9s %s", "NAME", "PHONE", "SERVICE", "SOURCE", "TIME", "STATUS"))
	if v.Empty() {
		return header + "\n" + emptyState(NoLeadsMessage, m.env.Store.LoadError())
	}

	now := m.env.now()
	lines := []string{header}
	for _, l := range v.Records {
		ts, _ := l.TimeField("timestamp")
		status := l.Text("status")
		lines = append(lines,
			cell(l.Text("name"), 18, lipgloss.NewStyle().Foreground(styles.TextPrimary))+" "+
				cell(l.Text("phone"), 15, styles.Label)+" "+
				cell(l.Text("service"), 18, lipgloss.NewStyle().Foreground(styles.TextSecondary))+" "+
				cell(l.Text("source"), 10, lipgloss.NewStyle().Foreground(styles.AccentSecondary))+" "+
				cell(ago(now, ts), 9, styles.Label)+" "+
				lipgloss.NewStyle().Foreground(styles.StatusColor(status)).Bold(true).Render(status))
	}
	lines = append(lines, styles.Label.Render(fmt.Sprintf("%d of %d leads", len(v.Records), v.Total)))
	return strings.Join(lines, "\n")
}
