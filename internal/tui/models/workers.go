package models

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// WorkersModel is the NCS Workers section: system summary plus one panel
// per automation worker.
type WorkersModel struct {
	env     Env
	filters filterBar
	cursor  int

	Health float64
	Uptime float64
}

// NewWorkersModel creates the workers section.
func NewWorkersModel(env Env) *WorkersModel {
	return &WorkersModel{
		env:     env,
		filters: newFilterBar(record.KindWorker, "Search workers..."),
		Health:  98.5,
		Uptime:  99.9,
	}
}

func (m *WorkersModel) Mount() {}

func (m *WorkersModel) Unmount() {
	m.filters.input.Blur()
}

func (m *WorkersModel) Capturing() bool { return m.filters.editing() }

func (m *WorkersModel) Update(msg tea.Msg) tea.Cmd {
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

func (m *WorkersModel) Hints() []components.KeyHint {
	return append([]components.KeyHint{{Key: "↑↓", Desc: "focus"}}, filterHints...)
}

// WorkerCounts returns how many workers are running and how many report an
// error.
func WorkerCounts(workers []record.Record) (running, failed int) {
	for _, w := range workers {
		switch w.Text("status") {
		case "running":
			running++
		case "error":
			failed++
		}
	}
	return running, failed
}

func (m *WorkersModel) View(width, height int) string {
	all := m.env.Store.Records(record.KindWorker)
	running, failed := WorkerCounts(all)

	errColor := styles.StatusOK
	if failed > 0 {
		errColor = styles.StatusError
	}
	cards := []components.StatCard{
		{Label: "System Health", Value: components.Percent(m.Health), Color: components.GaugeColor(m.Health, 97, 90, true)},
		{Label: "Active Workers", Value: fmt.Sprintf("%d/%d", running, len(all)), Color: styles.AccentPrimary},
		{Label: "Uptime", Value: components.Percent(m.Uptime), Color: styles.AccentTertiary},
		{Label: "Errors", Value: fmt.Sprint(failed), Color: errColor},
	}

	v := m.filters.apply(all)
	m.cursor = max(0, min(m.cursor, len(v.Records)-1))

	parts := []string{
		sectionTitle("Nick Control System (NCS)", styles.Blue(fmt.Sprintf("%d Workers Active", len(all))), width),
		components.StatRow(cards, width),
		m.filters.View(width),
	}
	if v.Empty() {
		parts = append(parts, emptyState("No workers found matching your criteria.", m.env.Store.LoadError()))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	// Panels are 6 lines tall; keep the focused one on screen.
	perScreen := max((height-8)/6, 1)
	offset := 0
	if m.cursor >= perScreen {
		offset = m.cursor - perScreen + 1
	}
	for i := offset; i < len(v.Records) && i < offset+perScreen; i++ {
		w := v.Records[i]
		lastRun, _ := w.TimeField("lastRun")
		nextRun, _ := w.TimeField("nextRun")
		parts = append(parts, components.WorkerPanel{
			Name:           w.Text("name"),
			Type:           w.Text("type"),
			Status:         w.Text("status"),
			Description:    w.Text("description"),
			LastRun:        lastRun,
			NextRun:        nextRun,
			TasksCompleted: w.Num("tasksCompleted"),
			SuccessRate:    w.Num("successRate"),
			AvgRunTime:     w.Text("avgRunTime"),
			Width:          width,
			Focused:        i == m.cursor,
		}.Render())
	}
	if hidden := len(v.Records) - perScreen; hidden > 0 {
		parts = append(parts, styles.Label.Render(fmt.Sprintf("  %d of %d workers, ↑↓ to scroll", len(v.Records), v.Total)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
