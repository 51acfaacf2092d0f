package models

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/ticker"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

const historyMax = 60

// TradingModel is the AI Trading Bot section. Its simulator nudges the
// balance and daily P&L while the section is mounted and the bot is on.
type TradingModel struct {
	env      Env
	sim      *ticker.Simulator
	interval time.Duration
	onTick   func()

	Balance     *ticker.Counter
	DailyProfit *ticker.Counter
	WinRate     *ticker.Counter

	history []float64
	active  bool
	mounted bool
}

// NewTradingModel creates the trading section with the bot switched off.
func NewTradingModel(env Env, interval time.Duration) *TradingModel {
	m := &TradingModel{
		env:         env,
		sim:         ticker.New("trading", ticker.WithLogger(env.Logger)),
		interval:    interval,
		Balance:     ticker.NewCounter(25847.32),
		DailyProfit: ticker.NewCounter(1247.85),
		WinRate:     ticker.NewCounter(78.5),
	}
	m.onTick = ticker.Perturb(env.rng(1), ticker.TradingBindings(m.Balance, m.DailyProfit)...)
	m.history = []float64{m.Balance.Value()}
	return m
}

func (m *TradingModel) Mount() {
	m.mounted = true
	m.sync()
}

func (m *TradingModel) Unmount() {
	m.mounted = false
	m.sync()
}

// sync starts the simulator exactly when the section is mounted and the
// bot is active, and stops it otherwise.
func (m *TradingModel) sync() {
	if m.mounted && m.active {
		m.sim.Start(m.interval, m.onTick)
		return
	}
	m.sim.Stop()
}

// Running reports whether the simulator is ticking.
func (m *TradingModel) Running() bool {
	return m.sim.State() == ticker.Running
}

// Active reports the bot switch.
func (m *TradingModel) Active() bool { return m.active }

// SetActive flips the bot switch.
func (m *TradingModel) SetActive(on bool) {
	if on == m.active {
		return
	}
	m.active = on
	m.sync()
	if on {
		m.env.Feed.Add("success", "TRADING", "Trading bot started")
	} else {
		m.env.Feed.Add("warn", "TRADING", "Trading bot paused")
	}
}

// Sample records the current balance for the sparkline. Called from the
// refresh tick; it only reads the counters.
func (m *TradingModel) Sample() {
	m.history = append(m.history, m.Balance.Value())
	if len(m.history) > historyMax {
		m.history = m.history[len(m.history)-historyMax:]
	}
}

func (m *TradingModel) Capturing() bool { return false }

func (m *TradingModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case " ":
		m.SetActive(!m.active)
	case "r":
		m.ResetDay()
	}
	return nil
}

// ResetDay zeroes the daily P&L, as at the start of a trading day.
func (m *TradingModel) ResetDay() {
	m.DailyProfit.Set(0)
	m.env.Feed.Add("info", "TRADING", "Daily P&L reset")
}

func (m *TradingModel) Hints() []components.KeyHint {
	return []components.KeyHint{
		{Key: "space", Desc: "start/stop bot"},
		{Key: "r", Desc: "reset day"},
	}
}

func (m *TradingModel) View(width, height int) string {
	trades := m.env.Store.Records(record.KindTrade)
	open := 0
	for _, t := range trades {
		if t.Text("status") == "OPEN" {
			open++
		}
	}

	status := toggleBadge(m.active, "ACTIVE", "PAUSED")
	balance := m.Balance.Value()
	daily := m.DailyProfit.Value()

	cards := []components.StatCard{
		{Label: "Total Balance", Value: components.Money(balance), Note: styles.Sparkline(m.history, 16), Color: styles.TextPrimary},
		{Label: "Daily P&L", Value: signedMoney(daily), Note: "today", Color: pnlColor(daily)},
		{Label: "Win Rate", Value: components.Percent(m.WinRate.Value()), Note: "last 30 days", Color: styles.AccentTertiary},
		{Label: "Active Trades", Value: fmt.Sprint(open), Note: fmt.Sprintf("%d total", len(trades)), Color: styles.AccentPrimary},
	}

	lw, rw := halves(width)
	panels := components.Columns(
		components.Panel("Live Signals", m.renderSignals(lw-4), lw),
		components.Panel("Connected Platforms", m.renderPlatforms(rw-4), rw),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("AI Trading Bot", styles.Label.Render("Bot Status ")+status, width),
		components.StatRow(cards, width),
		panels,
		components.Panel("Active Trades", m.renderTrades(trades), width),
	)
}

func (m *TradingModel) renderSignals(width int) string {
	signals := m.env.Store.Records(record.KindSignal)
	if len(signals) == 0 {
		return styles.Dim("No signals.")
	}
	var lines []string
	for _, s := range signals {
		dir := s.Text("direction")
		arrow := styles.Green("▲ " + dir)
		if dir == "DOWN" {
			arrow = styles.Red("▼ " + dir)
		}
		left := styles.Bold(s.Text("pair")) + " " + arrow + " " + styles.Dim(s.Text("timeframe"))
		right := styles.Label.Render("strength ") + components.Bar(s.Num("strength")/100, 8, styles.AccentPrimary) +
			styles.Label.Render(fmt.Sprintf(" %.0f%%", s.Num("confidence")))
		lines = append(lines, components.PadBetween(left, right, width))
	}
	return strings.Join(lines, "\n")
}

func (m *TradingModel) renderPlatforms(width int) string {
	platforms := m.env.Store.Records(record.KindPlatform)
	if len(platforms) == 0 {
		return styles.Dim("No platforms.")
	}
	var lines []string
	for _, p := range platforms {
		left := styles.StatusBadge(p.Text("status")) + " " + styles.Bold(p.Text("name"))
		right := styles.Gold(components.Money(p.Num("balance")))
		lines = append(lines, components.PadBetween(left, right, width))
	}
	return strings.Join(lines, "\n")
}

func pnlColor(v float64) lipgloss.Color {
	if v < 0 {
		return styles.StatusError
	}
	return styles.StatusOK
}

func (m *TradingModel) renderTrades(trades []record.Record) string {
	header := lipgloss.NewStyle().Foreground(styles.TextSecondary).Bold(true).Render(
		fmt.Sprintf("%-10s %-5s %10s %12s %11s  %s", "PAIR", "TYPE", "AMOUNT", "ENTRY PRICE", "P&L", "STATUS"))
	if len(trades) == 0 {
		return header + "\n" + emptyState("No trades.", m.env.Store.LoadError())
	}

	lines := []string{header}
	for _, t := range trades {
		kind := t.Text("type")
		kindStyle := lipgloss.NewStyle().Foreground(styles.StatusOK).Bold(true)
		if kind == "SELL" {
			kindStyle = kindStyle.Foreground(styles.StatusError)
		}
		profit := t.Num("profit")
		status := t.Text("status")
		lines = append(lines,
			cell(t.Text("pair"), 10, lipgloss.NewStyle().Foreground(styles.TextPrimary))+" "+
				cell(kind, 5, kindStyle)+" "+
				lipgloss.NewStyle().Width(10).Align(lipgloss.Right).Foreground(styles.TextSecondary).Render(fmt.Sprintf("%g", t.Num("amount")))+" "+
				lipgloss.NewStyle().Width(12).Align(lipgloss.Right).Foreground(styles.TextSecondary).Render(components.Money(t.Num("price")))+" "+
				styles.PnL(profit).Width(11).Align(lipgloss.Right).Render(signedMoney(profit))+"  "+
				lipgloss.NewStyle().Foreground(styles.StatusColor(status)).Render(status),
		)
	}
	return strings.Join(lines, "\n")
}
