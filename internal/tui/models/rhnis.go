package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/ticker"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

var rhnisTabs = []string{"Identity System", "Digital Beacon", "Legacy System"}

const (
	rhnisIdentity = iota
	rhnisBeacon
	rhnisLegacy
)

// legacyStore lists preserved data sets and their sizes in bytes.
var legacyStore = []struct {
	name  string
	bytes uint64
}{
	{"Voice Recordings", 2_300_000_000},
	{"Interaction Logs", 456_000_000},
	{"Digital Signatures", 12_000_000},
}

const qrSize = 8

// RHNISModel is the identity section: identity features, beacon
// propagation with a signature generator, and legacy storage.
type RHNISModel struct {
	env       Env
	tab       int
	rng       ticker.Rand
	signature string
	pattern   [qrSize][qrSize]bool
}

// NewRHNISModel creates the identity section.
func NewRHNISModel(env Env) *RHNISModel {
	m := &RHNISModel{env: env, rng: env.rng(3)}
	m.Regenerate()
	return m
}

// BeaconSignature derives the signature shown for a beacon generated at t:
// "RHNIS-" followed by the millisecond timestamp in upper-case base 36.
func BeaconSignature(t time.Time) string {
	return "RHNIS-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

// Regenerate issues a new beacon signature and pattern.
func (m *RHNISModel) Regenerate() {
	m.signature = BeaconSignature(m.env.now())
	for y := range qrSize {
		for x := range qrSize {
			m.pattern[y][x] = m.rng.Float64() > 0.5
		}
	}
}

// Signature returns the current beacon signature.
func (m *RHNISModel) Signature() string { return m.signature }

func (m *RHNISModel) Mount()          {}
func (m *RHNISModel) Unmount()        {}
func (m *RHNISModel) Capturing() bool { return false }

func (m *RHNISModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "]", "right", "l":
		m.tab = (m.tab + 1) % len(rhnisTabs)
	case "[", "left", "h":
		m.tab = (m.tab + len(rhnisTabs) - 1) % len(rhnisTabs)
	case "g":
		if m.tab == rhnisBeacon {
			m.Regenerate()
			m.env.Feed.Add("info", "RHNIS", "New beacon %s", m.signature)
		}
	}
	return nil
}

func (m *RHNISModel) Hints() []components.KeyHint {
	hints := []components.KeyHint{{Key: "←→", Desc: "tab"}}
	if m.tab == rhnisBeacon {
		hints = append(hints, components.KeyHint{Key: "g", Desc: "new beacon"})
	}
	return hints
}

func (m *RHNISModel) View(width, height int) string {
	var body string
	switch m.tab {
	case rhnisIdentity:
		body = m.renderIdentity(width)
	case rhnisBeacon:
		body = m.renderBeacon(width)
	case rhnisLegacy:
		body = m.renderLegacy(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("RHNIS Identity", styles.Purple("Right Hand Nick Identity System"), width),
		components.TabBar{Tabs: rhnisTabs, ActiveTab: m.tab, Width: width}.Render(),
		body,
	)
}

func (m *RHNISModel) renderIdentity(width int) string {
	features := m.env.Store.Records(record.KindIdentity)
	if len(features) == 0 {
		return emptyState("No identity features.", m.env.Store.LoadError())
	}

	lw, rw := halves(width)
	var cards []string
	for _, f := range features {
		w := lw
		if len(cards)%2 == 1 {
			w = rw
		}
		body := styles.StatusBadge(f.Text("status")) + "\n" +
			lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(f.Text("description"))
		if f.Text("title") == "Sting Mode" {
			body += "\n" + styles.Red("⚠ Active trap systems monitoring for scam attempts")
		}
		cards = append(cards, components.Panel(f.Text("title"), body, w))
	}

	var rows []string
	for i := 0; i < len(cards); i += 2 {
		rows = append(rows, components.Columns(cards[i:min(i+2, len(cards))]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *RHNISModel) renderBeacon(width int) string {
	beacons := m.env.Store.Records(record.KindBeacon)

	var status string
	if len(beacons) == 0 {
		status = emptyState("No beacon data.", m.env.Store.LoadError())
	} else {
		cards := make([]components.StatCard, 0, len(beacons))
		for _, b := range beacons {
			cards = append(cards, components.StatCard{
				Label: b.Text("type"),
				Value: components.Count(b.Num("count")),
				Note:  b.Text("status"),
				Color: styles.AccentPrimary,
			})
		}
		status = components.StatRow(cards, width-4)
	}

	var grid strings.Builder
	for y := range qrSize {
		if y > 0 {
			grid.WriteByte('\n')
		}
		for x := range qrSize {
			if m.pattern[y][x] {
				grid.WriteString("██")
			} else {
				grid.WriteString("  ")
			}
		}
	}
	qr := lipgloss.NewStyle().Foreground(styles.TextPrimary).Background(styles.BgDeep).Padding(0, 1).Render(grid.String())

	sig := styles.Label.Render("Current beacon signature") + "\n" +
		lipgloss.NewStyle().Foreground(styles.TextPrimary).Background(styles.BgSurface).Padding(0, 1).Render(m.signature) + "\n\n" +
		styles.Dim("press g to generate a new beacon")

	return lipgloss.JoinVertical(lipgloss.Left,
		components.Panel("Beacon Propagation Status", status, width),
		components.Panel("QR Beacon Generator", lipgloss.JoinHorizontal(lipgloss.Top, qr, "  ", sig), width),
	)
}

func (m *RHNISModel) renderLegacy(width int) string {
	var lines []string
	var total uint64
	for _, s := range legacyStore {
		total += s.bytes
		lines = append(lines, components.PadBetween(
			lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(s.name),
			styles.Blue(humanize.Bytes(s.bytes)),
			width-4))
	}
	lines = append(lines,
		styles.Divider(width-4),
		components.PadBetween(styles.Bold("Preserved"), styles.Blue(humanize.Bytes(total)), width-4),
		"",
		styles.Dim(fmt.Sprintf("%d data sets preserved for digital legacy", len(legacyStore))),
	)
	return components.Panel("Digital Legacy Preservation", strings.Join(lines, "\n"), width)
}
