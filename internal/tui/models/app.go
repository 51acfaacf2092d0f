package models

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Dallionking/rhnis-control-center/internal/config"
	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/section"
	"github.com/Dallionking/rhnis-control-center/internal/tui/components"
)

// TickMsg triggers a periodic header and sparkline refresh.
type TickMsg time.Time

// reloadMsg carries a dataset change from the fixture watcher.
type reloadMsg record.Reload

// reloadsClosedMsg is sent once the watcher channel closes.
type reloadsClosedMsg struct{}

// AppOptions configures NewApp. Store and Config are required.
type AppOptions struct {
	Config *config.Config
	Root   string
	Store  *record.Store
	Logger *zap.Logger
	Now    func() time.Time
	// Reloads, when set, delivers dataset changes from a record.Watcher.
	Reloads <-chan record.Reload
}

// App is the full-screen dashboard. It owns one model per section and
// keeps exactly the active one mounted.
type App struct {
	cfg      *config.Config
	env      Env
	sections map[section.ID]Section
	selector *section.Selector
	reloads  <-chan record.Reload

	trading *TradingModel
	leadbot *LeadBotModel
	portal  *PortalModel
	chat    *ChatModel

	header   components.Header
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewApp builds every section and mounts the configured start section.
func NewApp(opts AppOptions) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	env := Env{
		Store:  opts.Store,
		Logger: logger,
		Now:    opts.Now,
		Seed:   cfg.Ticker.Seed,
		Feed:   NewActivity(logger, opts.Now),
	}

	m := App{
		cfg:     cfg,
		env:     env,
		reloads: opts.Reloads,
		trading: NewTradingModel(env, cfg.Ticker.Trading.Interval),
		leadbot: NewLeadBotModel(env, cfg.Ticker.LeadBot.Interval),
		portal:  NewPortalModel(env),
		chat:    NewChatModel(env, cfg.Chat.ReplyDelay),
	}
	m.sections = map[section.ID]Section{
		section.Dashboard:  NewDashboardModel(env),
		section.Trading:    m.trading,
		section.LeadBot:    m.leadbot,
		section.Portal:     m.portal,
		section.RHNIS:      NewRHNISModel(env),
		section.Businesses: NewBusinessesModel(env),
		section.Leads:      NewLeadsModel(env),
		section.Workers:    NewWorkersModel(env),
		section.Chat:       m.chat,
		section.Settings:   NewSettingsModel(cfg, opts.Root),
	}

	views := make(map[section.ID]section.Mountable, len(m.sections))
	for id, s := range m.sections {
		views[id] = s
	}

	start := section.Parse(cfg.Dashboard.Section)
	if !section.Valid(cfg.Dashboard.Section) {
		logger.Warn("unknown start section, using dashboard", zap.String("section", cfg.Dashboard.Section))
	}
	m.selector = section.NewSelector(views, start)

	if err := env.Store.LoadError(); err != nil {
		env.Feed.Add("error", "DATA", "Data load failed: %v", err)
	}
	env.Feed.Add("info", "SYSTEM", "%s started", cfg.Name)
	m.refreshHeader()
	return m
}

// Active returns the selected section.
func (m App) Active() section.ID { return m.selector.Active() }

// Section returns the model for id.
func (m App) Section(id section.ID) Section { return m.sections[id] }

// Feed returns the shared activity feed.
func (m App) Feed() *Activity { return m.env.Feed }

// Close unmounts the active section, stopping any running simulator.
func (m App) Close() {
	m.selector.Close()
}

func (m App) tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Second
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func waitForReload(ch <-chan record.Reload) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return reloadsClosedMsg{}
		}
		return reloadMsg(r)
	}
}

// Init starts with a fast first tick, then refreshes at the configured
// interval.
func (m App) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd(200 * time.Millisecond)}
	if m.reloads != nil {
		cmds = append(cmds, waitForReload(m.reloads))
	}
	return tea.Batch(cmds...)
}

// Update handles resize, global keys, ticks and reloads, and forwards the
// rest to the active section.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	active := m.sections[m.selector.Active()]

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refreshHeader()
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.selector.Next()
			m.refreshHeader()
			return m, nil
		case "shift+tab":
			m.selector.Prev()
			m.refreshHeader()
			return m, nil
		}
		if !active.Capturing() {
			if key == "q" {
				m.quitting = true
				return m, tea.Quit
			}
			if id, ok := digitSection(key); ok {
				m.selector.Select(id)
				m.refreshHeader()
				return m, nil
			}
		}

	case TickMsg:
		m.trading.Sample()
		m.refreshHeader()
		return m, m.tickCmd(m.cfg.Dashboard.Refresh)

	case reloadMsg:
		m.applyReload(record.Reload(msg))
		return m, waitForReload(m.reloads)

	case reloadsClosedMsg:
		m.env.Logger.Debug("fixture watcher stopped")
		return m, nil

	case chatReplyMsg:
		return m, m.chat.Update(msg)
	}

	cmd := active.Update(msg)
	m.refreshHeader()
	return m, cmd
}

// digitSection maps "1".."9" to the first nine sections and "0" to the
// tenth.
func digitSection(key string) (section.ID, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return "", false
	}
	all := section.All()
	idx := int(key[0]-'0') - 1
	if idx < 0 {
		idx = 9
	}
	if idx >= len(all) {
		return "", false
	}
	return all[idx], true
}

func (m *App) applyReload(r record.Reload) {
	if r.Err != nil {
		m.env.Store.SetLoadError(r.Err)
		m.env.Feed.Add("error", "DATA", "Reload failed: %v", r.Err)
		return
	}
	m.env.Store.Replace(r.Dataset)
	m.env.Feed.Add("info", "DATA", "Reloaded %d records (%d files changed)", r.Dataset.Len(), len(r.Files))
	if n := m.leadbot.Restore(); n > 0 {
		m.env.Feed.Add("info", "LEADBOT", "Kept %d campaigns created this session", n)
	}
}

func (m *App) refreshHeader() {
	bots := 0
	if m.trading.Active() {
		bots++
	}
	if m.leadbot.Active() {
		bots++
	}
	m.header = components.Header{
		Section:    m.selector.Active().Label(),
		ActiveBots: bots,
		TotalBots:  2,
		Revenue:    m.portal.Revenue,
		Width:      m.width,
	}
}

// View renders header, section tabs, the active section and the footer.
func (m App) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Loading control center..."
	}

	id := m.selector.Active()
	active := m.sections[id]

	labels := make([]string, 0, len(m.sections))
	for _, s := range section.All() {
		labels = append(labels, s.Label())
	}
	tabs := components.TabBar{Tabs: labels, ActiveTab: id.Index(), Width: m.width}.Render()

	footer := components.SectionFooter(active.Hints(), m.width)
	if active.Capturing() {
		footer = components.InputFooter(m.width)
	}
	head := m.header.Render()
	foot := footer.Render()

	bodyH := max(m.height-lipgloss.Height(head)-lipgloss.Height(tabs)-lipgloss.Height(foot), 1)
	body := lipgloss.NewStyle().Height(bodyH).Render(clip(active.View(m.width, bodyH), bodyH))

	return lipgloss.JoinVertical(lipgloss.Left, head, tabs, body, foot)
}
