package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Dallionking/rhnis-control-center/internal/config"
	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/section"
	"github.com/Dallionking/rhnis-control-center/internal/ticker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func newEnv(t *testing.T) Env {
	t.Helper()
	return Env{
		Store:  record.NewStore(record.SeedDataset(testNow)),
		Logger: zap.NewNop(),
		Now:    clock,
		Seed:   42,
		Feed:   NewActivity(zap.NewNop(), clock),
	}
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func special(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func names(recs []record.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Text("name")
	}
	return out
}

func TestLeadsSearchIsLiveAndCaseInsensitive(t *testing.T) {
	m := NewLeadsModel(newEnv(t))

	m.Update(keys("/"))
	require.True(t, m.Capturing())
	for _, r := range "MAR" {
		m.Update(keys(string(r)))
	}

	v := m.visible()
	assert.Equal(t, []string{"Maria Garcia"}, names(v.Records))
	assert.Equal(t, 3, v.Total)

	m.Update(special(tea.KeyEnter))
	assert.False(t, m.Capturing())
	assert.Len(t, m.visible().Records, 1, "search kept after enter")

	m.Update(special(tea.KeyEsc))
	assert.Len(t, m.visible().Records, 3, "esc clears all criteria")
}

func TestLeadsStatusFilterShowsEmptyState(t *testing.T) {
	m := NewLeadsModel(newEnv(t))

	m.Update(special(tea.KeyRight))
	assert.Equal(t, []string{"John Smith"}, names(m.visible().Records))

	m.Update(special(tea.KeyRight))
	v := m.visible()
	assert.True(t, v.Empty())

	out := m.View(120, 30)
	assert.Contains(t, out, NoLeadsMessage)
	assert.Contains(t, out, "0 of 3 leads")
}

func TestLeadsEmptyStateNamesLoadFailure(t *testing.T) {
	env := newEnv(t)
	env.Store = record.NewStore(nil)
	env.Store.SetLoadError(&record.FetchError{Source: "testdata", Err: errors.New("disk gone")})

	out := NewLeadsModel(env).View(120, 30)
	assert.Contains(t, out, NoLeadsMessage)
	assert.Contains(t, out, "data load failed")
}

func TestLeadsSortCycles(t *testing.T) {
	m := NewLeadsModel(newEnv(t))

	m.Update(keys("s")) // date, newest first
	assert.Equal(t, []string{"John Smith", "Maria Garcia", "David Wilson"}, names(m.visible().Records))

	m.Update(keys("s")) // value, highest first
	assert.Equal(t, []string{"David Wilson", "John Smith", "Maria Garcia"}, names(m.visible().Records))

	m.Update(keys("r"))
	assert.Equal(t, []string{"Maria Garcia", "John Smith", "David Wilson"}, names(m.visible().Records))
}

func TestLeadsDetailOpensAndCloses(t *testing.T) {
	m := NewLeadsModel(newEnv(t))
	m.Update(special(tea.KeyDown))
	m.Update(special(tea.KeyEnter))

	out := m.View(100, 30)
	assert.Contains(t, out, "Maria Garcia")
	assert.Contains(t, out, "Commercial property")

	m.Update(special(tea.KeyEsc))
	assert.Contains(t, m.View(100, 30), "Lead Management")
}

func TestTradingSimulatorFollowsMountAndSwitch(t *testing.T) {
	m := NewTradingModel(newEnv(t), ticker.MinInterval)
	t.Cleanup(m.Unmount)

	assert.False(t, m.Active(), "bot starts switched off")
	m.Mount()
	assert.False(t, m.Running())

	m.Update(space())
	assert.True(t, m.Active())
	assert.True(t, m.Running())

	m.Unmount()
	assert.False(t, m.Running(), "unmount stops the ticker")
	assert.True(t, m.Active(), "switch survives unmount")

	m.Mount()
	assert.True(t, m.Running())

	m.SetActive(false)
	assert.False(t, m.Running())
}

func TestTradingTicksMoveBalance(t *testing.T) {
	m := NewTradingModel(newEnv(t), ticker.MinInterval)
	t.Cleanup(m.Unmount)
	start := m.Balance.Value()

	m.Mount()
	m.SetActive(true)
	require.Eventually(t, func() bool { return m.Balance.Value() != start }, 3*time.Second, 20*time.Millisecond)
}

func TestTradingSampleIsBounded(t *testing.T) {
	m := NewTradingModel(newEnv(t), ticker.MinInterval)
	for range historyMax + 10 {
		m.Sample()
	}
	assert.Len(t, m.history, historyMax)
}

func TestTradingResetDay(t *testing.T) {
	env := newEnv(t)
	m := NewTradingModel(env, ticker.MinInterval)
	require.NotZero(t, m.DailyProfit.Value())

	m.Update(keys("r"))
	assert.Zero(t, m.DailyProfit.Value())

	entries := env.Feed.Entries()
	assert.Equal(t, "Daily P&L reset", entries[len(entries)-1].Message)
}

func TestLeadBotCreateCampaignThroughConfirm(t *testing.T) {
	env := newEnv(t)
	m := NewLeadBotModel(env, ticker.MinInterval)
	m.newID = func() string { return "c0ffee00-0000-0000-0000-000000000000" }
	before := env.Store.Count(record.KindCampaign)

	m.Update(keys("n"))
	require.True(t, m.Capturing(), "dialog captures keys")

	m.Update(keys("y"))
	assert.False(t, m.Capturing())

	campaigns := env.Store.Records(record.KindCampaign)
	require.Len(t, campaigns, before+1)
	got := campaigns[0]
	assert.Equal(t, "c0ffee00-0000-0000-0000-000000000000", got.ID())
	assert.Equal(t, autoCampaignPlatform, got.Text("platform"))
	assert.Equal(t, "SCHEDULED", got.Status())
	at, ok := got.TimeField("scheduledTime")
	require.True(t, ok)
	assert.Equal(t, testNow.Add(30*time.Minute), at)

	entries := env.Feed.Entries()
	assert.Contains(t, entries[len(entries)-1].Message, "c0ffee00")
}

func TestLeadBotCancelDoesNotCreate(t *testing.T) {
	env := newEnv(t)
	m := NewLeadBotModel(env, ticker.MinInterval)
	before := env.Store.Count(record.KindCampaign)

	m.Update(keys("n"))
	m.Update(special(tea.KeyEsc))
	assert.Equal(t, before, env.Store.Count(record.KindCampaign))
}

func TestLeadBotRunsWhileMountedByDefault(t *testing.T) {
	m := NewLeadBotModel(newEnv(t), ticker.MinInterval)
	t.Cleanup(m.Unmount)

	assert.True(t, m.Active())
	assert.False(t, m.Running())
	m.Mount()
	assert.True(t, m.Running())
	m.Update(space())
	assert.False(t, m.Running())
}

func TestChatReplyArrives(t *testing.T) {
	m := NewChatModel(newEnv(t), time.Millisecond)
	m.Mount()
	require.True(t, m.Capturing())

	for _, r := range "hello" {
		m.Update(keys(string(r)))
	}
	cmd := m.Update(special(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, m.Typing())

	m.Update(cmd())
	assert.False(t, m.Typing())

	msgs := m.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, nickGreeting, msgs[0].Text)
	assert.Equal(t, "hello", msgs[1].Text)
	assert.Equal(t, "user", msgs[1].Sender)
	assert.Equal(t, nickReply, msgs[2].Text)
}

func TestChatIgnoresBlankInput(t *testing.T) {
	m := NewChatModel(newEnv(t), time.Millisecond)
	m.Mount()
	assert.Nil(t, m.Send("   "))
	assert.Len(t, m.Messages(), 1)
}

func TestChatReplyDroppedAfterUnmount(t *testing.T) {
	m := NewChatModel(newEnv(t), time.Millisecond)
	m.Mount()
	cmd := m.Send("are you there?")
	require.NotNil(t, cmd)

	m.Unmount()
	reply := cmd()
	m.Update(reply)
	assert.Len(t, m.Messages(), 2)

	// A reply from the previous mount stays dropped after remounting.
	m.Mount()
	m.Update(reply)
	assert.Len(t, m.Messages(), 2)
	assert.False(t, m.Typing())
}

func TestBeaconSignature(t *testing.T) {
	assert.Equal(t, "RHNIS-LRF1XEO0", BeaconSignature(testNow))

	m := NewRHNISModel(newEnv(t))
	assert.Equal(t, "RHNIS-LRF1XEO0", m.Signature())

	m.Update(keys("]"))
	m.Update(keys("g"))
	entries := m.env.Feed.Entries()
	assert.Contains(t, entries[len(entries)-1].Message, "RHNIS-LRF1XEO0")
}

func TestParseStats(t *testing.T) {
	got := parseStats("revenue=$12,450; products=2,340;  junk ; =x; orders = 156")
	want := []statPair{
		{key: "revenue", value: "$12,450"},
		{key: "products", value: "2,340"},
		{key: "orders", value: "156"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(statPair{})); diff != "" {
		t.Errorf("parseStats mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, parseStats(""))
}

func TestWorkerCounts(t *testing.T) {
	running, failed := WorkerCounts(record.SeedKind(record.KindWorker, testNow))
	assert.Equal(t, 3, running)
	assert.Equal(t, 1, failed)
}

func TestActivityIsBounded(t *testing.T) {
	a := NewActivity(zap.NewNop(), clock)
	for i := range activityMax + 25 {
		a.Add("info", "TEST", "event %d", i)
	}
	entries := a.Entries()
	require.Len(t, entries, activityMax)
	assert.Equal(t, "event 25", entries[0].Message)
}

func TestSettingsMarkdownListsConfig(t *testing.T) {
	cfg := config.Default()
	md := NewSettingsModel(cfg, "/srv/rhnis").Markdown()
	assert.Contains(t, md, "`ticker.trading.interval` | 3s")
	assert.Contains(t, md, "(built-in seed data)")
	assert.Contains(t, md, "Nick Chat")
}

// ---------------------------------------------------------------------------
// App
// ---------------------------------------------------------------------------

func newApp(t *testing.T, start section.ID) App {
	t.Helper()
	cfg := config.Default()
	cfg.Dashboard.Section = string(start)
	cfg.Ticker.Trading.Interval = ticker.MinInterval
	cfg.Ticker.LeadBot.Interval = ticker.MinInterval
	cfg.Ticker.Seed = 7
	cfg.Chat.ReplyDelay = time.Millisecond

	app := NewApp(AppOptions{
		Config: cfg,
		Root:   t.TempDir(),
		Store:  record.NewStore(record.SeedDataset(testNow)),
		Logger: zap.NewNop(),
		Now:    clock,
	})
	t.Cleanup(app.Close)
	return app
}

func send(t *testing.T, app App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		next, _ := app.Update(msg)
		app = next.(App)
	}
	return app
}

func TestAppTabCyclesSections(t *testing.T) {
	app := newApp(t, section.Settings)

	app = send(t, app, special(tea.KeyTab))
	assert.Equal(t, section.Dashboard, app.Active())

	app = send(t, app, special(tea.KeyShiftTab))
	assert.Equal(t, section.Settings, app.Active())
}

func TestAppDigitsJump(t *testing.T) {
	app := newApp(t, section.Dashboard)

	app = send(t, app, keys("7"))
	assert.Equal(t, section.Leads, app.Active())
	app = send(t, app, keys("0"))
	assert.Equal(t, section.Settings, app.Active())
}

func TestAppSwitchingStopsSimulators(t *testing.T) {
	app := newApp(t, section.Trading)
	trading := app.Section(section.Trading).(*TradingModel)
	leadbot := app.Section(section.LeadBot).(*LeadBotModel)

	app = send(t, app, space())
	require.True(t, trading.Running())
	assert.Equal(t, 2, app.header.ActiveBots)

	app = send(t, app, special(tea.KeyTab))
	assert.Equal(t, section.LeadBot, app.Active())
	assert.False(t, trading.Running(), "leaving the section stops its ticker")
	assert.True(t, leadbot.Running())

	app = send(t, app, keys("1"))
	assert.False(t, leadbot.Running())

	app.Close()
	assert.False(t, trading.Running())
}

func TestAppSuspendsGlobalKeysWhileTyping(t *testing.T) {
	app := newApp(t, section.Leads)

	app = send(t, app, keys("/"), keys("q"), keys("2"))
	assert.False(t, app.quitting)
	assert.Equal(t, section.Leads, app.Active())

	leads := app.Section(section.Leads).(*LeadsModel)
	assert.Equal(t, "q2", leads.filters.state.Search)

	// tab still switches and releases the input.
	app = send(t, app, special(tea.KeyTab))
	assert.Equal(t, section.Workers, app.Active())
	assert.False(t, leads.Capturing())

	next, cmd := app.Update(keys("q"))
	assert.True(t, next.(App).quitting)
	assert.NotNil(t, cmd)
}

func TestAppRoutesChatReplies(t *testing.T) {
	app := newApp(t, section.Chat)
	chat := app.Section(section.Chat).(*ChatModel)

	cmd := chat.Send("status?")
	require.NotNil(t, cmd)
	reply := cmd()

	app = send(t, app, special(tea.KeyTab))
	app = send(t, app, reply)
	assert.Len(t, chat.Messages(), 2, "reply after leaving chat is dropped")
}

func TestAppReloadReplacesStore(t *testing.T) {
	app := newApp(t, section.Leads)
	store := app.env.Store

	app = send(t, app, reloadMsg{Err: &record.FetchError{Source: "testdata", Err: errors.New("bad yaml")}})
	require.Error(t, store.LoadError())
	assert.Equal(t, 3, store.Count(record.KindLead), "records kept on failure")

	ds := &record.Dataset{Records: map[record.Kind][]record.Record{
		record.KindLead: {record.New(record.KindLead, "l1", map[string]any{"name": "Ana Ruiz", "status": "New"})},
	}}
	app = send(t, app, reloadMsg{Dataset: ds, Files: []string{"leads.yaml"}})
	assert.NoError(t, store.LoadError())
	assert.Equal(t, 1, store.Count(record.KindLead))

	var msgs []string
	for _, e := range app.Feed().Entries() {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, strings.Join(msgs, "\n"), "Reload failed")
	assert.Contains(t, strings.Join(msgs, "\n"), "Reloaded 1 records")
}

func TestAppReloadKeepsSessionCampaigns(t *testing.T) {
	app := newApp(t, section.LeadBot)
	app.leadbot.newID = func() string { return "c0ffee00-0000-0000-0000-000000000000" }
	store := app.env.Store

	app = send(t, app, keys("n"), keys("y"))
	require.Equal(t, "c0ffee00-0000-0000-0000-000000000000", store.Records(record.KindCampaign)[0].ID())

	ds := &record.Dataset{Records: map[record.Kind][]record.Record{
		record.KindCampaign: {record.New(record.KindCampaign, "c1", map[string]any{"platform": "Facebook", "status": "ACTIVE"})},
	}}
	app = send(t, app, reloadMsg{Dataset: ds, Files: []string{"campaign.yaml"}})

	campaigns := store.Records(record.KindCampaign)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c0ffee00-0000-0000-0000-000000000000", campaigns[0].ID())
	assert.Equal(t, "c1", campaigns[1].ID())

	entries := app.Feed().Entries()
	assert.Equal(t, "Kept 1 campaigns created this session", entries[len(entries)-1].Message)

	// A second reload does not duplicate them.
	app = send(t, app, reloadMsg{Dataset: ds})
	assert.Equal(t, 2, store.Count(record.KindCampaign))
}

func TestAppViewComposesActiveSection(t *testing.T) {
	app := newApp(t, section.Workers)
	assert.Contains(t, app.View(), "Loading")

	app = send(t, app, tea.WindowSizeMsg{Width: 140, Height: 45})
	out := app.View()
	assert.Contains(t, out, "RHNIS")
	assert.Contains(t, out, "Nick Control System (NCS)")
	assert.Contains(t, out, "3/5")
}

func TestDigitSection(t *testing.T) {
	id, ok := digitSection("1")
	assert.True(t, ok)
	assert.Equal(t, section.Dashboard, id)

	id, ok = digitSection("0")
	assert.True(t, ok)
	assert.Equal(t, section.Settings, id)

	_, ok = digitSection("x")
	assert.False(t, ok)
}
