package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Dallionking/rhnis-control-center/internal/config"
	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/section"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testOptions(t *testing.T) Options {
	t.Helper()
	cfg := config.Default()
	return Options{
		Config: cfg,
		Paths:  config.NewPaths(t.TempDir(), cfg),
		Store:  record.NewStore(record.SeedDataset(time.Now())),
		Logger: zap.NewNop(),
	}
}

func TestRenderOnceShowsRequestedSection(t *testing.T) {
	opts := testOptions(t)

	out := RenderOnce(opts, section.Leads, 120, 40)
	assert.Contains(t, out, "Lead Management")
	assert.Contains(t, out, "Maria Garcia")

	assert.Equal(t, "dashboard", opts.Config.Dashboard.Section, "caller config untouched")
}

func TestRenderOnceStopsSimulators(t *testing.T) {
	opts := testOptions(t)
	opts.Config.Ticker.LeadBot.Interval = 100 * time.Millisecond

	// The lead bot starts switched on; goleak fails the package if its
	// ticker outlives the frame.
	out := RenderOnce(opts, section.LeadBot, 120, 40)
	assert.Contains(t, out, "Lead Bot")
}

func TestRenderOnceDefaultsSize(t *testing.T) {
	out := RenderOnce(testOptions(t), section.Settings, 0, 0)
	assert.NotEmpty(t, out)
}
