package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/rhnis-control-center/internal/config"
)

func resultByName(r *Report, name string) (CheckResult, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return CheckResult{}, false
}

func TestSeedModeIsHealthy(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Log.File = filepath.Join(root, "rhnis.log")

	c := NewChecker(cfg, root, nil)
	r := c.RunCategory(context.Background(), "data")

	require.Equal(t, 3, r.Total)
	assert.True(t, r.Healthy)
	res, ok := resultByName(r, "data-dir")
	require.True(t, ok)
	assert.Equal(t, "built-in seed data", res.Message)
	assert.Equal(t, "data", res.Category)
}

func TestMalformedFixtureFails(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data")
	require.NoError(t, os.MkdirAll(data, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(data, "lead.yaml"), []byte("name: [oops\n"), 0o644))

	cfg := config.Default()
	cfg.Data.Dir = "data"

	c := NewChecker(cfg, root, nil)
	r := c.RunCheck(context.Background(), "fixtures")
	require.Equal(t, 1, r.Total)
	assert.False(t, r.Healthy)
	assert.Equal(t, StatusFail, r.Results[0].Status)
	assert.Contains(t, r.Results[0].Message, "lead.yaml")

	r = c.RunCheck(context.Background(), "statuses")
	assert.Equal(t, StatusWarn, r.Results[0].Status)
}

func TestUnknownStatusWarns(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data")
	require.NoError(t, os.MkdirAll(data, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(data, "lead.yaml"),
		[]byte("- id: L1\n  name: Ann\n  status: Lost\n"), 0o644))

	cfg := config.Default()
	cfg.Data.Dir = "data"

	r := NewChecker(cfg, root, nil).RunCategory(context.Background(), "data")
	res, ok := resultByName(r, "statuses")
	require.True(t, ok)
	assert.Equal(t, StatusWarn, res.Status)
	assert.Contains(t, res.Message, "lead/L1")

	res, _ = resultByName(r, "data-dir")
	assert.Equal(t, "1/14 kinds from fixtures", res.Message)
}

func TestInvalidConfigFails(t *testing.T) {
	cfg := config.Default()
	cfg.Dashboard.Section = "casino"
	cfg.Log.Level = "chatty"

	r := NewChecker(cfg, t.TempDir(), nil).RunCheck(context.Background(), "config-valid")
	require.Len(t, r.Results, 1)
	assert.Equal(t, StatusFail, r.Results[0].Status)
	assert.Contains(t, r.Results[0].Message, "+1 more")
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewChecker(config.Default(), t.TempDir(), nil)
	r := c.RunAll(ctx)
	assert.Equal(t, len(c.Names()), r.Failed)
	assert.Equal(t, "UNHEALTHY", r.Overall())
}

func TestReportRendering(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Log.File = filepath.Join(root, "rhnis.log")

	r := NewChecker(cfg, root, nil).RunAll(context.Background())
	out := FormatReport(r)
	assert.Contains(t, out, "RHNIS Health Check")
	assert.Contains(t, out, "Record Data")
	assert.Contains(t, out, r.Summary())

	j := r.JSON()
	assert.Len(t, j.Results, r.Total)
	assert.Equal(t, r.Overall(), j.Overall)
}

func TestRunCheckUnknownName(t *testing.T) {
	r := NewChecker(config.Default(), t.TempDir(), nil).RunCheck(context.Background(), "nope")
	assert.Zero(t, r.Total)
	assert.True(t, r.Healthy)
}
