package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func fields(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, Validate(cfg))
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
name: Test Center
data:
  dir: fixtures
dashboard:
  section: leads
  refresh: 2s
ticker:
  trading:
    interval: 750ms
  seed: 42
chat:
  reply_delay: 10ms
log:
  level: debug
`)
	t.Setenv("RHNIS_TICKER_LEADBOT_INTERVAL", "9s")

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "Test Center", cfg.Name)
	assert.Equal(t, "leads", cfg.Dashboard.Section)
	assert.Equal(t, 2*time.Second, cfg.Dashboard.Refresh)
	assert.Equal(t, 750*time.Millisecond, cfg.Ticker.Trading.Interval)
	assert.Equal(t, 9*time.Second, cfg.Ticker.LeadBot.Interval)
	assert.Equal(t, uint64(42), cfg.Ticker.Seed)
	assert.Equal(t, 10*time.Millisecond, cfg.Chat.ReplyDelay)
	assert.Equal(t, "rhnis.log", cfg.Log.File, "unset keys keep defaults")

	assert.Equal(t, filepath.Dir(path), Root())

	p := NewPaths(Root(), cfg)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "fixtures"), p.Data)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "rhnis.log"), p.Log)
}

func TestExplicitMissingFileFails(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Name = " "
	cfg.Data.Watch = true
	cfg.Dashboard.Section = "casino"
	cfg.Dashboard.Refresh = 0
	cfg.Ticker.Trading.Interval = time.Millisecond
	cfg.Chat.ReplyDelay = -time.Second
	cfg.Log.Level = "chatty"

	want := []string{
		"name",
		"data.watch",
		"dashboard.section",
		"dashboard.refresh",
		"ticker.trading.interval",
		"chat.reply_delay",
		"log.level",
	}
	if diff := cmp.Diff(want, fields(Validate(cfg))); diff != "" {
		t.Errorf("Validate() fields (-want +got):\n%s", diff)
	}
}

func TestValidateDataDir(t *testing.T) {
	path := writeConfig(t, "data:\n  dir: notes.txt\n")
	root := filepath.Dir(path)
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "data.dir", errs[0].Field)
	assert.Contains(t, errs[0].Error(), "not a directory")

	cfg.Data.Dir = "missing"
	cfg.Data.Watch = true
	assert.Equal(t, []string{"data.watch"}, fields(Validate(cfg)))
}

func TestSaveRoundTripsThroughViper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := Default()
	cfg.Dashboard.Section = "workers"
	cfg.Ticker.Trading.Interval = 4 * time.Second
	require.NoError(t, Save(cfg, path))

	v, err := NewViper(path)
	require.NoError(t, err)
	got, err := Load(v)
	require.NoError(t, err)

	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("saved config mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectProjectRoot(t *testing.T) {
	path := writeConfig(t, "name: x\n")
	root := filepath.Dir(path)
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	t.Chdir(sub)

	got, err := DetectProjectRoot()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	got, err = filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := Default()
	cfg.Data.Dir = "data"
	cfg.Log.File = "logs/rhnis.log"

	p := NewPaths(root, cfg)
	require.NoError(t, EnsureDirectories(p))
	assert.DirExists(t, filepath.Join(root, "data"))
	assert.DirExists(t, filepath.Join(root, "logs"))
}
