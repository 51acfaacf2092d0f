package record

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewCopiesAndNormalizesFields(t *testing.T) {
	src := map[string]any{
		"name":    "John Smith",
		"value":   2500,
		"ratio":   float32(0.5),
		"popular": true,
		"skip":    []string{"x"},
	}
	rec := New(KindLead, "1", src)
	src["name"] = "mutated"

	assert.Equal(t, "John Smith", rec.Text("name"))
	assert.Equal(t, 2500.0, rec.Num("value"))
	assert.Equal(t, 0.5, rec.Num("ratio"))
	assert.Equal(t, "true", rec.Text("popular"))

	_, ok := rec.Get("skip")
	assert.False(t, ok, "unsupported values are dropped")

	f := rec.Fields()
	f["name"] = "changed"
	assert.Equal(t, "John Smith", rec.Text("name"), "Fields returns a copy")
}

func TestTypedAccessorsRejectWrongTypes(t *testing.T) {
	rec := New(KindLead, "1", map[string]any{"name": "x", "value": 1.5})

	_, ok := rec.NumberField("name")
	assert.False(t, ok)
	_, ok = rec.StringField("value")
	assert.False(t, ok)
	_, ok = rec.TimeField("missing")
	assert.False(t, ok)
	assert.Equal(t, "", rec.Text("missing"))
}

func TestStatusUsesSchemaField(t *testing.T) {
	sig := New(KindSignal, "1", map[string]any{"pair": "BTC/USDT", "direction": "UP"})
	assert.Equal(t, "UP", sig.Status())

	lead := New(KindLead, "1", map[string]any{"status": "New"})
	assert.Equal(t, "New", lead.Status())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("bot-lead")
	require.NoError(t, err)
	assert.Equal(t, KindBotLead, k)

	k, err = ParseKind("worker")
	require.NoError(t, err)
	assert.Equal(t, KindWorker, k)

	_, err = ParseKind("invoice")
	assert.Error(t, err)
}

func TestSeedRecordsMatchTheirSchemas(t *testing.T) {
	ds := SeedDataset(fixedNow)
	for _, kind := range AllKinds() {
		recs := ds.Records[kind]
		require.NotEmpty(t, recs, "kind %s has no seed data", kind)

		schema := SchemaFor(kind)
		for _, r := range recs {
			assert.Equal(t, kind, r.Kind())
			assert.True(t, schema.HasStatus(r.Status()),
				"%s record %s has status %q outside its enumeration", kind, r.ID(), r.Status())
		}
	}
}

func TestSeedLeadsOrder(t *testing.T) {
	leads := SeedKind(KindLead, fixedNow)
	require.Len(t, leads, 3)
	assert.Equal(t, "John Smith", leads[0].Text("name"))
	assert.Equal(t, "Maria Garcia", leads[1].Text("name"))
	assert.Equal(t, "David Wilson", leads[2].Text("name"))
}

func TestStoreReturnsCopies(t *testing.T) {
	store := NewStore(SeedDataset(fixedNow))
	leads := store.Records(KindLead)
	leads[0] = New(KindLead, "x", nil)

	assert.Equal(t, "John Smith", store.Records(KindLead)[0].Text("name"))
	assert.Equal(t, 3, store.Count(KindLead))
}

func TestStorePrepend(t *testing.T) {
	store := NewStore(SeedDataset(fixedNow))
	store.Prepend(New(KindCampaign, "new", map[string]any{"platform": "Auto-Selected", "status": "SCHEDULED"}))

	camps := store.Records(KindCampaign)
	require.Len(t, camps, 4)
	assert.Equal(t, "new", camps[0].ID())
	assert.Equal(t, "Facebook", camps[1].Text("platform"))
}

func TestStoreReplaceClearsLoadError(t *testing.T) {
	store := NewStore(nil)
	assert.Equal(t, 0, store.Count(KindLead))

	store.SetLoadError(errors.New("boom"))
	require.Error(t, store.LoadError())

	store.Replace(SeedDataset(fixedNow))
	assert.NoError(t, store.LoadError())
	assert.Equal(t, 3, store.Count(KindLead))
}

func TestSeedSourceHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SeedSource{}.Fetch(ctx)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSourceFallsBackToSeed(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "lead.yaml", `
- id: L-9
  name: Ada Lovelace
  service: Garden Gate
  status: Contacted
  value: 900
`)

	src := NewFileSource(dir, zap.NewNop())
	src.Now = func() time.Time { return fixedNow }

	ds, err := src.Fetch(context.Background())
	require.NoError(t, err)

	leads := ds.Records[KindLead]
	require.Len(t, leads, 1)
	assert.Equal(t, "L-9", leads[0].ID())
	assert.Equal(t, "Ada Lovelace", leads[0].Text("name"))
	assert.Equal(t, 900.0, leads[0].Num("value"))

	// No worker.yaml: seed data is used.
	assert.Len(t, ds.Records[KindWorker], 5)
}

func TestFileSourceMalformedFixture(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "trade.yaml", "- pair: [unclosed\n")

	_, err := NewFileSource(dir, nil).Fetch(context.Background())
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, filepath.Join(dir, "trade.yaml"), fe.Source)
}

func TestFileSourceMissingDir(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope"), nil).Fetch(context.Background())
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadKeepsRenderingOnFailure(t *testing.T) {
	store := Load(context.Background(), NewFileSource(filepath.Join(t.TempDir(), "nope"), nil), zap.NewNop())
	require.Error(t, store.LoadError())
	assert.Equal(t, 0, store.Count(KindLead))
	assert.Empty(t, store.Records(KindLead))
}

func TestWatcherPublishesReload(t *testing.T) {
	dir := t.TempDir()
	src := NewFileSource(dir, nil)

	w, err := NewWatcher(dir, src, zap.NewNop())
	require.NoError(t, err)
	defer w.Close()
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads := w.Watch(ctx)

	writeFixture(t, dir, "lead.yaml", "- name: Grace Hopper\n  status: New\n")

	select {
	case r := <-reloads:
		require.NoError(t, r.Err)
		require.NotNil(t, r.Dataset)
		assert.Contains(t, r.Files, "lead.yaml")
		leads := r.Dataset.Records[KindLead]
		require.Len(t, leads, 1)
		assert.Equal(t, "Grace Hopper", leads[0].Text("name"))
	case <-time.After(5 * time.Second):
		t.Fatal("no reload published")
	}

	cancel()
	for range reloads {
	}
}

func TestIsFixture(t *testing.T) {
	assert.True(t, isFixture("/data/lead.yaml"))
	assert.False(t, isFixture("/data/.lead.yaml.swp"))
	assert.False(t, isFixture("/data/notes.txt"))
}

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestFixtureDatesBecomeTimes(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "lead.yaml", "- name: Ann\n  date: 2024-01-15\n  status: New\n  phone: \"(555) 123-4567\"\n")

	ds, err := NewFileSource(dir, nil).Fetch(context.Background())
	require.NoError(t, err)

	lead := ds.Records[KindLead][0]
	d, ok := lead.TimeField("date")
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, "(555) 123-4567", lead.Text("phone"))
}

func TestWriteFixtureRoundTrips(t *testing.T) {
	dir := t.TempDir()
	src := NewFileSource(dir, nil)
	want := SeedKind(KindWorker, fixedNow)
	require.NoError(t, WriteFixture(src.FixturePath(KindWorker), want))

	ds, err := src.Fetch(context.Background())
	require.NoError(t, err)
	got := ds.Records[KindWorker]
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID(), got[i].ID())
		assert.Equal(t, want[i].Text("name"), got[i].Text("name"))
		assert.Equal(t, want[i].Num("tasksCompleted"), got[i].Num("tasksCompleted"))
		wt, _ := want[i].TimeField("lastRun")
		gt, ok := got[i].TimeField("lastRun")
		require.True(t, ok, "lastRun decodes as a time")
		assert.True(t, wt.Equal(gt))
	}
}
