package record

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Source supplies the initial record sequences.
type Source interface {
	Fetch(ctx context.Context) (*Dataset, error)
}

// FetchError reports a failed dataset fetch. Views surface it as an empty
// state message.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching records from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SeedSource serves the built-in sample data.
type SeedSource struct {
	Now func() time.Time
}

// Fetch returns the seed dataset.
func (s SeedSource) Fetch(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: "seed", Err: err}
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return SeedDataset(now()), nil
}

// FileSource loads one YAML fixture per kind (<kind>.yaml) from Dir. Kinds
// without a fixture file fall back to the seed data.
type FileSource struct {
	Dir    string
	Now    func() time.Time
	Logger *zap.Logger
}

// NewFileSource creates a FileSource rooted at dir.
func NewFileSource(dir string, logger *zap.Logger) *FileSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSource{Dir: dir, Logger: logger}
}

// FixturePath returns the fixture file path for kind.
func (s *FileSource) FixturePath(kind Kind) string {
	return filepath.Join(s.Dir, string(kind)+".yaml")
}

// Fetch reads every fixture concurrently. Any unreadable or malformed file
// fails the whole fetch with a *FetchError naming that file.
func (s *FileSource) Fetch(ctx context.Context) (*Dataset, error) {
	info, err := os.Stat(s.Dir)
	if err != nil {
		return nil, &FetchError{Source: s.Dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &FetchError{Source: s.Dir, Err: errors.New("not a directory")}
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	seed := SeedDataset(now())

	var mu sync.Mutex
	ds := &Dataset{Records: make(map[Kind][]Record)}

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range AllKinds() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := s.FixturePath(kind)
			recs, err := loadFixture(kind, path)
			if errors.Is(err, fs.ErrNotExist) {
				recs = seed.Records[kind]
				err = nil
			}
			if err != nil {
				return &FetchError{Source: path, Err: err}
			}
			mu.Lock()
			ds.Records[kind] = recs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, &FetchError{Source: s.Dir, Err: err}
	}

	s.Logger.Debug("records loaded", zap.String("dir", s.Dir), zap.Int("records", ds.Len()))
	return ds, nil
}

// loadFixture decodes a YAML list of field maps. An "id" key becomes the
// record ID; records without one are numbered in file order. Date-shaped
// strings become times.
func loadFixture(kind Kind, path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	recs := make([]Record, 0, len(rows))
	for i, row := range rows {
		id := strconv.Itoa(i + 1)
		if v, ok := row["id"]; ok {
			id = fmt.Sprint(v)
			delete(row, "id")
		}
		for k, v := range row {
			if str, ok := v.(string); ok {
				if t, ok := parseTime(str); ok {
					row[k] = t
				}
			}
		}
		recs = append(recs, New(kind, id, row))
	}
	return recs, nil
}

// WriteFixture writes recs to path in the format FileSource reads back.
func WriteFixture(path string, recs []Record) error {
	rows := make([]map[string]any, 0, len(recs))
	for _, r := range recs {
		row := r.Fields()
		row["id"] = r.ID()
		rows = append(rows, row)
	}
	data, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// yaml.v3 hands timestamps to interface{} targets as strings.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

func parseTime(s string) (time.Time, bool) {
	if len(s) < len("2006-01-02") || s[4] != '-' {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Load fetches from src and builds a Store. On failure the store is empty
// and carries the error, so callers can keep rendering.
func Load(ctx context.Context, src Source, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	ds, err := src.Fetch(ctx)
	store := NewStore(ds)
	if err != nil {
		logger.Warn("record fetch failed", zap.Error(err))
		store.SetLoadError(err)
	}
	return store
}
