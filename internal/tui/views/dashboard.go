package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Dallionking/rhnis-control-center/internal/config"
	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/section"
	"github.com/Dallionking/rhnis-control-center/internal/tui/models"
)

// Options configures the dashboard entry points.
type Options struct {
	Config *config.Config
	Paths  *config.Paths
	Store  *record.Store
	// Source is re-fetched by the fixture watcher. Nil disables watching.
	Source record.Source
	Logger *zap.Logger
}

func (o Options) app(reloads <-chan record.Reload) models.App {
	root := ""
	if o.Paths != nil {
		root = o.Paths.Root
	}
	return models.NewApp(models.AppOptions{
		Config:  o.Config,
		Root:    root,
		Store:   o.Store,
		Logger:  o.Logger,
		Reloads: reloads,
	})
}

// RunDashboard launches the full-screen interactive dashboard and blocks
// until the user quits or ctx is cancelled.
//
// When data.watch is set and a fixture directory is configured, changes to
// the fixtures are re-fetched and swapped into the store while running.
func RunDashboard(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var reloads <-chan record.Reload
	if opts.Config.Data.Watch && opts.Paths != nil && opts.Paths.Data != "" && opts.Source != nil {
		w, err := record.NewWatcher(opts.Paths.Data, opts.Source, logger)
		if err != nil {
			// Watching is optional; the dashboard still runs on the
			// data already loaded.
			logger.Warn("fixture watch disabled", zap.Error(err))
		} else {
			defer w.Close()
			reloads = w.Watch(ctx)
		}
	}

	app := opts.app(reloads)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

// RenderOnce renders a single frame of one section and returns it. No
// simulator is left running. Suitable for `rhnis dashboard --once` or
// piping to other tools.
func RenderOnce(opts Options, id section.ID, width, height int) string {
	if width < 40 {
		width = 100
	}
	if height < 10 {
		height = 40
	}

	cfg := *opts.Config
	cfg.Dashboard.Section = string(id)
	opts.Config = &cfg

	app := opts.app(nil)
	defer app.Close()

	next, _ := app.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.View()
}
