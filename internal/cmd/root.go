package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dallionking/rhnis-control-center/internal/config"
	"github.com/Dallionking/rhnis-control-center/internal/logging"
	"github.com/Dallionking/rhnis-control-center/internal/record"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "rhnis",
	Short: "RHNIS Control Center operator dashboard",
	Long: `RHNIS Control Center, the Right Hand Nick Identity System

A terminal dashboard for one operator's ventures: trading and lead bots,
the customer portal, fencing leads, NCS workers and Nick chat.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("RHNIS Control Center " + Version)
		fmt.Println("Run 'rhnis dashboard' to open the control center, or 'rhnis --help' for commands")
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./rhnis.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
}

// env is the loaded config, resolved paths and logger shared by a command.
type env struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *zap.Logger
}

// loadEnv reads the config and builds a logger. The dashboard owns the
// terminal, so it logs to the configured file; other commands log to
// stderr.
func loadEnv(logToFile bool) (*env, error) {
	file := cfgFile
	if file == "" {
		// Prefer an rhnis.yaml in a parent directory over the search path.
		if root, err := config.DetectProjectRoot(); err == nil {
			file = filepath.Join(root, config.FileName)
		}
	}
	v, err := config.NewViper(file)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	paths := config.NewPaths(config.Root(), cfg)

	opts := logging.Options{Level: cfg.Log.Level, Verbose: verbose}
	if logToFile {
		opts.File = paths.Log
	}
	logger, err := logging.New(opts)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, paths: paths, logger: logger}, nil
}

// source returns the fixture source for the configured data directory, or
// the seed data when none is set.
func (e *env) source() record.Source {
	if e.paths.Data == "" {
		return record.SeedSource{}
	}
	return record.NewFileSource(e.paths.Data, e.logger)
}

// load fetches the records. A failed fetch still yields a store, which
// carries the error.
func (e *env) load(ctx context.Context) *record.Store {
	return record.Load(ctx, e.source(), e.logger)
}

func (e *env) close() {
	_ = e.logger.Sync()
}
