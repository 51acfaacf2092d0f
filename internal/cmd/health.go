package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dallionking/rhnis-control-center/internal/health"
)

var (
	healthCheck    string
	healthCategory string
	healthJSON     bool
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Run configuration and data health checks",
	Long: `Run diagnostic health checks against the configuration and data.

Checks are grouped into categories:
  config    - config file, validation
  data      - data directory, fixture loading, status values
  runtime   - log file, terminal

Use --category to run only a specific group, or --check to run a single
named check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(false)
		if err != nil {
			return err
		}
		defer e.close()

		checker := health.NewChecker(e.cfg, e.paths.Root, e.logger)
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		var report *health.Report
		switch {
		case healthCheck != "":
			report = checker.RunCheck(ctx, healthCheck)
			if report.Total == 0 {
				return fmt.Errorf("unknown check %q (have %v)", healthCheck, checker.Names())
			}
		case healthCategory != "":
			report = checker.RunCategory(ctx, healthCategory)
		default:
			report = checker.RunAll(ctx)
		}

		if healthJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report.JSON())
		}

		fmt.Print(health.FormatReport(report))
		return nil
	},
}

func init() {
	healthCmd.Flags().StringVar(&healthCheck, "check", "", "run a specific named check")
	healthCmd.Flags().StringVar(&healthCategory, "category", "", "run checks in a category: config, data, or runtime")
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(healthCmd)
}
