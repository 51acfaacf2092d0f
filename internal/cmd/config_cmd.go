package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dallionking/rhnis-control-center/internal/config"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// --- config (parent) ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `View and validate the RHNIS Control Center configuration.

When run without subcommands, displays the effective configuration after
defaults and RHNIS_* environment overrides.

Subcommands:
  validate   Check the configuration for errors`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(false)
		if err != nil {
			return err
		}
		defer e.close()

		cfg := e.cfg
		dataDir := e.paths.Data
		if dataDir == "" {
			dataDir = styles.Dim("(seed data)")
		}

		fmt.Println(styles.Title.Render("Configuration"))
		fmt.Println()

		fmt.Println(styles.Label.Render("NAME") + "      " + styles.Value.Render(cfg.Name))
		fmt.Println(styles.Label.Render("ROOT") + "      " + styles.Value.Render(e.paths.Root))
		fmt.Println(styles.Label.Render("DATA") + "      " + styles.Value.Render(dataDir))
		fmt.Println(styles.Label.Render("WATCH") + "     " + styles.Value.Render(fmt.Sprint(cfg.Data.Watch)))
		fmt.Println()

		fmt.Println(styles.Divider(50))
		fmt.Println()

		fmt.Println(styles.Subtitle.Render("Dashboard"))
		fmt.Println(styles.Label.Render("  SECTION") + "   " + styles.Value.Render(cfg.Dashboard.Section))
		fmt.Println(styles.Label.Render("  REFRESH") + "   " + styles.Value.Render(cfg.Dashboard.Refresh.String()))
		fmt.Println()

		fmt.Println(styles.Subtitle.Render("Simulation"))
		fmt.Println(styles.Label.Render("  TRADING") + "   " + styles.Value.Render(cfg.Ticker.Trading.Interval.String()))
		fmt.Println(styles.Label.Render("  LEADBOT") + "   " + styles.Value.Render(cfg.Ticker.LeadBot.Interval.String()))
		seed := "clock"
		if cfg.Ticker.Seed != 0 {
			seed = fmt.Sprint(cfg.Ticker.Seed)
		}
		fmt.Println(styles.Label.Render("  SEED") + "      " + styles.Value.Render(seed))
		fmt.Println(styles.Label.Render("  CHAT") + "      " + styles.Value.Render(cfg.Chat.ReplyDelay.String()+" reply delay"))
		fmt.Println()

		fmt.Println(styles.Subtitle.Render("Logging"))
		fmt.Println(styles.Label.Render("  FILE") + "      " + styles.Value.Render(e.paths.Log))
		fmt.Println(styles.Label.Render("  LEVEL") + "     " + styles.Value.Render(cfg.Log.Level))

		return nil
	},
}

// --- config validate ---

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(false)
		if err != nil {
			return err
		}
		defer e.close()

		errs := config.Validate(e.cfg)
		if len(errs) == 0 {
			fmt.Println(styles.Green("valid") + "  " + styles.Dim(e.paths.Config))
			return nil
		}

		fmt.Println(styles.Title.Render("Configuration Errors"))
		fmt.Println()
		joined := make([]error, 0, len(errs))
		for _, ve := range errs {
			fmt.Printf("  %s  %s %s\n", styles.Red("[x]"), styles.Bold(ve.Field), styles.Dim(ve.Message))
			joined = append(joined, ve)
		}
		fmt.Println()
		return fmt.Errorf("%d config errors: %w", len(errs), errors.Join(joined...))
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}
