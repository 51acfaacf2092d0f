package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dallionking/rhnis-control-center/internal/section"
	"github.com/Dallionking/rhnis-control-center/internal/tui/views"
)

var (
	dashboardSection string
	dashboardOnce    bool
	dashboardWidth   int
	dashboardHeight  int
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui"},
	Short:   "Open the control center",
	Long: `Launch the full-screen control center.

Sections: dashboard, trading, leadbot, portal, rhnis, businesses, leads,
workers, chat, settings. Switch with tab / shift+tab or the number keys.

Flags:
  --section  start on a section (default from dashboard.section)
  --once     print a single frame of the section and exit (no TUI)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dashboardSection != "" && !section.Valid(dashboardSection) {
			return fmt.Errorf("unknown section %q", dashboardSection)
		}

		e, err := loadEnv(!dashboardOnce)
		if err != nil {
			return err
		}
		defer e.close()

		if dashboardSection != "" {
			e.cfg.Dashboard.Section = dashboardSection
		}

		opts := views.Options{
			Config: e.cfg,
			Paths:  e.paths,
			Store:  e.load(cmd.Context()),
			Source: e.source(),
			Logger: e.logger,
		}

		if dashboardOnce {
			fmt.Println(views.RenderOnce(opts, section.Parse(e.cfg.Dashboard.Section), dashboardWidth, dashboardHeight))
			return nil
		}
		return views.RunDashboard(cmd.Context(), opts)
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardSection, "section", "", "section to open")
	dashboardCmd.Flags().BoolVar(&dashboardOnce, "once", false, "render one frame and exit")
	dashboardCmd.Flags().IntVar(&dashboardWidth, "width", 120, "frame width for --once")
	dashboardCmd.Flags().IntVar(&dashboardHeight, "height", 40, "frame height for --once")
	rootCmd.AddCommand(dashboardCmd)
}
