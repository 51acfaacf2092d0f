package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the build version, git commit, build date, and Go runtime details.`,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(os.Stdout)
	},
}

func printVersion(w io.Writer) {
	fmt.Fprintln(w, styles.Cyan(styles.CompactLogo)+"  "+styles.Value.Render(Version))
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Label.Render("VERSION")+"   "+styles.Value.Render(Version))
	fmt.Fprintln(w, styles.Label.Render("COMMIT")+"    "+styles.Value.Render(GitCommit))
	fmt.Fprintln(w, styles.Label.Render("BUILT")+"     "+styles.Value.Render(BuildDate))
	fmt.Fprintln(w, styles.Label.Render("GO")+"        "+styles.Value.Render(runtime.Version()))
	fmt.Fprintln(w, styles.Label.Render("OS/ARCH")+"   "+styles.Value.Render(runtime.GOOS+"/"+runtime.GOARCH))
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
