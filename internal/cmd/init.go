package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dallionking/rhnis-control-center/internal/config"
	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

var (
	initData  string
	initWatch bool
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter rhnis.yaml",
	Long: `Create rhnis.yaml in dir (default: the current directory).

With --data, the sample records are also written as one YAML fixture per
kind into that directory, so they can be edited and reloaded while the
dashboard runs (--watch).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg := config.Default()
		cfg.Data.Dir = initData
		cfg.Data.Watch = initWatch && initData != ""
		if err := config.Save(cfg, path); err != nil {
			return err
		}
		fmt.Println(styles.Green("created") + "  " + path)

		if initData == "" {
			return nil
		}
		paths := config.NewPaths(dir, cfg)
		if err := config.EnsureDirectories(paths); err != nil {
			return err
		}
		n, err := writeSeedFixtures(paths.Data, time.Now())
		if err != nil {
			return err
		}
		fmt.Println(styles.Green("created") + "  " + fmt.Sprintf("%s (%d fixtures)", paths.Data, n))
		return nil
	},
}

// writeSeedFixtures writes every kind's sample records into the existing
// directory dir and returns the number of files written.
func writeSeedFixtures(dir string, now time.Time) (int, error) {
	src := record.NewFileSource(dir, nil)
	ds := record.SeedDataset(now)
	n := 0
	for _, kind := range record.AllKinds() {
		if err := record.WriteFixture(src.FixturePath(kind), ds.Records[kind]); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func init() {
	initCmd.Flags().StringVar(&initData, "data", "", "also write sample fixtures to this directory")
	initCmd.Flags().BoolVar(&initWatch, "watch", false, "reload fixtures while the dashboard runs (needs --data)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing rhnis.yaml")
	rootCmd.AddCommand(initCmd)
}
