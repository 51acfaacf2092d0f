package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/tui/models"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print a quick status snapshot",
	Long: `Print record counts per kind, NCS worker health and the data source
without opening the dashboard.

Flags:
  --json   output status as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(false)
		if err != nil {
			return err
		}
		defer e.close()

		s := snapshot(e, e.load(cmd.Context()))
		if statusJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		}
		printSnapshot(os.Stdout, s)
		return nil
	},
}

type statusSnapshot struct {
	Name      string         `json:"name"`
	Source    string         `json:"source"`
	LoadError string         `json:"load_error,omitempty"`
	Records   map[string]int `json:"records"`
	Workers   struct {
		Total   int `json:"total"`
		Running int `json:"running"`
		Failed  int `json:"failed"`
	} `json:"workers"`
}

func snapshot(e *env, store *record.Store) statusSnapshot {
	s := statusSnapshot{
		Name:    e.cfg.Name,
		Source:  "seed",
		Records: make(map[string]int),
	}
	if e.paths.Data != "" {
		s.Source = e.paths.Data
	}
	if err := store.LoadError(); err != nil {
		s.LoadError = err.Error()
	}
	for _, k := range record.AllKinds() {
		s.Records[string(k)] = store.Count(k)
	}
	workers := store.Records(record.KindWorker)
	s.Workers.Total = len(workers)
	s.Workers.Running, s.Workers.Failed = models.WorkerCounts(workers)
	return s
}

func printSnapshot(w io.Writer, s statusSnapshot) {
	fmt.Fprintln(w, styles.Title.Render("Status Snapshot"))
	fmt.Fprintln(w)

	data := styles.StatusBadge("active") + " " + styles.Dim(s.Source)
	if s.LoadError != "" {
		data = styles.StatusBadge("error") + " " + styles.Dim(s.LoadError)
	}
	fmt.Fprintln(w, styles.Label.Render("NAME")+"      "+styles.Value.Render(s.Name))
	fmt.Fprintln(w, styles.Label.Render("DATA")+"      "+data)

	workers := fmt.Sprintf("%d/%d running", s.Workers.Running, s.Workers.Total)
	if s.Workers.Failed > 0 {
		workers += "  " + styles.Red(fmt.Sprintf("%d error", s.Workers.Failed))
	}
	fmt.Fprintln(w, styles.Label.Render("WORKERS")+"   "+styles.Value.Render(workers))
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Divider(50))
	fmt.Fprintln(w)

	for _, k := range record.AllKinds() {
		fmt.Fprintf(w, "  %s %s\n",
			styles.Label.Width(18).Render(string(k)),
			styles.Value.Render(fmt.Sprint(s.Records[string(k)])))
	}
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output status as JSON")
	rootCmd.AddCommand(statusCmd)
}
