package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dallionking/rhnis-control-center/internal/filter"
	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

var (
	recordsKind   string
	recordsSearch string
	recordsStatus string
	recordsSort   string
	recordsDesc   bool
	recordsJSON   bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List records with the dashboard filter",
	Long: `List the records of one kind, filtered exactly as the dashboard
filters them.

  --search   case-insensitive substring over the kind's searchable fields
  --status   exact status value; unknown values and "All" match everything
  --sort     order by a field (source order when omitted)

Kinds: lead, bot_lead, trade, signal, platform, campaign, social_platform,
worker, subscriber, service, business, identity, beacon, stat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := record.ParseKind(recordsKind)
		if err != nil {
			return err
		}

		e, err := loadEnv(false)
		if err != nil {
			return err
		}
		defer e.close()

		store := e.load(cmd.Context())
		if err := store.LoadError(); err != nil {
			return err
		}

		status := recordsStatus
		if status == "" {
			status = filter.All
		}
		schema := record.SchemaFor(kind)
		v := filter.Compute(store.Records(kind), schema, filter.State{Search: recordsSearch, Status: status})
		if recordsSort != "" {
			v.Records = filter.Sort(v.Records, recordsSort, !recordsDesc)
		}

		if recordsJSON {
			return writeRecordsJSON(os.Stdout, v)
		}
		writeRecordsTable(os.Stdout, schema, v)
		return nil
	},
}

type recordJSON struct {
	ID     string         `json:"id"`
	Kind   string         `json:"kind"`
	Fields map[string]any `json:"fields"`
}

func writeRecordsJSON(w io.Writer, v filter.View) error {
	out := struct {
		Total   int          `json:"total"`
		Shown   int          `json:"shown"`
		Records []recordJSON `json:"records"`
	}{Total: v.Total, Shown: len(v.Records), Records: make([]recordJSON, 0, len(v.Records))}

	for _, r := range v.Records {
		out.Records = append(out.Records, recordJSON{ID: r.ID(), Kind: string(r.Kind()), Fields: r.Fields()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeRecordsTable prints the ID, the searchable fields and the status.
func writeRecordsTable(w io.Writer, schema record.Schema, v filter.View) {
	cols := append([]string{}, schema.Searchable...)
	if schema.StatusField != "" {
		cols = append(cols, schema.StatusField)
	}

	header := []string{styles.TableHeader.Width(8).Render("ID")}
	for _, c := range cols {
		header = append(header, styles.TableHeader.Width(22).Render(strings.ToUpper(c)))
	}
	fmt.Fprintln(w, "  "+strings.Join(header, " "))
	fmt.Fprintln(w, styles.Divider(10+23*len(cols)))

	if v.Empty() {
		fmt.Fprintln(w, styles.Dim("  No records found matching your criteria."))
	}
	for i, r := range v.Records {
		row := styles.TableRow(i%2 == 0)
		cells := []string{row.Width(8).Render(styles.TruncateWithEllipsis(r.ID(), 8))}
		for _, c := range cols {
			cells = append(cells, row.Width(22).Render(styles.TruncateWithEllipsis(fieldText(r, c), 21)))
		}
		fmt.Fprintln(w, "  "+strings.Join(cells, " "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Dim(fmt.Sprintf("  %d of %d %s records", len(v.Records), v.Total, schema.Kind)))
}

func fieldText(r record.Record, field string) string {
	v, ok := r.Get(field)
	if !ok {
		return "---"
	}
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02 15:04")
	}
	return fmt.Sprint(v)
}

func init() {
	recordsCmd.Flags().StringVarP(&recordsKind, "kind", "k", "lead", "record kind")
	recordsCmd.Flags().StringVarP(&recordsSearch, "search", "s", "", "search text")
	recordsCmd.Flags().StringVar(&recordsStatus, "status", "", "status filter (default All)")
	recordsCmd.Flags().StringVar(&recordsSort, "sort", "", "sort field")
	recordsCmd.Flags().BoolVar(&recordsDesc, "desc", false, "sort descending")
	recordsCmd.Flags().BoolVar(&recordsJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(recordsCmd)
}
