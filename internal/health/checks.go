package health

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Dallionking/rhnis-control-center/internal/config"
	"github.com/Dallionking/rhnis-control-center/internal/record"
)

func (c *Checker) registerChecks() {
	c.add("config-file", "config", c.checkConfigFile)
	c.add("config-valid", "config", c.checkConfigValid)

	c.add("data-dir", "data", c.checkDataDir)
	c.add("fixtures", "data", c.checkFixtures)
	c.add("statuses", "data", c.checkStatuses)

	c.add("log-file", "runtime", c.checkLogFile)
	c.add("terminal", "runtime", c.checkTerminal)
}

// ---------------------------------------------------------------------------
// Config checks
// ---------------------------------------------------------------------------

func (c *Checker) checkConfigFile(_ context.Context) CheckResult {
	if _, err := os.Stat(c.paths.Config); err != nil {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("no %s, using defaults", config.FileName)}
	}
	return CheckResult{Status: StatusPass, Message: c.paths.Config}
}

func (c *Checker) checkConfigValid(_ context.Context) CheckResult {
	errs := config.Validate(c.cfg)
	switch len(errs) {
	case 0:
		return CheckResult{Status: StatusPass, Message: "configuration valid"}
	case 1:
		return CheckResult{Status: StatusFail, Message: errs[0].Error()}
	default:
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("%s (+%d more)", errs[0].Error(), len(errs)-1)}
	}
}

// ---------------------------------------------------------------------------
// Data checks
// ---------------------------------------------------------------------------

func (c *Checker) checkDataDir(_ context.Context) CheckResult {
	if c.paths.Data == "" {
		return CheckResult{Status: StatusPass, Message: "built-in seed data"}
	}
	info, err := os.Stat(c.paths.Data)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("missing: %s", c.paths.Data)}
	}
	if !info.IsDir() {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("not a directory: %s", c.paths.Data)}
	}

	var present []string
	for _, k := range record.AllKinds() {
		if _, err := os.Stat(filepath.Join(c.paths.Data, string(k)+".yaml")); err == nil {
			present = append(present, string(k))
		}
	}
	if len(present) == 0 {
		return CheckResult{Status: StatusWarn, Message: "no fixture files, seed data fills every kind"}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d/%d kinds from fixtures", len(present), len(record.AllKinds()))}
}

func (c *Checker) source() record.Source {
	if c.paths.Data == "" {
		return record.SeedSource{}
	}
	return record.NewFileSource(c.paths.Data, c.logger)
}

func (c *Checker) checkFixtures(ctx context.Context) CheckResult {
	ds, err := c.source().Fetch(ctx)
	if err != nil {
		var fe *record.FetchError
		if errors.As(err, &fe) {
			return CheckResult{Status: StatusFail, Message: fmt.Sprintf("%s: %v", filepath.Base(fe.Source), fe.Err)}
		}
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d records loaded", ds.Len())}
}

// checkStatuses flags records whose status is outside their kind's
// enumeration. They still render but no status filter other than All
// will show them.
func (c *Checker) checkStatuses(ctx context.Context) CheckResult {
	ds, err := c.source().Fetch(ctx)
	if err != nil {
		return CheckResult{Status: StatusWarn, Message: "skipped, fixtures did not load"}
	}

	var bad []string
	for _, k := range record.AllKinds() {
		schema := record.SchemaFor(k)
		for _, r := range ds.Records[k] {
			if !schema.HasStatus(r.Status()) {
				bad = append(bad, fmt.Sprintf("%s/%s", k, r.ID()))
			}
		}
	}
	if len(bad) == 0 {
		return CheckResult{Status: StatusPass, Message: "all statuses known"}
	}
	return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("unknown status: %s", strings.Join(bad, ", "))}
}

// ---------------------------------------------------------------------------
// Runtime checks
// ---------------------------------------------------------------------------

func (c *Checker) checkLogFile(_ context.Context) CheckResult {
	if c.paths.Log == "" {
		return CheckResult{Status: StatusWarn, Message: "log.file empty, dashboard logs are discarded"}
	}
	f, err := os.OpenFile(c.paths.Log, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("not writable: %s", c.paths.Log)}
	}
	f.Close()
	return CheckResult{Status: StatusPass, Message: c.paths.Log}
}

func (c *Checker) checkTerminal(_ context.Context) CheckResult {
	info, err := os.Stdout.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return CheckResult{Status: StatusWarn, Message: "stdout is not a terminal, use --once for snapshots"}
	}
	return CheckResult{Status: StatusPass, Message: "interactive terminal"}
}
