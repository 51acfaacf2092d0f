package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/Dallionking/rhnis-control-center/internal/section"
	"github.com/Dallionking/rhnis-control-center/internal/ticker"
)

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Validate checks the Config for completeness and consistency. It returns a
// slice of all discovered issues rather than stopping at the first one.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(cfg.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "required field is empty"})
	}

	// --- Data ---
	if cfg.Data.Dir != "" {
		dir := NewPaths(Root(), cfg).Data
		info, err := os.Stat(dir)
		switch {
		case err == nil && !info.IsDir():
			errs = append(errs, ValidationError{
				Field:   "data.dir",
				Message: fmt.Sprintf("not a directory: %s", dir),
			})
		case err != nil && cfg.Data.Watch:
			errs = append(errs, ValidationError{
				Field:   "data.watch",
				Message: fmt.Sprintf("cannot watch missing directory %s", dir),
			})
		}
	} else if cfg.Data.Watch {
		errs = append(errs, ValidationError{
			Field:   "data.watch",
			Message: "requires data.dir",
		})
	}

	// --- Dashboard ---
	if !section.Valid(cfg.Dashboard.Section) {
		ids := make([]string, 0, len(section.All()))
		for _, id := range section.All() {
			ids = append(ids, string(id))
		}
		errs = append(errs, ValidationError{
			Field:   "dashboard.section",
			Message: fmt.Sprintf("unknown section %q (want one of %s)", cfg.Dashboard.Section, strings.Join(ids, ", ")),
		})
	}
	if cfg.Dashboard.Refresh < 100*time.Millisecond || cfg.Dashboard.Refresh > time.Minute {
		errs = append(errs, ValidationError{
			Field:   "dashboard.refresh",
			Message: fmt.Sprintf("must be between 100ms and 1m, got %s", cfg.Dashboard.Refresh),
		})
	}

	// --- Ticker ---
	intervals := []struct {
		field string
		d     time.Duration
	}{
		{"ticker.trading.interval", cfg.Ticker.Trading.Interval},
		{"ticker.leadbot.interval", cfg.Ticker.LeadBot.Interval},
	}
	for _, iv := range intervals {
		if iv.d < ticker.MinInterval {
			errs = append(errs, ValidationError{
				Field:   iv.field,
				Message: fmt.Sprintf("must be >= %s, got %s", ticker.MinInterval, iv.d),
			})
		}
	}

	// --- Chat ---
	if cfg.Chat.ReplyDelay < 0 {
		errs = append(errs, ValidationError{
			Field:   "chat.reply_delay",
			Message: fmt.Sprintf("must not be negative, got %s", cfg.Chat.ReplyDelay),
		})
	}

	// --- Log ---
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("unknown level %q", cfg.Log.Level),
		})
	}

	return errs
}
