// Package filter implements the record list search/status filter shared by
// every list view in the dashboard.
package filter

import (
	"strings"

	"github.com/Dallionking/rhnis-control-center/internal/record"
)

// All is the status filter sentinel that matches every status.
const All = "All"

// State is the user-chosen search text and status filter of one view.
type State struct {
	Search string
	Status string
}

// Normalize returns s with a status outside the schema's enumeration (or an
// empty one) replaced by All. Search is kept verbatim.
func Normalize(s State, schema record.Schema) State {
	if s.Status != All && !schema.HasStatus(s.Status) {
		s.Status = All
	}
	return s
}

// Matches reports whether rec passes both the text and the status test.
// It never panics: absent or non-string fields simply fail the text test.
func Matches(rec record.Record, schema record.Schema, s State) bool {
	s = Normalize(s, schema)
	return matchesText(rec, schema.Searchable, s.Search) && matchesStatus(rec, schema, s.Status)
}

func matchesText(rec record.Record, fields []string, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		v, ok := rec.StringField(f)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func matchesStatus(rec record.Record, schema record.Schema, status string) bool {
	if status == All {
		return true
	}
	v, ok := rec.StringField(schema.StatusField)
	return ok && v == status
}

// Options returns the selectable status filters: All followed by the
// schema's enumeration in display order.
func Options(schema record.Schema) []string {
	out := make([]string, 0, len(schema.Statuses)+1)
	out = append(out, All)
	return append(out, schema.Statuses...)
}

// CycleStatus moves the status filter step positions through Options,
// wrapping at both ends.
func CycleStatus(s State, schema record.Schema, step int) State {
	s = Normalize(s, schema)
	opts := Options(schema)
	idx := 0
	for i, o := range opts {
		if o == s.Status {
			idx = i
			break
		}
	}
	n := len(opts)
	idx = ((idx+step)%n + n) % n
	s.Status = opts[idx]
	return s
}
