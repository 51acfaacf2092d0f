package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/Dallionking/rhnis-control-center/internal/record"
)

// View is the display-ready subset of a record sequence.
type View struct {
	Records []record.Record
	State   State
	Total   int
}

// Empty reports whether nothing matched. Callers render an explicit
// "no records" state instead of an empty table.
func (v View) Empty() bool { return len(v.Records) == 0 }

// Compute filters records by state, keeping the relative order of matches.
// Nothing is cached; every call re-evaluates every record. The returned
// slice is never nil.
func Compute(records []record.Record, schema record.Schema, state State) View {
	state = Normalize(state, schema)
	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, schema, state) {
			out = append(out, r)
		}
	}
	return View{Records: out, State: state, Total: len(records)}
}

// Sort returns a stably sorted copy of records ordered by field. Strings
// compare case-insensitively; records missing the field sort last in both
// directions.
func Sort(records []record.Record, field string, ascending bool) []record.Record {
	out := slices.Clone(records)
	if out == nil {
		out = []record.Record{}
	}
	slices.SortStableFunc(out, func(a, b record.Record) int {
		av, aok := a.Get(field)
		bv, bok := b.Get(field)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return 1
		case !bok:
			return -1
		}
		c := compareValues(av, bv)
		if !ascending {
			c = -c
		}
		return c
	})
	return out
}

// compareValues orders same-typed values. Mixed types fall back to
// comparing their kind rank so the order stays total.
func compareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(strings.ToLower(x), strings.ToLower(y))
		}
	case float64:
		if y, ok := b.(float64); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}
	return rank(a) - rank(b)
}

func rank(v any) int {
	switch v.(type) {
	case float64:
		return 0
	case time.Time:
		return 1
	case string:
		return 2
	}
	return 3
}
