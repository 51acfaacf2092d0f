package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/Dallionking/rhnis-control-center/internal/record"
)

func TestSortByNumber(t *testing.T) {
	recs, _ := leads()

	asc := Sort(recs, "value", true)
	if diff := cmp.Diff([]string{"Maria Garcia", "John Smith", "David Wilson"}, names(asc)); diff != "" {
		t.Errorf("ascending (-want +got):\n%s", diff)
	}

	desc := Sort(recs, "value", false)
	if diff := cmp.Diff([]string{"David Wilson", "John Smith", "Maria Garcia"}, names(desc)); diff != "" {
		t.Errorf("descending (-want +got):\n%s", diff)
	}

	// Input untouched.
	assert.Equal(t, []string{"John Smith", "Maria Garcia", "David Wilson"}, names(recs))
}

func TestSortStringsIgnoreCaseAndMissingLast(t *testing.T) {
	recs := []record.Record{
		record.New(record.KindLead, "1", map[string]any{"name": "bravo"}),
		record.New(record.KindLead, "2", nil),
		record.New(record.KindLead, "3", map[string]any{"name": "Alpha"}),
		record.New(record.KindLead, "4", map[string]any{"name": "charlie"}),
	}

	got := Sort(recs, "name", true)
	assert.Equal(t, []string{"3", "1", "4", "2"}, ids(got))

	got = Sort(recs, "name", false)
	assert.Equal(t, []string{"4", "1", "3", "2"}, ids(got))
}

func TestSortByDateIsStable(t *testing.T) {
	recs := record.SeedKind(record.KindTrade, now)
	// All seed trades share a timestamp; stable sort keeps source order.
	assert.Equal(t, ids(recs), ids(Sort(recs, "timestamp", true)))
	assert.Equal(t, ids(recs), ids(Sort(recs, "timestamp", false)))
}

func TestSortEmpty(t *testing.T) {
	got := Sort(nil, "name", true)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func ids(recs []record.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID())
	}
	return out
}
