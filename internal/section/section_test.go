package section

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// recorder logs lifecycle calls in order.
type recorder struct {
	id  ID
	log *[]string
}

func (r recorder) Mount()   { *r.log = append(*r.log, "mount "+string(r.id)) }
func (r recorder) Unmount() { *r.log = append(*r.log, "unmount "+string(r.id)) }

func views(log *[]string, ids ...ID) map[ID]Mountable {
	m := make(map[ID]Mountable, len(ids))
	for _, id := range ids {
		m[id] = recorder{id: id, log: log}
	}
	return m
}

func TestParse(t *testing.T) {
	assert.Equal(t, Trading, Parse("trading"))
	assert.Equal(t, LeadBot, Parse(" LeadBot "))
	assert.Equal(t, Dashboard, Parse("settings-old"))
	assert.Equal(t, Dashboard, Parse(""))
	assert.True(t, Valid("workers"))
	assert.False(t, Valid("nope"))
}

func TestMenuOrderAndLabels(t *testing.T) {
	want := []ID{Dashboard, Trading, LeadBot, Portal, RHNIS, Businesses, Leads, Workers, Chat, Settings}
	if diff := cmp.Diff(want, All()); diff != "" {
		t.Errorf("All() (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Lead Manager", Leads.Label())
	assert.Equal(t, "Dashboard", ID("bogus").Label())
	assert.Equal(t, 6, Leads.Index())
}

func TestSelectUnmountsBeforeMount(t *testing.T) {
	var log []string
	s := NewSelector(views(&log, Dashboard, Trading, Leads), Dashboard)

	assert.True(t, s.Select(Trading))
	assert.True(t, s.Select(Leads))
	s.Close()

	want := []string{
		"mount dashboard",
		"unmount dashboard", "mount trading",
		"unmount trading", "mount leads",
		"unmount leads",
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("lifecycle (-want +got):\n%s", diff)
	}
}

func TestSelectActiveIsNoop(t *testing.T) {
	var log []string
	s := NewSelector(views(&log, Trading), Trading)

	assert.False(t, s.Select(Trading))
	assert.Equal(t, []string{"mount trading"}, log)
}

func TestCloseThenSelectRemounts(t *testing.T) {
	var log []string
	s := NewSelector(views(&log, Chat), Chat)
	s.Close()
	s.Close()
	assert.True(t, s.Select(Chat))

	assert.Equal(t, []string{"mount chat", "unmount chat", "mount chat"}, log)
}

func TestNextPrevWrap(t *testing.T) {
	s := NewSelector(nil, Settings)
	assert.Equal(t, Dashboard, s.Next())
	assert.Equal(t, Settings, s.Prev())
	assert.Equal(t, Chat, s.Prev())
	assert.Equal(t, Chat, s.Active())
}

func TestUnknownInitialFallsBackToDashboard(t *testing.T) {
	var log []string
	s := NewSelector(views(&log, Dashboard), ID("missing"))
	assert.Equal(t, Dashboard, s.Active())
	assert.Equal(t, []string{"mount dashboard"}, log)
}
