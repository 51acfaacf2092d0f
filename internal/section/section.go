// Package section tracks which top-level dashboard section is active and
// mounts or unmounts section views as the selection changes.
package section

import (
	"strings"
	"sync"
)

// ID identifies a top-level section.
type ID string

const (
	Dashboard  ID = "dashboard"
	Trading    ID = "trading"
	LeadBot    ID = "leadbot"
	Portal     ID = "portal"
	RHNIS      ID = "rhnis"
	Businesses ID = "businesses"
	Leads      ID = "leads"
	Workers    ID = "workers"
	Chat       ID = "chat"
	Settings   ID = "settings"
)

var order = []ID{Dashboard, Trading, LeadBot, Portal, RHNIS, Businesses, Leads, Workers, Chat, Settings}

var labels = map[ID]string{
	Dashboard:  "Dashboard",
	Trading:    "Trading Bot",
	LeadBot:    "Lead Bot",
	Portal:     "Customer Portal",
	RHNIS:      "RHNIS Identity",
	Businesses: "My Businesses",
	Leads:      "Lead Manager",
	Workers:    "NCS Workers",
	Chat:       "Nick Chat",
	Settings:   "Settings",
}

// All returns every section in menu order.
func All() []ID {
	out := make([]ID, len(order))
	copy(out, order)
	return out
}

// Label returns the menu label.
func (id ID) Label() string {
	if l, ok := labels[id]; ok {
		return l
	}
	return labels[Dashboard]
}

// Index returns the menu position, or 0 for unknown IDs.
func (id ID) Index() int {
	for i, o := range order {
		if o == id {
			return i
		}
	}
	return 0
}

// Parse resolves s case-insensitively. Unknown identifiers select the
// dashboard.
func Parse(s string) ID {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, id := range order {
		if string(id) == s {
			return id
		}
	}
	return Dashboard
}

// Valid reports whether s names a section.
func Valid(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, id := range order {
		if string(id) == s {
			return true
		}
	}
	return false
}

// Mountable is a section view with a mount lifecycle. Unmount must release
// timers started by Mount.
type Mountable interface {
	Mount()
	Unmount()
}

// Selector owns one view per section and keeps exactly the active one
// mounted.
type Selector struct {
	mu      sync.Mutex
	views   map[ID]Mountable
	active  ID
	mounted bool
}

// NewSelector mounts the view for initial. Sections without a view are
// still selectable; nothing is mounted for them.
func NewSelector(views map[ID]Mountable, initial ID) *Selector {
	s := &Selector{views: views, active: Parse(string(initial))}
	s.mountActive()
	return s
}

// Active returns the selected section.
func (s *Selector) Active() ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Select switches to id, unmounting the previous view first. Selecting the
// active section does nothing. It reports whether the selection changed.
func (s *Selector) Select(id ID) bool {
	id = Parse(string(id))

	s.mu.Lock()
	defer s.mu.Unlock()
	if id == s.active && s.mounted {
		return false
	}
	s.unmountActive()
	s.active = id
	s.mountActiveLocked()
	return true
}

// Next selects the following section, wrapping around.
func (s *Selector) Next() ID {
	return s.step(1)
}

// Prev selects the preceding section, wrapping around.
func (s *Selector) Prev() ID {
	return s.step(-1)
}

func (s *Selector) step(d int) ID {
	n := len(order)
	next := order[((s.Active().Index()+d)%n+n)%n]
	s.Select(next)
	return next
}

// Close unmounts the active view. A later Select mounts again.
func (s *Selector) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unmountActive()
}

func (s *Selector) mountActive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mountActiveLocked()
}

func (s *Selector) mountActiveLocked() {
	if v, ok := s.views[s.active]; ok && v != nil {
		v.Mount()
	}
	s.mounted = true
}

func (s *Selector) unmountActive() {
	if !s.mounted {
		return
	}
	if v, ok := s.views[s.active]; ok && v != nil {
		v.Unmount()
	}
	s.mounted = false
}
