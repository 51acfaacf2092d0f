package record

import "slices"

// Schema describes how records of a kind are searched and filtered.
type Schema struct {
	Kind        Kind
	Searchable  []string // string fields scanned by free-text search
	StatusField string   // the one status/category field
	Statuses    []string // fixed enumeration for StatusField, in display order
}

// HasStatus reports whether v is a member of the status enumeration.
func (s Schema) HasStatus(v string) bool {
	return slices.Contains(s.Statuses, v)
}

var schemas = map[Kind]Schema{
	KindLead: {
		Kind:        KindLead,
		Searchable:  []string{"name", "service"},
		StatusField: "status",
		Statuses:    []string{"New", "Contacted", "Quoted", "Approved", "Completed"},
	},
	KindBotLead: {
		Kind:        KindBotLead,
		Searchable:  []string{"name", "service", "source"},
		StatusField: "status",
		Statuses:    []string{"NEW", "CONTACTED", "QUALIFIED", "CONVERTED"},
	},
	KindTrade: {
		Kind:        KindTrade,
		Searchable:  []string{"pair", "type"},
		StatusField: "status",
		Statuses:    []string{"OPEN", "CLOSED", "PENDING"},
	},
	KindSignal: {
		Kind:        KindSignal,
		Searchable:  []string{"pair", "timeframe"},
		StatusField: "direction",
		Statuses:    []string{"UP", "DOWN"},
	},
	KindPlatform: {
		Kind:        KindPlatform,
		Searchable:  []string{"name"},
		StatusField: "status",
		Statuses:    []string{"connected", "disconnected"},
	},
	KindCampaign: {
		Kind:        KindCampaign,
		Searchable:  []string{"platform", "content"},
		StatusField: "status",
		Statuses:    []string{"ACTIVE", "SCHEDULED", "COMPLETED"},
	},
	KindSocialPlatform: {
		Kind:        KindSocialPlatform,
		Searchable:  []string{"name"},
		StatusField: "status",
		Statuses:    []string{"connected", "pending"},
	},
	KindWorker: {
		Kind:        KindWorker,
		Searchable:  []string{"name", "description", "type"},
		StatusField: "status",
		Statuses:    []string{"running", "stopped", "error", "idle"},
	},
	KindSubscriber: {
		Kind:        KindSubscriber,
		Searchable:  []string{"name", "email", "service"},
		StatusField: "status",
		Statuses:    []string{"active", "paused", "cancelled"},
	},
	KindService: {
		Kind:        KindService,
		Searchable:  []string{"name", "description"},
		StatusField: "period",
		Statuses:    []string{"monthly", "yearly"},
	},
	KindBusiness: {
		Kind:        KindBusiness,
		Searchable:  []string{"name", "description"},
		StatusField: "status",
		Statuses:    []string{"Active", "Growing"},
	},
	KindIdentity: {
		Kind:        KindIdentity,
		Searchable:  []string{"title", "description"},
		StatusField: "status",
		Statuses:    []string{"Active", "Broadcasting", "Armed"},
	},
	KindBeacon: {
		Kind:        KindBeacon,
		Searchable:  []string{"type"},
		StatusField: "status",
		Statuses:    []string{"Propagating", "Active", "Spreading", "Tracking"},
	},
	KindStat: {
		Kind:        KindStat,
		Searchable:  []string{"label"},
		StatusField: "trend",
		Statuses:    []string{"up", "down"},
	},
}

// SchemaFor returns the schema for kind. Unknown kinds get an empty schema
// whose enumeration is empty, so every status filter normalizes to All.
func SchemaFor(kind Kind) Schema {
	if s, ok := schemas[kind]; ok {
		return s
	}
	return Schema{Kind: kind, StatusField: "status"}
}
