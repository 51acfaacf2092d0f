package record

import (
	"fmt"
	"maps"
	"time"
)

// Kind identifies the domain entity a record represents.
type Kind string

const (
	KindLead           Kind = "lead"
	KindBotLead        Kind = "bot_lead"
	KindTrade          Kind = "trade"
	KindSignal         Kind = "signal"
	KindPlatform       Kind = "platform"
	KindCampaign       Kind = "campaign"
	KindSocialPlatform Kind = "social_platform"
	KindWorker         Kind = "worker"
	KindSubscriber     Kind = "subscriber"
	KindService        Kind = "service"
	KindBusiness       Kind = "business"
	KindIdentity       Kind = "identity"
	KindBeacon         Kind = "beacon"
	KindStat           Kind = "stat"
)

// AllKinds returns every kind in a stable order.
func AllKinds() []Kind {
	return []Kind{
		KindLead, KindBotLead, KindTrade, KindSignal, KindPlatform,
		KindCampaign, KindSocialPlatform, KindWorker, KindSubscriber,
		KindService, KindBusiness, KindIdentity, KindBeacon, KindStat,
	}
}

// ParseKind resolves a kind name. It accepts both "bot_lead" and "bot-lead".
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds() {
		if string(k) == s || hyphenate(string(k)) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}

func hyphenate(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c == '_' {
			b[i] = '-'
		}
	}
	return string(b)
}

// Record is one displayed domain entity. Fields hold string, float64 or
// time.Time values. A Record is immutable once constructed.
type Record struct {
	id     string
	kind   Kind
	fields map[string]any
}

// New builds a Record, copying fields. Integer values are widened to float64
// and values of any other unsupported type are dropped.
func New(kind Kind, id string, fields map[string]any) Record {
	cp := make(map[string]any, len(fields))
	for k, v := range fields {
		if nv, ok := normalizeValue(v); ok {
			cp[k] = nv
		}
	}
	return Record{id: id, kind: kind, fields: cp}
}

func normalizeValue(v any) (any, bool) {
	switch x := v.(type) {
	case string, float64, time.Time:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case bool:
		if x {
			return "true", true
		}
		return "false", true
	default:
		return nil, false
	}
}

// ID returns the record identifier.
func (r Record) ID() string { return r.id }

// Kind returns the record kind.
func (r Record) Kind() Kind { return r.kind }

// Get returns the raw value of a field.
func (r Record) Get(field string) (any, bool) {
	v, ok := r.fields[field]
	return v, ok
}

// StringField returns a string field. ok is false when the field is absent
// or holds a non-string value.
func (r Record) StringField(field string) (string, bool) {
	v, ok := r.fields[field].(string)
	return v, ok
}

// NumberField returns a numeric field.
func (r Record) NumberField(field string) (float64, bool) {
	v, ok := r.fields[field].(float64)
	return v, ok
}

// TimeField returns a date/time field.
func (r Record) TimeField(field string) (time.Time, bool) {
	v, ok := r.fields[field].(time.Time)
	return v, ok
}

// Text returns a string field or "" when absent.
func (r Record) Text(field string) string {
	s, _ := r.StringField(field)
	return s
}

// Num returns a numeric field or 0 when absent.
func (r Record) Num(field string) float64 {
	n, _ := r.NumberField(field)
	return n
}

// Status returns the value of the record's status field as defined by its
// kind's schema.
func (r Record) Status() string {
	return r.Text(SchemaFor(r.kind).StatusField)
}

// Fields returns a copy of the record's fields.
func (r Record) Fields() map[string]any {
	return maps.Clone(r.fields)
}
