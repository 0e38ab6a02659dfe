package audit

import (
	"bytes"
	"encoding/json"
	"reflect"

	auditDomain "reefer-backoffice/internal/domain/audit"
)

// Snapshot is a flat field-name -> value view of a tracked entity at one instant.
type Snapshot struct {
	EntityType string
	EntityID   string
	Repr       string
	Fields     map[string]any
	ok         bool
}

// OK reports whether the snapshot was captured.
func (s Snapshot) OK() bool { return s.ok }

// snapshot encodes e through its json tags. Numbers stay json.Number so ids keep full precision.
func (r *Registry) snapshot(e auditDomain.Tracked) (Snapshot, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return Snapshot{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	fields := map[string]any{}
	if err := dec.Decode(&fields); err != nil {
		return Snapshot{}, err
	}
	r.filter(e.AuditType(), fields)
	return Snapshot{
		EntityType: e.AuditType(),
		EntityID:   e.AuditKey(),
		Repr:       e.AuditRepr(),
		Fields:     fields,
		ok:         true,
	}, nil
}

// Diff returns every field whose value differs between the two snapshots.
// A field present on one side only counts as changed.
func Diff(before, after map[string]any) map[string]auditDomain.FieldChange {
	out := map[string]auditDomain.FieldChange{}
	for k, b := range before {
		a, ok := after[k]
		if !ok {
			out[k] = auditDomain.FieldChange{Before: b, After: nil}
			continue
		}
		if !reflect.DeepEqual(a, b) {
			out[k] = auditDomain.FieldChange{Before: b, After: a}
		}
	}
	for k, a := range after {
		if _, ok := before[k]; !ok {
			out[k] = auditDomain.FieldChange{Before: nil, After: a}
		}
	}
	return out
}
