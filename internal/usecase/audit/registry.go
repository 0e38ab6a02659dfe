package audit

import "strings"

// SensitiveFields are never snapshotted, whatever the entity policy says.
var SensitiveFields = []string{
	"password",
	"password_hash",
	"token",
	"session_key",
	"session_expires_at",
	"last_login",
	"last_login_at",
}

// Policy selects the snapshotted fields of one entity type.
// An empty Include means every field not excluded.
type Policy struct {
	Include []string
	Exclude []string
}

type policy struct {
	include map[string]struct{}
	exclude map[string]struct{}
}

// Registry maps entity type tags to tracking policies. Build it once at startup.
type Registry struct {
	global   map[string]struct{}
	policies map[string]policy
}

func NewRegistry(extraExcluded ...string) *Registry {
	r := &Registry{
		global:   toSet(SensitiveFields),
		policies: make(map[string]policy),
	}
	for _, f := range extraExcluded {
		if f = strings.TrimSpace(f); f != "" {
			r.global[f] = struct{}{}
		}
	}
	return r
}

// Track registers (or replaces) the policy for entityType.
func (r *Registry) Track(entityType string, p Policy) *Registry {
	r.policies[entityType] = policy{include: toSet(p.Include), exclude: toSet(p.Exclude)}
	return r
}

func (r *Registry) Tracked(entityType string) bool {
	_, ok := r.policies[entityType]
	return ok
}

// filter drops excluded fields in place.
func (r *Registry) filter(entityType string, fields map[string]any) {
	p := r.policies[entityType]
	for k := range fields {
		if _, bad := r.global[k]; bad {
			delete(fields, k)
			continue
		}
		if _, bad := p.exclude[k]; bad {
			delete(fields, k)
			continue
		}
		if len(p.include) > 0 {
			if _, ok := p.include[k]; !ok {
				delete(fields, k)
			}
		}
	}
}

// DefaultRegistry tracks every entity the core writes.
func DefaultRegistry(extraExcluded ...string) *Registry {
	bookkeeping := []string{"created_at", "updated_at"}
	return NewRegistry(extraExcluded...).
		Track("trip", Policy{Exclude: bookkeeping}).
		Track("trip_approval", Policy{Exclude: bookkeeping}).
		Track("operator_settlement", Policy{Exclude: bookkeeping}).
		Track("operator_settlement_trip", Policy{Exclude: bookkeeping}).
		Track("operator_settlement_line", Policy{Exclude: bookkeeping})
}

func toSet(xs []string) map[string]struct{} {
	out := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		out[x] = struct{}{}
	}
	return out
}
