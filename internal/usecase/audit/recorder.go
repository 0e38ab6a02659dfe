package audit

import (
	"context"
	"maps"
	"unicode/utf8"

	auditDomain "reefer-backoffice/internal/domain/audit"
	"reefer-backoffice/pkg/id"
	"reefer-backoffice/pkg/logger"
	"reefer-backoffice/pkg/metrics"
)

// Recorder turns before/after snapshots into audit entries.
// Snapshot failures are logged and skipped; they never fail the tracked write.
type Recorder struct {
	registry *Registry
	log      logger.Logger
	metrics  *metrics.Metrics
}

func NewRecorder(reg *Registry, log logger.Logger, m *metrics.Metrics) *Recorder {
	return &Recorder{registry: reg, log: log, metrics: m}
}

// Capture snapshots e. Untracked or nil entities yield an empty snapshot.
func (r *Recorder) Capture(e auditDomain.Tracked) Snapshot {
	if r == nil || e == nil || !r.registry.Tracked(e.AuditType()) {
		return Snapshot{}
	}
	s, err := r.registry.snapshot(e)
	if err != nil {
		r.metrics.AuditSnapshotError()
		r.log.Warn("audit snapshot failed",
			"entity_type", e.AuditType(), "entity_id", e.AuditKey(), "error", err)
		return Snapshot{}
	}
	return s
}

// Record is one audit write request.
type Record struct {
	Action  auditDomain.Action
	Before  Snapshot
	After   Snapshot
	Request auditDomain.RequestContext
	Tags    map[string]string
}

// Record persists an entry and returns its public id, or "" when nothing was recorded
// (empty update diff, or a snapshot that could not be captured).
func (r *Recorder) Record(ctx context.Context, repo auditDomain.Repository, in Record) (string, error) {
	if r == nil {
		return "", nil
	}

	var (
		target  Snapshot
		changes map[string]any
	)
	switch in.Action {
	case auditDomain.ActionCreate:
		if !in.After.ok {
			return "", nil
		}
		target, changes = in.After, maps.Clone(in.After.Fields)
	case auditDomain.ActionUpdate:
		if !in.Before.ok || !in.After.ok {
			return "", nil
		}
		d := Diff(in.Before.Fields, in.After.Fields)
		if len(d) == 0 {
			return "", nil
		}
		changes = make(map[string]any, len(d))
		for k, v := range d {
			changes[k] = v
		}
		target = in.After
	case auditDomain.ActionDelete:
		if !in.Before.ok {
			return "", nil
		}
		target, changes = in.Before, maps.Clone(in.Before.Fields)
	default:
		r.log.Warn("audit: unknown action", "action", in.Action)
		return "", nil
	}

	e := &auditDomain.Entry{
		EntryID:    id.NewID32(),
		Actor:      in.Request.Actor,
		Action:     in.Action,
		EntityType: target.EntityType,
		EntityID:   target.EntityID,
		Repr:       clip(target.Repr, auditDomain.ReprMaxLen),
		Changes:    changes,
		IP:         clip(in.Request.IP, auditDomain.IPMaxLen),
		Path:       clip(in.Request.Path, auditDomain.PathMaxLen),
		Method:     clip(in.Request.Method, auditDomain.MethodMaxLen),
		UserAgent:  clip(in.Request.UserAgent, auditDomain.UserAgentMaxLen),
		Tags:       in.Tags,
	}
	if err := repo.Create(ctx, e); err != nil {
		return "", err
	}
	r.metrics.AuditEntry(string(in.Action))
	return e.EntryID, nil
}

func (r *Recorder) Created(ctx context.Context, repo auditDomain.Repository, after Snapshot, rc auditDomain.RequestContext, tags map[string]string) (string, error) {
	return r.Record(ctx, repo, Record{Action: auditDomain.ActionCreate, After: after, Request: rc, Tags: tags})
}

func (r *Recorder) Updated(ctx context.Context, repo auditDomain.Repository, before, after Snapshot, rc auditDomain.RequestContext, tags map[string]string) (string, error) {
	return r.Record(ctx, repo, Record{Action: auditDomain.ActionUpdate, Before: before, After: after, Request: rc, Tags: tags})
}

func (r *Recorder) Deleted(ctx context.Context, repo auditDomain.Repository, before Snapshot, rc auditDomain.RequestContext, tags map[string]string) (string, error) {
	return r.Record(ctx, repo, Record{Action: auditDomain.ActionDelete, Before: before, Request: rc, Tags: tags})
}

// clip cuts s to at most n characters so the row fits its varchar column.
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
