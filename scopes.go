package plotspec

import (
	"time"

	"github.com/google/uuid"

	layering "github.com/goliatone/go-plotspec/layering"
)

// OverrideBatch is one recorded layout override tagged with the scope it was
// registered under. SnapshotID identifies the batch for trace and audit.
type OverrideBatch struct {
	Scope      string
	Overrides  map[string]any
	SnapshotID string
	RecordedAt time.Time
}

func (b OverrideBatch) clone() OverrideBatch {
	return OverrideBatch{
		Scope:      b.Scope,
		Overrides:  layering.CloneMap(b.Overrides),
		SnapshotID: b.SnapshotID,
		RecordedAt: b.RecordedAt,
	}
}

// recordLayout appends overrides to the pending queue under scope. The store
// never applies overrides immediately: deferral lets state resolved later
// (trace metadata, templates) influence how finalization interprets a scope.
func (s *Spec) recordLayout(scope string, overrides map[string]any) {
	s.deferred = append(s.deferred, OverrideBatch{
		Scope:      scope,
		Overrides:  layering.CloneMap(overrides),
		SnapshotID: s.newSnapshotID(),
		RecordedAt: time.Now(),
	})
}

// PendingOverrides returns a detached copy of every recorded batch in
// registration order. Finalization consumes them in exactly this order.
func (s *Spec) PendingOverrides() []OverrideBatch {
	if s == nil || len(s.deferred) == 0 {
		return nil
	}
	out := make([]OverrideBatch, len(s.deferred))
	for i, batch := range s.deferred {
		out[i] = batch.clone()
	}
	return out
}

// LayoutScopes groups the pending batches by scope tag, preserving
// registration order within each scope.
func (s *Spec) LayoutScopes() map[string][]OverrideBatch {
	if s == nil || len(s.deferred) == 0 {
		return nil
	}
	out := make(map[string][]OverrideBatch)
	for _, batch := range s.deferred {
		out[batch.Scope] = append(out[batch.Scope], batch.clone())
	}
	return out
}

func (s *Spec) newSnapshotID() string {
	if s.cfg.newID != nil {
		return s.cfg.newID()
	}
	return uuid.NewString()
}
