package plotspec

import (
	layering "github.com/goliatone/go-plotspec/layering"
)

// Finalize flattens recorded layout override batches into Layout and removes
// them from the pending queue. Without arguments every batch is applied in
// registration order; with scope tags only batches recorded under one of the
// given scopes are applied, still in registration order, leaving the others
// pending.
func (s *Spec) Finalize(scopes ...string) *Spec {
	if s == nil || len(s.deferred) == 0 {
		return s
	}

	selected := func(string) bool { return true }
	if len(scopes) > 0 {
		wanted := make(map[string]struct{}, len(scopes))
		for _, scope := range scopes {
			wanted[scope] = struct{}{}
		}
		selected = func(scope string) bool {
			_, ok := wanted[scope]
			return ok
		}
	}

	var remaining []OverrideBatch
	for _, batch := range s.deferred {
		if !selected(batch.Scope) {
			remaining = append(remaining, batch)
			continue
		}
		s.Layout = layering.Merge(s.Layout, batch.Overrides)
	}
	s.deferred = remaining
	return s
}
