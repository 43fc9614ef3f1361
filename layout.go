package plotspec

import (
	"fmt"

	"github.com/goliatone/go-plotspec/pkg/diag"
)

// LayoutOption configures a single SetLayout call.
type LayoutOption func(*layoutCall)

type layoutCall struct {
	scope *string
}

// ForScope records the override under an explicit scope tag instead of the
// Spec's CurrentScope. The empty string is a valid tag (unscoped data).
func ForScope(tag string) LayoutOption {
	return func(call *layoutCall) {
		call.scope = &tag
	}
}

// Legacy sizing keys; sizing belongs at specification construction time.
var legacySizingKeys = []string{"height", "width"}

// SetLayout records overrides for deferred application to Layout. Nothing is
// merged until Finalize runs, so later trace metadata can still influence how
// a scope is interpreted. Malformed nested values never fail the call.
func (s *Spec) SetLayout(overrides map[string]any, opts ...LayoutOption) *Spec {
	if s == nil || len(overrides) == 0 {
		return s
	}

	call := layoutCall{}
	for _, opt := range opts {
		if opt != nil {
			opt(&call)
		}
	}
	scope := s.CurrentScope
	if call.scope != nil {
		scope = *call.scope
	}

	for _, key := range legacySizingKeys {
		if _, ok := overrides[key]; ok {
			s.warn(diag.Warning{
				Code:    WarnDeprecatedSizing,
				Message: fmt.Sprintf("layout override %q is deprecated; size the specification at construction time", key),
				Field:   key,
				Scope:   scope,
			})
		}
	}

	s.recordLayout(scope, overrides)
	return s
}
