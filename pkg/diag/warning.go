package diag

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Warning describes a non-fatal advisory emitted while mutating a
// specification. Warnings never abort the triggering call; callers decide
// whether to surface them as logs, errors, or silence.
type Warning struct {
	Code       string
	Message    string
	Field      string
	Scope      string
	Metadata   map[string]any
	OccurredAt time.Time
}

// Hook receives normalized warnings.
type Hook interface {
	Notify(ctx context.Context, warning Warning) error
}

// HookFunc allows plain functions to satisfy Hook.
type HookFunc func(ctx context.Context, warning Warning) error

// Notify dispatches to the underlying function.
func (fn HookFunc) Notify(ctx context.Context, warning Warning) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, warning)
}

// Hooks fans out warnings to zero or more hooks.
type Hooks []Hook

// Enabled reports whether there are any hooks to notify.
func (h Hooks) Enabled() bool {
	return len(h) > 0
}

// Normalized returns a copy of the hook list with nil entries dropped, or nil
// when nothing remains.
func (h Hooks) Normalized() Hooks {
	if len(h) == 0 {
		return nil
	}
	normalized := make([]Hook, 0, len(h))
	for _, hook := range h {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return Hooks(normalized)
}

// Notify forwards the warning to all hooks, returning a joined error if any
// fail. Warnings without a code are dropped.
func (h Hooks) Notify(ctx context.Context, warning Warning) error {
	if len(h) == 0 {
		return nil
	}

	normalized := Normalize(warning)
	if normalized.Code == "" {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var errs []error
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.Notify(ctx, normalized); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

// Normalize trims whitespace, clones metadata, and ensures a timestamp is
// present.
func Normalize(warning Warning) Warning {
	normalized := warning
	normalized.Code = strings.TrimSpace(warning.Code)
	normalized.Message = strings.TrimSpace(warning.Message)
	normalized.Field = strings.TrimSpace(warning.Field)
	normalized.Scope = strings.TrimSpace(warning.Scope)
	normalized.Metadata = cloneMap(warning.Metadata)
	if normalized.OccurredAt.IsZero() {
		normalized.OccurredAt = time.Now()
	}
	return normalized
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
