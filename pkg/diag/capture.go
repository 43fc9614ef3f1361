package diag

import (
	"context"
	"sync"
)

// CaptureHook records warnings for assertions in tests.
type CaptureHook struct {
	Warnings []Warning
	Err      error
	mu       sync.Mutex
}

// Notify records the warning and returns any configured error.
func (h *CaptureHook) Notify(_ context.Context, warning Warning) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Warnings = append(h.Warnings, Normalize(warning))
	return h.Err
}
