package logsink

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-plotspec/pkg/diag"
)

// Hook adapts warnings to a charmbracelet logger so hosts get structured
// warn-level records without writing their own sink.
type Hook struct {
	Logger *log.Logger
}

// Notify logs the warning with its code, field, and scope as key-values.
func (h Hook) Notify(_ context.Context, warning diag.Warning) error {
	logger := h.Logger
	if logger == nil {
		logger = log.Default()
	}

	normalized := diag.Normalize(warning)
	if normalized.Code == "" {
		return nil
	}

	keyvals := []any{"code", normalized.Code}
	if normalized.Field != "" {
		keyvals = append(keyvals, "field", normalized.Field)
	}
	if normalized.Scope != "" {
		keyvals = append(keyvals, "scope", normalized.Scope)
	}
	for key, value := range normalized.Metadata {
		keyvals = append(keyvals, key, value)
	}
	logger.Warn(normalized.Message, keyvals...)
	return nil
}
