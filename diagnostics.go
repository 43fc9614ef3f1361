package plotspec

import (
	"context"

	"github.com/goliatone/go-plotspec/pkg/diag"
)

// Warning codes emitted by the mutators.
const (
	// WarnDeprecatedSizing flags height/width passed as layout overrides;
	// sizing belongs at specification construction time.
	WarnDeprecatedSizing = "deprecated-layout-sizing"
	// WarnRetiredOption flags a config key the rendering engine no longer
	// understands; the key is dropped from the effective merge.
	WarnRetiredOption = "retired-config-option"
	// WarnDeprecatedCloudToggle flags the legacy send-to-cloud parameter
	// name; the modern flag receives the effective value.
	WarnDeprecatedCloudToggle = "deprecated-cloud-toggle"
)

// WarningLogger records warnings as they are emitted.
type WarningLogger interface {
	LogWarning(diag.Warning)
}

// WarningLoggerFunc adapts a function to WarningLogger.
type WarningLoggerFunc func(diag.Warning)

// LogWarning implements WarningLogger.
func (f WarningLoggerFunc) LogWarning(warning diag.Warning) {
	if f != nil {
		f(warning)
	}
}

type noopWarningLogger struct{}

func (noopWarningLogger) LogWarning(diag.Warning) {}

// WithWarningLogger attaches a warning logger to the Spec configuration.
func WithWarningLogger(logger WarningLogger) Option {
	return func(cfg *specConfig) {
		if logger == nil {
			cfg.logger = noopWarningLogger{}
			return
		}
		cfg.logger = logger
	}
}

// Warnings returns a copy of every warning collected so far, in emission
// order.
func (s *Spec) Warnings() []diag.Warning {
	if s == nil || len(s.warnings) == 0 {
		return nil
	}
	out := make([]diag.Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

func (s *Spec) warningLogger() WarningLogger {
	if s.cfg.logger != nil {
		return s.cfg.logger
	}
	return noopWarningLogger{}
}

// warn collects the warning, forwards it to the configured logger, and fans
// it out to hooks. Hook errors are intentionally dropped: advisories must not
// abort a mutation.
func (s *Spec) warn(warning diag.Warning) {
	normalized := diag.Normalize(warning)
	s.warnings = append(s.warnings, normalized)
	s.warningLogger().LogWarning(normalized)
	if s.cfg.hooks.Enabled() {
		_ = s.cfg.hooks.Notify(context.Background(), normalized)
	}
}
