package plotspec

import (
	"github.com/goliatone/go-plotspec/pkg/diag"
)

// Spec is the full in-memory description of a visualization prior to
// serialization: trace data, layout options, rendering configuration, and the
// client-side dependencies the rendering engine must load.
//
// A Spec is owned by a single logical caller; mutators do not lock. Hosts
// sharing one Spec across goroutines must serialize access externally.
type Spec struct {
	// Data holds the trace descriptors produced by the data-to-trace
	// pipeline. This core threads it through untouched.
	Data []map[string]any

	// Layout maps layout keys (axis names, margins, titles) to arbitrary
	// nested option values. It stays a mapping at every mutation step.
	Layout map[string]any

	// Config holds flat rendering options, merged shallowly except where a
	// value is itself a mapping.
	Config map[string]any

	// Dependencies is the ordered list of client-side asset bundles attached
	// to the specification. Order is load order.
	Dependencies []Dependency

	// CurrentScope tags layout overrides recorded without an explicit scope.
	CurrentScope string

	cfg      specConfig
	deferred []OverrideBatch
	warnings []diag.Warning
}

// Dependency names an optional client-side asset bundle required at render
// time. Payload is opaque to this core; an external loader resolves it.
type Dependency struct {
	Name    string `json:"name"`
	Payload any    `json:"payload,omitempty"`
}

// Placement controls where a singleton dependency lands on first insert.
type Placement string

const (
	// PlacementAppend adds the descriptor at the end; additive bundles such
	// as locale packs are order-independent.
	PlacementAppend Placement = "append"
	// PlacementPrepend inserts at index 0 for bundles that must be available
	// before any trace script references them.
	PlacementPrepend Placement = "prepend"
)

// MathJaxMode selects how the math-rendering engine is delivered.
type MathJaxMode string

const (
	// MathJaxCDN loads the math-rendering bundle from a public CDN.
	MathJaxCDN MathJaxMode = "cdn"
	// MathJaxLocal references a bundle shipped alongside the host page.
	MathJaxLocal MathJaxMode = "local"
)

// Option configures a Spec on construction.
type Option func(*specConfig)

type specConfig struct {
	logger  WarningLogger
	hooks   diag.Hooks
	factory DependencyFactory
	newID   func() string
}

func applyOptions(opts []Option) specConfig {
	cfg := specConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithDiagnosticHooks attaches diag hooks that receive every warning emitted
// by the mutators. Hooks are cloned and nil entries dropped.
func WithDiagnosticHooks(hooks diag.Hooks) Option {
	normalized := hooks.Normalized()
	return func(cfg *specConfig) {
		cfg.hooks = normalized
	}
}

// WithIDGenerator overrides the snapshot-ID generator used for recorded
// override batches. Tests use this to obtain deterministic IDs.
func WithIDGenerator(fn func() string) Option {
	return func(cfg *specConfig) {
		cfg.newID = fn
	}
}
