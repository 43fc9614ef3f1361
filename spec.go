package plotspec

import (
	layering "github.com/goliatone/go-plotspec/layering"
)

// New constructs an empty Spec. The data-to-trace pipeline normally populates
// Data and CurrentScope before the mutators run.
func New(opts ...Option) *Spec {
	return &Spec{
		Layout: map[string]any{},
		Config: map[string]any{},
		cfg:    applyOptions(opts),
	}
}

// DependencyFactory produces the opaque payloads registered for locale
// bundles and math-rendering bundles. This core only decides whether and
// where to register a descriptor; pkg/assets ships a default factory.
type DependencyFactory interface {
	Locale(code string) any
	MathJax(mode MathJaxMode) any
}

// WithDependencyFactory wires a descriptor factory into the Spec
// configuration. Without one, descriptors are registered with nil payloads.
func WithDependencyFactory(factory DependencyFactory) Option {
	return func(cfg *specConfig) {
		cfg.factory = factory
	}
}

// Clone returns a deep copy of the Spec, detached from the original. Pending
// override batches, warnings, and configuration travel with the copy.
func (s *Spec) Clone() *Spec {
	if s == nil {
		return nil
	}
	clone := &Spec{
		Data:         layering.CloneMaps(s.Data),
		Layout:       layering.CloneMap(s.Layout),
		Config:       layering.CloneMap(s.Config),
		CurrentScope: s.CurrentScope,
		cfg:          s.cfg,
	}
	if len(s.Dependencies) > 0 {
		clone.Dependencies = make([]Dependency, len(s.Dependencies))
		copy(clone.Dependencies, s.Dependencies)
	}
	if len(s.deferred) > 0 {
		clone.deferred = make([]OverrideBatch, len(s.deferred))
		for i, batch := range s.deferred {
			clone.deferred[i] = batch.clone()
		}
	}
	if len(s.warnings) > 0 {
		clone.warnings = append(clone.warnings, s.warnings...)
	}
	return clone
}
