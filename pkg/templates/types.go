package templates

import (
	"context"
	"errors"
	"fmt"

	plotspec "github.com/goliatone/go-plotspec"
	layering "github.com/goliatone/go-plotspec/layering"
)

var ErrNotFound = errors.New("templates: template not found")

// Template is a named base snapshot merged beneath a specification: layout
// defaults such as colorways and fonts, plus optional config defaults. The
// specification's own values always win.
type Template struct {
	Layout map[string]any
	Config map[string]any
}

func (t Template) clone() Template {
	return Template{
		Layout: layering.CloneMap(t.Layout),
		Config: layering.CloneMap(t.Config),
	}
}

// Store loads and saves templates by name.
type Store interface {
	Load(ctx context.Context, name string) (Template, bool, error)
	Save(ctx context.Context, name string, tpl Template) error
}

// Resolver merges named templates beneath a Spec's layout and config.
type Resolver struct {
	Store Store
}

// Apply loads the named templates in order (later templates override earlier
// ones) and merges the combined snapshot beneath the Spec, so every value the
// Spec already carries is preserved.
func (r Resolver) Apply(ctx context.Context, spec *plotspec.Spec, names ...string) error {
	if r.Store == nil {
		return fmt.Errorf("templates: store is required")
	}
	if spec == nil {
		return fmt.Errorf("templates: spec is required")
	}
	if len(names) == 0 {
		return fmt.Errorf("templates: at least one template name is required")
	}

	baseLayout := map[string]any{}
	baseConfig := map[string]any{}
	for _, name := range names {
		tpl, ok, err := r.Store.Load(ctx, name)
		if err != nil {
			return fmt.Errorf("templates: load %q: %w", name, err)
		}
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		baseLayout = layering.Merge(baseLayout, tpl.Layout)
		baseConfig = layering.Merge(baseConfig, tpl.Config)
	}

	spec.Layout = layering.Merge(baseLayout, spec.Layout)
	spec.Config = layering.Merge(baseConfig, spec.Config)
	return nil
}
