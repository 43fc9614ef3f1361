package templates

import "context"

// Builtin returns a store seeded with the stock light and dark templates.
func Builtin() *MemoryStore {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Save(ctx, "plotly_white", Template{
		Layout: map[string]any{
			"paper_bgcolor": "#ffffff",
			"plot_bgcolor":  "#ffffff",
			"font":          map[string]any{"color": "#2a3f5f"},
			"xaxis": map[string]any{
				"gridcolor": "#e5ecf6",
				"zeroline":  false,
			},
			"yaxis": map[string]any{
				"gridcolor": "#e5ecf6",
				"zeroline":  false,
			},
		},
	})

	_ = store.Save(ctx, "plotly_dark", Template{
		Layout: map[string]any{
			"paper_bgcolor": "#111111",
			"plot_bgcolor":  "#111111",
			"font":          map[string]any{"color": "#f2f5fa"},
			"xaxis": map[string]any{
				"gridcolor": "#283442",
				"zeroline":  false,
			},
			"yaxis": map[string]any{
				"gridcolor": "#283442",
				"zeroline":  false,
			},
		},
	})

	return store
}
