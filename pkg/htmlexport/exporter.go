package htmlexport

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	plotspec "github.com/goliatone/go-plotspec"
	"github.com/goliatone/go-plotspec/pkg/assets"
)

const defaultEngineURL = "https://cdn.plot.ly/plotly-latest.min.js"

const pageSource = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{ title }}</title>
{% for script in dependency_scripts %}<script src="{{ script }}"></script>
{% endfor %}<script src="{{ engine_url }}"></script>
</head>
<body>
<div id="{{ div_id }}" class="plotly-graph-div"></div>
<script type="text/javascript">
    var figure = {{ figure|safe }};
    Plotly.newPlot("{{ div_id }}", figure.data, figure.layout, figure.config);
</script>
</body>
</html>
`

var (
	pageOnce     sync.Once
	pageTemplate *pongo2.Template
	pageErr      error

	titlePolicyOnce sync.Once
	titlePolicy     *bluemonday.Policy
)

// Option configures a single Export call.
type Option func(*config)

type config struct {
	title     string
	engineURL string
	divID     string
}

// WithTitle sets the page title. The value is sanitized before embedding, so
// user-supplied markup cannot escape into the page.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = title
	}
}

// WithEngineURL overrides the location the rendering engine is loaded from.
func WithEngineURL(url string) Option {
	return func(cfg *config) {
		cfg.engineURL = strings.TrimSpace(url)
	}
}

// WithDivID pins the graph container ID instead of generating one.
func WithDivID(id string) Option {
	return func(cfg *config) {
		cfg.divID = strings.TrimSpace(id)
	}
}

// Export renders a standalone HTML page embedding the finalized figure and a
// script tag per registered dependency, in registry order, ahead of the
// engine script. Prepend placement therefore translates directly into load
// order.
func Export(spec *plotspec.Spec, opts ...Option) ([]byte, error) {
	if spec == nil {
		return nil, fmt.Errorf("htmlexport: spec is required")
	}

	cfg := config{engineURL: defaultEngineURL}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.divID == "" {
		cfg.divID = uuid.NewString()
	}

	doc := spec.Document()
	figure, err := json.Marshal(struct {
		Data   []map[string]any `json:"data"`
		Layout map[string]any   `json:"layout"`
		Config map[string]any   `json:"config"`
	}{
		Data:   doc.Data,
		Layout: doc.Layout,
		Config: doc.Config,
	})
	if err != nil {
		return nil, fmt.Errorf("htmlexport: marshal figure: %w", err)
	}

	tmpl, err := page()
	if err != nil {
		return nil, err
	}

	rendered, err := tmpl.Execute(pongo2.Context{
		"title":              sanitizeTitle(cfg.title),
		"figure":             string(figure),
		"div_id":             cfg.divID,
		"engine_url":         cfg.engineURL,
		"dependency_scripts": scriptURLs(doc.Dependencies),
	})
	if err != nil {
		return nil, fmt.Errorf("htmlexport: execute page template: %w", err)
	}
	return []byte(rendered), nil
}

// scriptURLs extracts loadable references from dependency payloads. Payloads
// without a usable reference are skipped; recording a requirement is the
// registry's job, resolving it is the loader's.
func scriptURLs(deps []plotspec.Dependency) []string {
	urls := make([]string, 0, len(deps))
	for _, dep := range deps {
		switch payload := dep.Payload.(type) {
		case assets.Script:
			if payload.URL != "" {
				urls = append(urls, payload.URL)
			}
		case map[string]any:
			if url, ok := payload["url"].(string); ok && url != "" {
				urls = append(urls, url)
			}
		case string:
			if payload != "" {
				urls = append(urls, payload)
			}
		}
	}
	return urls
}

func page() (*pongo2.Template, error) {
	pageOnce.Do(func() {
		pageTemplate, pageErr = pongo2.FromString(pageSource)
	})
	if pageErr != nil {
		return nil, fmt.Errorf("htmlexport: parse page template: %w", pageErr)
	}
	return pageTemplate, nil
}

func sanitizeTitle(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "plotspec figure"
	}
	titlePolicyOnce.Do(func() {
		titlePolicy = bluemonday.StrictPolicy()
	})
	cleaned := strings.TrimSpace(titlePolicy.Sanitize(trimmed))
	if cleaned == "" {
		return "plotspec figure"
	}
	return cleaned
}
