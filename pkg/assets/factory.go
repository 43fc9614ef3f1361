package assets

import (
	"fmt"
	"strings"

	plotspec "github.com/goliatone/go-plotspec"
)

// Script is the payload this factory attaches to dependency descriptors. The
// HTML exporter turns it into a script tag; other hosts can resolve URL
// however they load assets.
type Script struct {
	URL string `json:"url"`
}

// Factory builds dependency payloads for locale bundles and math-rendering
// bundles. The zero value uses the public CDN locations.
type Factory struct {
	// MathJaxCDNURL overrides the CDN location of the math-rendering bundle.
	MathJaxCDNURL string
	// MathJaxLocalPath overrides the relative path used in local mode.
	MathJaxLocalPath string
	// LocaleBaseURL overrides the base URL locale bundles are served from.
	LocaleBaseURL string
}

var _ plotspec.DependencyFactory = Factory{}

const (
	defaultMathJaxCDNURL    = "https://cdn.mathjax.org/mathjax/latest/MathJax.js?config=TeX-AMS-MML_SVG"
	defaultMathJaxLocalPath = "mathjax/MathJax.js?config=TeX-AMS-MML_SVG"
	defaultLocaleBaseURL    = "https://cdn.plot.ly"
)

// Locale returns the bundle reference for a locale code.
func (f Factory) Locale(code string) any {
	base := f.LocaleBaseURL
	if base == "" {
		base = defaultLocaleBaseURL
	}
	slug := strings.ToLower(strings.TrimSpace(code))
	return Script{URL: fmt.Sprintf("%s/plotly-locale-%s-latest.js", base, slug)}
}

// MathJax returns the bundle reference for a delivery mode. Unknown modes
// fall back to the CDN reference; mode validation is the mutator's job.
func (f Factory) MathJax(mode plotspec.MathJaxMode) any {
	if mode == plotspec.MathJaxLocal {
		path := f.MathJaxLocalPath
		if path == "" {
			path = defaultMathJaxLocalPath
		}
		return Script{URL: path}
	}
	url := f.MathJaxCDNURL
	if url == "" {
		url = defaultMathJaxCDNURL
	}
	return Script{URL: url}
}
