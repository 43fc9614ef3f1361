package plotspec

import (
	"fmt"

	layering "github.com/goliatone/go-plotspec/layering"
	"github.com/goliatone/go-plotspec/pkg/diag"
)

// Locale variants bundled with the rendering engine; selecting one of these
// needs no extra dependency.
var bundledLocales = map[string]struct{}{
	"en":    {},
	"en-US": {},
}

// Config keys the rendering engine retired. Values are the warning text.
var retiredConfigKeys = map[string]string{
	"collaborate": "the collaborate toggle was removed from the rendering engine and has no effect",
}

// mathJaxDependencyName is the singleton registry slot for the math-rendering
// bundle.
const mathJaxDependencyName = "mathjax"

// ConfigOption configures a single SetConfig call.
type ConfigOption func(*configCall)

type configCall struct {
	locale      string
	mathjax     *MathJaxMode
	show        *bool
	legacyShow  bool
	legacyGiven bool
}

// WithLocale selects the rendering locale. Non-bundled locales register an
// additive locale-bundle dependency named by the locale code.
func WithLocale(code string) ConfigOption {
	return func(call *configCall) {
		call.locale = code
	}
}

// WithMathJax selects the math-rendering delivery mode. The bundle is
// registered as a prepended singleton so it loads before any trace script
// referencing TeX markup.
func WithMathJax(mode MathJaxMode) ConfigOption {
	return func(call *configCall) {
		call.mathjax = &mode
	}
}

// WithShowSendToCloud controls the send-to-cloud button visibility.
func WithShowSendToCloud(show bool) ConfigOption {
	return func(call *configCall) {
		call.show = &show
	}
}

// WithSendToCloud is the legacy spelling of the send-to-cloud toggle.
//
// Deprecated: use WithShowSendToCloud. A truthy value emits a deprecation
// warning; the effective value still lands on config.showSendToCloud.
func WithSendToCloud(enabled bool) ConfigOption {
	return func(call *configCall) {
		call.legacyShow = enabled
		call.legacyGiven = true
	}
}

// SetConfig merges rendering-option overrides into Config, manages locale and
// math-rendering dependency injection, and emits deprecation warnings for
// retired options. Enumeration failures abort before any mutation; warnings
// are cumulative and never abort.
func (s *Spec) SetConfig(options map[string]any, opts ...ConfigOption) error {
	call := configCall{}
	for _, opt := range opts {
		if opt != nil {
			opt(&call)
		}
	}

	if call.mathjax != nil {
		switch *call.mathjax {
		case MathJaxCDN, MathJaxLocal:
		default:
			return &InvalidOptionError{
				Option:  "mathjax",
				Value:   string(*call.mathjax),
				Allowed: []string{string(MathJaxCDN), string(MathJaxLocal)},
			}
		}
	}

	if s.Config == nil {
		s.Config = map[string]any{}
	}

	if call.locale != "" {
		s.Config["locale"] = call.locale
		if _, bundled := bundledLocales[call.locale]; !bundled {
			s.AppendIfAbsent(call.locale, s.localePayload(call.locale))
		}
	}

	if call.mathjax != nil {
		s.UpsertSingleton(mathJaxDependencyName, s.mathJaxPayload(*call.mathjax), PlacementPrepend)
	}

	effective := options
	pruned := false
	for key, message := range retiredConfigKeys {
		if _, ok := effective[key]; !ok {
			continue
		}
		if !pruned {
			// Prune a private copy; callers must not observe their map
			// changing.
			effective = layering.CloneMap(options)
			pruned = true
		}
		delete(effective, key)
		s.warn(diag.Warning{
			Code:    WarnRetiredOption,
			Message: fmt.Sprintf("config option %q is retired: %s", key, message),
			Field:   key,
		})
	}
	if len(effective) > 0 {
		s.Config = layering.Merge(s.Config, effective)
	}

	if call.legacyGiven && call.legacyShow {
		s.warn(diag.Warning{
			Code:    WarnDeprecatedCloudToggle,
			Message: "the sendToCloud toggle is deprecated; use showSendToCloud",
			Field:   "sendToCloud",
		})
	}
	showSendToCloud := call.legacyShow
	if call.show != nil {
		showSendToCloud = *call.show
	}
	s.Config["showSendToCloud"] = showSendToCloud

	return nil
}

func (s *Spec) localePayload(code string) any {
	if s.cfg.factory == nil {
		return nil
	}
	return s.cfg.factory.Locale(code)
}

func (s *Spec) mathJaxPayload(mode MathJaxMode) any {
	if s.cfg.factory == nil {
		return nil
	}
	return s.cfg.factory.MathJax(mode)
}

