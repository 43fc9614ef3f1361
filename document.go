package plotspec

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-plotspec/internal/hydrate"
)

// Document is the engine-facing wire form of a finalized Spec. Its serialized
// shape belongs to the external rendering engine; this core treats it as an
// opaque sink.
type Document struct {
	Data         []map[string]any `json:"data"`
	Layout       map[string]any   `json:"layout"`
	Config       map[string]any   `json:"config,omitempty"`
	Dependencies []Dependency     `json:"dependencies,omitempty"`
}

// Document finalizes a detached copy of the Spec and returns its wire form.
// The receiver keeps its pending batches; serialization must not consume
// state another scope is still building.
func (s *Spec) Document() Document {
	finalized := s.Clone().Finalize()
	return Document{
		Data:         finalized.Data,
		Layout:       finalized.Layout,
		Config:       finalized.Config,
		Dependencies: finalized.Dependencies,
	}
}

// ToJSON serialises the finalized wire document.
func (s *Spec) ToJSON() ([]byte, error) {
	return json.Marshal(s.Document())
}

// FromJSON rebuilds a Spec from a wire document previously produced by
// ToJSON (or by a compatible producer). Numeric layout values stay
// json.Number so epoch ranges survive a round trip unchanged.
func FromJSON(raw []byte, opts ...Option) (*Spec, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("plotspec: parse document: %w", err)
	}

	decoder := hydrate.NewDecoder[Document](
		hydrate.WithUseNumber[Document](),
		hydrate.WithPostHook[Document](func(_ hydrate.Context, doc *Document) error {
			if doc.Layout == nil {
				doc.Layout = map[string]any{}
			}
			if doc.Config == nil {
				doc.Config = map[string]any{}
			}
			return nil
		}),
	)
	doc, err := decoder.Decode(hydrate.Context{Source: "document"}, payload)
	if err != nil {
		return nil, fmt.Errorf("plotspec: %w", err)
	}

	spec := New(opts...)
	spec.Data = doc.Data
	spec.Layout = doc.Layout
	spec.Config = doc.Config
	spec.Dependencies = doc.Dependencies
	return spec, nil
}
