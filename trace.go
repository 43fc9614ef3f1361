package plotspec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LayoutTrace captures provenance for a layout path across the applied layout
// and every pending override batch that touches it.
type LayoutTrace struct {
	Path    string       `json:"path"`
	Entries []Provenance `json:"entries"`
}

// Provenance details how one contributor resolved a traced path. Entries are
// ordered strongest first: the batch recorded last, back through earlier
// batches, down to the applied Layout.
type Provenance struct {
	Scope      string `json:"scope"`
	SnapshotID string `json:"snapshot_id,omitempty"`
	Path       string `json:"path"`
	Value      any    `json:"value,omitempty"`
	Found      bool   `json:"found"`
}

// TraceLayout resolves a dot-separated layout path (e.g. "xaxis.title")
// against the pending batches and the applied Layout, returning the effective
// value alongside the full provenance chain.
func (s *Spec) TraceLayout(path string) (any, LayoutTrace, error) {
	if path == "" {
		return nil, LayoutTrace{}, fmt.Errorf("plotspec: trace path must not be empty")
	}
	segments := strings.Split(path, ".")
	trace := LayoutTrace{Path: path}

	for i := len(s.deferred) - 1; i >= 0; i-- {
		batch := s.deferred[i]
		value, found := resolvePath(batch.Overrides, segments)
		trace.Entries = append(trace.Entries, Provenance{
			Scope:      batch.Scope,
			SnapshotID: batch.SnapshotID,
			Path:       path,
			Value:      value,
			Found:      found,
		})
	}

	baseValue, baseFound := resolvePath(s.Layout, segments)
	trace.Entries = append(trace.Entries, Provenance{
		Path:  path,
		Value: baseValue,
		Found: baseFound,
	})

	for _, entry := range trace.Entries {
		if entry.Found {
			return entry.Value, trace, nil
		}
	}
	return nil, trace, nil
}

// ToJSON serialises the trace for logging or transport helpers.
func (t LayoutTrace) ToJSON() ([]byte, error) {
	type alias LayoutTrace
	return json.Marshal(alias(t))
}

// LayoutTraceFromJSON deserialises a payload previously produced by ToJSON.
func LayoutTraceFromJSON(payload []byte) (LayoutTrace, error) {
	type alias LayoutTrace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return LayoutTrace{}, err
	}
	return LayoutTrace(trace), nil
}

func resolvePath(root map[string]any, segments []string) (any, bool) {
	if root == nil {
		return nil, false
	}
	var current any = root
	for _, segment := range segments {
		mapping, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = mapping[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
