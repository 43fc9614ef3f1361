package plotspec

import (
	"encoding/json"
	"testing"
)

func TestDocumentJSONRoundTrip(t *testing.T) {
	spec := New()
	spec.Data = []map[string]any{{"type": "scatter", "x": []any{1, 2, 3}}}
	spec.SetLayout(map[string]any{"xaxis": map[string]any{"title": "X"}})
	if err := spec.SetConfig(map[string]any{"responsive": true}); err != nil {
		t.Fatalf("config: %v", err)
	}
	spec.AppendIfAbsent("ja", map[string]any{"url": "https://cdn.plot.ly/plotly-locale-ja-latest.js"})

	raw, err := spec.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !json.Valid(raw) {
		t.Fatalf("expected valid json, got %s", raw)
	}

	restored, err := FromJSON(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	axis, ok := restored.Layout["xaxis"].(map[string]any)
	if !ok || axis["title"] != "X" {
		t.Fatalf("expected finalized layout to survive, got %+v", restored.Layout)
	}
	if restored.Config["responsive"] != true {
		t.Fatalf("expected config to survive, got %+v", restored.Config)
	}
	if len(restored.Dependencies) != 1 || restored.Dependencies[0].Name != "ja" {
		t.Fatalf("expected dependency to survive, got %+v", restored.Dependencies)
	}
}

func TestFromJSONKeepsNumbersExact(t *testing.T) {
	raw := []byte(`{"data":[],"layout":{"xaxis":{"range":[1577836800000,1609372800000]}}}`)
	spec, err := FromJSON(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	axis := spec.Layout["xaxis"].(map[string]any)
	bounds := axis["range"].([]any)
	number, ok := bounds[0].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number bound, got %T", bounds[0])
	}
	if number.String() != "1577836800000" {
		t.Fatalf("expected exact epoch value, got %s", number)
	}
}

func TestFromJSONRejectsMalformedPayload(t *testing.T) {
	if _, err := FromJSON([]byte(`{"layout": 42`)); err == nil {
		t.Fatalf("expected parse error")
	}
}
