package plotspec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFinalizeLaterBatchWinsPerScope(t *testing.T) {
	spec := New()
	spec.SetLayout(map[string]any{"a": 1}).
		SetLayout(map[string]any{"a": 2})

	spec.Finalize()

	if spec.Layout["a"] != 2 {
		t.Fatalf("expected later batch to win, got %+v", spec.Layout)
	}
	if len(spec.PendingOverrides()) != 0 {
		t.Fatalf("expected pending queue drained after finalize")
	}
}

func TestFinalizeSelectedScopesLeavesOthersPending(t *testing.T) {
	spec := New()
	spec.SetLayout(map[string]any{"title": "Prices"}, ForScope("prices"))
	spec.SetLayout(map[string]any{"title": "Volume"}, ForScope("volume"))

	spec.Finalize("prices")

	if spec.Layout["title"] != "Prices" {
		t.Fatalf("expected only the prices scope applied, got %+v", spec.Layout)
	}
	grouped := spec.LayoutScopes()
	if len(grouped) != 1 || len(grouped["volume"]) != 1 {
		t.Fatalf("expected volume batches still pending, got %+v", grouped)
	}
}

func TestFinalizeMergesNestedLayout(t *testing.T) {
	spec := New()
	spec.Layout["xaxis"] = map[string]any{"showgrid": true}
	spec.SetLayout(map[string]any{"xaxis": map[string]any{"title": "X"}})

	spec.Finalize()

	want := map[string]any{"showgrid": true, "title": "X"}
	if diff := cmp.Diff(want, spec.Layout["xaxis"]); diff != "" {
		t.Errorf("finalized axis mismatch (-want +got):\n%s", diff)
	}
}

func TestEndToEndLayoutThenFinalize(t *testing.T) {
	spec := New()
	spec.SetLayout(map[string]any{"xaxis": map[string]any{"title": "X"}})
	spec.Finalize()

	axis, ok := spec.Layout["xaxis"].(map[string]any)
	if !ok || axis["title"] != "X" {
		t.Fatalf("expected layout.xaxis.title == X, got %+v", spec.Layout)
	}
}

func TestTraceLayoutProvenance(t *testing.T) {
	spec := New(WithIDGenerator(sequentialIDs()))
	spec.Layout["xaxis"] = map[string]any{"title": "Base"}
	spec.SetLayout(map[string]any{"xaxis": map[string]any{"title": "First"}}, ForScope("prices"))
	spec.SetLayout(map[string]any{"showlegend": true}, ForScope("volume"))
	spec.SetLayout(map[string]any{"xaxis": map[string]any{"title": "Second"}}, ForScope("prices"))

	value, trace, err := spec.TraceLayout("xaxis.title")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if value != "Second" {
		t.Fatalf("expected most recent batch to provide the value, got %v", value)
	}
	// Three batches plus the applied layout, strongest first.
	if len(trace.Entries) != 4 {
		t.Fatalf("expected 4 provenance entries, got %+v", trace.Entries)
	}
	if !trace.Entries[0].Found || trace.Entries[0].Scope != "prices" || trace.Entries[0].SnapshotID != "batch/3" {
		t.Fatalf("unexpected strongest entry: %+v", trace.Entries[0])
	}
	if trace.Entries[1].Found {
		t.Fatalf("volume batch should not resolve the path: %+v", trace.Entries[1])
	}
	if !trace.Entries[3].Found || trace.Entries[3].Value != "Base" {
		t.Fatalf("expected applied layout as weakest entry: %+v", trace.Entries[3])
	}
}

func TestTraceLayoutRoundTripsJSON(t *testing.T) {
	spec := New()
	spec.SetLayout(map[string]any{"title": "Prices"})

	_, trace, err := spec.TraceLayout("title")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	raw, err := trace.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	restored, err := LayoutTraceFromJSON(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.Path != trace.Path || len(restored.Entries) != len(trace.Entries) {
		t.Fatalf("round trip mismatch: %+v vs %+v", restored, trace)
	}
}

func TestDocumentDoesNotConsumePendingBatches(t *testing.T) {
	spec := New()
	spec.SetLayout(map[string]any{"title": "Prices"})

	doc := spec.Document()
	if doc.Layout["title"] != "Prices" {
		t.Fatalf("expected document to carry finalized layout, got %+v", doc.Layout)
	}
	if len(spec.PendingOverrides()) != 1 {
		t.Fatalf("expected the spec to keep its pending batch")
	}
	if len(spec.Layout) != 0 {
		t.Fatalf("expected the spec layout untouched, got %+v", spec.Layout)
	}
}
