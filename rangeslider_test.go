package plotspec

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAddRangeSliderRejectsMultipleXAxes(t *testing.T) {
	spec := New()
	spec.Layout["xaxis"] = map[string]any{}
	spec.Layout["xaxis2"] = map[string]any{}

	err := spec.AddRangeSlider(nil, nil, nil)

	var multiErr *MultiAxisError
	if !errors.As(err, &multiErr) {
		t.Fatalf("expected MultiAxisError, got %v", err)
	}
	if len(multiErr.Axes) != 2 {
		t.Fatalf("expected both axes reported, got %+v", multiErr.Axes)
	}
	if _, ok := spec.Layout["xaxis"].(map[string]any)["rangeslider"]; ok {
		t.Fatalf("expected no mutation after precondition failure")
	}
}

func TestAddRangeSliderNilBounds(t *testing.T) {
	spec := New()
	if err := spec.AddRangeSlider(nil, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	axis := spec.Layout["xaxis"].(map[string]any)
	want := []any{nil, nil}
	if diff := cmp.Diff(want, axis["range"]); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
	slider := axis["rangeslider"].(map[string]any)
	if slider["visible"] != true {
		t.Fatalf("expected visible slider, got %+v", slider)
	}
}

func TestAddRangeSliderConvertsDates(t *testing.T) {
	spec := New()
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)

	if err := spec.AddRangeSlider(start, end, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	axis := spec.Layout["xaxis"].(map[string]any)
	want := []any{start.UnixMilli(), end.UnixMilli()}
	if diff := cmp.Diff(want, axis["range"]); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
}

func TestAddRangeSliderAcceptsDateStringsAndNumbers(t *testing.T) {
	spec := New()
	if err := spec.AddRangeSlider("2020-01-02", 1700000000000, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	axis := spec.Layout["xaxis"].(map[string]any)
	wantStart := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC).UnixMilli()
	got := axis["range"].([]any)
	if got[0] != wantStart {
		t.Fatalf("expected parsed date %d, got %v", wantStart, got[0])
	}
	if got[1] != 1700000000000 {
		t.Fatalf("expected numeric bound passed through, got %v", got[1])
	}
}

func TestAddRangeSliderTargetsExistingAxisByIdentity(t *testing.T) {
	spec := New()
	axis := map[string]any{"title": "X"}
	spec.Layout["xaxis3"] = axis

	if err := spec.AddRangeSlider(nil, nil, map[string]any{"thickness": 0.2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The write lands on the existing axis object, visible immediately.
	if _, ok := axis["range"]; !ok {
		t.Fatalf("expected range written to existing axis object, got %+v", axis)
	}
	slider := axis["rangeslider"].(map[string]any)
	if slider["visible"] != true || slider["thickness"] != 0.2 {
		t.Fatalf("expected slider descriptor with extra options, got %+v", slider)
	}
	if len(spec.PendingOverrides()) != 0 {
		t.Fatalf("range slider must bypass the deferred store")
	}
}

func TestAddRangeSliderBadBoundAbortsBeforeMutation(t *testing.T) {
	spec := New()
	if err := spec.AddRangeSlider("not-a-date", nil, nil); err == nil {
		t.Fatalf("expected conversion error")
	}
	if err := spec.AddRangeSlider(struct{}{}, nil, nil); err == nil {
		t.Fatalf("expected conversion error for unsupported type")
	}
	if _, ok := spec.Layout["xaxis"]; ok {
		t.Fatalf("expected no axis mutation after failed conversion, got %+v", spec.Layout)
	}
}
