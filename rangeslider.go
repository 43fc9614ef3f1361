package plotspec

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"time"

	layering "github.com/goliatone/go-plotspec/layering"
)

var xAxisKeyPattern = regexp.MustCompile(`^xaxis\d*$`)

var rangeBoundLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// AddRangeSlider computes a millisecond-epoch range for the single x-axis and
// attaches a slider widget descriptor. A nil start or end maps to a nil bound
// ("auto" to the engine). The range is written directly to the axis mapping,
// bypassing the deferred store, so downstream range computations observe it
// immediately.
//
// It fails with MultiAxisError when the layout defines more than one x-axis;
// an absent x-axis counts as the one implicit default axis.
func (s *Spec) AddRangeSlider(start, end any, extra map[string]any) error {
	axisKey, err := s.singleXAxisKey()
	if err != nil {
		return err
	}

	startMs, err := epochMillis(start)
	if err != nil {
		return fmt.Errorf("plotspec: range start: %w", err)
	}
	endMs, err := epochMillis(end)
	if err != nil {
		return fmt.Errorf("plotspec: range end: %w", err)
	}

	if s.Layout == nil {
		s.Layout = map[string]any{}
	}
	axis, ok := s.Layout[axisKey].(map[string]any)
	if !ok {
		axis = map[string]any{}
		s.Layout[axisKey] = axis
	}

	axis["range"] = []any{startMs, endMs}
	axis["rangeslider"] = layering.Merge(map[string]any{"visible": true}, extra)
	return nil
}

// singleXAxisKey returns the x-axis layout key the mutation targets, or
// MultiAxisError when the target is ambiguous.
func (s *Spec) singleXAxisKey() (string, error) {
	var axes []string
	for key := range s.Layout {
		if xAxisKeyPattern.MatchString(key) {
			axes = append(axes, key)
		}
	}
	switch len(axes) {
	case 0:
		return "xaxis", nil
	case 1:
		return axes[0], nil
	default:
		sort.Strings(axes)
		return "", &MultiAxisError{Axes: axes}
	}
}

// epochMillis converts a date, date-time, or numeric-like bound into its
// engine representation. Nil stays nil; numeric values pass through untouched
// because they already are epoch milliseconds to the engine.
func epochMillis(value any) (any, error) {
	switch typed := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return typed.UnixMilli(), nil
	case *time.Time:
		if typed == nil {
			return nil, nil
		}
		return typed.UnixMilli(), nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return typed, nil
	case json.Number:
		return typed, nil
	case string:
		for _, layout := range rangeBoundLayouts {
			if ts, err := time.Parse(layout, typed); err == nil {
				return ts.UnixMilli(), nil
			}
		}
		return nil, fmt.Errorf("cannot parse %q as a date or date-time", typed)
	default:
		return nil, fmt.Errorf("value %v (%T) is not a date or numeric bound", value, value)
	}
}
