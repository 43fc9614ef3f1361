package plotspec

import (
	"fmt"
	"strings"
)

// MultiAxisError reports a layout mutation that targets "the" x-axis while
// more than one x-axis is present. The triggering call applies no mutation.
type MultiAxisError struct {
	Axes []string
}

func (e *MultiAxisError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("plotspec: layout defines %d x-axes (%s); operation requires exactly one",
		len(e.Axes), strings.Join(e.Axes, ", "))
}

// InvalidOptionError reports an enumerated option that received a value
// outside its fixed set. The triggering call applies no mutation.
type InvalidOptionError struct {
	Option  string
	Value   any
	Allowed []string
}

func (e *InvalidOptionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("plotspec: invalid value %v for option %q", e.Value, e.Option)
	}
	return fmt.Sprintf("plotspec: invalid value %v for option %q (allowed: %s)",
		e.Value, e.Option, strings.Join(e.Allowed, ", "))
}
