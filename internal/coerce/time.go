package coerce

import (
	"fmt"
	"math"
	"time"
)

// Time converts a raw value to time.Time. Strings are parsed with the
// descriptor's layout first, then RFC3339 as a fallback. Numeric input is an
// epoch offset in the given unit (time.Second or time.Millisecond);
// fractional epochs keep their sub-unit precision.
func Time(v any, layout string, unit time.Duration) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		if parsed, err := time.Parse(layout, t); err == nil {
			return parsed, nil
		}
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, fmt.Errorf("string %q matches neither layout %q nor RFC3339", t, layout)
		}
		return parsed, nil
	default:
		// Whole epochs convert via int64 so large values keep exact
		// nanosecond precision; only fractional epochs go through float math.
		if i, err := Int64(v); err == nil {
			return time.Unix(0, i*int64(unit)), nil
		}
		f, err := Float64(v)
		if err != nil {
			return time.Time{}, fmt.Errorf("unsupported type %T", v)
		}
		whole := math.Trunc(f)
		frac := f - whole
		return time.Unix(0, int64(whole)*int64(unit)).Add(time.Duration(frac * float64(unit))), nil
	}
}
