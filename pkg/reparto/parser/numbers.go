package parser

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat coerces a parsed cell value to a finite float64.
// Returns false for absent, non-numeric, NaN or infinite values.
func ToFloat(v interface{}) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case int64:
		f = float64(val)
	case int:
		f = float64(val)
	case float64:
		f = val
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToNullableFloat is ToFloat returning nil on failure.
func ToNullableFloat(v interface{}) *float64 {
	f, ok := ToFloat(v)
	if !ok {
		return nil
	}
	return &f
}
