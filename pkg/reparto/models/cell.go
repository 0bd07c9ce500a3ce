// Package models defines the tabular and view structures of the dashboard.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Row maps a header column to its parsed cell value.
// Values are int64, float64 or string; empty cells are absent.
type Row map[string]interface{}

// Has reports whether the row carries a value for col.
func (r Row) Has(col string) bool {
	v, ok := r[col]
	return ok && v != nil
}

// Text returns the cell rendered as display text, or "" when absent.
func (r Row) Text(col string) string {
	return CellText(r[col])
}

// CellText renders a parsed cell value for display.
func CellText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
