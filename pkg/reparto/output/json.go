// Package output serializes render passes.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
)

// ToJSON serializes a dashboard. HTML characters in popups are kept as
// written.
func ToJSON(d *models.Dashboard, pretty bool) ([]byte, error) {
	return marshal(d, pretty)
}

// UnitsToJSON serializes the unit selector entries.
func UnitsToJSON(units []string, pretty bool) ([]byte, error) {
	return marshal(units, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
