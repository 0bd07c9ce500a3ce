package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
)

func TestToJSON(t *testing.T) {
	d := &models.Dashboard{
		PassID:      "p1",
		Unit:        "1203",
		ReportMode:  "daily",
		UnitOptions: []string{"Todas", "1203"},
		Report:      &models.ReportView{Columns: models.DefaultReportColumns},
		Map: &models.MapView{
			Unit:    "1203",
			Found:   true,
			Markers: []models.Marker{{Color: "green", Popup: "<strong>Hora:</strong> 10:00"}},
		},
	}

	compact, err := ToJSON(d, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if bytes.Contains(compact, []byte("\n")) {
		t.Errorf("Expected compact output, got %s", compact)
	}
	if !bytes.Contains(compact, []byte("<strong>")) {
		t.Errorf("Expected unescaped popup HTML, got %s", compact)
	}

	pretty, err := ToJSON(d, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !bytes.Contains(pretty, []byte("\n  \"pass_id\": \"p1\"")) {
		t.Errorf("Expected indented output, got %s", pretty)
	}

	var back models.Dashboard
	if err := json.Unmarshal(pretty, &back); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if back.Map == nil || back.Map.Markers[0].Color != "green" {
		t.Errorf("Unexpected map after decode: %+v", back.Map)
	}
}

func TestUnitsToJSON(t *testing.T) {
	data, err := UnitsToJSON([]string{"Todas", "1203"}, false)
	if err != nil {
		t.Fatalf("UnitsToJSON failed: %v", err)
	}
	if string(data) != `["Todas","1203"]` {
		t.Errorf("UnitsToJSON = %s, expected [\"Todas\",\"1203\"]", data)
	}
}
