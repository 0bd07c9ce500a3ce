package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reparto-pfr/reparto-go/internal/config"
	"github.com/reparto-pfr/reparto-go/pkg/reparto"
	"github.com/xuri/excelize/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// writeSheet saves rows as the only sheet of a new workbook.
func writeSheet(t *testing.T, path, sheet string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("Failed to rename sheet: %v", err)
		}
	}
	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("Failed to write row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
}

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()

	cfg, err := config.Load(config.New(), "")
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}
	cfg.Data.Dir = dir
	opts := cfg.Options()
	path := func(d reparto.Dataset) string { return filepath.Join(dir, opts.FileName(d)) }

	report := [][]interface{}{
		{"Número de unidad", "Operador", "Modelo", "Distancia total km", "Combustible consumido (L)", "Puntuación de seguridad"},
		{1203, "Juan", "NPR", 120.5, 30.25, 95.4},
		{1204, "Ana", "ELF", 80, 20, 65},
	}
	writeSheet(t, path(reparto.DatasetDailyReport), "Sheet1", report)
	writeSheet(t, path(reparto.DatasetMonthlyReport), "Sheet1", report)
	writeSheet(t, path(reparto.DatasetStops), "1203", [][]interface{}{
		{"NOMBRE_CLIENTE", "tiempo_espera"},
		{"Abarrotes Luna", "0 days 00:25:13"},
	})
	writeSheet(t, path(reparto.DatasetStopCoordinates), "Sheet1", [][]interface{}{
		{"unidad", "LATITUD", "LONGITUD", "NOMBRE_CLIENTE", "hora_final", "tiempo_espera", "parada_status"},
		{1203, 19.43, -99.13, "Abarrotes Luna", "10:15", "0 days 00:25:13", "ENTREGADO"},
	})
	events := [][]interface{}{
		{"Tipo de evento", "Operador", "Hora", "Unidad", "video_Interior", "video_Exterior"},
		{"Frenado brusco", "Juan", "08:15:00", 1203, "https://cdn.example.com/in.mp4", "No video URL"},
	}
	writeSheet(t, path(reparto.DatasetDailyEvents), "Sheet1", events)
	writeSheet(t, path(reparto.DatasetMonthlyEvents), "Sheet1", events)

	return NewServer(cfg), dir
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/healthz")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("GET /healthz = %d %q", w.Code, w.Body.String())
	}
}

func TestDashboardAllUnits(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{
		"Información Seguridad de Unidades",
		`style="background-color: #92d050"`,
		"/chart/scatter.svg?report=daily",
		"200.50 km",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Dashboard missing %q", want)
		}
	}
	if w.Header().Get("X-Render-Pass") == "" {
		t.Error("Expected X-Render-Pass header")
	}
}

func TestDashboardUnit(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/?unit=1203&events=monthly")
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{
		"Informe de la Unidad",
		"Incidente: Frenado brusco ----- Hora: 08:15:00",
		`<source src="https://cdn.example.com/in.mp4"`,
		"No hay video exterior disponible.",
		`class="long-wait">00:25:13`,
		"L.circleMarker",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Dashboard missing %q", want)
		}
	}
}

func TestDashboardUnknownUnit(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/?unit=9999")
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"no coordinates found for unit 9999", "no stops found for unit 9999", "no incidents found for unit 9999"} {
		if !strings.Contains(body, want) {
			t.Errorf("Dashboard missing %q", want)
		}
	}
	if strings.Contains(body, "L.circleMarker") {
		t.Error("Expected no map markers")
	}
}

func TestDashboardBadMode(t *testing.T) {
	s, _ := newTestServer(t)
	if w := get(t, s, "/?report=weekly"); w.Code != http.StatusBadRequest {
		t.Errorf("GET /?report=weekly = %d, expected 400", w.Code)
	}
}

func TestDashboardMissingFile(t *testing.T) {
	s, dir := newTestServer(t)
	if err := os.Remove(filepath.Join(dir, "Informe_Diario_Unidades.xlsx")); err != nil {
		t.Fatalf("Failed to remove fixture: %v", err)
	}
	w := get(t, s, "/")
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), "file not found") {
		t.Errorf("GET / = %d %q", w.Code, w.Body.String())
	}
}

func TestDashboardJSON(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/api/dashboard?unit=1203")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/dashboard = %d: %s", w.Code, w.Body.String())
	}

	var d struct {
		Unit string `json:"unit"`
		Map  struct {
			Found   bool `json:"found"`
			Markers []struct {
				Color string `json:"color"`
			} `json:"markers"`
		} `json:"map"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if d.Unit != "1203" || !d.Map.Found || len(d.Map.Markers) != 1 || d.Map.Markers[0].Color != "green" {
		t.Errorf("Unexpected dashboard: %+v", d)
	}
}

func TestUnits(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/api/units")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/units = %d", w.Code)
	}
	var resp struct {
		Units []string `json:"units"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if strings.Join(resp.Units, ",") != "Todas,1203,1204" {
		t.Errorf("Units = %v", resp.Units)
	}
}

func TestScatter(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/chart/scatter.svg?report=monthly")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /chart/scatter.svg = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "<svg") {
		t.Error("Expected SVG body")
	}
}
