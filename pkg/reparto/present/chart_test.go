package present

import (
	"bytes"
	"testing"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
)

func TestBuildScatter(t *testing.T) {
	records := []models.UnitReportRecord{
		{UnitID: "1", Operator: "Juan", DistanceKM: floatPtr(100), FuelLiters: floatPtr(12)},
		{UnitID: "2", Operator: "Ana", DistanceKM: floatPtr(50)},
	}

	s := BuildScatter(records)
	if s.Title != ScatterTitle || s.XAxisTitle != ScatterXTitle || s.YAxisTitle != ScatterYTitle {
		t.Errorf("Unexpected captions: %+v", s)
	}
	if len(s.Points) != 1 || s.Points[0].Operator != "Juan" {
		t.Errorf("Expected only complete records, got %+v", s.Points)
	}
}

func TestRenderScatterSVG(t *testing.T) {
	s := BuildScatter([]models.UnitReportRecord{
		{UnitID: "1", DistanceKM: floatPtr(100), FuelLiters: floatPtr(12)},
		{UnitID: "2", DistanceKM: floatPtr(180), FuelLiters: floatPtr(25)},
	})

	svg, err := RenderScatterSVG(s, 800, 400)
	if err != nil {
		t.Fatalf("RenderScatterSVG failed: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("Expected SVG output, got %.60s", svg)
	}
}

func TestRenderScatterSVGLabels(t *testing.T) {
	s := BuildScatter([]models.UnitReportRecord{
		{UnitID: "1203", Operator: "Juan", DistanceKM: floatPtr(100), FuelLiters: floatPtr(12)},
		{UnitID: "1204", Operator: "<b>Ana & Co</b>", DistanceKM: floatPtr(180), FuelLiters: floatPtr(25)},
		{UnitID: "1205", DistanceKM: floatPtr(90), FuelLiters: floatPtr(20)},
	})

	svg, err := RenderScatterSVG(s, 800, 400)
	if err != nil {
		t.Fatalf("RenderScatterSVG failed: %v", err)
	}
	for _, want := range []string{"1203 - Juan", "1204 - &lt;b&gt;Ana &amp; Co&lt;/b&gt;", ">1205<"} {
		if !bytes.Contains(svg, []byte(want)) {
			t.Errorf("Expected point label %q in SVG", want)
		}
	}
	if bytes.Contains(svg, []byte("<b>")) {
		t.Error("Expected operator markup to be escaped")
	}
}

func TestRenderScatterSVGSinglePoint(t *testing.T) {
	s := BuildScatter([]models.UnitReportRecord{
		{UnitID: "1", DistanceKM: floatPtr(100), FuelLiters: floatPtr(12)},
	})
	if _, err := RenderScatterSVG(s, 800, 400); err != nil {
		t.Errorf("Expected single point to render, got %v", err)
	}
}

func TestRenderScatterSVGEmpty(t *testing.T) {
	if _, err := RenderScatterSVG(BuildScatter(nil), 800, 400); err == nil {
		t.Error("Expected error for empty scatter")
	}
}

func TestPaddedRange(t *testing.T) {
	r := paddedRange([]float64{5})
	if r.Min != 4 || r.Max != 6 {
		t.Errorf("paddedRange([5]) = [%v, %v], expected [4, 6]", r.Min, r.Max)
	}
	r = paddedRange([]float64{3, 9, 1})
	if r.Min != 1 || r.Max != 9 {
		t.Errorf("paddedRange = [%v, %v], expected [1, 9]", r.Min, r.Max)
	}
}
