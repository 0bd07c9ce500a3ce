package present

import (
	"bytes"
	"fmt"
	"html"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Scatter chart captions.
const (
	ScatterTitle  = "Relación entre Distancia y Combustible Consumido"
	ScatterXTitle = "Distancia (km)"
	ScatterYTitle = "Combustible (L)"
)

// BuildScatter plots every record that has both distance and fuel.
func BuildScatter(records []models.UnitReportRecord) *models.Scatter {
	s := &models.Scatter{
		Title:      ScatterTitle,
		XAxisTitle: ScatterXTitle,
		YAxisTitle: ScatterYTitle,
		Points:     []models.ScatterPoint{},
	}
	for _, r := range records {
		if r.DistanceKM == nil || r.FuelLiters == nil {
			continue
		}
		s.Points = append(s.Points, models.ScatterPoint{
			UnitID:     r.UnitID,
			Operator:   r.Operator,
			DistanceKM: *r.DistanceKM,
			FuelLiters: *r.FuelLiters,
		})
	}
	return s
}

// pointStyle renders points only, with no connecting line.
func pointStyle() chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    drawing.ColorFromHex("636efa"),
	}
}

// RenderScatterSVG draws s as an SVG document.
func RenderScatterSVG(s *models.Scatter, width, height int) ([]byte, error) {
	if len(s.Points) == 0 {
		return nil, fmt.Errorf("scatter %q has no points", s.Title)
	}

	xs := make([]float64, 0, len(s.Points))
	ys := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		xs = append(xs, p.DistanceKM)
		ys = append(ys, p.FuelLiters)
	}

	ch := chart.Chart{
		Title:      s.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: s.XAxisTitle, Range: paddedRange(xs)},
		YAxis:      chart.YAxis{Name: s.YAxisTitle, Range: paddedRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Unidades",
				Style:   pointStyle(),
				XValues: xs,
				YValues: ys,
			},
			chart.AnnotationSeries{
				Name:        "Etiquetas",
				Annotations: pointLabels(s.Points),
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render scatter: %w", err)
	}
	return buf.Bytes(), nil
}

// pointLabels tags each point with its unit and operator. The SVG
// renderer writes text verbatim, so labels are escaped here.
func pointLabels(points []models.ScatterPoint) []chart.Value2 {
	labels := make([]chart.Value2, 0, len(points))
	for _, p := range points {
		label := p.UnitID.String()
		if p.Operator != "" {
			label += " - " + p.Operator
		}
		labels = append(labels, chart.Value2{
			XValue: p.DistanceKM,
			YValue: p.FuelLiters,
			Label:  html.EscapeString(label),
		})
	}
	return labels
}

// paddedRange widens a zero-width range so single points still render.
func paddedRange(values []float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}
