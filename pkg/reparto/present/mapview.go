package present

import (
	"fmt"
	"html"
	"strings"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/parser"
)

// DefaultZoom is the initial zoom of the stop map.
const DefaultZoom = 12

// DefaultMarkerColor is used for statuses without a dedicated color.
const DefaultMarkerColor = "blue"

var markerColors = map[models.StopStatus]string{
	models.StatusNotDelivered: "orange",
	models.StatusDelivered:    "green",
	models.StatusInvalidStop:  "red",
}

// MarkerColor returns the marker color of a stop status.
func MarkerColor(s models.StopStatus) string {
	if c, ok := markerColors[s]; ok {
		return c
	}
	return DefaultMarkerColor
}

// NewStopRecord types a coordinate row. ok is false when the position is
// not numeric.
func NewStopRecord(row models.Row) (models.StopRecord, bool) {
	lat, latOK := parser.ToFloat(row[models.ColLatitude])
	lng, lngOK := parser.ToFloat(row[models.ColLongitude])
	wait, waitOK := parser.ParseDuration(row[models.ColWaitTime])
	label := row.Text(models.ColStopStatus)

	return models.StopRecord{
		UnitID:      models.NormalizeUnitID(row[models.ColCoordUnit]),
		WaitTime:    wait,
		WaitValid:   waitOK,
		FinalTime:   row.Text(models.ColFinalTime),
		ClientName:  row.Text(models.ColClientName),
		Status:      models.ParseStopStatus(label),
		StatusLabel: label,
		Latitude:    lat,
		Longitude:   lng,
	}, latOK && lngOK
}

// BuildMap places one marker per stop of unit, centered on the first one.
// Coordinates are matched on the integer unit number.
func BuildMap(table *models.Table, unit models.UnitID) *models.MapView {
	mv := &models.MapView{Unit: unit, Zoom: DefaultZoom, Markers: []models.Marker{}}

	if n, ok := unit.Int(); ok {
		for _, row := range table.Rows {
			id, ok := parser.ToFloat(row[models.ColCoordUnit])
			if !ok || id != float64(n) {
				continue
			}
			stop, ok := NewStopRecord(row)
			if !ok {
				continue
			}
			pos := models.LatLng{Lat: stop.Latitude, Lng: stop.Longitude}
			if len(mv.Markers) == 0 {
				mv.Center = pos
			}
			mv.Markers = append(mv.Markers, models.Marker{
				Position: pos,
				Status:   stop.Status,
				Color:    MarkerColor(stop.Status),
				Popup:    popupHTML(stop, row),
			})
		}
	}

	if len(mv.Markers) == 0 {
		mv.Message = fmt.Sprintf("no coordinates found for unit %s", unit)
		return mv
	}
	mv.Found = true
	return mv
}

// popupHTML builds the escaped marker popup. The wait time is shown
// formatted when it parses and as written otherwise.
func popupHTML(stop models.StopRecord, row models.Row) string {
	wait := row.Text(models.ColWaitTime)
	if stop.WaitValid {
		wait = parser.FormatClock(stop.WaitTime)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<strong>Nombre del Cliente:</strong> %s<br>", html.EscapeString(stop.ClientName))
	fmt.Fprintf(&b, "<strong>Hora:</strong> %s<br>", html.EscapeString(stop.FinalTime))
	fmt.Fprintf(&b, "<strong>Tiempo de Espera:</strong> %s<br>", html.EscapeString(wait))
	fmt.Fprintf(&b, "<strong>Estatus:</strong> %s", html.EscapeString(stop.StatusLabel))
	return b.String()
}
