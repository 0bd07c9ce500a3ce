package reparto

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/present"
)

// Render runs one render pass: it reads the datasets the selection needs
// and formats every section of the dashboard. It holds no state between
// passes.
func Render(l *Loader, sel Selection) (*models.Dashboard, error) {
	start := time.Now()
	passID := uuid.NewString()

	if sel.ReportMode == "" {
		sel.ReportMode = ReportDaily
	}
	if sel.EventMode == "" {
		sel.EventMode = EventsPreviousDay
	}

	units, err := l.UnitIDs()
	if err != nil {
		return nil, err
	}

	report, err := l.UnitReport(sel.ReportMode)
	if err != nil {
		return nil, err
	}

	d := &models.Dashboard{
		PassID:       passID,
		Unit:         AllUnitsLabel,
		ReportMode:   string(sel.ReportMode),
		UnitOptions:  unitOptions(units),
		ExtraColumns: sel.ExtraColumns,
		Report:       present.FormatReport(report, sel.Unit, sel.ExtraColumns),
	}

	if !sel.AllUnits() {
		d.Unit = sel.Unit.String()
		d.EventMode = string(sel.EventMode)

		events, err := l.Incidents(sel.EventMode)
		if err != nil {
			return nil, err
		}
		d.Incidents = present.BuildIncidentPanel(events, sel.Unit, sel.EventMode.Label())

		sheets, err := l.StopSheets()
		if err != nil {
			return nil, err
		}
		d.Stops = present.FormatStops(sheets, sel.Unit)

		coords, err := l.StopCoordinates()
		if err != nil {
			return nil, err
		}
		d.Map = present.BuildMap(coords, sel.Unit)
	}

	log.Printf("[render] pass %s unit=%s report=%s rows=%d in %s",
		passID, d.Unit, d.ReportMode, len(d.Report.Rows), time.Since(start))
	return d, nil
}

// unitOptions returns the selector entries: every unit after "Todas".
func unitOptions(units []models.UnitID) []string {
	options := make([]string, 0, len(units)+1)
	options = append(options, AllUnitsLabel)
	for _, u := range units {
		options = append(options, u.String())
	}
	return options
}
