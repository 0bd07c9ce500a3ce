package present

import (
	"fmt"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
)

// NewIncidentRecord types an incident row.
func NewIncidentRecord(row models.Row) models.IncidentRecord {
	return models.IncidentRecord{
		UnitID:    models.NormalizeUnitID(row[models.ColEventUnit]),
		EventType: row.Text(models.ColEventType),
		Time:      row.Text(models.ColEventTime),
		Operator:  row.Text(models.ColEventOperator),
		Interior:  models.NewVideoRef(row.Text(models.ColVideoInterior)),
		Exterior:  models.NewVideoRef(row.Text(models.ColVideoExterior)),
	}
}

// BuildIncidentPanel keeps the incidents whose unit matches exactly and
// pairs each one with its footage. No match yields an empty panel with a
// message.
func BuildIncidentPanel(table *models.Table, unit models.UnitID, mode string) *models.IncidentPanel {
	panel := &models.IncidentPanel{
		Unit:    unit,
		Mode:    mode,
		Columns: models.IncidentColumns,
		Rows:    [][]string{},
		Records: []models.IncidentRecord{},
		Entries: []models.IncidentEntry{},
	}

	for _, row := range table.Rows {
		record := NewIncidentRecord(row)
		if unit == "" || record.UnitID != unit {
			continue
		}

		values := make([]string, 0, len(panel.Columns))
		for _, col := range panel.Columns {
			values = append(values, row.Text(col))
		}
		panel.Rows = append(panel.Rows, values)
		panel.Records = append(panel.Records, record)
		panel.Entries = append(panel.Entries, models.IncidentEntry{
			EventType: record.EventType,
			Time:      record.Time,
			Interior:  record.Interior,
			Exterior:  record.Exterior,
		})
	}

	if len(panel.Records) == 0 {
		panel.Message = fmt.Sprintf("no incidents found for unit %s", unit)
	}
	return panel
}
