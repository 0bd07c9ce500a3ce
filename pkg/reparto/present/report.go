package present

import (
	"sort"
	"strconv"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/parser"
)

// FormatReport restricts a unit report to the default columns plus the
// chosen extras. An empty unit keeps every row and adds the fleet summary
// and scatter chart; otherwise only rows of that unit are kept.
func FormatReport(table *models.Table, unit models.UnitID, extras []string) *models.ReportView {
	available := AvailableColumns(table)
	view := &models.ReportView{
		Unit:             unit,
		Columns:          reportColumns(available, extras),
		AvailableColumns: available,
		Rows:             [][]models.Cell{},
		Records:          []models.UnitReportRecord{},
	}

	for _, row := range table.Rows {
		record := NewUnitReportRecord(row)
		if unit != "" && record.UnitID != unit {
			continue
		}
		view.Records = append(view.Records, record)
		view.Rows = append(view.Rows, reportCells(row, record, view.Columns))
	}

	if unit == "" {
		view.Summary = Summarize(view.Records)
		view.Scatter = BuildScatter(view.Records)
	}
	return view
}

// AvailableColumns lists the non-default columns of a report, sorted.
func AvailableColumns(table *models.Table) []string {
	available := []string{}
	for _, c := range table.Columns {
		if !isDefaultColumn(c) {
			available = append(available, c)
		}
	}
	sort.Strings(available)
	return available
}

func isDefaultColumn(col string) bool {
	for _, c := range models.DefaultReportColumns {
		if c == col {
			return true
		}
	}
	return false
}

// reportColumns appends the known, distinct extras to the defaults.
func reportColumns(available, extras []string) []string {
	known := make(map[string]bool, len(available))
	for _, c := range available {
		known[c] = true
	}

	columns := append([]string(nil), models.DefaultReportColumns...)
	for _, c := range extras {
		if known[c] {
			columns = append(columns, c)
			delete(known, c)
		}
	}
	return columns
}

// NewUnitReportRecord types a report row. Non-numeric distance, fuel and
// score become nil.
func NewUnitReportRecord(row models.Row) models.UnitReportRecord {
	record := models.UnitReportRecord{
		UnitID:      models.NormalizeUnitID(row[models.ColUnitNumber]),
		Operator:    row.Text(models.ColOperator),
		Model:       row.Text(models.ColModel),
		DistanceKM:  parser.ToNullableFloat(row[models.ColDistanceKM]),
		FuelLiters:  parser.ToNullableFloat(row[models.ColFuelLiters]),
		SafetyScore: CoerceScore(row[models.ColSafetyScore]),
	}

	for col, v := range row {
		if isDefaultColumn(col) {
			continue
		}
		if record.Extra == nil {
			record.Extra = make(map[string]interface{})
		}
		record.Extra[col] = v
	}
	return record
}

func reportCells(row models.Row, record models.UnitReportRecord, columns []string) []models.Cell {
	cells := make([]models.Cell, 0, len(columns))
	for _, col := range columns {
		cell := models.Cell{Column: col, Value: row[col], Display: row.Text(col), Class: models.ClassNone}
		if col == models.ColSafetyScore {
			cell.Class = ClassifyScore(record.SafetyScore)
			cell.Value = record.SafetyScore
			cell.Display = ""
			if record.SafetyScore != nil {
				cell.Display = strconv.Itoa(*record.SafetyScore)
			}
		}
		cells = append(cells, cell)
	}
	return cells
}
