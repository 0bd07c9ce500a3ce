package present

import (
	"fmt"
	"time"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/parser"
)

// LongWait is the wait time above which a stop is highlighted.
const LongWait = 20 * time.Minute

// zeroClock is shown for unparsable wait times.
const zeroClock = "00:00:00"

// WaitTime parses and formats a wait-time cell. Unparsable values show
// as "00:00:00" and are never highlighted.
func WaitTime(v interface{}) (display string, highlight bool) {
	d, ok := parser.ParseDuration(v)
	if !ok {
		return zeroClock, false
	}
	return parser.FormatClock(d), IsLongWait(d)
}

// IsLongWait reports whether d exceeds LongWait.
func IsLongWait(d time.Duration) bool {
	return d > LongWait
}

// FormatStops renders the stop sheet named after unit. A missing sheet is
// reported through Found and Message.
func FormatStops(sheets *models.Workbook, unit models.UnitID) *models.StopTable {
	st := &models.StopTable{Unit: unit}

	table, ok := sheets.Sheet(unit.String())
	if unit == "" || !ok {
		st.Message = fmt.Sprintf("no stops found for unit %s", unit)
		return st
	}

	st.Found = true
	st.Columns = table.Columns
	st.Rows = make([]models.StopRow, 0, len(table.Rows))
	hasWait := table.HasColumn(models.ColWaitTime)

	for _, row := range table.Rows {
		sr := models.StopRow{Values: make([]string, 0, len(table.Columns))}
		if hasWait {
			sr.WaitTime, sr.Highlight = WaitTime(row[models.ColWaitTime])
		}
		for _, col := range table.Columns {
			if hasWait && col == models.ColWaitTime {
				sr.Values = append(sr.Values, sr.WaitTime)
				continue
			}
			sr.Values = append(sr.Values, row.Text(col))
		}
		st.Rows = append(st.Rows, sr)
	}
	return st
}
