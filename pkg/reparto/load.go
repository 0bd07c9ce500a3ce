package reparto

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/parser"
)

// Loader reads datasets from the data directory. It keeps no state
// between calls, so every call reads the file again.
type Loader struct {
	opts Options
}

// NewLoader creates a Loader for opts.
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// Path returns the file path of dataset d.
func (l *Loader) Path(d Dataset) string {
	return filepath.Join(l.opts.DataDir, l.opts.FileName(d))
}

// Workbook reads every sheet of dataset d.
func (l *Loader) Workbook(d Dataset) (*models.Workbook, error) {
	path := l.Path(d)

	// Validate input file exists
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewLoadError(d, path, ErrFileNotFound)
		}
		return nil, NewLoadError(d, path, err)
	}

	opts := parser.ReadOptions{
		IncludeLinks: d == DatasetDailyEvents || d == DatasetMonthlyEvents,
	}
	wb, err := parser.ReadWorkbook(path, opts)
	if err != nil {
		return nil, NewLoadError(d, path, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return wb, nil
}

// Table reads the first sheet of dataset d and checks that it carries the
// required columns.
func (l *Loader) Table(d Dataset, required ...string) (*models.Table, error) {
	wb, err := l.Workbook(d)
	if err != nil {
		return nil, err
	}

	table := wb.First()
	if table == nil {
		return nil, NewLoadError(d, l.Path(d), fmt.Errorf("%w: no worksheet found", ErrInvalidFormat))
	}
	for _, col := range required {
		if !table.HasColumn(col) {
			return nil, NewLoadError(d, l.Path(d), fmt.Errorf("%w: %q", ErrMissingColumn, col))
		}
	}
	return table, nil
}

// UnitReport reads the daily or monthly unit report.
func (l *Loader) UnitReport(mode ReportMode) (*models.Table, error) {
	d := DatasetDailyReport
	if mode == ReportMonthly {
		d = DatasetMonthlyReport
	}
	return l.Table(d, models.DefaultReportColumns...)
}

// StopSheets reads the per-unit stop workbook.
func (l *Loader) StopSheets() (*models.Workbook, error) {
	return l.Workbook(DatasetStops)
}

// StopCoordinates reads the stop coordinates table.
func (l *Loader) StopCoordinates() (*models.Table, error) {
	return l.Table(DatasetStopCoordinates, models.ColCoordUnit, models.ColLatitude, models.ColLongitude)
}

// Incidents reads the incident log for mode.
func (l *Loader) Incidents(mode EventMode) (*models.Table, error) {
	d := DatasetDailyEvents
	if mode == EventsMonthly {
		d = DatasetMonthlyEvents
	}
	return l.Table(d, models.ColEventUnit, models.ColEventType, models.ColEventTime)
}

// UnitIDs returns the distinct units of the daily report in order of
// first appearance.
func (l *Loader) UnitIDs() ([]models.UnitID, error) {
	table, err := l.Table(DatasetDailyReport, models.ColUnitNumber)
	if err != nil {
		return nil, err
	}

	var units []models.UnitID
	seen := make(map[models.UnitID]bool)
	for _, row := range table.Rows {
		id := models.NormalizeUnitID(row[models.ColUnitNumber])
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		units = append(units, id)
	}
	return units, nil
}
