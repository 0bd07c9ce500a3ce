// Package reparto loads the fleet spreadsheets and renders dashboard views.
package reparto

import (
	"fmt"
	"strings"

	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
)

// Dataset names one of the spreadsheet exports.
type Dataset string

const (
	// DatasetDailyReport is the per-unit safety report of the previous day.
	DatasetDailyReport Dataset = "daily_report"
	// DatasetMonthlyReport is the per-unit safety report of the month.
	DatasetMonthlyReport Dataset = "monthly_report"
	// DatasetStops holds one sheet per unit, named by unit number.
	DatasetStops Dataset = "stops"
	// DatasetStopCoordinates holds every stop with its position.
	DatasetStopCoordinates Dataset = "stop_coordinates"
	// DatasetDailyEvents is the incident log of the previous day.
	DatasetDailyEvents Dataset = "daily_events"
	// DatasetMonthlyEvents is the accumulated incident log of the month.
	DatasetMonthlyEvents Dataset = "monthly_events"
)

// ReportMode selects the safety report period.
type ReportMode string

const (
	ReportDaily   ReportMode = "daily"
	ReportMonthly ReportMode = "monthly"
)

// Label returns the UI caption of the mode.
func (m ReportMode) Label() string {
	if m == ReportMonthly {
		return "Informe Mensual"
	}
	return "Informe Diario"
}

// EventMode selects the incident log period.
type EventMode string

const (
	EventsPreviousDay EventMode = "previous_day"
	EventsMonthly     EventMode = "monthly"
)

// Label returns the UI caption of the mode.
func (m EventMode) Label() string {
	if m == EventsMonthly {
		return "Acumulado Mensual"
	}
	return "Día Anterior"
}

// ParseReportMode parses a report mode; empty input means daily.
func ParseReportMode(s string) (ReportMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "daily", "diario":
		return ReportDaily, nil
	case "monthly", "mensual":
		return ReportMonthly, nil
	default:
		return "", fmt.Errorf("invalid report mode: %s (must be daily or monthly)", s)
	}
}

// ParseEventMode parses an event mode; empty input means previous day.
func ParseEventMode(s string) (EventMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "previous_day", "daily", "diario":
		return EventsPreviousDay, nil
	case "monthly", "mensual":
		return EventsMonthly, nil
	default:
		return "", fmt.Errorf("invalid event mode: %s (must be previous_day or monthly)", s)
	}
}

// AllUnitsLabel is the selector entry meaning every unit.
const AllUnitsLabel = "Todas"

// Selection is the user's current choice of unit, modes and columns.
type Selection struct {
	// Unit is the selected unit; empty means all units.
	Unit models.UnitID
	// ReportMode selects the daily or monthly safety report.
	ReportMode ReportMode
	// EventMode selects the incident period; ignored for all units.
	EventMode EventMode
	// ExtraColumns are report columns shown after the defaults.
	ExtraColumns []string
}

// AllUnits reports whether the selection covers every unit.
func (s Selection) AllUnits() bool {
	return s.Unit == ""
}

// ParseUnit converts selector input to a unit; "", "All" and "Todas" mean
// every unit.
func ParseUnit(s string) models.UnitID {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "all") || strings.EqualFold(trimmed, AllUnitsLabel) {
		return ""
	}
	return models.NormalizeUnitID(trimmed)
}

// Options configures where datasets are read from.
type Options struct {
	// DataDir is the directory holding every dataset file.
	DataDir string
	// Files maps each dataset to its file name inside DataDir.
	Files map[Dataset]string
}

// DefaultOptions returns default dataset locations.
func DefaultOptions() Options {
	return Options{
		DataDir: "data",
		Files: map[Dataset]string{
			DatasetDailyReport:     "Informe_Diario_Unidades.xlsx",
			DatasetMonthlyReport:   "Informe_Mensual_Unidades.xlsx",
			DatasetStops:           "PARADAS_UNIDADES.xlsx",
			DatasetStopCoordinates: "PARADAS_UNIDADES_COORD.xlsx",
			DatasetDailyEvents:     "eventos_diario.xlsx",
			DatasetMonthlyEvents:   "eventos_mensual.xlsx",
		},
	}
}

// FileName returns the configured file name for d, falling back to the
// default name.
func (o Options) FileName(d Dataset) string {
	if name, ok := o.Files[d]; ok && name != "" {
		return name
	}
	return DefaultOptions().Files[d]
}
