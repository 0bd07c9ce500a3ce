package models

import (
	"math"
	"strconv"
	"strings"
)

// Unit report headers.
const (
	ColUnitNumber  = "Número de unidad"
	ColOperator    = "Operador"
	ColModel       = "Modelo"
	ColDistanceKM  = "Distancia total km"
	ColFuelLiters  = "Combustible consumido (L)"
	ColSafetyScore = "Puntuación de seguridad"
)

// DefaultReportColumns are always shown in the unit report, in this order.
var DefaultReportColumns = []string{
	ColUnitNumber,
	ColOperator,
	ColModel,
	ColDistanceKM,
	ColFuelLiters,
	ColSafetyScore,
}

// UnitID is the canonical string form of a unit number.
// Integral numbers lose their decimal part, so 1203, 1203.0 and "1203"
// share one UnitID.
type UnitID string

// NormalizeUnitID converts a parsed cell value to its canonical UnitID.
func NormalizeUnitID(v interface{}) UnitID {
	switch val := v.(type) {
	case nil:
		return ""
	case int64:
		return UnitID(strconv.FormatInt(val, 10))
	case int:
		return UnitID(strconv.Itoa(val))
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return UnitID(strconv.FormatInt(int64(val), 10))
		}
		return UnitID(strconv.FormatFloat(val, 'f', -1, 64))
	case string:
		s := strings.TrimSpace(val)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return NormalizeUnitID(f)
		}
		return UnitID(s)
	default:
		return UnitID(CellText(val))
	}
}

// Int returns the integer form of the unit, used by coordinate lookups.
func (u UnitID) Int() (int, bool) {
	n, err := strconv.Atoi(string(u))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (u UnitID) String() string { return string(u) }

// UnitReportRecord is one row of the daily or monthly unit report.
type UnitReportRecord struct {
	// UnitID is the unit number.
	UnitID UnitID `json:"unit_id"`
	// Operator is the driver assigned to the unit.
	Operator string `json:"operator"`
	// Model is the vehicle model.
	Model string `json:"model"`
	// DistanceKM is the distance driven (nil if blank or non-numeric).
	DistanceKM *float64 `json:"distance_km"`
	// FuelLiters is the fuel consumed (nil if blank or non-numeric).
	FuelLiters *float64 `json:"fuel_liters"`
	// SafetyScore is the rounded 0-100 score (nil if blank or unparsable).
	SafetyScore *int `json:"safety_score"`
	// Extra holds every non-default column of the row.
	Extra map[string]interface{} `json:"extra,omitempty"`
}
