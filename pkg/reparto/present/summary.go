package present

import (
	"github.com/reparto-pfr/reparto-go/pkg/reparto/models"
	"github.com/shopspring/decimal"
)

// Summarize totals fuel and distance over records. Averages divide by the
// number of records, blank values included; blanks add nothing to totals.
func Summarize(records []models.UnitReportRecord) *models.Summary {
	totalFuel := decimal.Zero
	totalDistance := decimal.Zero
	for _, r := range records {
		if r.FuelLiters != nil {
			totalFuel = totalFuel.Add(decimal.NewFromFloat(*r.FuelLiters))
		}
		if r.DistanceKM != nil {
			totalDistance = totalDistance.Add(decimal.NewFromFloat(*r.DistanceKM))
		}
	}

	avgFuel := decimal.Zero
	avgDistance := decimal.Zero
	if n := len(records); n > 0 {
		units := decimal.NewFromInt(int64(n))
		avgFuel = totalFuel.Div(units)
		avgDistance = totalDistance.Div(units)
	}

	return &models.Summary{
		Units:              len(records),
		TotalFuelLiters:    totalFuel.InexactFloat64(),
		TotalDistanceKM:    totalDistance.InexactFloat64(),
		AvgFuelPerUnit:     avgFuel.InexactFloat64(),
		AvgDistancePerUnit: avgDistance.InexactFloat64(),
		TotalFuelLabel:     totalFuel.StringFixed(2) + " L",
		TotalDistanceLabel: totalDistance.StringFixed(2) + " km",
		AvgFuelLabel:       avgFuel.StringFixed(2) + " L/unidad",
		AvgDistanceLabel:   avgDistance.StringFixed(2) + " km/unidad",
	}
}
