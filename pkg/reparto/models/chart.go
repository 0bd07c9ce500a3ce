package models

// ScatterPoint is one unit plotted by distance and fuel.
type ScatterPoint struct {
	// UnitID and Operator are shown on hover.
	UnitID   UnitID `json:"unit_id"`
	Operator string `json:"operator"`
	// DistanceKM is the X value.
	DistanceKM float64 `json:"distance_km"`
	// FuelLiters is the Y value.
	FuelLiters float64 `json:"fuel_liters"`
}

// Scatter represents the distance/fuel correlation chart.
type Scatter struct {
	// Title is the chart title.
	Title string `json:"title"`
	// XAxisTitle is the X-axis title.
	XAxisTitle string `json:"x_axis_title"`
	// YAxisTitle is the Y-axis title.
	YAxisTitle string `json:"y_axis_title"`
	// Points are the plotted units; rows missing either value are left out.
	Points []ScatterPoint `json:"points"`
}
