package models

// CellClass is the conditional styling of a report cell.
type CellClass string

const (
	ClassGood     CellClass = "good"
	ClassWarning  CellClass = "warning"
	ClassCritical CellClass = "critical"
	ClassNone     CellClass = "none"
)

// Cell is a display-ready report cell.
type Cell struct {
	Column  string      `json:"column"`
	Value   interface{} `json:"value"`
	Display string      `json:"display"`
	Class   CellClass   `json:"class"`
}

// ReportView is the unit report restricted to the shown columns.
type ReportView struct {
	// Unit is the selected unit, empty when showing all units.
	Unit UnitID `json:"unit,omitempty"`
	// Columns are the default columns followed by the chosen extras.
	Columns []string `json:"columns"`
	// AvailableColumns are the extra columns the user may add, sorted.
	AvailableColumns []string `json:"available_columns"`
	// Rows holds one cell per column.
	Rows [][]Cell `json:"rows"`
	// Records are the typed rows behind the table.
	Records []UnitReportRecord `json:"records"`
	// Summary is only set when showing all units.
	Summary *Summary `json:"summary,omitempty"`
	// Scatter is only set when showing all units.
	Scatter *Scatter `json:"scatter,omitempty"`
}

// Summary holds fleet-wide fuel and distance aggregates.
type Summary struct {
	Units              int     `json:"units"`
	TotalFuelLiters    float64 `json:"total_fuel_liters"`
	TotalDistanceKM    float64 `json:"total_distance_km"`
	AvgFuelPerUnit     float64 `json:"avg_fuel_per_unit"`
	AvgDistancePerUnit float64 `json:"avg_distance_per_unit"`
	TotalFuelLabel     string  `json:"total_fuel_label"`
	TotalDistanceLabel string  `json:"total_distance_label"`
	AvgFuelLabel       string  `json:"avg_fuel_label"`
	AvgDistanceLabel   string  `json:"avg_distance_label"`
}

// IncidentEntry pairs an event with its footage.
type IncidentEntry struct {
	EventType string   `json:"event_type"`
	Time      string   `json:"time"`
	Interior  VideoRef `json:"interior"`
	Exterior  VideoRef `json:"exterior"`
}

// IncidentPanel lists the safety events of one unit.
type IncidentPanel struct {
	Unit    UnitID           `json:"unit"`
	Mode    string           `json:"mode"`
	Columns []string         `json:"columns"`
	Rows    [][]string       `json:"rows"`
	Records []IncidentRecord `json:"records"`
	Entries []IncidentEntry  `json:"entries"`
	// Message is set when no incidents matched.
	Message string `json:"message,omitempty"`
}

// StopRow is one displayed stop.
type StopRow struct {
	Values    []string `json:"values"`
	WaitTime  string   `json:"wait_time"`
	Highlight bool     `json:"highlight"`
}

// StopTable is the stop sheet of one unit.
type StopTable struct {
	Unit    UnitID    `json:"unit"`
	Found   bool      `json:"found"`
	Columns []string  `json:"columns,omitempty"`
	Rows    []StopRow `json:"rows,omitempty"`
	Message string    `json:"message,omitempty"`
}

// LatLng is a WGS84 position.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker is one stop on the map.
type Marker struct {
	Position LatLng     `json:"position"`
	Status   StopStatus `json:"status"`
	Color    string     `json:"color"`
	// Popup is escaped HTML.
	Popup string `json:"popup"`
}

// MapView is the stop map of one unit.
type MapView struct {
	Unit    UnitID   `json:"unit"`
	Found   bool     `json:"found"`
	Center  LatLng   `json:"center"`
	Zoom    int      `json:"zoom"`
	Markers []Marker `json:"markers"`
	Message string   `json:"message,omitempty"`
}

// Dashboard is the output of one render pass.
type Dashboard struct {
	PassID       string         `json:"pass_id"`
	Unit         string         `json:"unit"`
	ReportMode   string         `json:"report_mode"`
	EventMode    string         `json:"event_mode,omitempty"`
	UnitOptions  []string       `json:"unit_options"`
	ExtraColumns []string       `json:"extra_columns,omitempty"`
	Report       *ReportView    `json:"report"`
	Incidents    *IncidentPanel `json:"incidents,omitempty"`
	Stops        *StopTable     `json:"stops,omitempty"`
	Map          *MapView       `json:"map,omitempty"`
}
