package models

import "strings"

// Incident event headers.
const (
	ColEventType     = "Tipo de evento"
	ColEventOperator = "Operador"
	ColEventTime     = "Hora"
	ColEventUnit     = "Unidad"
	ColVideoInterior = "video_Interior"
	ColVideoExterior = "video_Exterior"
)

// IncidentColumns is the projection shown in the incident table.
var IncidentColumns = []string{ColEventType, ColEventOperator, ColEventTime, ColEventUnit}

// NoVideoSentinel marks a video cell that was exported without footage.
const NoVideoSentinel = "No video URL"

// VideoRef is an optional link to incident footage.
type VideoRef struct {
	// URL is the raw reference as exported.
	URL string `json:"url,omitempty"`
	// Available is false for blank cells and the NoVideoSentinel.
	Available bool `json:"available"`
}

// NewVideoRef classifies a raw video cell.
func NewVideoRef(raw string) VideoRef {
	s := strings.TrimSpace(raw)
	if s == "" || s == NoVideoSentinel {
		return VideoRef{}
	}
	return VideoRef{URL: raw, Available: true}
}

// IncidentRecord is one safety event.
type IncidentRecord struct {
	UnitID    UnitID   `json:"unit_id"`
	EventType string   `json:"event_type"`
	Time      string   `json:"time"`
	Operator  string   `json:"operator"`
	Interior  VideoRef `json:"interior"`
	Exterior  VideoRef `json:"exterior"`
}
