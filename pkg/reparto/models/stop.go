package models

import (
	"strings"
	"time"
)

// Stop sheet and coordinate headers.
const (
	ColWaitTime   = "tiempo_espera"
	ColCoordUnit  = "unidad"
	ColLatitude   = "LATITUD"
	ColLongitude  = "LONGITUD"
	ColClientName = "NOMBRE_CLIENTE"
	ColFinalTime  = "hora_final"
	ColStopStatus = "parada_status"
)

// StopStatus is the delivery outcome of a stop.
type StopStatus string

const (
	StatusNotDelivered StopStatus = "NOT_DELIVERED"
	StatusDelivered    StopStatus = "DELIVERED"
	StatusInvalidStop  StopStatus = "INVALID_STOP"
	StatusOther        StopStatus = "OTHER"
)

var stopStatusLabels = map[string]StopStatus{
	"NO ENTREGADO":    StatusNotDelivered,
	"ENTREGADO":       StatusDelivered,
	"PARADA INVÁLIDA": StatusInvalidStop,
}

// ParseStopStatus maps a sheet label to its StopStatus.
func ParseStopStatus(label string) StopStatus {
	if s, ok := stopStatusLabels[strings.TrimSpace(label)]; ok {
		return s
	}
	return StatusOther
}

// StopRecord is one row of the stop coordinates sheet.
type StopRecord struct {
	UnitID     UnitID        `json:"unit_id"`
	WaitTime   time.Duration `json:"wait_time"`
	WaitValid  bool          `json:"wait_valid"`
	FinalTime  string        `json:"final_time"`
	ClientName string        `json:"client_name"`
	Status     StopStatus    `json:"status"`
	// StatusLabel is the status text as written in the sheet.
	StatusLabel string  `json:"status_label"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
