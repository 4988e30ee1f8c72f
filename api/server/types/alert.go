package types

import "time"

type AlertType string

const (
	AlertTypeCritical AlertType = "Critical"
	AlertTypeError    AlertType = "Error"
	AlertTypeWarning  AlertType = "Warning"
)

// LogAlert is an alert raised from the central log store for an instance.
type LogAlert struct {
	ID         string    `json:"id"`
	InstanceID string    `json:"instance_id"`
	Type       AlertType `json:"type"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

func (a *LogAlert) Copy() *LogAlert {
	c := *a
	return &c
}

type ListLogAlertsResponse struct {
	Alerts []*LogAlert `json:"alerts"`
}

type ListLogAlertsRequest struct {
	InstanceID string `schema:"instance_id"`
	Type       string `schema:"type" form:"omitempty,oneof=Critical Error Warning"`
}
