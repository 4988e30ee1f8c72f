package models

import (
	"time"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"gorm.io/gorm"
)

// LogAlert stores an alert raised by the central log store. InstanceName
// references Instance.UniqueID.
type LogAlert struct {
	gorm.Model

	UniqueID     string `gorm:"unique"`
	InstanceName string
	Type         types.AlertType
	Message      string
	Timestamp    *time.Time
}

func NewLogAlertFromAPIType(a *types.LogAlert) *LogAlert {
	ts := a.Timestamp

	return &LogAlert{
		UniqueID:     a.ID,
		InstanceName: a.InstanceID,
		Type:         a.Type,
		Message:      a.Message,
		Timestamp:    &ts,
	}
}

func (a *LogAlert) ToAPIType() *types.LogAlert {
	res := &types.LogAlert{
		ID:         a.UniqueID,
		InstanceID: a.InstanceName,
		Type:       a.Type,
		Message:    a.Message,
	}

	if a.Timestamp != nil {
		res.Timestamp = a.Timestamp.UTC()
	}

	return res
}
