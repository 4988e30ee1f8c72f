package utils

import "github.com/porter-dev/ams-assistant/api/server/types"

type ListLogAlertsFilter struct {
	InstanceID *string
	Type       *types.AlertType
}

// Matches reports whether alert passes every set field of the filter.
func (f *ListLogAlertsFilter) Matches(alert *types.LogAlert) bool {
	if f == nil {
		return true
	}

	if f.InstanceID != nil && alert.InstanceID != *f.InstanceID {
		return false
	}

	if f.Type != nil && alert.Type != *f.Type {
		return false
	}

	return true
}
