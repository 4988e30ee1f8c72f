package repository

import (
	"context"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/utils"
	"gorm.io/gorm"
)

// Every list call returns fresh copies in seed order (id ascending unless a
// query option says otherwise). Callers may not rely on mutating results to
// change stored data.

type TicketRepository interface {
	ListTickets(ctx context.Context, opts ...utils.QueryOption) ([]*types.Ticket, error)
}

type PastIncidentRepository interface {
	ListPastIncidents(ctx context.Context, opts ...utils.QueryOption) ([]*types.PastIncident, error)
}

type InstanceRepository interface {
	ListInstances(ctx context.Context, opts ...utils.QueryOption) ([]*types.Instance, error)
}

type LogAlertRepository interface {
	ListLogAlerts(ctx context.Context, filter *utils.ListLogAlertsFilter, opts ...utils.QueryOption) ([]*types.LogAlert, error)
}

type Repository struct {
	// DB is nil when the repository is held in memory.
	DB *gorm.DB

	Ticket       TicketRepository
	PastIncident PastIncidentRepository
	Instance     InstanceRepository
	LogAlert     LogAlertRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:           db,
		Ticket:       NewTicketRepository(db),
		PastIncident: NewPastIncidentRepository(db),
		Instance:     NewInstanceRepository(db),
		LogAlert:     NewLogAlertRepository(db),
	}
}
