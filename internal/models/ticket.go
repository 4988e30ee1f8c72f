package models

import (
	"time"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"gorm.io/gorm"
)

type Ticket struct {
	gorm.Model

	UniqueID string `gorm:"unique"`

	Priority    types.TicketPriority
	Title       string
	Description string
	Status      types.TicketStatus
	AssignedTo  string

	// OpenedAt is the creation time reported by the ticketing system, which
	// differs from the row's CreatedAt.
	OpenedAt *time.Time

	Severity        types.SeverityType
	AffectedService string
}

func NewTicketFromAPIType(t *types.Ticket) *Ticket {
	openedAt := t.CreatedAt

	return &Ticket{
		UniqueID:        t.ID,
		Priority:        t.Priority,
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status,
		AssignedTo:      t.AssignedTo,
		OpenedAt:        &openedAt,
		Severity:        t.Severity,
		AffectedService: t.AffectedService,
	}
}

func (t *Ticket) ToAPIType() *types.Ticket {
	res := &types.Ticket{
		ID:              t.UniqueID,
		Priority:        t.Priority,
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status,
		AssignedTo:      t.AssignedTo,
		Severity:        t.Severity,
		AffectedService: t.AffectedService,
	}

	if t.OpenedAt != nil {
		res.CreatedAt = t.OpenedAt.UTC()
	}

	return res
}
