// Package memory provides repositories holding seed data in process memory.
package memory

import (
	"context"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/repository"
	"github.com/porter-dev/ams-assistant/internal/seed"
	"github.com/porter-dev/ams-assistant/internal/utils"
)

// NewRepository builds a repository whose collections are copies of data.
func NewRepository(data *seed.Data) *repository.Repository {
	store := &Store{}

	for _, t := range data.Tickets {
		store.tickets = append(store.tickets, t.Copy())
	}

	for _, p := range data.PastIncidents {
		store.pastIncidents = append(store.pastIncidents, p.Copy())
	}

	for _, i := range data.Instances {
		store.instances = append(store.instances, i.Copy())
	}

	for _, a := range data.LogAlerts {
		store.logAlerts = append(store.logAlerts, a.Copy())
	}

	return &repository.Repository{
		Ticket:       store,
		PastIncident: store,
		Instance:     store,
		LogAlert:     store,
	}
}

// Store implements every repository interface. Its slices are never written
// after construction, so reads need no locking.
type Store struct {
	tickets       []*types.Ticket
	pastIncidents []*types.PastIncident
	instances     []*types.Instance
	logAlerts     []*types.LogAlert
}

func (s *Store) ListTickets(ctx context.Context, opts ...utils.QueryOption) ([]*types.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := make([]*types.Ticket, 0, len(s.tickets))

	for _, t := range utils.PaginateSlice(s.tickets, opts) {
		res = append(res, t.Copy())
	}

	return res, nil
}

func (s *Store) ListPastIncidents(ctx context.Context, opts ...utils.QueryOption) ([]*types.PastIncident, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := make([]*types.PastIncident, 0, len(s.pastIncidents))

	for _, p := range utils.PaginateSlice(s.pastIncidents, opts) {
		res = append(res, p.Copy())
	}

	return res, nil
}

func (s *Store) ListInstances(ctx context.Context, opts ...utils.QueryOption) ([]*types.Instance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := make([]*types.Instance, 0, len(s.instances))

	for _, i := range utils.PaginateSlice(s.instances, opts) {
		res = append(res, i.Copy())
	}

	return res, nil
}

func (s *Store) ListLogAlerts(ctx context.Context, filter *utils.ListLogAlertsFilter, opts ...utils.QueryOption) ([]*types.LogAlert, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := make([]*types.LogAlert, 0, len(s.logAlerts))

	for _, a := range s.logAlerts {
		if filter.Matches(a) {
			matched = append(matched, a)
		}
	}

	res := make([]*types.LogAlert, 0, len(matched))

	for _, a := range utils.PaginateSlice(matched, opts) {
		res = append(res, a.Copy())
	}

	return res, nil
}
