package repository

import (
	"context"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/models"
	"github.com/porter-dev/ams-assistant/internal/utils"
	"gorm.io/gorm"
)

type TicketGormRepository struct {
	db *gorm.DB
}

// NewTicketRepository returns pointer to repo along with the db
func NewTicketRepository(db *gorm.DB) *TicketGormRepository {
	return &TicketGormRepository{db}
}

func (r *TicketGormRepository) ListTickets(ctx context.Context, opts ...utils.QueryOption) ([]*types.Ticket, error) {
	var tickets []*models.Ticket

	if err := r.db.WithContext(ctx).Scopes(utils.Paginate(opts)).Find(&tickets).Error; err != nil {
		return nil, err
	}

	res := make([]*types.Ticket, 0, len(tickets))

	for _, t := range tickets {
		res = append(res, t.ToAPIType())
	}

	return res, nil
}
