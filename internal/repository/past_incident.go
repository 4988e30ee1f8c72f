package repository

import (
	"context"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/models"
	"github.com/porter-dev/ams-assistant/internal/utils"
	"gorm.io/gorm"
)

type PastIncidentGormRepository struct {
	db *gorm.DB
}

// NewPastIncidentRepository returns pointer to repo along with the db
func NewPastIncidentRepository(db *gorm.DB) *PastIncidentGormRepository {
	return &PastIncidentGormRepository{db}
}

func (r *PastIncidentGormRepository) ListPastIncidents(ctx context.Context, opts ...utils.QueryOption) ([]*types.PastIncident, error) {
	var incidents []*models.PastIncident

	err := r.db.WithContext(ctx).
		Scopes(utils.Paginate(opts)).
		Preload("Keywords", byPosition).
		Preload("Actions", byPosition).
		Find(&incidents).Error

	if err != nil {
		return nil, err
	}

	res := make([]*types.PastIncident, 0, len(incidents))

	for _, p := range incidents {
		res = append(res, p.ToAPIType())
	}

	return res, nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}
