package repository

import (
	"context"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/models"
	"github.com/porter-dev/ams-assistant/internal/utils"
	"gorm.io/gorm"
)

type InstanceGormRepository struct {
	db *gorm.DB
}

// NewInstanceRepository returns pointer to repo along with the db
func NewInstanceRepository(db *gorm.DB) *InstanceGormRepository {
	return &InstanceGormRepository{db}
}

func (r *InstanceGormRepository) ListInstances(ctx context.Context, opts ...utils.QueryOption) ([]*types.Instance, error) {
	var instances []*models.Instance

	err := r.db.WithContext(ctx).
		Scopes(utils.Paginate(opts)).
		Preload("Components", byPosition).
		Find(&instances).Error

	if err != nil {
		return nil, err
	}

	res := make([]*types.Instance, 0, len(instances))

	for _, i := range instances {
		res = append(res, i.ToAPIType())
	}

	return res, nil
}
