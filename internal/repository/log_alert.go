package repository

import (
	"context"

	"github.com/porter-dev/ams-assistant/api/server/types"
	"github.com/porter-dev/ams-assistant/internal/models"
	"github.com/porter-dev/ams-assistant/internal/utils"
	"gorm.io/gorm"
)

type LogAlertGormRepository struct {
	db *gorm.DB
}

// NewLogAlertRepository returns pointer to repo along with the db
func NewLogAlertRepository(db *gorm.DB) *LogAlertGormRepository {
	return &LogAlertGormRepository{db}
}

func (r *LogAlertGormRepository) ListLogAlerts(ctx context.Context, filter *utils.ListLogAlertsFilter, opts ...utils.QueryOption) ([]*types.LogAlert, error) {
	var alerts []*models.LogAlert

	db := r.db.WithContext(ctx).Scopes(utils.Paginate(opts))

	if filter != nil {
		if filter.InstanceID != nil {
			db = db.Where("instance_name = ?", *filter.InstanceID)
		}

		if filter.Type != nil {
			db = db.Where("type = ?", *filter.Type)
		}
	}

	if err := db.Find(&alerts).Error; err != nil {
		return nil, err
	}

	res := make([]*types.LogAlert, 0, len(alerts))

	for _, a := range alerts {
		res = append(res, a.ToAPIType())
	}

	return res, nil
}
