package repository

import (
	"context"
	"fmt"

	"github.com/porter-dev/ams-assistant/internal/models"
	"github.com/porter-dev/ams-assistant/internal/seed"
	"gorm.io/gorm"
)

// SeedIfEmpty inserts data into every table that has no rows yet. Tables that
// already hold data are left alone, so restarts never duplicate the seed.
func SeedIfEmpty(ctx context.Context, db *gorm.DB, data *seed.Data) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if empty, err := isEmpty(tx, &models.Ticket{}); err != nil {
			return err
		} else if empty {
			for _, t := range data.Tickets {
				if err := tx.Create(models.NewTicketFromAPIType(t)).Error; err != nil {
					return fmt.Errorf("error seeding ticket %s: %w", t.ID, err)
				}
			}
		}

		if empty, err := isEmpty(tx, &models.PastIncident{}); err != nil {
			return err
		} else if empty {
			for _, p := range data.PastIncidents {
				if err := tx.Create(models.NewPastIncidentFromAPIType(p)).Error; err != nil {
					return fmt.Errorf("error seeding past incident %s: %w", p.ID, err)
				}
			}
		}

		if empty, err := isEmpty(tx, &models.Instance{}); err != nil {
			return err
		} else if empty {
			for _, i := range data.Instances {
				if err := tx.Create(models.NewInstanceFromAPIType(i)).Error; err != nil {
					return fmt.Errorf("error seeding instance %s: %w", i.ID, err)
				}
			}
		}

		if empty, err := isEmpty(tx, &models.LogAlert{}); err != nil {
			return err
		} else if empty {
			for _, a := range data.LogAlerts {
				if err := tx.Create(models.NewLogAlertFromAPIType(a)).Error; err != nil {
					return fmt.Errorf("error seeding log alert %s: %w", a.ID, err)
				}
			}
		}

		return nil
	})
}

func isEmpty(tx *gorm.DB, model interface{}) (bool, error) {
	var count int64

	if err := tx.Model(model).Count(&count).Error; err != nil {
		return false, err
	}

	return count == 0, nil
}
