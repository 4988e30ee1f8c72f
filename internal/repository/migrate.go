package repository

import (
	"github.com/porter-dev/ams-assistant/internal/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, debug bool) error {
	instanceDB := db

	if debug {
		instanceDB = instanceDB.Debug()
	}

	return instanceDB.AutoMigrate(
		&models.Ticket{},
		&models.PastIncident{},
		&models.PastIncidentKeyword{},
		&models.PastIncidentAction{},
		&models.Instance{},
		&models.InstanceComponent{},
		&models.LogAlert{},
	)
}
