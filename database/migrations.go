package database

import (
	"gorm.io/gorm"

	logger "portfolio/loggers"
	"portfolio/models"
)

func RunMigrations(db *gorm.DB) error {
	logger.Logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Certificate{},
		&models.JourneyItem{},
		&models.Message{},
	)

	if err != nil {
		logger.Logger.Errorf("Error running migrations: %v", err)
		return err
	}

	logger.Logger.Info("Migrations completed successfully")
	return nil
}
