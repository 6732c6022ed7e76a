package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aaron24x7direct/facial-detection-backend/config"
	"github.com/aaron24x7direct/facial-detection-backend/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.StudentInfo{},
		&models.Subject{},
		&models.ProfessorInfo{},
		&models.FacialDetection{},
		&models.FacialDetectionUserImage{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
