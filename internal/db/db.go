package db

import (
	"fmt"
	"log"

	"basketball-league-admin/config"
	"basketball-league-admin/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDatabase opens the local journal database and migrates its tables.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	DB, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to %s:%d/%s: %w", cfg.Host, cfg.DBPort, cfg.DBName, err)
	}
	if err := Migrate(DB); err != nil {
		return nil, err
	}
	log.Printf("journal database ready on %s:%d/%s", cfg.Host, cfg.DBPort, cfg.DBName)
	return DB, nil
}

func Migrate(DB *gorm.DB) error {
	if err := DB.AutoMigrate(&models.ActionLog{}); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	return nil
}
