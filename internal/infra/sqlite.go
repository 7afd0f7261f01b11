package infra

import (
	"fmt"

	"github.com/umalmyha/customer-templates/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SQLite(cfg config.SQLiteCfg) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s - %w", cfg.Path, err)
	}
	return db, nil
}
