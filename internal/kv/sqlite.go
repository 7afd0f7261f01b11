package kv

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (sqliteEntry) TableName() string {
	return "kv_entries"
}

type sqliteBackend struct {
	db *gorm.DB
}

// NewSQLite builds backend on top of local sqlite file, kv_entries table is created when missing
func NewSQLite(db *gorm.DB) (Backend, error) {
	if err := db.AutoMigrate(&sqliteEntry{}); err != nil {
		return nil, err
	}
	return &sqliteBackend{db: db}, nil
}

func (b *sqliteBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var e sqliteEntry
	if err := b.db.WithContext(ctx).Where(&sqliteEntry{Key: key}).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e.Value, nil
}

func (b *sqliteBackend) Set(ctx context.Context, key string, value []byte) error {
	e := sqliteEntry{Key: key, Value: value}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&e).Error
}
