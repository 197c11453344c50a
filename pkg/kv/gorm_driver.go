package kv

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is the single-table schema backing the GORM driver.
type Entry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text;not null"`
}

func (Entry) TableName() string { return "kv_entries" }

// GormDriver persists store values as rows in kv_entries. Works on any of
// the supported database drivers (sqlite, postgres, mysql, sqlserver).
type GormDriver struct {
	db *gorm.DB
}

// NewGormDriver migrates the kv_entries table and returns the driver.
func NewGormDriver(db *gorm.DB) (*GormDriver, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("kv/gorm: migrate: %w", err)
	}
	return &GormDriver{db: db}, nil
}

func (d *GormDriver) Get(key string) (string, bool, error) {
	var e Entry
	err := d.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv/gorm: get %s: %w", key, err)
	}
	return e.Value, true, nil
}

func (d *GormDriver) Set(key, value string) error {
	e := Entry{Key: key, Value: value}
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("kv/gorm: set %s: %w", key, err)
	}
	return nil
}

func (d *GormDriver) Remove(key string) error {
	if err := d.db.Delete(&Entry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("kv/gorm: remove %s: %w", key, err)
	}
	return nil
}
