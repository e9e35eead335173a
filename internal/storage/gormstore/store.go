package gormstore

import (
	"errors"
	"log"

	"kesha-shop/internal/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is the persisted row backing one named slot.
type Slot struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"not null"`
}

type store struct {
	db *gorm.DB
}

func New(db *gorm.DB) storage.Store {
	return &store{db: db}
}

func (s *store) Get(key string) ([]byte, error) {
	var slot Slot
	if err := s.db.First(&slot, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		log.Printf("storage: get %q: %v", key, err)
		return nil, err
	}
	return slot.Value, nil
}

func (s *store) Set(key string, value []byte) error {
	slot := Slot{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot).Error
	if err != nil {
		log.Printf("storage: set %q: %v", key, err)
	}
	return err
}

func (s *store) Remove(key string) error {
	err := s.db.Delete(&Slot{}, "key = ?", key).Error
	if err != nil {
		log.Printf("storage: remove %q: %v", key, err)
	}
	return err
}
