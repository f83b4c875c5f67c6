// Package pgstore keeps the blobs in a single postgres key-value table. The
// persisted layout stays the same three JSON arrays; postgres only supplies
// durability shared beyond one machine.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chronoslabs/chronos/internal/domain"
)

type blobRow struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value []byte `gorm:"type:jsonb"`
}

func (blobRow) TableName() string { return "kv_blobs" }

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&blobRow{}); err != nil {
		return nil, fmt.Errorf("pgstore: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var row blobRow
	if err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("pgstore: get %s: %w", key, err)
	}
	return row.Value, nil
}

func (s *Store) Set(ctx context.Context, key string, blob []byte) error {
	row := blobRow{Key: key, Value: blob}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("pgstore: set %s: %w", key, err)
	}
	return nil
}
