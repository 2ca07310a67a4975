// Package session persists small named blobs in a local single-file sqlite
// database. The API keeps exactly one record per key; the service uses it to
// remember the logged-in identity across restarts.
package session

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("session record not found")

type record struct {
	Key       string `gorm:"primaryKey"`
	Payload   []byte
	UpdatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

// Open creates or opens the session database at path. Use ":memory:" for an
// ephemeral store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var rec record
	if err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec.Payload, nil
}

// Put writes the payload under key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key string, payload []byte) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&record{Key: key, Payload: payload, UpdatedAt: time.Now()}).Error
}

// Delete removes the record; deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&record{}, "key = ?", key).Error
}
