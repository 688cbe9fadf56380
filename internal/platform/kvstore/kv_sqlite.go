// Package kvstore provides a durable string key-value store backed by a
// single table in the embedded database. The auth feature uses it to persist
// the session pointer across process restarts.
package kvstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"userauth_app/internal/feature/auth/usecase"
)

// Entry is the GORM model for the kv_store table.
type Entry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (Entry) TableName() string {
	return "kv_store"
}

// SQLite is a SQLite-backed implementation of the SessionStore interface.
type SQLite struct {
	db *gorm.DB
}

// Compile-time check to ensure SQLite implements SessionStore.
var _ usecase.SessionStore = (*SQLite)(nil)

// NewSQLite creates a new SQLite key-value store over the given connection.
func NewSQLite(db *gorm.DB) *SQLite {
	return &SQLite{db: db}
}

// Get returns the value stored under key.
// It returns usecase.ErrSessionNotFound if the key is absent; any other
// store error propagates to the caller unchanged.
func (s *SQLite) Get(ctx context.Context, key string) (string, error) {
	var e Entry
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", usecase.ErrSessionNotFound
		}
		return "", err
	}
	return e.Value, nil
}

// Set stores value under key, overwriting any previous value.
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&Entry{Key: key, Value: value}).Error
}

// Remove deletes the value stored under key. Deleting an absent key is a no-op.
func (s *SQLite) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error
}
