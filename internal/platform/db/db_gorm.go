// Package db opens and migrates the embedded SQLite database.
package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"userauth_app/internal/feature/auth/domain/entity"
	"userauth_app/internal/platform/kvstore"
)

// Open opens (creating if necessary) the SQLite database at path and
// idempotently ensures the schema exists. Safe to call on every startup;
// existing data is preserved.
func Open(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	if err := gdb.AutoMigrate(&entity.User{}, &kvstore.Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return gdb, nil
}
