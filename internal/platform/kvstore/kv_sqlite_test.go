package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"userauth_app/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&Entry{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestSQLite_Get(t *testing.T) {
	t.Run("absent key reports ErrSessionNotFound", func(t *testing.T) {
		store := NewSQLite(setupTestDB(t))

		_, err := store.Get(context.Background(), "userId")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "absent key should map to the sentinel")
	})

	t.Run("returns a stored value", func(t *testing.T) {
		store := NewSQLite(setupTestDB(t))

		err := store.Set(context.Background(), "userId", "42")
		require.NoError(t, err, "failed to set value")

		got, err := store.Get(context.Background(), "userId")
		assert.NoError(t, err, "failed to get value")
		assert.Equal(t, "42", got, "value does not match")
	})
}

func TestSQLite_Set(t *testing.T) {
	t.Run("overwrites an existing value", func(t *testing.T) {
		store := NewSQLite(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "userId", "1"))
		require.NoError(t, store.Set(ctx, "userId", "2"))

		got, err := store.Get(ctx, "userId")
		assert.NoError(t, err)
		assert.Equal(t, "2", got, "second set should win")
	})

	t.Run("keys are independent", func(t *testing.T) {
		store := NewSQLite(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "a", "1"))
		require.NoError(t, store.Set(ctx, "b", "2"))

		got, err := store.Get(ctx, "a")
		assert.NoError(t, err)
		assert.Equal(t, "1", got, "key a was clobbered by key b")
	})
}

func TestSQLite_Remove(t *testing.T) {
	t.Run("removes a stored value", func(t *testing.T) {
		store := NewSQLite(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.Set(ctx, "userId", "42"))
		require.NoError(t, store.Remove(ctx, "userId"))

		_, err := store.Get(ctx, "userId")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "value should be gone after remove")
	})

	t.Run("removing an absent key is not an error", func(t *testing.T) {
		store := NewSQLite(setupTestDB(t))

		err := store.Remove(context.Background(), "never-set")

		assert.NoError(t, err, "remove of absent key should be a no-op")
	})
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	// Two stores over the same connection model a restart within one file:
	// the value written by the first must be visible to the second.
	db := setupTestDB(t)
	ctx := context.Background()

	first := NewSQLite(db)
	require.NoError(t, first.Set(ctx, "userId", "7"))

	second := NewSQLite(db)
	got, err := second.Get(ctx, "userId")
	assert.NoError(t, err)
	assert.Equal(t, "7", got, "value did not survive the new store instance")
}
