package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"userauth_app/internal/feature/auth/domain/entity"
	"userauth_app/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// mustCreate inserts a user and fails the test on error.
func mustCreate(t *testing.T, repo *userSQLite, name, email, digest string) *entity.User {
	t.Helper()

	u := &entity.User{Name: name, Email: email, Password: digest}
	require.NoError(t, repo.Create(context.Background(), u), "failed to create test user")
	return u
}

func TestUserSQLite_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))

		user := &entity.User{
			Name:     "Ann",
			Email:    "ann@x.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email maps to ErrEmailAlreadyExists", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		mustCreate(t, repo, "Ann", "duplicate@example.com", "pass1")

		err := repo.Create(context.Background(), &entity.User{
			Name:     "Bob",
			Email:    "duplicate@example.com",
			Password: "pass2",
		})

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "duplicate email should map to the sentinel")
	})

	t.Run("no new row after a duplicate failure", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserSQLite(db)
		mustCreate(t, repo, "Ann", "one@example.com", "pass1")

		_ = repo.Create(context.Background(), &entity.User{Name: "Bob", Email: "one@example.com", Password: "pass2"})

		var count int64
		require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "a failed signup must not add a row")
	})
}

func TestUserSQLite_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		expected := mustCreate(t, repo, "Ann", "find@example.com", "hashed_password")

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, "Ann", found.Name, "name does not match")
		assert.Equal(t, "hashed_password", found.Password, "email lookup must include the digest")
	})

	t.Run("email not found error", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
		assert.Nil(t, found, "user should be nil")
	})

	t.Run("exact match, no normalization", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		mustCreate(t, repo, "Ann", "Case@Example.com", "pass")

		found, err := repo.FindByEmail(context.Background(), "Case@Example.com")
		assert.NoError(t, err, "stored spelling should match")
		assert.NotNil(t, found)
	})
}

func TestUserSQLite_FindByID(t *testing.T) {
	t.Run("ID lookup excludes the password digest", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		expected := mustCreate(t, repo, "Ann", "findbyid@example.com", "hashed_password")

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, "Ann", found.Name, "name does not match")
		assert.Equal(t, "findbyid@example.com", found.Email, "email does not match")
		assert.Empty(t, found.Password, "digest must not leave the store boundary on ID lookups")
		assert.False(t, found.CreatedAt.IsZero(), "CreatedAt should be populated")
	})

	t.Run("ID not found error", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))

		found, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
		assert.Nil(t, found, "user should be nil")
	})
}

func TestUserSQLite_Update(t *testing.T) {
	t.Run("partial update of name only", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		u := mustCreate(t, repo, "Ann", "ann@x.com", "pass")

		name := "Annie"
		err := repo.Update(context.Background(), u.ID, usecase.ProfileUpdate{Name: &name})
		assert.NoError(t, err, "failed to update user")

		found, err := repo.FindByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Annie", found.Name, "name was not updated")
		assert.Equal(t, "ann@x.com", found.Email, "email must be untouched")
	})

	t.Run("partial update of email only", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		u := mustCreate(t, repo, "Ann", "ann@x.com", "pass")

		email := "annie@x.com"
		err := repo.Update(context.Background(), u.ID, usecase.ProfileUpdate{Email: &email})
		assert.NoError(t, err, "failed to update user")

		found, err := repo.FindByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "annie@x.com", found.Email, "email was not updated")
		assert.Equal(t, "Ann", found.Name, "name must be untouched")
	})

	t.Run("update does not touch the digest", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		u := mustCreate(t, repo, "Ann", "ann@x.com", "original_digest")

		name := "Annie"
		require.NoError(t, repo.Update(context.Background(), u.ID, usecase.ProfileUpdate{Name: &name}))

		found, err := repo.FindByEmail(context.Background(), "ann@x.com")
		require.NoError(t, err)
		assert.Equal(t, "original_digest", found.Password, "digest must never change on profile update")
	})

	t.Run("missing ID returns ErrUserNotFound", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))

		name := "Nobody"
		err := repo.Update(context.Background(), 999, usecase.ProfileUpdate{Name: &name})

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("empty update still reports a missing ID", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))

		err := repo.Update(context.Background(), 999, usecase.ProfileUpdate{})

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("email collision with another user maps to ErrEmailAlreadyExists", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		mustCreate(t, repo, "Ann", "ann@x.com", "pass1")
		bob := mustCreate(t, repo, "Bob", "bob@x.com", "pass2")

		email := "ann@x.com"
		err := repo.Update(context.Background(), bob.ID, usecase.ProfileUpdate{Email: &email})

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "collision should map to the sentinel")
	})
}

func TestUserSQLite_ReplacePasswordDigest(t *testing.T) {
	t.Run("overwrites the stored digest", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		u := mustCreate(t, repo, "Ann", "ann@x.com", "old_digest")

		err := repo.ReplacePasswordDigest(context.Background(), u.ID, "new_digest")
		assert.NoError(t, err, "failed to replace digest")

		found, err := repo.FindByEmail(context.Background(), "ann@x.com")
		require.NoError(t, err)
		assert.Equal(t, "new_digest", found.Password, "digest was not replaced")
	})

	t.Run("missing ID returns ErrUserNotFound", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))

		err := repo.ReplacePasswordDigest(context.Background(), 999, "digest")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserSQLite_Delete(t *testing.T) {
	t.Run("deletes an existing user", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		u := mustCreate(t, repo, "Ann", "ann@x.com", "pass")

		require.NoError(t, repo.Delete(context.Background(), u.ID), "failed to delete user")

		_, err := repo.FindByID(context.Background(), u.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "user should be gone")
	})

	t.Run("missing ID returns ErrUserNotFound", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserSQLite_List(t *testing.T) {
	t.Run("empty store lists nothing", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))

		users, err := repo.List(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, users, "expected no users")
	})

	t.Run("lists all users in ID order without digests", func(t *testing.T) {
		repo := NewUserSQLite(setupTestDB(t))
		mustCreate(t, repo, "Ann", "ann@x.com", "pass1")
		mustCreate(t, repo, "Bob", "bob@x.com", "pass2")
		mustCreate(t, repo, "Cid", "cid@x.com", "pass3")

		users, err := repo.List(context.Background())

		assert.NoError(t, err)
		require.Len(t, users, 3, "expected three users")
		assert.Equal(t, "ann@x.com", users[0].Email, "order does not match")
		assert.Equal(t, "cid@x.com", users[2].Email, "order does not match")
		for _, u := range users {
			assert.Empty(t, u.Password, "list projection must exclude the digest")
		}
	})
}
