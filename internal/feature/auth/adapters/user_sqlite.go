// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"userauth_app/internal/feature/auth/domain/entity"
	"userauth_app/internal/feature/auth/usecase"
)

// userProjection selects the columns of the digest-free user projection.
var userProjection = []string{"id", "name", "email", "created_at"}

// userSQLite is a SQLite implementation of the UserRepository interface.
// It uses GORM for database operations.
type userSQLite struct {
	db *gorm.DB
}

// Compile-time check to ensure userSQLite implements UserRepository.
var _ usecase.UserRepository = (*userSQLite)(nil)

// NewUserSQLite creates a new userSQLite over the given gorm.DB connection.
func NewUserSQLite(db *gorm.DB) *userSQLite {
	return &userSQLite{db: db}
}

// Create inserts a user. The creation timestamp is set by GORM at insertion.
// It returns usecase.ErrEmailAlreadyExists when the email is already taken.
func (r *userSQLite) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translateUnique(err)
	}
	return nil
}

// FindByEmail retrieves a user by email, digest included. Exact match, no
// normalization beyond what was stored at creation.
// It returns usecase.ErrUserNotFound when no such user exists.
func (r *userSQLite) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID with the password digest excluded from the
// projection. It returns usecase.ErrUserNotFound when no such user exists.
func (r *userSQLite) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Select(userProjection).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update applies a partial update of name and/or email.
// It returns usecase.ErrUserNotFound when the ID does not exist and
// usecase.ErrEmailAlreadyExists when the new email belongs to another user.
func (r *userSQLite) Update(ctx context.Context, id uint, upd usecase.ProfileUpdate) error {
	values := map[string]any{}
	if upd.Name != nil {
		values["name"] = *upd.Name
	}
	if upd.Email != nil {
		values["email"] = *upd.Email
	}
	if len(values) == 0 {
		// Nothing to change; still report a missing ID.
		return r.exists(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return translateUnique(result.Error)
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// ReplacePasswordDigest overwrites the stored digest for a user.
func (r *userSQLite) ReplacePasswordDigest(ctx context.Context, id uint, digest string) error {
	result := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Update("password", digest)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by ID.
// It returns usecase.ErrUserNotFound when the ID does not exist.
func (r *userSQLite) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// List returns all users ordered by ID, digests excluded.
func (r *userSQLite) List(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := r.db.WithContext(ctx).Select(userProjection).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// exists reports usecase.ErrUserNotFound for a missing ID, nil otherwise.
func (r *userSQLite) exists(ctx context.Context, id uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// translateUnique maps the driver's unique-constraint violation to the
// usecase sentinel. The only unique column on users is email.
func translateUnique(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return usecase.ErrEmailAlreadyExists
	}
	return err
}
