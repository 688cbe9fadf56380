package usecase

import (
	"context"

	"userauth_app/internal/feature/auth/domain/entity"
)

// ProfileUpdate carries a partial update of a user's mutable fields.
// Nil fields are left unchanged.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address,
	// including the password digest (needed for credential verification).
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID. The password digest
	// is excluded from the projection: ID lookups feed UI display and session
	// restoration, and the digest must not leave the store boundary there.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update applies a partial update of the mutable fields (name, email).
	// It returns ErrUserNotFound if the ID does not exist and
	// ErrEmailAlreadyExists if the new email collides with another user's.
	Update(ctx context.Context, id uint, upd ProfileUpdate) error

	// ReplacePasswordDigest overwrites the stored digest for a user.
	// Used only to upgrade legacy digests after a successful login.
	ReplacePasswordDigest(ctx context.Context, id uint, digest string) error

	// Delete removes a user. Administrative operation, not part of the main flow.
	Delete(ctx context.Context, id uint) error

	// List returns all users with password digests excluded.
	// Administrative operation, not part of the main flow.
	List(ctx context.Context) ([]*entity.User, error)
}
