// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords, and it must never
	// be serialized to the UI layer.
	Password string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	// It is set once at insertion and never updated.
	CreatedAt time.Time
}

// WithoutPassword returns a copy of the user with the password digest cleared.
// Projections handed to the UI layer must go through this.
func (u *User) WithoutPassword() *User {
	c := *u
	c.Password = ""
	return &c
}
