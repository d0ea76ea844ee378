// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/yash5749/ONI-LIBRARY/internal/shared/role"
)

// User represents a registered user of the library.
// It contains authentication credentials and the role used by the access
// policy. The password hash never leaves the backend.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Name is the user's display name. Optional.
	Name string `gorm:"size:255" json:"name"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null" json:"-"`

	// Role controls access to admin-gated operations. Defaults to "user"
	// at registration; only promotion may change it.
	Role role.Role `gorm:"size:16;not null;default:user" json:"role"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
