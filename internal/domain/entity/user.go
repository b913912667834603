// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPhoto is assigned to users that never uploaded a picture.
const DefaultPhoto = "default.jpg"

// User is an account that can sign in, book tours and write reviews.
type User struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name" validate:"required"`
	Email                string     `json:"email,omitempty" validate:"required,email"`
	Photo                string     `json:"photo"`
	Role                 Role       `json:"role,omitempty" validate:"omitempty,role"`
	PasswordHash         string     `json:"-"`
	PasswordChangedAt    *time.Time `json:"passwordChangedAt,omitempty"`
	PasswordResetToken   string     `json:"-"`
	PasswordResetExpires *time.Time `json:"-"`
	Active               bool       `json:"-"`
	CreatedAt            time.Time  `json:"createdAt"`
	Version              int        `json:"__v"`
}

// SetDefaults prepares a freshly bound user.
func (u *User) SetDefaults() {
	u.Photo = DefaultPhoto
	u.Role = RoleUser
	u.Active = true
}

// ChangedPasswordAfter reports whether the password changed after a token issued at iat.
func (u *User) ChangedPasswordAfter(iat time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}

	return u.PasswordChangedAt.Unix() > iat.Unix()
}

// ClearPasswordReset drops any pending reset token.
func (u *User) ClearPasswordReset() {
	u.PasswordResetToken = ""
	u.PasswordResetExpires = nil
}

// Credentials is the input of signup and of password changes.
type Credentials struct {
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}
