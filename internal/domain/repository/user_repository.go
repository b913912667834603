package repository

import (
	"context"
	"time"

	"natours/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
// Every lookup skips users whose account was deactivated.
type UserRepository interface {
	CRUDRepository[entity.User]

	// FindByEmail retrieves a single active user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByResetToken retrieves the active user holding hashedToken if it has not expired at now.
	FindByResetToken(ctx context.Context, hashedToken string, now time.Time) (*entity.User, error)

	// Update writes every mutable field of user, including credentials.
	Update(ctx context.Context, user *entity.User) error
}
