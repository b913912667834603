package usecase

import (
	"context"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateMeInput is the self service profile update. Password fields are only
// bound so that their presence can be rejected.
type UpdateMeInput struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Password        string  `json:"password"`
	PasswordConfirm string  `json:"passwordConfirm"`
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	ResourceUsecase[entity.User]

	UpdateMe(ctx context.Context, userID uuid.UUID, input *UpdateMeInput) (*entity.User, error)

	// DeleteMe deactivates the account. The user stays in storage.
	DeleteMe(ctx context.Context, userID uuid.UUID) error
}
