package usecase

import (
	"context"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	entity.Credentials
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePasswordInput changes the password of a signed in user.
type UpdatePasswordInput struct {
	PasswordCurrent string `json:"passwordCurrent"`
	entity.Credentials
}

// --- Output DTOs ---

// AuthOutput is a freshly issued session.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for sign up, sign in and token resolution.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Authenticate resolves a session token into the active user it belongs to.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// PasswordUsecase covers the password reset lifecycle and password changes.
type PasswordUsecase interface {
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, credentials entity.Credentials) (*AuthOutput, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, input *UpdatePasswordInput) (*AuthOutput, error)
}
