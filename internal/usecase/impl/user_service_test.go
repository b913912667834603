package impl

import (
	"context"
	"testing"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	mockRepo "natours/internal/mocks/repository"
	mockService "natours/internal/mocks/service"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service   usecase.UserUsecase
	userRepo  *mockRepo.MockUserRepository
	validator *mockService.MockValidator
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		userRepo:  mockRepo.NewMockUserRepository(t),
		validator: mockService.NewMockValidator(t),
	}
	fx.service = NewUserService(UserServiceParams{
		UserRepo:  fx.userRepo,
		Validator: fx.validator,
		Logger:    newDiscardLogger(),
	})

	return fx
}

// applyTo makes UpdateByID run the mutation against stored.
func applyTo(stored *entity.User) func(context.Context, uuid.UUID, func(*entity.User) error) (*entity.User, error) {
	return func(_ context.Context, _ uuid.UUID, mutate func(*entity.User) error) (*entity.User, error) {
		if err := mutate(stored); err != nil {
			return nil, err
		}

		return stored, nil
	}
}

func strPtr(s string) *string { return &s }

func TestUserService_UpdateMe(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects password fields", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateMe(ctx, uuid.New(), &usecase.UpdateMeInput{Name: strPtr("Ann"), PasswordConfirm: "pass1234"})

		assert.ErrorIs(t, err, domainerrors.ErrNotPasswordRoute)
	})

	t.Run("changes name and email only", func(t *testing.T) {
		fx := createTestUserService(t)
		stored := &entity.User{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", Role: entity.RoleUser, PasswordHash: "hashed", Active: true}

		fx.userRepo.EXPECT().UpdateByID(ctx, stored.ID, mock.Anything).RunAndReturn(applyTo(stored))
		fx.validator.EXPECT().Validate(stored).Return(nil)

		user, err := fx.service.UpdateMe(ctx, stored.ID, &usecase.UpdateMeInput{
			Name:  strPtr(" Ann Smith "),
			Email: strPtr("Ann.Smith@Example.com"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Ann Smith", user.Name)
		assert.Equal(t, "ann.smith@example.com", user.Email)
		assert.Equal(t, entity.RoleUser, user.Role)
		assert.Equal(t, "hashed", user.PasswordHash)
	})

	t.Run("invalid email", func(t *testing.T) {
		fx := createTestUserService(t)
		stored := &entity.User{ID: uuid.New(), Name: "Ann", Email: "ann@example.com"}
		validationErr := domainerrors.NewValidationError("Please provide a valid email")

		fx.userRepo.EXPECT().UpdateByID(ctx, stored.ID, mock.Anything).RunAndReturn(applyTo(stored))
		fx.validator.EXPECT().Validate(stored).Return(validationErr)

		_, err := fx.service.UpdateMe(ctx, stored.ID, &usecase.UpdateMeInput{Email: strPtr("not-an-email")})

		assert.ErrorIs(t, err, validationErr)
	})
}

func TestUserService_DeleteMe(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates the account", func(t *testing.T) {
		fx := createTestUserService(t)
		stored := &entity.User{ID: uuid.New(), Active: true}
		fx.userRepo.EXPECT().UpdateByID(ctx, stored.ID, mock.Anything).RunAndReturn(applyTo(stored))

		require.NoError(t, fx.service.DeleteMe(ctx, stored.ID))
		assert.False(t, stored.Active)
	})

	t.Run("already gone", func(t *testing.T) {
		fx := createTestUserService(t)
		id := uuid.New()
		fx.userRepo.EXPECT().UpdateByID(ctx, id, mock.Anything).Return(nil, repository.ErrNotFound)

		err := fx.service.DeleteMe(ctx, id)

		assertNotFound(t, err, id)
	})
}
