package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	*resourceService[entity.User]

	userRepo  repository.UserRepository
	validator service.Validator
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Validator service.Validator
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		resourceService: newResourceService[entity.User](params.UserRepo, nil),
		userRepo:        params.UserRepo,
		validator:       params.Validator,
		logger:          params.Logger,
	}
}

// UpdateMe changes the name and email of the signed in user. Any other field is ignored.
func (srv *userService) UpdateMe(ctx context.Context, userID uuid.UUID, input *usecase.UpdateMeInput) (*entity.User, error) {
	if input.Password != "" || input.PasswordConfirm != "" {
		return nil, domainerrors.ErrNotPasswordRoute
	}

	return srv.Update(ctx, userID, func(user *entity.User) error {
		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.Email != nil {
			user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
		}

		return srv.validator.Validate(user)
	})
}

func (srv *userService) DeleteMe(ctx context.Context, userID uuid.UUID) error {
	_, err := srv.userRepo.UpdateByID(ctx, userID, func(user *entity.User) error {
		user.Active = false

		return nil
	})
	if err != nil {
		return notFound(err, userID)
	}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("User deactivated", slog.String("user_id", userID.String()))

	return nil
}
