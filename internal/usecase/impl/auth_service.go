package impl

import (
	"context"
	"log/slog"
	"strings"

	"natours/config"
	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/errors"
	"natours/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokens    service.TokenService
	publisher service.EventPublisher
	validator service.Validator
	baseURL   string
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Validator    service.Validator
	Config       *config.Config
	Logger       *slog.Logger
}

// signupForm validates the profile and the credentials in one pass.
type signupForm struct {
	*entity.User
	entity.Credentials
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokens:    params.TokenService,
		publisher: params.Publisher,
		validator: params.Validator,
		baseURL:   strings.TrimRight(params.Config.HTTP.BaseURL, "/"),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a user with the default role and signs it in.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	user := new(entity.User)
	user.SetDefaults()
	user.Name = strings.TrimSpace(input.Name)
	user.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := srv.validator.Validate(&signupForm{User: user, Credentials: input.Credentials}); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User signed up", slog.String("user_id", user.ID.String()))

	srv.announceSignup(ctx, user)

	return issueSession(srv.tokens, user)
}

// announceSignup queues the welcome mail. A queue outage never fails the signup.
func (srv *authService) announceSignup(ctx context.Context, user *entity.User) {
	event := &service.UserSignedUpEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		URL:       srv.baseURL + "/me",
		CreatedAt: user.CreatedAt,
	}
	if err := srv.publisher.PublishUserSignedUp(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish signup event",
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)
	}
}

// Login checks the credentials of an active user.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return issueSession(srv.tokens, user)
}

// Authenticate verifies the token, then the user behind it, then that the
// password has not changed since the token was issued.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrUserNoLongerExists
	}
	if err != nil {
		return nil, err
	}

	if user.ChangedPasswordAfter(claims.IssuedAt) {
		return nil, domainerrors.ErrPasswordChangedAfterToken
	}

	return user, nil
}

func issueSession(tokens service.TokenService, user *entity.User) (*usecase.AuthOutput, error) {
	token, err := tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
