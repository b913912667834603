package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"natours/config"
	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/errors"
	"natours/internal/usecase"
	"natours/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	resetTokenBytes       = 32
	defaultResetTokenTTL  = 10 * time.Minute
	resetPasswordURLPath  = "/api/v1/users/resetPassword/"
	passwordChangedOffset = time.Second
)

// passwordService implements the PasswordUsecase interface.
type passwordService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokens    service.TokenService
	composer  service.MailComposer
	mailer    service.Mailer
	validator service.Validator
	baseURL   string
	resetTTL  time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// PasswordServiceParams holds dependencies for PasswordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Composer     service.MailComposer
	Mailer       service.Mailer
	Validator    service.Validator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	resetTTL := defaultResetTokenTTL
	if params.Config.Auth != nil && params.Config.Auth.ResetTokenExpiresIn > 0 {
		resetTTL = params.Config.Auth.ResetTokenExpiresIn
	}

	return &passwordService{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokens:    params.TokenService,
		composer:  params.Composer,
		mailer:    params.Mailer,
		validator: params.Validator,
		baseURL:   strings.TrimRight(params.Config.HTTP.BaseURL, "/"),
		resetTTL:  resetTTL,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ForgotPassword stores the digest of a fresh reset token and mails the plain token.
// When the mail cannot be sent the token is withdrawn again.
func (srv *passwordService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrNoUserWithEmail
	}
	if err != nil {
		return err
	}

	token, err := util.RandomHex(resetTokenBytes)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}
	expires := srv.now().Add(srv.resetTTL)
	user.PasswordResetToken = util.SHA256Hex(token)
	user.PasswordResetExpires = &expires
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := srv.sendReset(ctx, user, srv.baseURL+resetPasswordURLPath+token); err != nil {
		srv.log(ctx).Error("Failed to send password reset mail",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)

		user.ClearPasswordReset()
		if err := srv.userRepo.Update(ctx, user); err != nil {
			srv.log(ctx).Error("Failed to withdraw password reset token",
				slog.String("user_id", user.ID.String()),
				slog.Any("error", err),
			)
		}

		return domainerrors.ErrSendEmail
	}

	return nil
}

func (srv *passwordService) sendReset(ctx context.Context, user *entity.User, url string) error {
	msg, err := srv.composer.PasswordReset(service.MailRecipient{Name: user.Name, Email: user.Email}, url)
	if err != nil {
		return err
	}

	return srv.mailer.Send(ctx, msg)
}

// ResetPassword sets a new password for the holder of an unexpired reset token.
func (srv *passwordService) ResetPassword(ctx context.Context, token string, credentials entity.Credentials) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByResetToken(ctx, util.SHA256Hex(token), srv.now())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrResetTokenInvalid
	}
	if err != nil {
		return nil, err
	}

	if err := srv.validator.Validate(&credentials); err != nil {
		return nil, err
	}
	if err := srv.setPassword(user, credentials.Password); err != nil {
		return nil, err
	}
	user.ClearPasswordReset()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return issueSession(srv.tokens, user)
}

// UpdatePassword changes the password after confirming the current one.
func (srv *passwordService) UpdatePassword(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePasswordInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrUserNoLongerExists
	}
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.PasswordCurrent, user.PasswordHash) {
		return nil, domainerrors.ErrWrongCurrentPassword
	}

	if err := srv.validator.Validate(&input.Credentials); err != nil {
		return nil, err
	}
	if err := srv.setPassword(user, input.Password); err != nil {
		return nil, err
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return issueSession(srv.tokens, user)
}

// setPassword backdates passwordChangedAt by a second so a token issued right
// after the change is not treated as stale.
func (srv *passwordService) setPassword(user *entity.User, password string) error {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	changedAt := srv.now().Add(-passwordChangedOffset)
	user.PasswordHash = hash
	user.PasswordChangedAt = &changedAt

	return nil
}
