package impl

import (
	"context"
	"testing"
	"time"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/errors"
	mockRepo "natours/internal/mocks/repository"
	mockService "natours/internal/mocks/service"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockService.MockPasswordHasher
	tokens    *mockService.MockTokenService
	publisher *mockService.MockEventPublisher
	validator *mockService.MockValidator
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		tokens:    mockService.NewMockTokenService(t),
		publisher: mockService.NewMockEventPublisher(t),
		validator: mockService.NewMockValidator(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokens,
		Publisher:    fx.publisher,
		Validator:    fx.validator,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func signupInput() *usecase.SignupInput {
	return &usecase.SignupInput{
		Name:  " Ann Smith ",
		Email: "Ann@Example.com",
		Credentials: entity.Credentials{
			Password:        "pass1234",
			PasswordConfirm: "pass1234",
		},
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.validator.EXPECT().Validate(mock.AnythingOfType("*impl.signupForm")).Return(nil)
	fx.hasher.EXPECT().Hash("pass1234").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishUserSignedUp(ctx, mock.MatchedBy(func(e *service.UserSignedUpEvent) bool {
			return e.UserID == userID.String() && e.Email == "ann@example.com" && e.URL == testBaseURL+"/me"
		})).
		Return(nil)
	fx.tokens.EXPECT().GenerateToken(userID).Return("signed-token", nil)

	out, err := fx.service.Signup(ctx, signupInput())

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, "Ann Smith", out.User.Name)
	assert.Equal(t, "ann@example.com", out.User.Email)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.True(t, out.User.Active)
	assert.Nil(t, out.User.PasswordChangedAt)
}

func TestAuthService_Signup_PublishFailureStillSignsIn(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.validator.EXPECT().Validate(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishUserSignedUp(ctx, mock.Anything).Return(errors.New("broker down"))
	fx.tokens.EXPECT().GenerateToken(mock.Anything).Return("signed-token", nil)

	out, err := fx.service.Signup(ctx, signupInput())

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}

func TestAuthService_Signup_ValidationFailure(t *testing.T) {
	fx := createTestAuthService(t)
	validationErr := domainerrors.NewValidationError("Passwords are not the same!")

	fx.validator.EXPECT().Validate(mock.Anything).Return(validationErr)

	out, err := fx.service.Signup(context.Background(), signupInput())

	assert.Nil(t, out)
	assert.ErrorIs(t, err, validationErr)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	dupErr := domainerrors.NewDuplicateError("ann@example.com")

	fx.validator.EXPECT().Validate(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(dupErr)

	_, err := fx.service.Signup(ctx, signupInput())

	assert.ErrorIs(t, err, dupErr)
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", PasswordHash: "hashed", Active: true}

	tests := []struct {
		name    string
		input   *usecase.LoginInput
		setup   func(fx authServiceFixtures)
		wantErr error
	}{
		{
			name:    "missing email",
			input:   &usecase.LoginInput{Password: "pass1234"},
			wantErr: domainerrors.ErrMissingCredentials,
		},
		{
			name:    "missing password",
			input:   &usecase.LoginInput{Email: "ann@example.com"},
			wantErr: domainerrors.ErrMissingCredentials,
		},
		{
			name:  "unknown email",
			input: &usecase.LoginInput{Email: "nobody@example.com", Password: "pass1234"},
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			input: &usecase.LoginInput{Email: "ann@example.com", Password: "wrong"},
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ann@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			out, err := fx.service.Login(context.Background(), tt.input)

			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", PasswordHash: "hashed", Active: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("pass1234", "hashed").Return(true)
	fx.tokens.EXPECT().GenerateToken(user.ID).Return("signed-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ann@example.com", Password: "pass1234"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Same(t, user, out.User)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	claims := &service.Claims{UserID: userID, IssuedAt: issuedAt, ExpiresAt: issuedAt.Add(time.Hour)}

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokens.EXPECT().ValidateToken("bad").Return(nil, domainerrors.ErrTokenInvalid)

		user, err := fx.service.Authenticate(ctx, "bad")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokens.EXPECT().ValidateToken("tok").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrNotFound)

		_, err := fx.service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, domainerrors.ErrUserNoLongerExists)
	})

	t.Run("password changed after issue", func(t *testing.T) {
		fx := createTestAuthService(t)
		changed := issuedAt.Add(time.Minute)
		fx.tokens.EXPECT().ValidateToken("tok").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordChangedAt: &changed}, nil)

		_, err := fx.service.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, domainerrors.ErrPasswordChangedAfterToken)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		changed := issuedAt.Add(-time.Second)
		stored := &entity.User{ID: userID, PasswordChangedAt: &changed}
		fx.tokens.EXPECT().ValidateToken("tok").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)

		user, err := fx.service.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Same(t, stored, user)
	})
}
