package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"natours/config"
	apimiddleware "natours/internal/delivery/api/middleware"
	"natours/internal/delivery/api/router"
	"natours/internal/delivery/api/router/handler"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"
	"natours/internal/infra/metrics"
	"natours/internal/infra/ratelimit"
	mockUsecase "natours/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	server    *echo.Echo
	authUC    *mockUsecase.MockAuthUsecase
	tourUC    *mockUsecase.MockTourUsecase
	bookingUC *mockUsecase.MockBookingUsecase
}

func newTestConfig(env string) *config.Config {
	cfg := &config.Config{
		Auth:      &config.AuthConfig{CookieExpiresIn: time.Hour},
		RateLimit: &config.RateLimitConfig{Enabled: true, Max: 2, Window: time.Hour},
		Metrics:   &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.Env.Env = env
	cfg.HTTP.MaxRequestBodySize = "10KB"

	return cfg
}

func createTestAPI(t *testing.T, cfg *config.Config) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()

	fx := apiFixtures{
		authUC:    mockUsecase.NewMockAuthUsecase(t),
		tourUC:    mockUsecase.NewMockTourUsecase(t),
		bookingUC: mockUsecase.NewMockBookingUsecase(t),
	}

	server, err := newEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				AuthUC:     fx.authUC,
				PasswordUC: mockUsecase.NewMockPasswordUsecase(t),
				Config:     cfg,
			}),
			UserHandler:         handler.NewUserHandler(mockUsecase.NewMockUserUsecase(t)),
			TourHandler:         handler.NewTourHandler(fx.tourUC),
			ReviewHandler:       handler.NewReviewHandler(mockUsecase.NewMockReviewUsecase(t)),
			BookingHandler:      handler.NewBookingHandler(fx.bookingUC),
			ViewHandler:         handler.NewViewHandler(fx.tourUC, fx.bookingUC, mockUsecase.NewMockUserUsecase(t)),
			AuthMiddleware:      apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: fx.authUC, Logger: logger}),
			RateLimitMiddleware: apimiddleware.NewRateLimitMiddleware(ratelimit.NewMemoryLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window), m, logger),
			Metrics:             m,
			Config:              cfg,
		},
	})
	require.NoError(t, err)
	fx.server = server

	return fx
}

func (fx apiFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestServer_Health(t *testing.T) {
	fx := createTestAPI(t, newTestConfig(config.EnvDevelopment))

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", decodeBody(t, rec)["status"])
}

func TestServer_UnknownAPIRoute(t *testing.T) {
	paths := []string{
		"/api/v1/nowhere",
		"/api/v1/users/ann/settings",
		"/api/v1/reviews/1/replies",
		"/api/v1/bookings/1/ticket/pdf",
		"/api/v1/tours/1/reviews/2",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			fx := createTestAPI(t, newTestConfig(config.EnvProduction))

			rec := fx.do(httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, map[string]any{
				"status":  "fail",
				"message": "Can't find " + path + " on this server!",
			}, decodeBody(t, rec))
		})
	}
}

func TestServer_Guards(t *testing.T) {
	guide := &entity.User{ID: uuid.New(), Name: "Leo Gillespie", Role: entity.RoleGuide}

	t.Run("anonymous write", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig(config.EnvProduction))

		rec := fx.do(httptest.NewRequest(http.MethodPost, "/api/v1/tours", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "You are not logged in! Please log in to get access.", decodeBody(t, rec)["message"])
	})

	t.Run("role outside the set", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig(config.EnvProduction))
		fx.authUC.EXPECT().Authenticate(mock.Anything, "guide-token").Return(guide, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/tours/"+uuid.NewString(), nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer guide-token")
		rec := fx.do(req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "You do not have permission to perform this action", decodeBody(t, rec)["message"])
	})

	t.Run("expired session cookie", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig(config.EnvProduction))
		fx.authUC.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrTokenExpired)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tours/monthly-plan/2021", nil)
		req.AddCookie(&http.Cookie{Name: apimiddleware.CookieName, Value: "stale"})
		rec := fx.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Your token has expired! Please log in again.", decodeBody(t, rec)["message"])
	})
}

func TestServer_RateLimit(t *testing.T) {
	fx := createTestAPI(t, newTestConfig(config.EnvProduction))
	fx.tourUC.EXPECT().Stats(mock.Anything).Return([]*entity.TourStats{}, nil).Times(2)

	for range 2 {
		rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/v1/tours/tour-stats", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/v1/tours/tour-stats", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests from this IP, please try again in an hour!", decodeBody(t, rec)["message"])

	health := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestServer_UnknownErrors(t *testing.T) {
	t.Run("production hides the cause", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig(config.EnvProduction))
		fx.tourUC.EXPECT().Stats(mock.Anything).Return(nil, errors.New("connection reset by peer"))

		rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/v1/tours/tour-stats", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"status": "error", "message": "Something went very wrong!"}, decodeBody(t, rec))
	})

	t.Run("development echoes it", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig(config.EnvDevelopment))
		fx.tourUC.EXPECT().Stats(mock.Anything).Return(nil, errors.New("connection reset by peer"))

		rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/v1/tours/tour-stats", nil))

		body := decodeBody(t, rec)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, body["error"], "connection reset by peer")
		assert.NotEmpty(t, body["stack"])
	})
}

func TestServer_Pages(t *testing.T) {
	t.Run("unknown tour renders the error page", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig(config.EnvProduction))
		fx.tourUC.EXPECT().GetBySlug(mock.Anything, "nowhere").Return(nil, domainerrors.ErrTourNameNotFound)

		rec := fx.do(httptest.NewRequest(http.MethodGet, "/tour/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
		assert.Contains(t, rec.Body.String(), "There is no tour with that name.")
	})

	t.Run("account page needs a session", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig(config.EnvProduction))

		rec := fx.do(httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "You are not logged in!")
	})

	t.Run("checkout redirect", func(t *testing.T) {
		fx := createTestAPI(t, newTestConfig(config.EnvProduction))
		tourID, userID := uuid.New(), uuid.New()
		fx.bookingUC.EXPECT().Checkout(mock.Anything, mock.Anything).Return(&entity.Booking{ID: uuid.New()}, nil)

		target := "/my-tours?tour=" + tourID.String() + "&user=" + userID.String() + "&price=497"
		rec := fx.do(httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/my-tours", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestServer_Metrics(t *testing.T) {
	fx := createTestAPI(t, newTestConfig(config.EnvDevelopment))
	fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `natours_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
