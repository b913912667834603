package handler

import (
	"net/http"
	"strings"
	"time"

	"natours/config"
	"natours/internal/delivery/api/middleware"
	"natours/internal/delivery/api/response"
	"natours/internal/domain/entity"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	logoutCookieTTL = 10 * time.Second

	forgotPasswordMessage = "Token sent to email!"
)

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" form:"email"`
}

// AuthHandler issues and revokes sessions.
type AuthHandler struct {
	authUC     usecase.AuthUsecase
	passwordUC usecase.PasswordUsecase
	cookieTTL  time.Duration
	secure     bool
	now        func() time.Time
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC     usecase.AuthUsecase
	PasswordUC usecase.PasswordUsecase
	Config     *config.Config
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:     params.AuthUC,
		passwordUC: params.PasswordUC,
		cookieTTL:  params.Config.Auth.CookieExpiresIn,
		secure:     params.Config.IsProduction(),
		now:        time.Now,
	}
}

// Signup registers a user and signs them in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Signup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.issue(c, http.StatusCreated, output)
}

// Login accepts JSON from the API and form posts from the login page.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if isFormPost(c) {
		h.setTokenCookie(c, output.Token)

		return c.Redirect(http.StatusSeeOther, "/")
	}

	return h.issue(c, http.StatusOK, output)
}

// Logout overwrites the session cookie with a short lived marker.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    middleware.LoggedOutValue,
		Path:     "/",
		Expires:  h.now().Add(logoutCookieTTL),
		HttpOnly: true,
	})

	return response.Status(c, http.StatusOK)
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.passwordUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, forgotPasswordMessage)
}

// ResetPassword redeems the token from the reset mail.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var credentials entity.Credentials
	if err := c.Bind(&credentials); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.passwordUC.ResetPassword(c.Request().Context(), c.Param("token"), credentials)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.issue(c, http.StatusOK, output)
}

// UpdateMyPassword changes the password of the signed in user.
func (h *AuthHandler) UpdateMyPassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.UpdatePasswordInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.passwordUC.UpdatePassword(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.issue(c, http.StatusOK, output)
}

func (h *AuthHandler) issue(c echo.Context, statusCode int, output *usecase.AuthOutput) error {
	h.setTokenCookie(c, output.Token)

	return response.Token(c, statusCode, output.Token, output.User)
}

func (h *AuthHandler) setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  h.now().Add(h.cookieTTL),
		HttpOnly: true,
		Secure:   h.secure,
	})
}

func isFormPost(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm)
}
