// Package response renders the JSON envelope shared by every API route.
package response

import (
	"net/http"

	domainerrors "natours/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const StatusSuccess = "success"

// Envelope is the body of every API response.
type Envelope struct {
	Status  string `json:"status"`
	Token   string `json:"token,omitempty"`
	Results *int   `json:"results,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`

	// Development posture only.
	Error any    `json:"error,omitempty"`
	Stack string `json:"stack,omitempty"`
}

// Data is the keyed payload under "data".
type Data map[string]any

// Success returns {status:"success", data}.
func Success(c echo.Context, statusCode int, data Data) error {
	return c.JSON(statusCode, Envelope{Status: StatusSuccess, Data: data})
}

// Doc returns a single document under data.doc.
func Doc(c echo.Context, statusCode int, doc any) error {
	return Success(c, statusCode, Data{"doc": doc})
}

// List returns a collection under data.<key> with its length in results.
func List(c echo.Context, key string, docs any, results int) error {
	return c.JSON(http.StatusOK, Envelope{
		Status:  StatusSuccess,
		Results: &results,
		Data:    Data{key: docs},
	})
}

// Message returns {status:"success", message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{Status: StatusSuccess, Message: message})
}

// Token returns an issued session with its user.
func Token(c echo.Context, statusCode int, token string, user any) error {
	return c.JSON(statusCode, Envelope{
		Status: StatusSuccess,
		Token:  token,
		Data:   Data{"user": user},
	})
}

// Status returns an envelope carrying only the status.
func Status(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, Envelope{Status: StatusSuccess})
}

func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error renders appErr as {status, message}.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), Envelope{
		Status:  appErr.Status(),
		Message: appErr.Message(),
	})
}
