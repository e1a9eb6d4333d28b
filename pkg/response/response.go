// Package response centralizes the tracker service's HTTP response shapes.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Failure categories a handler can report.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MapError converts a handler error into an HTTP status and payload.
// Only categorized errors expose their message.
func MapError(err error) (int, ErrorPayload) {
	switch {
	case err == nil:
		return http.StatusOK, ErrorPayload{Error: "ok"}
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found", Message: err.Error()}
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, ErrorPayload{Error: "bad_request", Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
