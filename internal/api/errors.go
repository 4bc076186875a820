package api

import (
	"bandisch/gym-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusForError maps service error kinds to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateKey), errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondWithServiceError writes the error response for a failed service call.
// Internal errors are logged and their details hidden from the client.
func respondWithServiceError(c *gin.Context, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		requestLogger(c).Errorf("%s %s: %s", c.Request.Method, c.Request.URL.Path, err)
	}
	if status == http.StatusInternalServerError {
		abortWithError(c, status, "Internal Server Error")
		return
	}
	abortWithError(c, status, err.Error())
}
