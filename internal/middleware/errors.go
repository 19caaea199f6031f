package middleware

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/franciscosanchezn/pizzeria-catalog/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrorHandler renders errors that handlers pushed with c.Error and did not answer themselves.
// Not-found sentinels become 404, duplicates 409, bind errors 400, anything else 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		status := StatusForError(ginErr)

		entry := log.WithFields(log.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"status": status,
		}).WithError(ginErr.Err)
		if status >= http.StatusInternalServerError {
			entry.Error("Request failed")
		} else {
			entry.Warn("Request failed")
		}

		message := http.StatusText(status)
		if status < http.StatusInternalServerError {
			message = ginErr.Error()
		}

		if wantsJSON(c) {
			c.JSON(status, models.NewAPIError(apiErrorCode(ginErr.Err, status), message))
			return
		}
		c.HTML(status, "error", ViewData(c, gin.H{
			"status":  status,
			"message": message,
		}))
	}
}

// StatusForError maps a handler error to an HTTP status
func StatusForError(err *gin.Error) int {
	switch {
	case errors.Is(err.Err, services.ErrPizzaNotFound),
		errors.Is(err.Err, services.ErrOfferNotFound),
		errors.Is(err.Err, services.ErrUserNotFound),
		errors.Is(err.Err, services.ErrClientNotFound):
		return http.StatusNotFound
	case errors.Is(err.Err, gorm.ErrDuplicatedKey),
		errors.Is(err.Err, services.ErrUserAlreadyExists):
		return http.StatusConflict
	case err.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func apiErrorCode(err error, status int) string {
	switch {
	case errors.Is(err, services.ErrPizzaNotFound):
		return models.ErrPizzaNotFound
	case errors.Is(err, services.ErrOfferNotFound):
		return models.ErrOfferNotFound
	case errors.Is(err, services.ErrClientNotFound):
		return models.ErrClientNotFound
	case status == http.StatusNotFound:
		return models.ErrNotFound
	case status == http.StatusConflict:
		return models.ErrConflict
	case status == http.StatusBadRequest:
		return models.ErrBadRequest
	default:
		return models.ErrInternalServer
	}
}
