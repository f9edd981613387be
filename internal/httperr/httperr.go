package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Status  string `json:"status"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Status:  "failed",
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// Respond maps a use case error to the HTTP response. Store failures are
// logged and answered with a generic message.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"err", err,
		)
		Internal(c, "internal_error", "Something went wrong. Please try again later.")
		return
	}

	msg := messages[be.Code]
	if msg == "" {
		msg = be.Code
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, msg)
	case KindForbidden:
		Forbidden(c, be.Code, msg)
	case KindConflict:
		Conflict(c, be.Code, msg)
	case KindUnauthorized:
		Unauthorized(c, be.Code, msg)
	default:
		BadRequest(c, be.Code, msg)
	}
}

var messages = map[string]string{
	"appointment_not_found": "Appointment not found.",
	"pet_not_found":         "Pet not found.",
	"user_not_found":        "User not found.",
	"not_owner":             "This appointment does not belong to you.",
	"slot_already_booked":   "Appointment time already booked.",
	"invalid_state":         "Appointment can no longer be changed.",
	"invalid_date":          "Date must use the YYYY-MM-DD format.",
	"invalid_time":          "Time must use the HH:MM format.",
	"invalid_service_type":  "Unknown service type.",
	"invalid_status":        "Unknown appointment status.",
	"email_already_exists":  "Email is already registered.",
	"invalid_credentials":   "Invalid email or password.",
	"forbidden":             "You are not allowed to do this.",
	"invalid_pet_name":      "Pet name is required.",
}
