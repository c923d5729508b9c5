package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
// Upstream and database failures are logged with full detail but surface
// to the client as a generic message.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrInvalidBookingStatus),
		errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAdminRequired),
		errors.Is(err, ErrNotAGuide),
		errors.Is(err, ErrBookingForbidden):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrGuideNotFound),
		errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrPackingItemNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUpstreamAI), errors.Is(err, ErrUpstreamTranslation):
		log.Printf("Upstream service error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
