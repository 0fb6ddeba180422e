package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solotrip/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details []string    `json:"details,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
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

func respondErrorWith(c *gin.Context, code int, message string, data interface{}, details []string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
		Details: details,
	})
}

// HandleServiceError maps service errors onto the response envelope.
func HandleServiceError(c *gin.Context, log *logger.Logger, err error) {
	var validationErr *ValidationError
	var exhaustedErr *GenerationExhaustedError
	var persistErr *PersistenceError

	switch {
	case errors.As(err, &validationErr):
		respondErrorWith(c, http.StatusBadRequest, "Validation failed", nil, validationErr.Errors)
	case errors.As(err, &exhaustedErr):
		log.Error("generation exhausted",
			"trace_id", traceID(c),
			"destination", exhaustedErr.Destination,
			"days", exhaustedErr.Days,
			"attempts", exhaustedErr.Attempts)
		RespondError(c, http.StatusInternalServerError, "Failed to generate itinerary")
	case errors.As(err, &persistErr):
		log.Error("saving generated itinerary failed", "trace_id", traceID(c), "error", persistErr.Err)
		respondErrorWith(c, http.StatusInternalServerError, "Itinerary generated but could not be saved", persistErr.Payload, nil)
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrDatabaseError):
		log.Error("database error", "trace_id", traceID(c), "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Error("unknown error", "trace_id", traceID(c), "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
