package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnprocessable    ErrorCode = "unprocessable_entity"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
)

// APIError is the body of every error response
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func respondWithError(c *gin.Context, status int, code ErrorCode, message string, details ...string) {
	c.JSON(status, ErrorResponse{Error: APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}})
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, ErrCodeBadRequest, message, details...)
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, ErrCodeValidationFailed, message, details...)
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, ErrCodeNotFound, message, details...)
}

// respondInternalError logs err and responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("message", message), zap.String("path", c.Request.URL.Path))
	respondWithError(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// respondError maps domain errors to status codes; anything unrecognized is a 500
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrInvalidActivity),
		errors.Is(err, domain.ErrInvalidUOM),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidHolder),
		errors.Is(err, domain.ErrInvalidAssetKind),
		errors.Is(err, domain.ErrInvalidTrackerStatus),
		errors.Is(err, domain.ErrUnknownColumn),
		errors.Is(err, domain.ErrInvalidFilter):
		respondBadRequest(c, message, err.Error())
	case errors.Is(err, domain.ErrFactorNotFound),
		errors.Is(err, domain.ErrNoUtilityFactor),
		errors.Is(err, domain.ErrBalanceNotFound),
		errors.Is(err, domain.ErrAssetNotFound):
		respondNotFound(c, message, err.Error())
	case errors.Is(err, domain.ErrAmbiguousFactor):
		respondWithError(c, http.StatusConflict, ErrCodeConflict, message, err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidFactorForActivity):
		respondWithError(c, http.StatusUnprocessableEntity, ErrCodeUnprocessable, message, err.Error())
	default:
		respondInternalError(c, err, message)
	}
}
