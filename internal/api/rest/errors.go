package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/lucid-net/poot-engine/internal/api/shared/errors"
	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
)

// errorResponse wraps the shared APIError in the response envelope
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errorResponse{apierrors.NewBadRequestError(message, details...)})
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errorResponse{apierrors.NewNotFoundError(message, details...)})
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusUnprocessableEntity, errorResponse{apierrors.NewValidationError(details)})
}

// respondConflict responds with a conflict error
func respondConflict(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusConflict, errorResponse{apierrors.NewConflictError(message, details...)})
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string) {
	logger.Error(err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, errorResponse{apierrors.NewInternalError(message)})
}

// respondDomainError maps domain sentinels onto HTTP statuses. Anything
// unmapped is a server fault.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidProof),
		errors.Is(err, domain.ErrUnknownProofType),
		errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrProofExpired),
		errors.Is(err, domain.ErrUnknownNode),
		errors.Is(err, domain.ErrInvalidResultReason),
		errors.Is(err, domain.ErrInvalidWinner):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrScheduleNotFound):
		respondNotFound(c, "Slot is not scheduled", err.Error())
	case errors.Is(err, domain.ErrResultAlreadyRecorded):
		respondConflict(c, "Slot result already recorded", err.Error())
	case errors.Is(err, domain.ErrScheduleConflict):
		respondConflict(c, "Epoch is already scheduled", err.Error())
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
