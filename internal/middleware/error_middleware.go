package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumni/internal/app/models/dto"
	"github.com/yigit/alumni/internal/pkg/apperrors"
	"github.com/yigit/alumni/internal/pkg/logger"
)

// messageOr returns the message of the CustomError in err's chain, or fallback
func messageOr(err error, fallback string) (string, map[string]interface{}) {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message, custom.Details
	}
	return fallback, nil
}

func withDetails(detail *dto.ErrorDetail, details map[string]interface{}) *dto.ErrorDetail {
	if len(details) > 0 {
		detail.WithDetails(details)
	}
	return detail
}

func abortWith(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: timeNow(),
	})
}

// HandleAPIError maps an application error onto its HTTP response. It is the
// only place error kinds become status codes.
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		abortWith(c, http.StatusBadRequest, dto.NewValidationErrorDetail(verr))

	case errors.Is(err, apperrors.ErrInvalidIdentifier):
		msg, details := messageOr(err, "Invalid ID")
		abortWith(c, http.StatusBadRequest,
			withDetails(dto.NewErrorDetail(dto.ErrorCodeInvalidIdentifier, msg).WithField("id"), details))

	case errors.Is(err, apperrors.ErrInvalidMentorType):
		msg, details := messageOr(err, "Invalid mentor type")
		abortWith(c, http.StatusBadRequest,
			withDetails(dto.NewErrorDetail(dto.ErrorCodeInvalidMentorType, msg).WithField("mentorType"), details))

	case errors.Is(err, apperrors.ErrValidationFailed):
		msg, _ := messageOr(err, "Validation failed")
		abortWith(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, msg))

	case errors.Is(err, apperrors.ErrBadRequest):
		msg, _ := messageOr(err, "Bad request")
		abortWith(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, msg))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		msg, _ := messageOr(err, "Resource not found")
		abortWith(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, msg))

	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		msg, _ := messageOr(err, "Resource already exists")
		abortWith(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, msg))

	case errors.Is(err, apperrors.ErrConflict):
		msg, _ := messageOr(err, "Conflict")
		abortWith(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, msg))

	default:
		logger.Error().Err(err).
			Str("requestId", RequestIDFrom(c)).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		abortWith(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical))
	}
}

// Recovery turns panics into the standard 500 envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("requestId", RequestIDFrom(c)).
			Msg("Recovered from panic")
		abortWith(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical))
	})
}

// NoRoute answers unknown paths with the standard 404 envelope
func NoRoute(c *gin.Context) {
	abortWith(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found"))
}
