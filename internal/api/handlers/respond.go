package handlers

import (
	"errors"
	"net/http"

	apperrors "shift-planning-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps the error taxonomy onto HTTP status codes: missing
// entities are 404, conflicts with existing data are 409, rejected input is
// 400 and everything else is 500.
func respondError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsOverlap(err), apperrors.IsDuplicateKey(err), apperrors.IsUnassignableReference(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsMalformedRange(err), apperrors.IsValidation(err), errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidGrade),
		errors.Is(err, apperrors.ErrInvalidWeekday),
		errors.Is(err, apperrors.ErrInvalidScheduleKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
