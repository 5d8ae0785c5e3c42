package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtbook/server/internal/helpers"
	"github.com/courtbook/server/internal/models"
)

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrInvalidTimeRange),
		errors.Is(err, models.ErrSlotOverlap),
		errors.Is(err, models.ErrSlotBooked),
		errors.Is(err, models.ErrSlotHasBooking),
		errors.Is(err, models.ErrCourtMismatch),
		errors.Is(err, models.ErrBookingTerminal),
		errors.Is(err, models.ErrCancelWindowClosed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), helpers.ErrorResponse(err.Error()))
}

// currentClaims pulls the authenticated claims set by the auth middleware.
func currentClaims(c *gin.Context) (*helpers.Claims, bool) {
	v, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
		return nil, false
	}
	claims, ok := v.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("invalid user claims"))
		return nil, false
	}
	return claims, true
}

// currentUserID is currentClaims plus the UUID parse of the subject.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := currentClaims(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := claims.SubjectID()
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid user ID in token"))
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a :param path segment as a UUID.
func pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid "+param+" format"))
		return uuid.Nil, false
	}
	return id, true
}
