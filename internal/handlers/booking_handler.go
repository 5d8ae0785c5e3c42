package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtbook/server/internal/helpers"
	"github.com/courtbook/server/internal/services"
)

type createBookingRequest struct {
	SlotID  uuid.UUID `json:"slot_id" binding:"required"`
	CourtID uuid.UUID `json:"court_id" binding:"required"`
}

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req createBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.CreateBooking(c.Request.Context(), customerID, req.SlotID, req.CourtID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, helpers.SuccessResponse(booking, "booking confirmed"))
	}
}

func ListMyBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := currentUserID(c)
		if !ok {
			return
		}
		bookings, err := bs.ListMyBookings(c.Request.Context(), customerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(bookings, ""))
	}
}

func CancelBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID, ok := pathID(c, "id")
		if !ok {
			return
		}
		requesterID, ok := currentUserID(c)
		if !ok {
			return
		}

		if err := bs.CancelBooking(c.Request.Context(), bookingID, requesterID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "booking cancelled successfully"))
	}
}
