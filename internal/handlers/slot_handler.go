package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtbook/server/internal/helpers"
	"github.com/courtbook/server/internal/services"
)

const dateLayout = "2006-01-02"

type generateSlotsRequest struct {
	Date      string `json:"date" binding:"required"`
	StartHour *int   `json:"start_hour" binding:"omitempty,min=0,max=23"`
	EndHour   *int   `json:"end_hour" binding:"omitempty,min=1,max=24"`
}

type customSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required,len=5"`
	EndTime   string `json:"end_time" binding:"required,len=5"`
}

type deleteSlotRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
}

func parseDate(c *gin.Context, raw string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid date, expected YYYY-MM-DD"))
		return time.Time{}, false
	}
	return date, true
}

func GenerateSlots(ss *services.SlotService) gin.HandlerFunc {
	return func(c *gin.Context) {
		courtID, ok := pathID(c, "id")
		if !ok {
			return
		}
		requesterID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req generateSlotsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}
		date, ok := parseDate(c, req.Date)
		if !ok {
			return
		}

		startHour := services.DefaultStartHour
		endHour := services.DefaultEndHour
		if req.StartHour != nil {
			startHour = *req.StartHour
		}
		if req.EndHour != nil {
			endHour = *req.EndHour
		}

		created, err := ss.GenerateSlots(c.Request.Context(), courtID, requesterID, date, startHour, endHour)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(gin.H{
			"created": created,
		}, "time slots generated"))
	}
}

// ListSlots is public: customers browse availability before logging in.
func ListSlots(ss *services.SlotService) gin.HandlerFunc {
	return func(c *gin.Context) {
		courtID, ok := pathID(c, "id")
		if !ok {
			return
		}

		var date *time.Time
		if raw := c.Query("date"); raw != "" {
			parsed, ok := parseDate(c, raw)
			if !ok {
				return
			}
			date = &parsed
		}

		slots, err := ss.ListSlots(c.Request.Context(), courtID, date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(slots, ""))
	}
}

func CreateCustomSlot(ss *services.SlotService) gin.HandlerFunc {
	return func(c *gin.Context) {
		courtID, ok := pathID(c, "id")
		if !ok {
			return
		}
		requesterID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req customSlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}
		date, ok := parseDate(c, req.Date)
		if !ok {
			return
		}

		slot, err := ss.CreateCustomSlot(c.Request.Context(), courtID, requesterID, date, req.StartTime, req.EndTime)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, helpers.SuccessResponse(slot, "custom slot created successfully"))
	}
}

func DeleteSlot(ss *services.SlotService) gin.HandlerFunc {
	return func(c *gin.Context) {
		courtID, ok := pathID(c, "id")
		if !ok {
			return
		}
		requesterID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req deleteSlotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		if err := ss.DeleteSlot(c.Request.Context(), courtID, requesterID, req.SlotID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "slot deleted successfully"))
	}
}
