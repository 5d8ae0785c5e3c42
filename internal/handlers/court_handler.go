package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/courtbook/server/internal/helpers"
	"github.com/courtbook/server/internal/models"
	"github.com/courtbook/server/internal/services"
)

type createCourtRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address" binding:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	HourlyRate  int      `json:"hourly_rate" binding:"required,gt=0"`
	Indoor      bool     `json:"indoor"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

type updateCourtRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	HourlyRate  *int     `json:"hourly_rate" binding:"omitempty,gt=0"`
	Indoor      *bool    `json:"indoor"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"is_active"`
}

func CreateCourt(cs *services.CourtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		if !claims.IsCourtOwner() && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, helpers.ErrorResponse("only court owners can create courts"))
			return
		}
		ownerID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req createCourtRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		court := &models.Court{
			Name:        req.Name,
			Description: req.Description,
			Address:     req.Address,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			HourlyRate:  req.HourlyRate,
			Indoor:      req.Indoor,
			Amenities:   datatypes.NewJSONSlice(req.Amenities),
			Images:      datatypes.NewJSONSlice(req.Images),
		}
		created, err := cs.CreateCourt(c.Request.Context(), court, ownerID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "court created successfully"))
	}
}

// ListCourts is the public landing-page listing of active courts.
func ListCourts(cs *services.CourtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		courts, err := cs.ListCourts(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(courts, ""))
	}
}

func GetCourt(cs *services.CourtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		courtID, ok := pathID(c, "id")
		if !ok {
			return
		}
		court, err := cs.GetCourt(c.Request.Context(), courtID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(court, ""))
	}
}

func UpdateCourt(cs *services.CourtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		courtID, ok := pathID(c, "id")
		if !ok {
			return
		}
		requesterID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req updateCourtRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Address != nil {
			updates["address"] = *req.Address
		}
		if req.HourlyRate != nil {
			updates["hourly_rate"] = *req.HourlyRate
		}
		if req.Indoor != nil {
			updates["indoor"] = *req.Indoor
		}
		if req.Amenities != nil {
			updates["amenities"] = datatypes.NewJSONSlice(req.Amenities)
		}
		if req.Images != nil {
			updates["images"] = datatypes.NewJSONSlice(req.Images)
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}

		court, err := cs.UpdateCourt(c.Request.Context(), courtID, requesterID, updates)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(court, "court updated successfully"))
	}
}

func ListMyCourts(cs *services.CourtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentUserID(c)
		if !ok {
			return
		}
		courts, err := cs.ListOwnerCourts(c.Request.Context(), ownerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(courts, ""))
	}
}

// ListCourtBookings returns a court's bookings, owner only.
func ListCourtBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		courtID, ok := pathID(c, "id")
		if !ok {
			return
		}
		requesterID, ok := currentUserID(c)
		if !ok {
			return
		}
		bookings, err := bs.ListCourtBookings(c.Request.Context(), courtID, requesterID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(bookings, ""))
	}
}
