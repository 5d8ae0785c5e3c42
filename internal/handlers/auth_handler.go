package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtbook/server/internal/helpers"
	"github.com/courtbook/server/internal/models"
	"github.com/courtbook/server/internal/services"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=CUSTOMER COURT_OWNER"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// authPayload is the user subset plus token returned by both auth endpoints.
type authPayload struct {
	User  userView `json:"user"`
	Token string   `json:"token"`
}

type userView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func viewOf(u *models.User) userView {
	return userView{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

func Register(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		user, token, err := us.Register(c.Request.Context(),
			req.Email, req.Password, req.Name, req.Phone, models.UserRole(req.Role))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(authPayload{
			User:  viewOf(user),
			Token: token,
		}, "registered successfully"))
	}
}

func Login(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		user, token, err := us.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(authPayload{
			User:  viewOf(user),
			Token: token,
		}, ""))
	}
}
