package helpers

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/courtbook/server/internal/models"
)

type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// SubjectID returns the token's user identifier as a UUID.
func (c *Claims) SubjectID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

func (c *Claims) IsAdmin() bool {
	return c.Role == string(models.RoleAdmin)
}

func (c *Claims) IsCourtOwner() bool {
	return c.Role == string(models.RoleCourtOwner)
}
