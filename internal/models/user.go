package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleCustomer   UserRole = "CUSTOMER"
	RoleCourtOwner UserRole = "COURT_OWNER"
	RoleAdmin      UserRole = "ADMIN"
)

// ValidRole reports whether r is one of the roles a user may register with.
// ADMIN accounts are provisioned out of band.
func ValidRole(r UserRole) bool {
	return r == RoleCustomer || r == RoleCourtOwner
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      UserRole  `gorm:"type:varchar(20);not null;default:CUSTOMER" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
