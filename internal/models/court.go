package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Court is a bookable tennis court listed by a COURT_OWNER.
// Monetary amounts are stored in tetri (integer minor units).
type Court struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                      `gorm:"not null" json:"name" validate:"required"`
	Description string                      `json:"description,omitempty"`
	Address     string                      `gorm:"not null" json:"address" validate:"required"`
	Latitude    *float64                    `json:"latitude,omitempty"`
	Longitude   *float64                    `json:"longitude,omitempty"`
	HourlyRate  int                         `gorm:"not null" json:"hourly_rate" validate:"required,gt=0"`
	Indoor      bool                        `gorm:"not null;default:false" json:"indoor"`
	Amenities   datatypes.JSONSlice[string] `json:"amenities,omitempty"`
	Images      datatypes.JSONSlice[string] `json:"images,omitempty"`
	IsActive    bool                        `gorm:"not null;default:true" json:"is_active"`
	OwnerID     uuid.UUID                   `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner       *User                       `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`
	Slots       []TimeSlot                  `gorm:"foreignKey:CourtID" json:"slots,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (Court) TableName() string { return "courts" }
