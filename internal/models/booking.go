package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Terminal reports whether the status admits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// CommissionRate is the platform's fixed cut of every booking.
const CommissionRate = 0.04

// CommissionFor returns the platform commission in tetri for a booking total,
// rounded to the nearest tetri.
func CommissionFor(total int) int {
	return int(math.Round(float64(total) * CommissionRate))
}

// Booking reserves exactly one time slot for a customer. Date and times are
// copied from the slot at creation so the record stays readable even if the
// slot row is later removed.
type Booking struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer    *User         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CourtID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"court_id"`
	Court       *Court        `gorm:"foreignKey:CourtID" json:"court,omitempty"`
	// The unique index skips cancelled rows so a freed slot can be booked again.
	SlotID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_active_slot,where:status <> 'CANCELLED'" json:"slot_id"`
	Slot        *TimeSlot     `gorm:"foreignKey:SlotID" json:"slot,omitempty"`
	Date        time.Time     `gorm:"type:date;not null" json:"date"`
	StartTime   string        `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime     string        `gorm:"type:varchar(5);not null" json:"end_time"`
	TotalAmount int           `gorm:"not null" json:"total_amount"`
	Commission  int           `gorm:"not null" json:"commission"`
	Status      BookingStatus `gorm:"type:varchar(12);not null" json:"status"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

// OwnerRevenue is the court owner's share of the booking total.
func (b *Booking) OwnerRevenue() int {
	return b.TotalAmount - b.Commission
}
