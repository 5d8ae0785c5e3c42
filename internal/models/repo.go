package models

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var Validate = validator.New()

type UsersRepo interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type CourtsRepo interface {
	CreateCourt(ctx context.Context, court *Court) error
	// GetCourt returns the bare court row, used for ownership checks.
	GetCourt(ctx context.Context, id uuid.UUID) (*Court, error)
	// GetCourtDetail returns the court with owner contact and ordered slots.
	GetCourtDetail(ctx context.Context, id uuid.UUID) (*Court, error)
	ListActiveCourts(ctx context.Context) ([]*Court, error)
	ListCourtsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Court, error)
	UpdateCourt(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Court, error)
}

type SlotsRepo interface {
	// CreateSlots inserts the given slots, silently skipping rows that hit
	// the (court, date, start_time) unique constraint. Returns the number of
	// slots actually created.
	CreateSlots(ctx context.Context, slots []*TimeSlot) (int, error)
	CreateSlot(ctx context.Context, slot *TimeSlot) error
	GetSlotByID(ctx context.Context, id uuid.UUID) (*TimeSlot, error)
	// ListSlots returns slots for a court, filtered to the given date when
	// non-nil, otherwise from the start of day `from` onward.
	ListSlots(ctx context.Context, courtID uuid.UUID, date *time.Time, from time.Time) ([]*TimeSlot, error)
	ListSlotsForDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*TimeSlot, error)
	// DeleteSlot removes an unbooked slot; ErrSlotHasBooking when any booking
	// record references it, regardless of booking status.
	DeleteSlot(ctx context.Context, id uuid.UUID) error
}

type BookingsRepo interface {
	// BookSlot atomically marks the slot booked and inserts the booking,
	// copying date, times and amounts from the slot and its court.
	BookSlot(ctx context.Context, booking *Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Booking, error)
	ListBookingsByCourt(ctx context.Context, courtID uuid.UUID) ([]*Booking, error)
	// CancelBooking atomically marks the booking CANCELLED and frees its slot.
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

// GormRepo implements the repository interfaces against a Postgres database
// handle constructed by the process entry point.
type GormRepo struct {
	db *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}
