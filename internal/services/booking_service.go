package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/courtbook/server/internal/models"
	"github.com/courtbook/server/internal/notify"
)

// CancelWindow is how long before a slot's start a booking must be cancelled.
const CancelWindow = 24 * time.Hour

type BookingService struct {
	bookings   models.BookingsRepo
	courts     models.CourtsRepo
	mailer     *notify.Mailer
	dispatcher *notify.Dispatcher
	logger     *slog.Logger
}

func NewBookingService(
	bookings models.BookingsRepo,
	courts models.CourtsRepo,
	mailer *notify.Mailer,
	dispatcher *notify.Dispatcher,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		bookings:   bookings,
		courts:     courts,
		mailer:     mailer,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateBooking reserves a slot for the customer. The availability check,
// slot flag flip and booking insert run in one transaction; email
// notifications are dispatched in the background and never block or fail the
// response.
func (bs *BookingService) CreateBooking(ctx context.Context, customerID, slotID, courtID uuid.UUID) (*models.Booking, error) {
	booking := &models.Booking{
		ID:         uuid.New(),
		CustomerID: customerID,
		CourtID:    courtID,
		SlotID:     slotID,
		Status:     models.BookingConfirmed,
	}
	if err := bs.bookings.BookSlot(ctx, booking); err != nil {
		return nil, err
	}

	// Reload with customer and owner attached for the notification emails.
	full, err := bs.bookings.GetBookingByID(ctx, booking.ID)
	if err != nil {
		bs.logger.Error("booking created but reload failed, skipping notifications",
			"booking_id", booking.ID, "error", err)
		return booking, nil
	}

	bs.dispatcher.Enqueue(func(context.Context) error {
		return bs.mailer.SendBookingConfirmation(full)
	})
	bs.dispatcher.Enqueue(func(context.Context) error {
		return bs.mailer.SendOwnerNotification(full)
	})

	return full, nil
}

func (bs *BookingService) ListMyBookings(ctx context.Context, customerID uuid.UUID) ([]*models.Booking, error) {
	return bs.bookings.ListBookingsByCustomer(ctx, customerID)
}

// ListCourtBookings returns a court's bookings for its owner.
func (bs *BookingService) ListCourtBookings(ctx context.Context, courtID, requesterID uuid.UUID) ([]*models.Booking, error) {
	if _, err := requireOwnership(ctx, bs.courts, courtID, requesterID); err != nil {
		return nil, err
	}
	return bs.bookings.ListBookingsByCourt(ctx, courtID)
}

// checkCancellable enforces the cancellation rules: only the booking's
// customer, only before the booking turns terminal, and only while more than
// CancelWindow remains until the slot's start.
func checkCancellable(b *models.Booking, requesterID uuid.UUID, now time.Time) error {
	if b.CustomerID != requesterID {
		return models.ErrForbidden
	}
	if b.Status.Terminal() {
		return models.ErrBookingTerminal
	}
	starts, err := models.CombineDateTime(b.Date, b.StartTime, now.Location())
	if err != nil {
		return err
	}
	if starts.Sub(now) <= CancelWindow {
		return models.ErrCancelWindowClosed
	}
	return nil
}

func (bs *BookingService) CancelBooking(ctx context.Context, bookingID, requesterID uuid.UUID) error {
	booking, err := bs.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := checkCancellable(booking, requesterID, time.Now()); err != nil {
		return err
	}
	return bs.bookings.CancelBooking(ctx, bookingID)
}
