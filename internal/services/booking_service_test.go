package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/courtbook/server/internal/models"
	"github.com/courtbook/server/internal/notify"
)

func newTestBookingService(store *memStore) *BookingService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mailer := notify.NewMailer("localhost", 1025, "", "", "noreply@test.local")
	dispatcher := notify.NewDispatcher(8, logger)
	return NewBookingService(store, store, mailer, dispatcher, logger)
}

func seedSlot(store *memStore, courtID uuid.UUID, date time.Time, start, end string) *models.TimeSlot {
	slot := &models.TimeSlot{
		ID: uuid.New(), CourtID: courtID, Date: date,
		StartTime: start, EndTime: end,
	}
	store.slots[slot.ID] = slot
	return slot
}

func TestCreateBookingComputesAmounts(t *testing.T) {
	store := newMemStore()
	court, _ := store.addCourt(3000)
	slot := seedSlot(store, court.ID, testDate, "09:00", "10:00")
	svc := newTestBookingService(store)

	customerID := uuid.New()
	booking, err := svc.CreateBooking(context.Background(), customerID, slot.ID, court.ID)
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	if booking.TotalAmount != 3000 {
		t.Errorf("TotalAmount = %d, want 3000", booking.TotalAmount)
	}
	if booking.Commission != 120 {
		t.Errorf("Commission = %d, want 120", booking.Commission)
	}
	if booking.Status != models.BookingConfirmed {
		t.Errorf("Status = %s, want CONFIRMED", booking.Status)
	}
	if booking.StartTime != "09:00" || booking.EndTime != "10:00" {
		t.Errorf("times = %s-%s, want 09:00-10:00", booking.StartTime, booking.EndTime)
	}
	if !store.slots[slot.ID].IsBooked {
		t.Error("slot was not marked booked")
	}
}

func TestCreateBookingRejectsBookedSlot(t *testing.T) {
	store := newMemStore()
	court, _ := store.addCourt(3000)
	slot := seedSlot(store, court.ID, testDate, "09:00", "10:00")
	svc := newTestBookingService(store)
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, uuid.New(), slot.ID, court.ID); err != nil {
		t.Fatalf("first booking returned error: %v", err)
	}
	_, err := svc.CreateBooking(ctx, uuid.New(), slot.ID, court.ID)
	if !errors.Is(err, models.ErrSlotBooked) {
		t.Errorf("expected ErrSlotBooked on second attempt, got %v", err)
	}
}

func TestCreateBookingRejectsCourtMismatch(t *testing.T) {
	store := newMemStore()
	courtA, _ := store.addCourt(3000)
	courtB, _ := store.addCourt(4000)
	slot := seedSlot(store, courtA.ID, testDate, "09:00", "10:00")
	svc := newTestBookingService(store)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), slot.ID, courtB.ID)
	if !errors.Is(err, models.ErrCourtMismatch) {
		t.Errorf("expected ErrCourtMismatch, got %v", err)
	}
}

func TestCreateBookingRejectsUnknownSlot(t *testing.T) {
	store := newMemStore()
	court, _ := store.addCourt(3000)
	svc := newTestBookingService(store)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), uuid.New(), court.ID)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCancelFreesSlotForRebooking(t *testing.T) {
	store := newMemStore()
	court, _ := store.addCourt(3000)
	// Far enough out that the cancellation window is open.
	farDate := time.Now().AddDate(0, 0, 7)
	slot := seedSlot(store, court.ID, farDate, "09:00", "10:00")
	svc := newTestBookingService(store)
	ctx := context.Background()

	customerID := uuid.New()
	booking, err := svc.CreateBooking(ctx, customerID, slot.ID, court.ID)
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	if err := svc.CancelBooking(ctx, booking.ID, customerID); err != nil {
		t.Fatalf("CancelBooking returned error: %v", err)
	}
	if store.slots[slot.ID].IsBooked {
		t.Fatal("slot still marked booked after cancellation")
	}
	if store.bookings[booking.ID].Status != models.BookingCancelled {
		t.Fatalf("booking status = %s, want CANCELLED", store.bookings[booking.ID].Status)
	}

	// The freed slot is bookable again.
	if _, err := svc.CreateBooking(ctx, uuid.New(), slot.ID, court.ID); err != nil {
		t.Errorf("rebooking freed slot returned error: %v", err)
	}
}

func TestCancelRejectsNonOwningCustomer(t *testing.T) {
	store := newMemStore()
	court, _ := store.addCourt(3000)
	slot := seedSlot(store, court.ID, time.Now().AddDate(0, 0, 7), "09:00", "10:00")
	svc := newTestBookingService(store)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, uuid.New(), slot.ID, court.ID)
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	err = svc.CancelBooking(ctx, booking.ID, uuid.New())
	if !errors.Is(err, models.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestCheckCancellable(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	customerID := uuid.New()

	base := func() *models.Booking {
		return &models.Booking{
			CustomerID: customerID,
			Date:       time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC),
			StartTime:  "10:00",
			Status:     models.BookingConfirmed,
		}
	}

	if err := checkCancellable(base(), customerID, now); err != nil {
		t.Errorf("open window: unexpected error %v", err)
	}

	b := base()
	b.Status = models.BookingCancelled
	if err := checkCancellable(b, customerID, now); !errors.Is(err, models.ErrBookingTerminal) {
		t.Errorf("terminal status: expected ErrBookingTerminal, got %v", err)
	}

	b = base()
	b.Status = models.BookingCompleted
	if err := checkCancellable(b, customerID, now); !errors.Is(err, models.ErrBookingTerminal) {
		t.Errorf("completed status: expected ErrBookingTerminal, got %v", err)
	}

	// Tomorrow 10:00 is within 24 hours of 15th 12:00.
	b = base()
	b.Date = time.Date(2026, time.September, 16, 0, 0, 0, 0, time.UTC)
	if err := checkCancellable(b, customerID, now); !errors.Is(err, models.ErrCancelWindowClosed) {
		t.Errorf("inside window: expected ErrCancelWindowClosed, got %v", err)
	}

	// Day after tomorrow 10:00 is over 24 hours away.
	b = base()
	b.Date = time.Date(2026, time.September, 17, 0, 0, 0, 0, time.UTC)
	if err := checkCancellable(b, customerID, now); err != nil {
		t.Errorf("outside window: unexpected error %v", err)
	}

	// Exactly 24 hours out is still too late.
	b = base()
	b.Date = time.Date(2026, time.September, 16, 0, 0, 0, 0, time.UTC)
	b.StartTime = "12:00"
	if err := checkCancellable(b, customerID, now); !errors.Is(err, models.ErrCancelWindowClosed) {
		t.Errorf("boundary: expected ErrCancelWindowClosed, got %v", err)
	}
}
