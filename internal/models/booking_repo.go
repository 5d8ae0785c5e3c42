package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookSlot performs the availability check, slot flag flip and booking insert
// in one transaction, locking the slot row so concurrent attempts on the same
// slot serialize and the loser sees ErrSlotBooked.
func (r *GormRepo) BookSlot(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot TimeSlot
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, "id = ?", booking.SlotID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("lock slot: %w", err)
		}
		if slot.IsBooked {
			return ErrSlotBooked
		}
		if slot.CourtID != booking.CourtID {
			return ErrCourtMismatch
		}

		var court Court
		if err := tx.First(&court, "id = ?", slot.CourtID).Error; err != nil {
			return fmt.Errorf("get court: %w", err)
		}

		booking.Date = slot.Date
		booking.StartTime = slot.StartTime
		booking.EndTime = slot.EndTime
		// The slot is one listed rate unit, no sub-hour proration.
		booking.TotalAmount = court.HourlyRate
		booking.Commission = CommissionFor(booking.TotalAmount)

		if err := tx.Model(&slot).Update("is_booked", true).Error; err != nil {
			return fmt.Errorf("mark slot booked: %w", err)
		}
		if err := tx.Create(booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotBooked
			}
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
}

func (r *GormRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Court").
		Preload("Court.Owner").
		Preload("Slot").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &booking, nil
}

func (r *GormRepo) ListBookingsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Booking, error) {
	var bookings []*Booking
	err := r.db.WithContext(ctx).
		Preload("Court").
		Preload("Court.Owner", ownerContact).
		Preload("Slot").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list customer bookings: %w", err)
	}
	return bookings, nil
}

func (r *GormRepo) ListBookingsByCourt(ctx context.Context, courtID uuid.UUID) ([]*Booking, error) {
	var bookings []*Booking
	err := r.db.WithContext(ctx).
		Preload("Customer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "phone")
		}).
		Preload("Slot").
		Where("court_id = ?", courtID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list court bookings: %w", err)
	}
	return bookings, nil
}

// CancelBooking marks the booking CANCELLED and frees its slot atomically.
// The terminal-status check is repeated under the row lock so two concurrent
// cancellations cannot both succeed.
func (r *GormRepo) CancelBooking(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("lock booking: %w", err)
		}
		if booking.Status.Terminal() {
			return ErrBookingTerminal
		}
		if err := tx.Model(&booking).Update("status", BookingCancelled).Error; err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		err = tx.Model(&TimeSlot{}).
			Where("id = ?", booking.SlotID).
			Update("is_booked", false).Error
		if err != nil {
			return fmt.Errorf("free slot: %w", err)
		}
		return nil
	})
}
