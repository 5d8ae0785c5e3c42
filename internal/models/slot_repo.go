package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *GormRepo) CreateSlots(ctx context.Context, slots []*TimeSlot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	// ON CONFLICT DO NOTHING keeps regeneration idempotent: duplicates at
	// (court, date, start_time) are skipped, not errors.
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&slots)
	if res.Error != nil {
		return 0, fmt.Errorf("create slots: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}

func (r *GormRepo) CreateSlot(ctx context.Context, slot *TimeSlot) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlotOverlap
		}
		return fmt.Errorf("create slot: %w", err)
	}
	return nil
}

func (r *GormRepo) GetSlotByID(ctx context.Context, id uuid.UUID) (*TimeSlot, error) {
	var slot TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return &slot, nil
}

func (r *GormRepo) ListSlots(ctx context.Context, courtID uuid.UUID, date *time.Time, from time.Time) ([]*TimeSlot, error) {
	q := r.db.WithContext(ctx).Where("court_id = ?", courtID)
	if date != nil {
		q = q.Where("date = ?", *date)
	} else {
		day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
		q = q.Where("date >= ?", day)
	}
	var slots []*TimeSlot
	if err := q.Order("date ASC, start_time ASC").Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

func (r *GormRepo) ListSlotsForDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*TimeSlot, error) {
	var slots []*TimeSlot
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, date).
		Order("start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("list slots for date: %w", err)
	}
	return slots, nil
}

func (r *GormRepo) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot TimeSlot
		if err := tx.First(&slot, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get slot: %w", err)
		}
		// Any booking record blocks deletion, cancelled ones included.
		var bookings int64
		if err := tx.Model(&Booking{}).Where("slot_id = ?", id).Count(&bookings).Error; err != nil {
			return fmt.Errorf("count slot bookings: %w", err)
		}
		if bookings > 0 {
			return ErrSlotHasBooking
		}
		if err := tx.Delete(&slot).Error; err != nil {
			return fmt.Errorf("delete slot: %w", err)
		}
		return nil
	})
}
