package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/courtbook/server/internal/models"
)

const (
	DefaultStartHour = 8
	DefaultEndHour   = 22
)

type SlotService struct {
	courts models.CourtsRepo
	slots  models.SlotsRepo
}

func NewSlotService(courts models.CourtsRepo, slots models.SlotsRepo) *SlotService {
	return &SlotService{courts: courts, slots: slots}
}

// hourlySlots builds one slot per hour boundary in [startHour, endHour).
func hourlySlots(courtID uuid.UUID, date time.Time, startHour, endHour int) []*models.TimeSlot {
	var slots []*models.TimeSlot
	for hour := startHour; hour < endHour; hour++ {
		slots = append(slots, &models.TimeSlot{
			ID:        uuid.New(),
			CourtID:   courtID,
			Date:      date,
			StartTime: models.HourString(hour),
			EndTime:   models.HourString(hour + 1),
		})
	}
	return slots
}

// GenerateSlots creates hourly slots for a court/date and returns how many
// were newly created. Existing (date, startTime) combinations are skipped.
func (ss *SlotService) GenerateSlots(ctx context.Context, courtID, requesterID uuid.UUID, date time.Time, startHour, endHour int) (int, error) {
	if _, err := requireOwnership(ctx, ss.courts, courtID, requesterID); err != nil {
		return 0, err
	}
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return 0, fmt.Errorf("%w: hours %d-%d", models.ErrInvalidTimeRange, startHour, endHour)
	}
	return ss.slots.CreateSlots(ctx, hourlySlots(courtID, date, startHour, endHour))
}

// CreateCustomSlot adds a single slot with arbitrary "HH:MM" boundaries,
// rejecting any interval that overlaps an existing slot on the same
// court/date. Exact adjacency is allowed.
func (ss *SlotService) CreateCustomSlot(ctx context.Context, courtID, requesterID uuid.UUID, date time.Time, startTime, endTime string) (*models.TimeSlot, error) {
	if _, err := requireOwnership(ctx, ss.courts, courtID, requesterID); err != nil {
		return nil, err
	}
	if startTime >= endTime {
		return nil, models.ErrInvalidTimeRange
	}

	existing, err := ss.slots.ListSlotsForDate(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	for _, slot := range existing {
		if models.IntervalsOverlap(startTime, endTime, slot.StartTime, slot.EndTime) {
			return nil, fmt.Errorf("%w: %s-%s", models.ErrSlotOverlap, slot.StartTime, slot.EndTime)
		}
	}

	slot := &models.TimeSlot{
		ID:        uuid.New(),
		CourtID:   courtID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}
	if err := ss.slots.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// ListSlots returns a court's slots for the given date, or from today onward
// when no date is supplied.
func (ss *SlotService) ListSlots(ctx context.Context, courtID uuid.UUID, date *time.Time) ([]*models.TimeSlot, error) {
	return ss.slots.ListSlots(ctx, courtID, date, time.Now())
}

// DeleteSlot removes a slot owned by the requester. A slot with any booking
// record, cancelled bookings included, cannot be deleted.
func (ss *SlotService) DeleteSlot(ctx context.Context, courtID, requesterID, slotID uuid.UUID) error {
	if _, err := requireOwnership(ctx, ss.courts, courtID, requesterID); err != nil {
		return err
	}
	slot, err := ss.slots.GetSlotByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.CourtID != courtID {
		return models.ErrNotFound
	}
	return ss.slots.DeleteSlot(ctx, slotID)
}
