package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/courtbook/server/internal/models"
)

// memStore is an in-memory implementation of the repository interfaces used
// by the service tests. It mirrors the relational constraints that matter to
// the business rules: the (court, date, startTime) uniqueness of slots and
// the booked flag on slots.
type memStore struct {
	courts   map[uuid.UUID]*models.Court
	slots    map[uuid.UUID]*models.TimeSlot
	bookings map[uuid.UUID]*models.Booking
	users    map[uuid.UUID]*models.User
}

func newMemStore() *memStore {
	return &memStore{
		courts:   make(map[uuid.UUID]*models.Court),
		slots:    make(map[uuid.UUID]*models.TimeSlot),
		bookings: make(map[uuid.UUID]*models.Booking),
		users:    make(map[uuid.UUID]*models.User),
	}
}

func dateKey(d time.Time) string { return d.Format("2006-01-02") }

// --- UsersRepo ---

func (m *memStore) CreateUser(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.ErrDuplicateEmail
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memStore) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return u, nil
}

// --- CourtsRepo ---

func (m *memStore) CreateCourt(_ context.Context, court *models.Court) error {
	m.courts[court.ID] = court
	return nil
}

func (m *memStore) GetCourt(_ context.Context, id uuid.UUID) (*models.Court, error) {
	c, ok := m.courts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return c, nil
}

func (m *memStore) GetCourtDetail(ctx context.Context, id uuid.UUID) (*models.Court, error) {
	return m.GetCourt(ctx, id)
}

func (m *memStore) ListActiveCourts(_ context.Context) ([]*models.Court, error) {
	var out []*models.Court
	for _, c := range m.courts {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) ListCourtsByOwner(_ context.Context, ownerID uuid.UUID) ([]*models.Court, error) {
	var out []*models.Court
	for _, c := range m.courts {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) UpdateCourt(_ context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Court, error) {
	c, ok := m.courts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if v, ok := updates["is_active"]; ok {
		c.IsActive = v.(bool)
	}
	if v, ok := updates["hourly_rate"]; ok {
		c.HourlyRate = v.(int)
	}
	return c, nil
}

// --- SlotsRepo ---

func (m *memStore) slotExists(courtID uuid.UUID, date time.Time, startTime string) bool {
	for _, s := range m.slots {
		if s.CourtID == courtID && dateKey(s.Date) == dateKey(date) && s.StartTime == startTime {
			return true
		}
	}
	return false
}

func (m *memStore) CreateSlots(_ context.Context, slots []*models.TimeSlot) (int, error) {
	created := 0
	for _, s := range slots {
		if m.slotExists(s.CourtID, s.Date, s.StartTime) {
			continue
		}
		m.slots[s.ID] = s
		created++
	}
	return created, nil
}

func (m *memStore) CreateSlot(_ context.Context, slot *models.TimeSlot) error {
	if m.slotExists(slot.CourtID, slot.Date, slot.StartTime) {
		return models.ErrSlotOverlap
	}
	m.slots[slot.ID] = slot
	return nil
}

func (m *memStore) GetSlotByID(_ context.Context, id uuid.UUID) (*models.TimeSlot, error) {
	s, ok := m.slots[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return s, nil
}

func (m *memStore) ListSlots(_ context.Context, courtID uuid.UUID, date *time.Time, _ time.Time) ([]*models.TimeSlot, error) {
	var out []*models.TimeSlot
	for _, s := range m.slots {
		if s.CourtID != courtID {
			continue
		}
		if date != nil && dateKey(s.Date) != dateKey(*date) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memStore) ListSlotsForDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*models.TimeSlot, error) {
	return m.ListSlots(ctx, courtID, &date, time.Time{})
}

func (m *memStore) DeleteSlot(_ context.Context, id uuid.UUID) error {
	if _, ok := m.slots[id]; !ok {
		return models.ErrNotFound
	}
	for _, b := range m.bookings {
		if b.SlotID == id {
			return models.ErrSlotHasBooking
		}
	}
	delete(m.slots, id)
	return nil
}

// --- BookingsRepo ---

func (m *memStore) BookSlot(_ context.Context, booking *models.Booking) error {
	slot, ok := m.slots[booking.SlotID]
	if !ok {
		return models.ErrNotFound
	}
	if slot.IsBooked {
		return models.ErrSlotBooked
	}
	if slot.CourtID != booking.CourtID {
		return models.ErrCourtMismatch
	}
	court, ok := m.courts[slot.CourtID]
	if !ok {
		return models.ErrNotFound
	}

	booking.Date = slot.Date
	booking.StartTime = slot.StartTime
	booking.EndTime = slot.EndTime
	booking.TotalAmount = court.HourlyRate
	booking.Commission = models.CommissionFor(booking.TotalAmount)

	slot.IsBooked = true
	m.bookings[booking.ID] = booking
	return nil
}

func (m *memStore) GetBookingByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return b, nil
}

func (m *memStore) ListBookingsByCustomer(_ context.Context, customerID uuid.UUID) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range m.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) ListBookingsByCourt(_ context.Context, courtID uuid.UUID) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range m.bookings {
		if b.CourtID == courtID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) CancelBooking(_ context.Context, id uuid.UUID) error {
	b, ok := m.bookings[id]
	if !ok {
		return models.ErrNotFound
	}
	if b.Status.Terminal() {
		return models.ErrBookingTerminal
	}
	b.Status = models.BookingCancelled
	if slot, ok := m.slots[b.SlotID]; ok {
		slot.IsBooked = false
	}
	return nil
}

// addCourt seeds a court and returns it along with its owner's ID.
func (m *memStore) addCourt(hourlyRate int) (*models.Court, uuid.UUID) {
	ownerID := uuid.New()
	court := &models.Court{
		ID:         uuid.New(),
		Name:       "Center Court",
		Address:    "12 Chavchavadze Ave",
		HourlyRate: hourlyRate,
		IsActive:   true,
		OwnerID:    ownerID,
	}
	m.courts[court.ID] = court
	return court, ownerID
}
