package models

import "errors"

// Domain errors shared by repositories and services. Handlers map them to
// HTTP statuses with errors.Is.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrSlotOverlap      = errors.New("time slot conflicts with an existing slot")
	ErrSlotBooked       = errors.New("time slot is already booked")
	ErrSlotHasBooking   = errors.New("cannot delete a slot with a booking")
	ErrCourtMismatch    = errors.New("slot does not belong to this court")

	ErrBookingTerminal    = errors.New("booking is already cancelled or completed")
	ErrCancelWindowClosed = errors.New("cannot cancel less than 24 hours before the scheduled time")
)
