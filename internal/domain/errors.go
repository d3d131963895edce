package domain

import "errors"

var (
	ErrStadiumNotFound      = errors.New("stadium not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrCoachProfileNotFound = errors.New("coach profile not found or not available for booking")
	ErrSportNotFound        = errors.New("one or more sports not found")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrBookingNotFound      = errors.New("coach booking not found")
	ErrEventNotFound        = errors.New("event not found")
)

var (
	ErrBookingConflict = errors.New("time slot is already booked")
	ErrEventFull       = errors.New("event is full")
	ErrAlreadyJoined   = errors.New("user is already a participant")
	ErrReviewExists    = errors.New("review already exists for this reservation")
)

var (
	ErrPastEvent          = errors.New("event date is in the past")
	ErrPrivateEvent       = errors.New("cannot join a private event")
	ErrCreatorCannotLeave = errors.New("event creator cannot leave the event")
	ErrNotParticipant     = errors.New("user is not a participant of this event")
	ErrEventBooking       = errors.New("booking belongs to an event and cannot be changed directly")
)

var (
	ErrValidation = errors.New("validation error")
)
