package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Hotel collection errors
	ErrHotelNotFound  = errors.New("hotel not found")
	ErrHotelNameTaken = errors.New("hotel name is already taken")

	// Room errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomHasReservations = errors.New("room has reservations and cannot be removed")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
