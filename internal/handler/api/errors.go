package api

import (
	"errors"
	"net/http"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortDomainError translates core errors into HTTP responses. Every
// rejection is a deterministic validation failure; nothing here is fatal
// to the process and the aggregate stays in its last valid state.
func abortDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrHotelNotFound),
		errors.Is(err, errs.ErrRoomNotFound),
		errors.Is(err, hotel.ErrRoomNotFound),
		errors.Is(err, errs.ErrReservationNotFound),
		errors.Is(err, hotel.ErrReservationNotFound),
		errors.Is(err, hotel.ErrNoRoomsOfType):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)

	case errors.Is(err, errs.ErrHotelNameTaken),
		errors.Is(err, hotel.ErrRoomCapacityExceeded),
		errors.Is(err, hotel.ErrPriceLocked),
		errors.Is(err, hotel.ErrRateLocked),
		errors.Is(err, errs.ErrRoomHasReservations),
		errors.Is(err, hotel.ErrNoRoomAvailable),
		errors.Is(err, hotel.ErrRoomUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)

	case errors.Is(err, reservation.ErrInvalidStay),
		errors.Is(err, reservation.ErrUnknownDiscountCode),
		errors.Is(err, room.ErrUnknownType),
		errors.Is(err, room.ErrPriceTooLow),
		errors.Is(err, hotel.ErrInvalidRate),
		errors.Is(err, hotel.ErrInvalidRateDay),
		errors.Is(err, hotel.ErrInvalidRoomCount),
		errors.Is(err, hotel.ErrEmptyHotelName),
		errors.Is(err, hotel.ErrEmptyNamingScheme),
		errors.Is(err, reservation.ErrEmptyGuestName),
		errors.Is(err, reservation.ErrUnknownPackage):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)

	case errors.Is(err, reservation.ErrDiscountNotEligible),
		errors.Is(err, reservation.ErrPackageAlreadySet),
		errors.Is(err, reservation.ErrStayTooShort):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
