package commands

import (
	"context"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookParams struct {
	HotelName    string
	GuestName    string
	CheckIn      int
	CheckOut     int
	RoomName     string // empty = automated first-fit allocation
	DiscountCode string
}

type BookResult struct {
	ReservationID uuid.UUID
	RoomName      string
	Total         float64
	Discount      string
	DiscountNote  string
}

type ChoosePackageParams struct {
	HotelName     string
	ReservationID uuid.UUID
	Package       string
}

type ReservationCommands interface {
	Book(ctx context.Context, p BookParams) (*BookResult, error)
	ChoosePackage(ctx context.Context, p ChoosePackageParams) error
	Cancel(ctx context.Context, hotelName string, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	store HotelStore
	clock clock.Clock
}

func NewReservationCommands(store HotelStore, clock clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		store: store,
		clock: clock,
	}
}

// Book creates a reservation under the store's write lock. With a room
// name the guest's explicit choice is booked; without one the first room
// free for the stay is assigned, scanning in creation order.
func (c *reservationCommandsImpl) Book(_ context.Context, p BookParams) (*BookResult, error) {
	stay, err := reservation.NewStay(p.CheckIn, p.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	code, err := reservation.ParseDiscountCode(p.DiscountCode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var result *BookResult
	err = c.store.Update(p.HotelName, func(h *hotel.Hotel) error {
		rm, err := c.selectRoom(h, p.RoomName, stay)
		if err != nil {
			return err
		}

		res, err := h.Book(uuid.New(), p.GuestName, stay, rm, code, c.clock.Now())
		if err != nil {
			return err
		}

		result = &BookResult{
			ReservationID: res.ID(),
			RoomName:      res.RoomName(),
			Total:         res.Total().Amount(),
			Discount:      res.Discount().String(),
			DiscountNote:  res.Discount().Description(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *reservationCommandsImpl) selectRoom(h *hotel.Hotel, roomName string, stay reservation.Stay) (*room.Room, error) {
	if roomName != "" {
		return h.RoomByName(roomName)
	}
	return h.FirstFit(stay)
}

func (c *reservationCommandsImpl) ChoosePackage(_ context.Context, p ChoosePackageParams) error {
	return c.store.Update(p.HotelName, func(h *hotel.Hotel) error {
		res, err := h.ReservationByID(p.ReservationID)
		if err != nil {
			return err
		}
		return res.ChoosePackage(p.Package)
	})
}

func (c *reservationCommandsImpl) Cancel(_ context.Context, hotelName string, id uuid.UUID) error {
	return c.store.Update(hotelName, func(h *hotel.Hotel) error {
		return h.Cancel(id)
	})
}
