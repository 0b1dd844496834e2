package commands

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
)

type CreateHotelParams struct {
	Name      string
	Scheme    string
	Standard  int
	Deluxe    int
	Executive int
}

type AddRoomsParams struct {
	HotelName string
	Standard  int
	Deluxe    int
	Executive int
}

// AddRoomsResult surfaces the mismatch between the rooms requested and the
// rooms actually added when generated names collide with existing ones.
type AddRoomsResult struct {
	Requested int
	Added     int
}

type HotelCommands interface {
	Create(ctx context.Context, p CreateHotelParams) error
	Rename(ctx context.Context, name, newName string) error
	Remove(ctx context.Context, name string) error
	AddRooms(ctx context.Context, p AddRoomsParams) (*AddRoomsResult, error)
	RemoveRoom(ctx context.Context, hotelName, roomName string) error
	SetBasePrice(ctx context.Context, hotelName string, price float64) error
	SetRateOverride(ctx context.Context, hotelName string, day int, rate float64) error
	ClearRateOverride(ctx context.Context, hotelName string, day int) error
}

type hotelCommandsImpl struct {
	store HotelStore
	cfg   config.HotelConfig
	clock clock.Clock
}

func NewHotelCommands(store HotelStore, cfg config.Config, clock clock.Clock) HotelCommands {
	return &hotelCommandsImpl{
		store: store,
		cfg:   cfg.Hotel,
		clock: clock,
	}
}

func (c *hotelCommandsImpl) Create(_ context.Context, p CreateHotelParams) error {
	counts := hotel.RoomCounts{
		Standard:  p.Standard,
		Deluxe:    p.Deluxe,
		Executive: p.Executive,
	}
	h, err := hotel.New(p.Name, p.Scheme, counts, c.cfg.DefaultBasePrice, c.clock.Now())
	if err != nil {
		return errs.Wrap(err, "create hotel")
	}
	return c.store.Create(h)
}

func (c *hotelCommandsImpl) Rename(_ context.Context, name, newName string) error {
	return c.store.Rename(name, newName)
}

func (c *hotelCommandsImpl) Remove(_ context.Context, name string) error {
	return c.store.Remove(name)
}

func (c *hotelCommandsImpl) AddRooms(_ context.Context, p AddRoomsParams) (*AddRoomsResult, error) {
	counts := hotel.RoomCounts{
		Standard:  p.Standard,
		Deluxe:    p.Deluxe,
		Executive: p.Executive,
	}
	result := &AddRoomsResult{Requested: counts.Total()}
	err := c.store.Update(p.HotelName, func(h *hotel.Hotel) error {
		added, err := h.AddRooms(counts, c.cfg.DefaultBasePrice)
		if err != nil {
			return err
		}
		result.Added = added
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Added != result.Requested {
		slog.Warn("room name collisions during bulk add",
			"hotel", p.HotelName,
			"requested", result.Requested,
			"added", result.Added)
	}
	return result, nil
}

// RemoveRoom blocks removal while the room has reservations. The aggregate
// itself removes unconditionally; this guard lives at the caller layer on
// purpose.
func (c *hotelCommandsImpl) RemoveRoom(_ context.Context, hotelName, roomName string) error {
	return c.store.Update(hotelName, func(h *hotel.Hotel) error {
		if h.RoomHasReservations(roomName) {
			return errs.ErrRoomHasReservations
		}
		return h.RemoveRoom(roomName)
	})
}

func (c *hotelCommandsImpl) SetBasePrice(_ context.Context, hotelName string, price float64) error {
	return c.store.Update(hotelName, func(h *hotel.Hotel) error {
		return h.SetBasePrice(price)
	})
}

func (c *hotelCommandsImpl) SetRateOverride(_ context.Context, hotelName string, day int, rate float64) error {
	return c.store.Update(hotelName, func(h *hotel.Hotel) error {
		return h.SetRateOverride(day, rate)
	})
}

func (c *hotelCommandsImpl) ClearRateOverride(_ context.Context, hotelName string, day int) error {
	return c.store.Update(hotelName, func(h *hotel.Hotel) error {
		return h.ClearRateOverride(day)
	})
}
