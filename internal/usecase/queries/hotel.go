package queries

import (
	"context"
	"sort"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
)

// HotelReadStore is the read-side view over the hotel collection.
type HotelReadStore interface {
	View(name string, fn func(*hotel.Hotel) error) error
	ViewAll(fn func([]*hotel.Hotel) error) error
}

// RoomFilter narrows a room listing. With a type and a date range it
// produces the manual-booking candidate list; with only a date range it
// lists every room free for the interval.
type RoomFilter struct {
	Type     string
	CheckIn  int
	CheckOut int
}

func (f RoomFilter) hasDates() bool {
	return f.CheckIn != 0 || f.CheckOut != 0
}

type HotelQueries interface {
	List(ctx context.Context) ([]HotelListItem, error)
	Get(ctx context.Context, name string) (*HotelView, error)
	Rooms(ctx context.Context, name string, filter RoomFilter) ([]RoomView, error)
	Availability(ctx context.Context, name, roomName string) (*AvailabilityView, error)
	Quote(ctx context.Context, name, roomName string, checkIn, checkOut int) (*QuoteView, error)
	Occupancy(ctx context.Context, name string, day int) (*OccupancyView, error)
}

type hotelQueriesImpl struct {
	store HotelReadStore
}

func NewHotelQueries(store HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{store: store}
}

func (q *hotelQueriesImpl) List(_ context.Context) ([]HotelListItem, error) {
	var items []HotelListItem
	err := q.store.ViewAll(func(hotels []*hotel.Hotel) error {
		items = make([]HotelListItem, 0, len(hotels))
		for _, h := range hotels {
			items = append(items, HotelListItem{
				Name:             h.Name(),
				Scheme:           h.Scheme(),
				RoomCount:        len(h.Rooms()),
				ReservationCount: len(h.Reservations()),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (q *hotelQueriesImpl) Get(_ context.Context, name string) (*HotelView, error) {
	var view *HotelView
	err := q.store.View(name, func(h *hotel.Hotel) error {
		view = &HotelView{
			Name:             h.Name(),
			Scheme:           h.Scheme(),
			RoomCount:        len(h.Rooms()),
			StandardRooms:    len(h.RoomsOfType(room.TypeStandard)),
			DeluxeRooms:      len(h.RoomsOfType(room.TypeDeluxe)),
			ExecutiveRooms:   len(h.RoomsOfType(room.TypeExecutive)),
			ReservationCount: len(h.Reservations()),
			Earnings:         h.Earnings().Amount(),
			RateOverrides:    rateOverrides(h.Rates()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func rateOverrides(c *hotel.RateCalendar) []RateOverride {
	overrides := c.Overrides()
	out := make([]RateOverride, 0, len(overrides))
	for day, rate := range overrides {
		out = append(out, RateOverride{Day: day, Rate: rate})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func (q *hotelQueriesImpl) Rooms(_ context.Context, name string, filter RoomFilter) ([]RoomView, error) {
	var views []RoomView
	err := q.store.View(name, func(h *hotel.Hotel) error {
		rooms, err := filteredRooms(h, filter)
		if err != nil {
			return err
		}
		views = make([]RoomView, 0, len(rooms))
		for _, r := range rooms {
			views = append(views, roomView(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func filteredRooms(h *hotel.Hotel, filter RoomFilter) ([]*room.Room, error) {
	if filter.Type == "" && !filter.hasDates() {
		return h.Rooms(), nil
	}

	var stay reservation.Stay
	if filter.hasDates() {
		var err error
		stay, err = reservation.NewStay(filter.CheckIn, filter.CheckOut)
		if err != nil {
			return nil, err
		}
	}

	if filter.Type != "" {
		typ, err := room.ParseType(filter.Type)
		if err != nil {
			return nil, err
		}
		if !filter.hasDates() {
			return h.RoomsOfType(typ), nil
		}
		return h.Candidates(typ, stay)
	}

	var free []*room.Room
	for _, r := range h.Rooms() {
		if h.IsRoomFree(r.Name(), stay) {
			free = append(free, r)
		}
	}
	return free, nil
}

func roomView(r *room.Room) RoomView {
	return RoomView{
		Name:        r.Name(),
		Type:        r.Type().String(),
		BasePrice:   r.BasePrice(),
		NightlyRate: r.NightlyRate(),
		Status:      r.Status().String(),
	}
}

func (q *hotelQueriesImpl) Availability(_ context.Context, name, roomName string) (*AvailabilityView, error) {
	var view *AvailabilityView
	err := q.store.View(name, func(h *hotel.Hotel) error {
		if _, err := h.RoomByName(roomName); err != nil {
			return err
		}
		view = &AvailabilityView{
			RoomName: roomName,
			FreeDays: h.FreeDays(roomName),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *hotelQueriesImpl) Quote(_ context.Context, name, roomName string, checkIn, checkOut int) (*QuoteView, error) {
	var view *QuoteView
	err := q.store.View(name, func(h *hotel.Hotel) error {
		r, err := h.RoomByName(roomName)
		if err != nil {
			return err
		}
		stay, err := reservation.NewStay(checkIn, checkOut)
		if err != nil {
			return err
		}
		total, err := h.Quote(r, stay)
		if err != nil {
			return err
		}
		view = &QuoteView{
			RoomName: roomName,
			CheckIn:  stay.CheckIn(),
			CheckOut: stay.CheckOut(),
			Nights:   nightViews(h.Breakdown(r, stay)),
			Total:    total.Amount(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func nightViews(breakdown []hotel.NightCost) []NightView {
	out := make([]NightView, 0, len(breakdown))
	for _, night := range breakdown {
		out = append(out, NightView{
			Day:      night.Day,
			Rate:     night.Rate,
			Override: night.Override,
			Price:    night.Price,
		})
	}
	return out
}

func (q *hotelQueriesImpl) Occupancy(_ context.Context, name string, day int) (*OccupancyView, error) {
	if day < reservation.FirstDay || day > reservation.LastDay {
		return nil, reservation.ErrInvalidStay
	}
	var view *OccupancyView
	err := q.store.View(name, func(h *hotel.Hotel) error {
		available, booked := h.OccupancyOn(day)
		view = &OccupancyView{Day: day, Available: available, Booked: booked}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
