package queries

import (
	"context"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	List(ctx context.Context, hotelName string) ([]ReservationListItem, error)
	Get(ctx context.Context, hotelName string, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	store HotelReadStore
}

func NewReservationQueries(store HotelReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) List(_ context.Context, hotelName string) ([]ReservationListItem, error) {
	var items []ReservationListItem
	err := q.store.View(hotelName, func(h *hotel.Hotel) error {
		reservations := h.Reservations()
		items = make([]ReservationListItem, 0, len(reservations))
		for _, res := range reservations {
			items = append(items, ReservationListItem{
				ID:        res.ID(),
				GuestName: res.GuestName(),
				RoomName:  res.RoomName(),
				CheckIn:   res.Stay().CheckIn(),
				CheckOut:  res.Stay().CheckOut(),
				Total:     res.Total().Amount(),
				CreatedAt: res.CreatedAt(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns the reservation with its per-night cost breakdown. The
// breakdown reflects current room pricing and rate overrides; the stored
// total is the one frozen at booking time, discount included.
func (q *reservationQueriesImpl) Get(_ context.Context, hotelName string, id uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.store.View(hotelName, func(h *hotel.Hotel) error {
		res, err := h.ReservationByID(id)
		if err != nil {
			return err
		}
		view = reservationView(h, res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func reservationView(h *hotel.Hotel, res *reservation.Reservation) *ReservationView {
	view := &ReservationView{
		ID:           res.ID(),
		GuestName:    res.GuestName(),
		RoomName:     res.RoomName(),
		CheckIn:      res.Stay().CheckIn(),
		CheckOut:     res.Stay().CheckOut(),
		Nights:       res.Stay().Nights(),
		Total:        res.Total().Amount(),
		DiscountCode: res.Discount().String(),
		Package:      res.Package(),
		CreatedAt:    res.CreatedAt(),
	}
	if r, err := h.RoomByName(res.RoomName()); err == nil {
		view.Breakdown = nightViews(h.Breakdown(r, res.Stay()))
	}
	return view
}
