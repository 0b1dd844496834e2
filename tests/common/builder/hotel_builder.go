//go:build unit

package builder

import (
	"time"

	domhotel "hotel-reservation/internal/domain/hotel"
	reqdto "hotel-reservation/internal/handler/dto/request"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	Name      string
	Scheme    string
	Standard  int
	Deluxe    int
	Executive int
	BasePrice float64
	CreatedAt time.Time
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		Name:      "Manila Grand",
		Scheme:    "MG",
		Standard:  3,
		Deluxe:    2,
		Executive: 1,
		BasePrice: 1000.0,
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) BuildDomain() (*domhotel.Hotel, error) {
	counts := domhotel.RoomCounts{
		Standard:  b.Standard,
		Deluxe:    b.Deluxe,
		Executive: b.Executive,
	}
	return domhotel.New(b.Name, b.Scheme, counts, b.BasePrice, b.CreatedAt)
}

func (b *HotelBuilder) BuildCreateRequestDTO() reqdto.CreateHotelRequest {
	return reqdto.CreateHotelRequest{
		Name:      b.Name,
		Scheme:    b.Scheme,
		Standard:  b.Standard,
		Deluxe:    b.Deluxe,
		Executive: b.Executive,
	}
}

type ReservationBuilder struct {
	GuestName    string
	CheckIn      int
	CheckOut     int
	RoomName     string
	DiscountCode string
	ID           uuid.UUID
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		GuestName: "Jose Rizal",
		CheckIn:   10,
		CheckOut:  13,
		ID:        uuid.New(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{
		GuestName: b.GuestName,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
	}
	if b.RoomName != "" {
		name := b.RoomName
		req.RoomName = &name
	}
	if b.DiscountCode != "" {
		code := b.DiscountCode
		req.DiscountCode = &code
	}
	return req
}
