package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type HotelListItem struct {
	Name             string `json:"name"`
	Scheme           string `json:"scheme"`
	RoomCount        int    `json:"room_count"`
	ReservationCount int    `json:"reservation_count"`
}

type HotelView struct {
	Name             string         `json:"name"`
	Scheme           string         `json:"scheme"`
	RoomCount        int            `json:"room_count"`
	StandardRooms    int            `json:"standard_rooms"`
	DeluxeRooms      int            `json:"deluxe_rooms"`
	ExecutiveRooms   int            `json:"executive_rooms"`
	ReservationCount int            `json:"reservation_count"`
	Earnings         float64        `json:"earnings"`
	RateOverrides    []RateOverride `json:"rate_overrides"`
}

type RateOverride struct {
	Day  int     `json:"day"`
	Rate float64 `json:"rate"`
}

type RoomView struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	BasePrice   float64 `json:"base_price"`
	NightlyRate float64 `json:"nightly_rate"`
	Status      string  `json:"status"`
}

type AvailabilityView struct {
	RoomName string `json:"room_name"`
	FreeDays []int  `json:"free_days"`
}

type NightView struct {
	Day      int     `json:"day"`
	Rate     float64 `json:"rate"`
	Override bool    `json:"override"`
	Price    float64 `json:"price"`
}

type QuoteView struct {
	RoomName string      `json:"room_name"`
	CheckIn  int         `json:"check_in"`
	CheckOut int         `json:"check_out"`
	Nights   []NightView `json:"nights"`
	Total    float64     `json:"total"`
}

type OccupancyView struct {
	Day       int `json:"day"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

type ReservationListItem struct {
	ID        uuid.UUID `json:"id"`
	GuestName string    `json:"guest_name"`
	RoomName  string    `json:"room_name"`
	CheckIn   int       `json:"check_in"`
	CheckOut  int       `json:"check_out"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

type ReservationView struct {
	ID           uuid.UUID   `json:"id"`
	GuestName    string      `json:"guest_name"`
	RoomName     string      `json:"room_name"`
	CheckIn      int         `json:"check_in"`
	CheckOut     int         `json:"check_out"`
	Nights       int         `json:"nights"`
	Total        float64     `json:"total"`
	DiscountCode string      `json:"discount_code,omitempty"`
	Package      string      `json:"package"`
	Breakdown    []NightView `json:"breakdown"`
	CreatedAt    time.Time   `json:"created_at"`
}
