package response

import (
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
)

type HotelResponse struct {
	Name             string                 `json:"name"`
	Scheme           string                 `json:"scheme"`
	RoomCount        int                    `json:"roomCount"`
	StandardRooms    int                    `json:"standardRooms"`
	DeluxeRooms      int                    `json:"deluxeRooms"`
	ExecutiveRooms   int                    `json:"executiveRooms"`
	ReservationCount int                    `json:"reservationCount"`
	Earnings         float64                `json:"earnings"`
	RateOverrides    []RateOverrideResponse `json:"rateOverrides"`
}

type RateOverrideResponse struct {
	Day  int     `json:"day"`
	Rate float64 `json:"rate"`
}

type HotelListResponse struct {
	Name             string `json:"name"`
	Scheme           string `json:"scheme"`
	RoomCount        int    `json:"roomCount"`
	ReservationCount int    `json:"reservationCount"`
}

type RoomResponse struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	BasePrice   float64 `json:"basePrice"`
	NightlyRate float64 `json:"nightlyRate"`
	Status      string  `json:"status"`
}

type AddRoomsResponse struct {
	Requested int `json:"requested"`
	Added     int `json:"added"`
}

type AvailabilityResponse struct {
	RoomName string `json:"roomName"`
	FreeDays []int  `json:"freeDays"`
}

type NightResponse struct {
	Day      int     `json:"day"`
	Rate     float64 `json:"rate"`
	Override bool    `json:"override"`
	Price    float64 `json:"price"`
}

type QuoteResponse struct {
	RoomName string          `json:"roomName"`
	CheckIn  int             `json:"checkIn"`
	CheckOut int             `json:"checkOut"`
	Nights   []NightResponse `json:"nights"`
	Total    float64         `json:"total"`
}

type OccupancyResponse struct {
	Day       int `json:"day"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

func FromHotelView(view *queries.HotelView) *HotelResponse {
	overrides := make([]RateOverrideResponse, 0, len(view.RateOverrides))
	for _, o := range view.RateOverrides {
		overrides = append(overrides, RateOverrideResponse{Day: o.Day, Rate: o.Rate})
	}
	return &HotelResponse{
		Name:             view.Name,
		Scheme:           view.Scheme,
		RoomCount:        view.RoomCount,
		StandardRooms:    view.StandardRooms,
		DeluxeRooms:      view.DeluxeRooms,
		ExecutiveRooms:   view.ExecutiveRooms,
		ReservationCount: view.ReservationCount,
		Earnings:         view.Earnings,
		RateOverrides:    overrides,
	}
}

func FromHotelListItem(item *queries.HotelListItem) *HotelListResponse {
	return &HotelListResponse{
		Name:             item.Name,
		Scheme:           item.Scheme,
		RoomCount:        item.RoomCount,
		ReservationCount: item.ReservationCount,
	}
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		Name:        view.Name,
		Type:        view.Type,
		BasePrice:   view.BasePrice,
		NightlyRate: view.NightlyRate,
		Status:      view.Status,
	}
}

func FromAddRoomsResult(result *commands.AddRoomsResult) *AddRoomsResponse {
	return &AddRoomsResponse{
		Requested: result.Requested,
		Added:     result.Added,
	}
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomName: view.RoomName,
		FreeDays: view.FreeDays,
	}
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		RoomName: view.RoomName,
		CheckIn:  view.CheckIn,
		CheckOut: view.CheckOut,
		Nights:   fromNightViews(view.Nights),
		Total:    view.Total,
	}
}

func fromNightViews(nights []queries.NightView) []NightResponse {
	out := make([]NightResponse, 0, len(nights))
	for _, n := range nights {
		out = append(out, NightResponse{
			Day:      n.Day,
			Rate:     n.Rate,
			Override: n.Override,
			Price:    n.Price,
		})
	}
	return out
}

func FromOccupancyView(view *queries.OccupancyView) *OccupancyResponse {
	return &OccupancyResponse{
		Day:       view.Day,
		Available: view.Available,
		Booked:    view.Booked,
	}
}
