package response

import (
	"time"

	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	RoomName      string    `json:"roomName"`
	Total         float64   `json:"total"`
	Discount      string    `json:"discount,omitempty"`
	DiscountNote  string    `json:"discountNote,omitempty"`
}

type ReservationResponse struct {
	ID           uuid.UUID       `json:"id"`
	GuestName    string          `json:"guestName"`
	RoomName     string          `json:"roomName"`
	CheckIn      int             `json:"checkIn"`
	CheckOut     int             `json:"checkOut"`
	Nights       int             `json:"nights"`
	Total        float64         `json:"total"`
	DiscountCode string          `json:"discountCode,omitempty"`
	Package      string          `json:"package"`
	Breakdown    []NightResponse `json:"breakdown"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type ReservationListResponse struct {
	ID        uuid.UUID `json:"id"`
	GuestName string    `json:"guestName"`
	RoomName  string    `json:"roomName"`
	CheckIn   int       `json:"checkIn"`
	CheckOut  int       `json:"checkOut"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBookResult(result *commands.BookResult) *BookResponse {
	resp := &BookResponse{
		ReservationID: result.ReservationID,
		RoomName:      result.RoomName,
		Total:         result.Total,
		Discount:      result.Discount,
	}
	if result.Discount != "" {
		resp.DiscountNote = result.DiscountNote
	}
	return resp
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           view.ID,
		GuestName:    view.GuestName,
		RoomName:     view.RoomName,
		CheckIn:      view.CheckIn,
		CheckOut:     view.CheckOut,
		Nights:       view.Nights,
		Total:        view.Total,
		DiscountCode: view.DiscountCode,
		Package:      view.Package,
		Breakdown:    fromNightViews(view.Breakdown),
		CreatedAt:    view.CreatedAt,
	}
}

func FromReservationListItem(item *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:        item.ID,
		GuestName: item.GuestName,
		RoomName:  item.RoomName,
		CheckIn:   item.CheckIn,
		CheckOut:  item.CheckOut,
		Total:     item.Total,
		CreatedAt: item.CreatedAt,
	}
}
