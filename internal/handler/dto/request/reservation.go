package request

import "strings"

type CreateReservationRequest struct {
	GuestName    string  `json:"guest_name" binding:"required"`
	CheckIn      int     `json:"check_in" binding:"required,gte=1,lte=30"`
	CheckOut     int     `json:"check_out" binding:"required,gte=2,lte=31"`
	RoomName     *string `json:"room_name,omitempty"`
	DiscountCode *string `json:"discount_code,omitempty"`
}

func (r CreateReservationRequest) GetRoomName() string {
	if r.RoomName == nil {
		return ""
	}
	return strings.TrimSpace(*r.RoomName)
}

func (r CreateReservationRequest) GetDiscountCode() string {
	if r.DiscountCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.DiscountCode)
}

type ChoosePackageRequest struct {
	Package string `json:"package" binding:"required"`
}
