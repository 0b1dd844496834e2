package request

type CreateHotelRequest struct {
	Name      string `json:"name" binding:"required"`
	Scheme    string `json:"scheme" binding:"required"`
	Standard  int    `json:"standard" binding:"gte=0"`
	Deluxe    int    `json:"deluxe" binding:"gte=0"`
	Executive int    `json:"executive" binding:"gte=0"`
}

type RenameHotelRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddRoomsRequest struct {
	Standard  int `json:"standard" binding:"gte=0"`
	Deluxe    int `json:"deluxe" binding:"gte=0"`
	Executive int `json:"executive" binding:"gte=0"`
}

type UpdatePriceRequest struct {
	Price float64 `json:"price" binding:"required,gte=100"`
}

type SetRateOverrideRequest struct {
	Rate float64 `json:"rate" binding:"required,gte=0.5,lte=1.5"`
}
