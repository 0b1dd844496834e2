package room

import "errors"

var (
	ErrEmptyName     = errors.New("room name cannot be empty")
	ErrPriceTooLow   = errors.New("base price must be at least the minimum")
	ErrInvalidStatus = errors.New("invalid room status")
)

const (
	// MinBasePrice is the lowest base price a room may carry.
	MinBasePrice = 100.0

	// DefaultBasePrice is used when no price is configured.
	DefaultBasePrice = 1299.0
)

// Room is a priced, named unit of inventory. The name is immutable after
// creation. The status flag is informational only; conflict detection works
// off the reservation list, never off this flag.
type Room struct {
	name      string
	typ       Type
	basePrice float64
	status    Status
}

func NewRoom(name string, typ Type, basePrice float64) (*Room, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !typ.IsValid() {
		return nil, ErrUnknownType
	}
	if basePrice < MinBasePrice {
		return nil, ErrPriceTooLow
	}
	return &Room{
		name:      name,
		typ:       typ,
		basePrice: basePrice,
		status:    StatusAvailable,
	}, nil
}

func (r *Room) Name() string       { return r.name }
func (r *Room) Type() Type         { return r.typ }
func (r *Room) BasePrice() float64 { return r.basePrice }
func (r *Room) Status() Status     { return r.status }

// NightlyRate is the base price plus the type surcharge.
func (r *Room) NightlyRate() float64 {
	return r.basePrice + r.basePrice*r.typ.Surcharge()
}

func (r *Room) SetBasePrice(price float64) error {
	if price < MinBasePrice {
		return ErrPriceTooLow
	}
	r.basePrice = price
	return nil
}

func (r *Room) MarkBooked() {
	r.status = StatusBooked
}
