package hotel

import (
	"errors"
	"fmt"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"

	"github.com/google/uuid"
)

var (
	ErrEmptyHotelName       = errors.New("hotel name cannot be empty")
	ErrEmptyNamingScheme    = errors.New("room naming scheme cannot be empty")
	ErrInvalidRoomCount     = errors.New("a hotel needs between 1 and 50 rooms")
	ErrRoomCapacityExceeded = errors.New("hotel room capacity of 50 exceeded")
	ErrPriceLocked          = errors.New("room prices cannot change while reservations exist")
	ErrRateLocked           = errors.New("the rate calendar cannot change while reservations exist")
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomUnavailable      = errors.New("room is not free for the requested dates")
	ErrReservationNotFound  = errors.New("reservation not found")
)

// MaxRooms is the hard cap on a hotel's inventory.
const MaxRooms = 50

type RoomCounts struct {
	Standard  int
	Deluxe    int
	Executive int
}

func (rc RoomCounts) Total() int {
	return rc.Standard + rc.Deluxe + rc.Executive
}

// Hotel aggregates rooms, reservations and the rate calendar. It owns all
// three exclusively; reservations reference rooms by name only. Hotel-name
// uniqueness across the collection is the caller layer's job, not this
// entity's.
type Hotel struct {
	name         string
	scheme       string
	rooms        []*room.Room
	reservations []*reservation.Reservation
	rates        *RateCalendar
	createdAt    time.Time
}

func New(name, scheme string, counts RoomCounts, basePrice float64, now time.Time) (*Hotel, error) {
	if name == "" {
		return nil, ErrEmptyHotelName
	}
	if scheme == "" {
		return nil, ErrEmptyNamingScheme
	}
	if counts.Total() < 1 || counts.Total() > MaxRooms {
		return nil, ErrInvalidRoomCount
	}

	h := &Hotel{
		name:      name,
		scheme:    scheme,
		rates:     NewRateCalendar(),
		createdAt: now,
	}

	seq := 1
	for _, block := range []struct {
		typ   room.Type
		count int
	}{
		{room.TypeStandard, counts.Standard},
		{room.TypeDeluxe, counts.Deluxe},
		{room.TypeExecutive, counts.Executive},
	} {
		for i := 0; i < block.count; i++ {
			r, err := room.NewRoom(roomName(scheme, seq), block.typ, basePrice)
			if err != nil {
				return nil, err
			}
			h.rooms = append(h.rooms, r)
			seq++
		}
	}

	return h, nil
}

// roomName builds scheme + zero-padded 2-digit sequence number.
func roomName(scheme string, seq int) string {
	return fmt.Sprintf("%s%02d", scheme, seq)
}

func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Scheme() string       { return h.scheme }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) Rates() *RateCalendar { return h.rates }

// Rooms returns the inventory in creation order.
func (h *Hotel) Rooms() []*room.Room {
	out := make([]*room.Room, len(h.rooms))
	copy(out, h.rooms)
	return out
}

func (h *Hotel) Reservations() []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(h.reservations))
	copy(out, h.reservations)
	return out
}

func (h *Hotel) Rename(newName string) error {
	if newName == "" {
		return ErrEmptyHotelName
	}
	h.name = newName
	return nil
}

func (h *Hotel) RoomByName(name string) (*room.Room, error) {
	for _, r := range h.rooms {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, ErrRoomNotFound
}

func (h *Hotel) RoomsOfType(typ room.Type) []*room.Room {
	var out []*room.Room
	for _, r := range h.rooms {
		if r.Type() == typ {
			out = append(out, r)
		}
	}
	return out
}

func (h *Hotel) hasRoomNamed(name string) bool {
	_, err := h.RoomByName(name)
	return err == nil
}

// AddRooms grows the inventory, walking the name sequence from 1 and
// silently skipping any generated name that already exists. The number of
// rooms actually added is returned so callers can surface a mismatch with
// the requested count.
func (h *Hotel) AddRooms(counts RoomCounts, basePrice float64) (int, error) {
	if counts.Total() < 1 {
		return 0, ErrInvalidRoomCount
	}
	if len(h.rooms)+counts.Total() > MaxRooms {
		return 0, ErrRoomCapacityExceeded
	}

	current := len(h.rooms)
	added := 0
	seq := 1
	for _, block := range []struct {
		typ   room.Type
		bound int
	}{
		{room.TypeStandard, current + counts.Standard},
		{room.TypeDeluxe, current + counts.Standard + counts.Deluxe},
		{room.TypeExecutive, current + counts.Total()},
	} {
		for ; seq <= block.bound; seq++ {
			name := roomName(h.scheme, seq)
			if h.hasRoomNamed(name) {
				continue
			}
			r, err := room.NewRoom(name, block.typ, basePrice)
			if err != nil {
				return added, err
			}
			h.rooms = append(h.rooms, r)
			added++
		}
	}

	return added, nil
}

// RemoveRoom drops the room unconditionally at this layer. Blocking removal
// while the room has reservations is the responsibility of the caller.
func (h *Hotel) RemoveRoom(name string) error {
	for i, r := range h.rooms {
		if r.Name() == name {
			h.rooms = append(h.rooms[:i], h.rooms[i+1:]...)
			return nil
		}
	}
	return ErrRoomNotFound
}

// RoomHasReservations reports whether any reservation references the room.
func (h *Hotel) RoomHasReservations(name string) bool {
	for _, res := range h.reservations {
		if res.RoomName() == name {
			return true
		}
	}
	return false
}

// SetBasePrice reprices every room uniformly. Rejected while any
// reservation exists hotel-wide.
func (h *Hotel) SetBasePrice(price float64) error {
	if len(h.reservations) > 0 {
		return ErrPriceLocked
	}
	if price < room.MinBasePrice {
		return room.ErrPriceTooLow
	}
	for _, r := range h.rooms {
		if err := r.SetBasePrice(price); err != nil {
			return err
		}
	}
	return nil
}

// SetRateOverride stores a per-day price multiplier. Rejected while any
// reservation exists hotel-wide.
func (h *Hotel) SetRateOverride(day int, rate float64) error {
	if len(h.reservations) > 0 {
		return ErrRateLocked
	}
	return h.rates.Set(day, rate)
}

func (h *Hotel) ClearRateOverride(day int) error {
	if len(h.reservations) > 0 {
		return ErrRateLocked
	}
	if day < reservation.FirstDay || day > reservation.LastDay {
		return ErrInvalidRateDay
	}
	h.rates.Clear(day)
	return nil
}

// Book validates availability, prices the stay, applies the discount code
// and stores the reservation. The room's status flips to booked, but that
// flag stays informational: availability is always decided off the
// reservation list.
func (h *Hotel) Book(
	id uuid.UUID,
	guestName string,
	stay reservation.Stay,
	rm *room.Room,
	code reservation.DiscountCode,
	now time.Time,
) (*reservation.Reservation, error) {
	if !h.IsRoomFree(rm.Name(), stay) {
		return nil, ErrRoomUnavailable
	}

	if err := code.Validate(stay); err != nil {
		return nil, err
	}

	total, err := h.Quote(rm, stay)
	if err != nil {
		return nil, err
	}
	total, err = code.Apply(total, h.firstNightCost(rm, stay))
	if err != nil {
		return nil, err
	}

	res, err := reservation.NewReservation(id, guestName, rm.Name(), stay, total, code, now)
	if err != nil {
		return nil, err
	}

	h.reservations = append(h.reservations, res)
	rm.MarkBooked()
	return res, nil
}

func (h *Hotel) ReservationByID(id uuid.UUID) (*reservation.Reservation, error) {
	for _, res := range h.reservations {
		if res.ID() == id {
			return res, nil
		}
	}
	return nil, ErrReservationNotFound
}

// Cancel removes the reservation. The room's status flag is left as is;
// other reservations may still exist for the room and the flag is never
// consulted for conflict detection anyway.
func (h *Hotel) Cancel(id uuid.UUID) error {
	for i, res := range h.reservations {
		if res.ID() == id {
			h.reservations = append(h.reservations[:i], h.reservations[i+1:]...)
			return nil
		}
	}
	return ErrReservationNotFound
}

// Earnings is the sum of all reservation totals.
func (h *Hotel) Earnings() reservation.Money {
	var total reservation.Money
	for _, res := range h.reservations {
		total = total.Add(res.Total())
	}
	return total
}
