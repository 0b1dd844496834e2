package hotel

import (
	"errors"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
)

var (
	ErrNoRoomAvailable = errors.New("no room is free for the requested dates")
	ErrNoRoomsOfType   = errors.New("the hotel has no rooms of the requested type")
)

// FirstFit scans the inventory in creation order and returns the first room
// free for the stay. Deterministic, no load balancing across types.
func (h *Hotel) FirstFit(stay reservation.Stay) (*room.Room, error) {
	for _, r := range h.rooms {
		if h.IsRoomFree(r.Name(), stay) {
			return r, nil
		}
	}
	return nil, ErrNoRoomAvailable
}

// Candidates lists the rooms of the requested type that are free for the
// stay, preserving creation order, for the caller to pick one explicitly.
// A hotel with zero rooms of the type is an error; a type whose rooms are
// all occupied yields an empty list — callers must render the two
// differently.
func (h *Hotel) Candidates(typ room.Type, stay reservation.Stay) ([]*room.Room, error) {
	ofType := h.RoomsOfType(typ)
	if len(ofType) == 0 {
		return nil, ErrNoRoomsOfType
	}

	free := make([]*room.Room, 0, len(ofType))
	for _, r := range ofType {
		if h.IsRoomFree(r.Name(), stay) {
			free = append(free, r)
		}
	}
	return free, nil
}

// OccupancyOn counts rooms free and booked on a single day, using the same
// occupancy rule as FreeDays (including the day-31 closing exception).
func (h *Hotel) OccupancyOn(day int) (available, booked int) {
	for _, r := range h.rooms {
		occupied := false
		for _, res := range h.reservations {
			if res.RoomName() != r.Name() {
				continue
			}
			if res.Stay().Contains(day) ||
				(day == reservation.LastDay && res.Stay().CheckOut() == reservation.LastDay) {
				occupied = true
				break
			}
		}
		if occupied {
			booked++
		} else {
			available++
		}
	}
	return available, booked
}
