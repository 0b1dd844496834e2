package hotel

import (
	"hotel-reservation/internal/domain/reservation"
)

// IsRoomFree reports whether no existing reservation on the room conflicts
// with the stay. Stays are half-open day intervals, so a check-out on day 5
// does not conflict with a check-in on day 5.
func (h *Hotel) IsRoomFree(roomName string, stay reservation.Stay) bool {
	for _, res := range h.reservations {
		if res.RoomName() != roomName {
			continue
		}
		if res.Stay().Overlaps(stay) {
			return false
		}
	}
	return true
}

// FreeDays lists the days of the month on which the room has no occupant,
// in ascending order. It builds a fresh occupancy set rather than mutating
// a day list during traversal.
//
// Day 31 is additionally treated as occupied whenever a reservation checks
// out on day 31: the month has no day 32, so the closing day of a
// month-ending stay blocks the last calendar day. This deliberately
// diverges from the half-open rule used for conflict testing.
func (h *Hotel) FreeDays(roomName string) []int {
	occupied := make(map[int]bool)
	for _, res := range h.reservations {
		if res.RoomName() != roomName {
			continue
		}
		for day := res.Stay().CheckIn(); day < res.Stay().CheckOut(); day++ {
			occupied[day] = true
		}
		if res.Stay().CheckOut() == reservation.LastDay {
			occupied[reservation.LastDay] = true
		}
	}

	free := make([]int, 0, reservation.LastDay)
	for day := reservation.FirstDay; day <= reservation.LastDay; day++ {
		if !occupied[day] {
			free = append(free, day)
		}
	}
	return free
}
