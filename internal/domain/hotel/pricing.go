package hotel

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
)

// NightCost is one line of a stay's price breakdown.
type NightCost struct {
	Day      int
	Rate     float64
	Override bool
	Price    float64
}

// Quote computes the total for a stay in the given room: for each occupied
// night the nightly rate is multiplied by that day's rate override when one
// exists. The sum is rounded half-up to cents.
func (h *Hotel) Quote(rm *room.Room, stay reservation.Stay) (reservation.Money, error) {
	var total float64
	for _, night := range h.Breakdown(rm, stay) {
		total += night.Price
	}
	return reservation.NewMoneyFromFloat(total)
}

// Breakdown returns the per-night cost of a stay, one entry per occupied
// day in order.
func (h *Hotel) Breakdown(rm *room.Room, stay reservation.Stay) []NightCost {
	nightly := rm.NightlyRate()
	out := make([]NightCost, 0, stay.Nights())
	for day := stay.CheckIn(); day < stay.CheckOut(); day++ {
		night := NightCost{Day: day, Rate: 1.0, Price: nightly}
		if rate, ok := h.rates.Rate(day); ok {
			night.Rate = rate
			night.Override = true
			night.Price = nightly * rate
		}
		out = append(out, night)
	}
	return out
}

// firstNightCost prices the check-in night only, honoring any override on
// that day. STAY4_GET1 subtracts exactly this amount.
func (h *Hotel) firstNightCost(rm *room.Room, stay reservation.Stay) reservation.Money {
	nightly := rm.NightlyRate()
	if rate, ok := h.rates.Rate(stay.CheckIn()); ok {
		nightly *= rate
	}
	m, err := reservation.NewMoneyFromFloat(nightly)
	if err != nil {
		return reservation.Money{}
	}
	return m
}
