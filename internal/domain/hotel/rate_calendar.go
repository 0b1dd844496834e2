package hotel

import (
	"errors"

	"hotel-reservation/internal/domain/reservation"
)

var (
	ErrInvalidRateDay = errors.New("rate override day must be between 1 and 31")
	ErrInvalidRate    = errors.New("price rate must be between 0.5 and 1.5")
)

const (
	MinRate = 0.5
	MaxRate = 1.5
)

// RateCalendar maps a day of the month to a price-rate multiplier. A day
// without an override is priced at the plain nightly rate.
type RateCalendar struct {
	rates map[int]float64
}

func NewRateCalendar() *RateCalendar {
	return &RateCalendar{rates: make(map[int]float64)}
}

// Set stores an override for the day, replacing any existing one.
func (c *RateCalendar) Set(day int, rate float64) error {
	if day < reservation.FirstDay || day > reservation.LastDay {
		return ErrInvalidRateDay
	}
	if rate < MinRate || rate > MaxRate {
		return ErrInvalidRate
	}
	c.rates[day] = rate
	return nil
}

// Clear removes the override for the day and reports whether one existed.
func (c *RateCalendar) Clear(day int) bool {
	if _, ok := c.rates[day]; !ok {
		return false
	}
	delete(c.rates, day)
	return true
}

func (c *RateCalendar) Rate(day int) (float64, bool) {
	rate, ok := c.rates[day]
	return rate, ok
}

// Overrides returns a copy of the calendar for read-only rendering.
func (c *RateCalendar) Overrides() map[int]float64 {
	out := make(map[int]float64, len(c.rates))
	for day, rate := range c.rates {
		out[day] = rate
	}
	return out
}
