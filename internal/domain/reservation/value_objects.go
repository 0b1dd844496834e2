package reservation

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidStay = errors.New("stay must satisfy 1 <= check-in < check-out <= 31")

const (
	// FirstDay and LastDay bound the fixed day-of-month scale. There is no
	// month or year dimension in the model.
	FirstDay = 1
	LastDay  = 31
)

// Stay is the half-open day interval [checkIn, checkOut): the guest occupies
// the room on the check-in day and leaves on the check-out day.
type Stay struct {
	checkIn  int
	checkOut int
}

func NewStay(checkIn, checkOut int) (Stay, error) {
	if checkIn < FirstDay || checkOut > LastDay || checkIn >= checkOut {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s Stay) CheckIn() int  { return s.checkIn }
func (s Stay) CheckOut() int { return s.checkOut }

func (s Stay) Nights() int {
	return s.checkOut - s.checkIn
}

// Contains reports whether the stay occupies the room on the given day.
// The check-out day itself is not occupied.
func (s Stay) Contains(day int) bool {
	return s.checkIn <= day && day < s.checkOut
}

// Overlaps is the symmetric half-open interval test: [a,b) and [c,d)
// conflict iff a < d && c < b. Adjacent stays (checkout 5, check-in 5)
// do not conflict.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn < other.checkOut && other.checkIn < s.checkOut
}

func (s Stay) String() string {
	return fmt.Sprintf("[%d,%d)", s.checkIn, s.checkOut)
}

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money holds an amount in cents. Totals are computed in floating point and
// rounded half-up on the cents digit exactly once per update.
type Money struct {
	cents int64
}

func NewMoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: int64(math.Floor(amount*100 + 0.5))}, nil
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	remaining := m.cents - other.cents
	if remaining < 0 {
		remaining = 0
	}
	return Money{cents: remaining}
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Amount())
}
