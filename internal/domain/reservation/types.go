package reservation

import (
	"errors"
	"strings"
)

var (
	ErrUnknownDiscountCode = errors.New("unknown discount code")
	ErrDiscountNotEligible = errors.New("discount code precondition not met")
)

// DiscountCode is the closed set of promotional codes a reservation may
// carry. At most one code is stored per reservation; the code and its
// effect are frozen at booking time.
type DiscountCode string

const (
	DiscountNone           DiscountCode = ""
	DiscountStaff          DiscountCode = "I_WORK_HERE"
	DiscountStayFourGetOne DiscountCode = "STAY4_GET1"
	DiscountPayday         DiscountCode = "PAYDAY"
)

// ParseDiscountCode maps raw caller input to a code. An empty string means
// no discount; anything outside the closed set is rejected.
func ParseDiscountCode(s string) (DiscountCode, error) {
	switch DiscountCode(strings.TrimSpace(s)) {
	case DiscountNone:
		return DiscountNone, nil
	case DiscountStaff:
		return DiscountStaff, nil
	case DiscountStayFourGetOne:
		return DiscountStayFourGetOne, nil
	case DiscountPayday:
		return DiscountPayday, nil
	default:
		return DiscountNone, ErrUnknownDiscountCode
	}
}

func (c DiscountCode) String() string {
	return string(c)
}

// Validate checks the code's precondition against the stay.
// Staff discounts are always eligible. STAY4_GET1 needs five or more
// nights. PAYDAY needs the stay to cover day 15 as an occupied day, or
// day 30 with a check-out on day 31.
func (c DiscountCode) Validate(stay Stay) error {
	switch c {
	case DiscountNone, DiscountStaff:
		return nil
	case DiscountStayFourGetOne:
		if stay.Nights() < 5 {
			return ErrDiscountNotEligible
		}
		return nil
	case DiscountPayday:
		if stay.Contains(15) || (stay.CheckIn() <= 30 && stay.CheckOut() == LastDay) {
			return nil
		}
		return ErrDiscountNotEligible
	default:
		return ErrUnknownDiscountCode
	}
}

// Apply computes the discounted total. firstNight is the cost of the
// check-in night including any rate override for that day; it is only
// consulted by STAY4_GET1, which gives that night for free.
func (c DiscountCode) Apply(total, firstNight Money) (Money, error) {
	switch c {
	case DiscountNone:
		return total, nil
	case DiscountStaff:
		return NewMoneyFromFloat(total.Amount() * 0.90)
	case DiscountStayFourGetOne:
		return total.Sub(firstNight), nil
	case DiscountPayday:
		return NewMoneyFromFloat(total.Amount() * 0.93)
	default:
		return Money{}, ErrUnknownDiscountCode
	}
}

// Description is the human-readable summary rendered to the caller after a
// successful application.
func (c DiscountCode) Description() string {
	switch c {
	case DiscountStaff:
		return "10% off the overall price of the reservation"
	case DiscountStayFourGetOne:
		return "the first night of the reservation is free"
	case DiscountPayday:
		return "7% off the overall price of the reservation"
	default:
		return "no discount"
	}
}
