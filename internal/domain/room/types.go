package room

import (
	"errors"
	"strings"
)

var ErrUnknownType = errors.New("unknown room type")

type Type string

const (
	TypeStandard  Type = "standard"
	TypeDeluxe    Type = "deluxe"
	TypeExecutive Type = "executive"
)

func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeStandard:
		return TypeStandard, nil
	case TypeDeluxe:
		return TypeDeluxe, nil
	case TypeExecutive:
		return TypeExecutive, nil
	default:
		return "", ErrUnknownType
	}
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypeExecutive:
		return true
	default:
		return false
	}
}

// Surcharge returns the fraction added on top of the base price for the
// type: a deluxe room costs base + base*0.20 per night.
func (t Type) Surcharge() float64 {
	switch t {
	case TypeDeluxe:
		return 0.20
	case TypeExecutive:
		return 0.35
	default:
		return 0
	}
}

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
)

func (s Status) String() string {
	return string(s)
}
