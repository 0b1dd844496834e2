package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestName    = errors.New("guest name cannot be empty")
	ErrUnknownPackage    = errors.New("unknown package")
	ErrPackageAlreadySet = errors.New("reservation already has a package")
	ErrStayTooShort      = errors.New("packages require a stay of three or more nights")
)

// PackageNone marks a reservation without a package selection.
const PackageNone = "none"

// Packages is the fixed catalogue a guest can attach to a reservation.
var Packages = []string{
	"breakfast", "lunch", "dinner",
	"foot-spa", "facial", "massage",
	"binondo-food-tour", "rizal-park-tour", "intramuros-tour",
}

// Reservation is a date-bound booking of a single room. It references the
// room by name only and never owns it. The total price and the discount
// code are frozen at booking time; the entity exposes no way to re-apply a
// discount afterwards.
type Reservation struct {
	id        uuid.UUID
	guestName string
	roomName  string
	stay      Stay
	total     Money
	discount  DiscountCode
	pkg       string
	createdAt time.Time
}

func NewReservation(
	id uuid.UUID,
	guestName string,
	roomName string,
	stay Stay,
	total Money,
	discount DiscountCode,
	createdAt time.Time,
) (*Reservation, error) {
	if guestName == "" {
		return nil, ErrEmptyGuestName
	}
	if roomName == "" {
		return nil, errors.New("room name cannot be empty")
	}
	return &Reservation{
		id:        id,
		guestName: guestName,
		roomName:  roomName,
		stay:      stay,
		total:     total,
		discount:  discount,
		pkg:       PackageNone,
		createdAt: createdAt,
	}, nil
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) GuestName() string     { return r.guestName }
func (r *Reservation) RoomName() string      { return r.roomName }
func (r *Reservation) Stay() Stay            { return r.stay }
func (r *Reservation) Total() Money          { return r.total }
func (r *Reservation) Discount() DiscountCode { return r.discount }
func (r *Reservation) Package() string       { return r.pkg }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }

func (r *Reservation) HasPackage() bool {
	return r.pkg != PackageNone
}

// ChoosePackage attaches a package to the reservation. Only stays of three
// or more nights qualify, and a reservation carries at most one package for
// its lifetime.
func (r *Reservation) ChoosePackage(name string) error {
	if r.HasPackage() {
		return ErrPackageAlreadySet
	}
	if r.stay.Nights() < 3 {
		return ErrStayTooShort
	}
	for _, p := range Packages {
		if p == name {
			r.pkg = name
			return nil
		}
	}
	return ErrUnknownPackage
}
