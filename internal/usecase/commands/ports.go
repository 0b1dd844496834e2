package commands

import (
	"hotel-reservation/internal/domain/hotel"
)

// HotelStore is the write-side port over the hotel collection. Update runs
// its closure under the store's write lock, so every aggregate mutation is
// a single mutual-exclusion scope.
type HotelStore interface {
	Create(h *hotel.Hotel) error
	Remove(name string) error
	Rename(name, newName string) error
	Update(name string, fn func(*hotel.Hotel) error) error
	View(name string, fn func(*hotel.Hotel) error) error
}
