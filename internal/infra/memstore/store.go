// Package memstore keeps the hotel collection in process memory. State
// lives for the lifetime of the process only; a restart loses all hotels,
// reservations and overrides.
package memstore

import (
	"sync"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/pkg/errs"
)

// Store is the single mutual-exclusion scope around the hotel collection.
// Mutating operations run under the write lock, read-only queries under the
// read lock; aggregate invariants rely on no interleaved writers.
type Store struct {
	mu     sync.RWMutex
	hotels []*hotel.Hotel
}

func New() *Store {
	return &Store{}
}

func (s *Store) find(name string) (*hotel.Hotel, bool) {
	for _, h := range s.hotels {
		if h.Name() == name {
			return h, true
		}
	}
	return nil, false
}

// Create inserts a hotel. Name uniqueness across the collection is
// enforced here, at the caller layer, not by the Hotel entity.
func (s *Store) Create(h *hotel.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.find(h.Name()); ok {
		return errs.ErrHotelNameTaken
	}
	s.hotels = append(s.hotels, h)
	return nil
}

func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, h := range s.hotels {
		if h.Name() == name {
			s.hotels = append(s.hotels[:i], s.hotels[i+1:]...)
			return nil
		}
	}
	return errs.ErrHotelNotFound
}

// Rename changes a hotel's name, re-checking uniqueness under the same
// lock that guards the collection scan.
func (s *Store) Rename(name, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.find(name)
	if !ok {
		return errs.ErrHotelNotFound
	}
	if other, taken := s.find(newName); taken && other != h {
		return errs.ErrHotelNameTaken
	}
	return h.Rename(newName)
}

// Update runs fn against the named hotel under the write lock.
func (s *Store) Update(name string, fn func(*hotel.Hotel) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.find(name)
	if !ok {
		return errs.ErrHotelNotFound
	}
	return fn(h)
}

// View runs fn against the named hotel under the read lock. fn must not
// mutate the aggregate and must not retain references past its return.
func (s *Store) View(name string, fn func(*hotel.Hotel) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.find(name)
	if !ok {
		return errs.ErrHotelNotFound
	}
	return fn(h)
}

// ViewAll runs fn against the whole collection, in creation order, under
// the read lock.
func (s *Store) ViewAll(fn func([]*hotel.Hotel) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.hotels)
}
