//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/infra/memstore"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func seedStore(t *testing.T) (*memstore.Store, *hotel.Hotel) {
	t.Helper()
	store := memstore.New()
	h, err := builder.NewHotelBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Create(h))
	return store, h
}

func bookRoom(t *testing.T, h *hotel.Hotel, roomName string, checkIn, checkOut int) *reservation.Reservation {
	t.Helper()
	rm, err := h.RoomByName(roomName)
	require.NoError(t, err)
	stay, err := reservation.NewStay(checkIn, checkOut)
	require.NoError(t, err)
	res, err := h.Book(uuid.New(), "Jose Rizal", stay, rm, reservation.DiscountNone, bookedAt)
	require.NoError(t, err)
	return res
}

func TestListHotels(t *testing.T) {
	store, h := seedStore(t)
	bookRoom(t, h, "MG01", 10, 13)

	other, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
		b.Name, b.Scheme = "Cebu Grand", "CG"
	}).BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Create(other))

	items, err := queries.NewHotelQueries(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Manila Grand", items[0].Name)
	assert.Equal(t, 6, items[0].RoomCount)
	assert.Equal(t, 1, items[0].ReservationCount)
	assert.Equal(t, "Cebu Grand", items[1].Name)
	assert.Equal(t, 0, items[1].ReservationCount)
}

func TestGetHotel(t *testing.T) {
	t.Run("per-type counts, earnings and sorted overrides", func(t *testing.T) {
		store, h := seedStore(t)
		require.NoError(t, h.SetRateOverride(20, 1.5))
		require.NoError(t, h.SetRateOverride(5, 0.8))
		bookRoom(t, h, "MG01", 10, 13)

		view, err := queries.NewHotelQueries(store).Get(context.Background(), "Manila Grand")
		require.NoError(t, err)

		assert.Equal(t, 6, view.RoomCount)
		assert.Equal(t, 3, view.StandardRooms)
		assert.Equal(t, 2, view.DeluxeRooms)
		assert.Equal(t, 1, view.ExecutiveRooms)
		assert.Equal(t, 1, view.ReservationCount)
		assert.InDelta(t, 3000.0, view.Earnings, 1e-9)
		require.Len(t, view.RateOverrides, 2)
		assert.Equal(t, 5, view.RateOverrides[0].Day)
		assert.Equal(t, 20, view.RateOverrides[1].Day)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		store, _ := seedStore(t)
		_, err := queries.NewHotelQueries(store).Get(context.Background(), "Nowhere")
		assert.ErrorIs(t, err, errs.ErrHotelNotFound)
	})
}

func TestRooms(t *testing.T) {
	t.Run("no filter lists everything", func(t *testing.T) {
		store, _ := seedStore(t)
		views, err := queries.NewHotelQueries(store).Rooms(context.Background(), "Manila Grand", queries.RoomFilter{})
		require.NoError(t, err)
		assert.Len(t, views, 6)
		assert.Equal(t, "MG01", views[0].Name)
		assert.Equal(t, "standard", views[0].Type)
		assert.InDelta(t, 1000.0, views[0].NightlyRate, 1e-9)
	})

	t.Run("type filter", func(t *testing.T) {
		store, _ := seedStore(t)
		views, err := queries.NewHotelQueries(store).Rooms(context.Background(), "Manila Grand", queries.RoomFilter{Type: "deluxe"})
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("type and dates produce booking candidates", func(t *testing.T) {
		store, h := seedStore(t)
		bookRoom(t, h, "MG04", 10, 13)

		views, err := queries.NewHotelQueries(store).Rooms(context.Background(), "Manila Grand", queries.RoomFilter{
			Type: "deluxe", CheckIn: 10, CheckOut: 13,
		})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "MG05", views[0].Name)
	})

	t.Run("no rooms of the type is an error, an empty candidate list is not", func(t *testing.T) {
		store, h := seedStore(t)
		bookRoom(t, h, "MG06", 10, 13)

		q := queries.NewHotelQueries(store)
		views, err := q.Rooms(context.Background(), "Manila Grand", queries.RoomFilter{
			Type: "executive", CheckIn: 10, CheckOut: 13,
		})
		require.NoError(t, err)
		assert.Empty(t, views)

		require.NoError(t, h.RemoveRoom("MG06"))
		_, err = q.Rooms(context.Background(), "Manila Grand", queries.RoomFilter{
			Type: "executive", CheckIn: 20, CheckOut: 22,
		})
		assert.ErrorIs(t, err, hotel.ErrNoRoomsOfType)
	})

	t.Run("dates without a type list all free rooms", func(t *testing.T) {
		store, h := seedStore(t)
		bookRoom(t, h, "MG01", 10, 13)

		views, err := queries.NewHotelQueries(store).Rooms(context.Background(), "Manila Grand", queries.RoomFilter{
			CheckIn: 10, CheckOut: 13,
		})
		require.NoError(t, err)
		assert.Len(t, views, 5)
	})

	t.Run("invalid filter values", func(t *testing.T) {
		store, _ := seedStore(t)
		q := queries.NewHotelQueries(store)

		_, err := q.Rooms(context.Background(), "Manila Grand", queries.RoomFilter{Type: "suite"})
		assert.ErrorIs(t, err, room.ErrUnknownType)

		_, err = q.Rooms(context.Background(), "Manila Grand", queries.RoomFilter{CheckIn: 13, CheckOut: 10})
		assert.ErrorIs(t, err, reservation.ErrInvalidStay)
	})
}

func TestAvailability(t *testing.T) {
	store, h := seedStore(t)
	bookRoom(t, h, "MG01", 28, 31)

	view, err := queries.NewHotelQueries(store).Availability(context.Background(), "Manila Grand", "MG01")
	require.NoError(t, err)
	assert.Equal(t, "MG01", view.RoomName)
	assert.Len(t, view.FreeDays, 27) // 28..31 blocked, including the day-31 closing rule
	assert.NotContains(t, view.FreeDays, 31)

	_, err = queries.NewHotelQueries(store).Availability(context.Background(), "Manila Grand", "MG99")
	assert.ErrorIs(t, err, hotel.ErrRoomNotFound)
}

func TestQuoteQuery(t *testing.T) {
	store, h := seedStore(t)
	require.NoError(t, h.SetRateOverride(5, 0.8))

	view, err := queries.NewHotelQueries(store).Quote(context.Background(), "Manila Grand", "MG01", 4, 6)
	require.NoError(t, err)

	assert.Equal(t, 4, view.CheckIn)
	assert.Equal(t, 6, view.CheckOut)
	assert.InDelta(t, 1800.0, view.Total, 1e-9)
	require.Len(t, view.Nights, 2)
	assert.False(t, view.Nights[0].Override)
	assert.True(t, view.Nights[1].Override)
	assert.InDelta(t, 800.0, view.Nights[1].Price, 1e-9)
}

func TestOccupancy(t *testing.T) {
	store, h := seedStore(t)
	bookRoom(t, h, "MG01", 10, 13)

	view, err := queries.NewHotelQueries(store).Occupancy(context.Background(), "Manila Grand", 11)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Available)
	assert.Equal(t, 1, view.Booked)

	_, err = queries.NewHotelQueries(store).Occupancy(context.Background(), "Manila Grand", 32)
	assert.ErrorIs(t, err, reservation.ErrInvalidStay)
}
