//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReservations(t *testing.T) {
	store, h := seedStore(t)
	first := bookRoom(t, h, "MG01", 10, 13)
	bookRoom(t, h, "MG02", 5, 8)

	items, err := queries.NewReservationQueries(store).List(context.Background(), "Manila Grand")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, first.ID(), items[0].ID)
	assert.Equal(t, "MG01", items[0].RoomName)
	assert.Equal(t, 10, items[0].CheckIn)
	assert.Equal(t, 13, items[0].CheckOut)
	assert.InDelta(t, 3000.0, items[0].Total, 1e-9)
	assert.Equal(t, bookedAt, items[0].CreatedAt)
}

func TestGetReservation(t *testing.T) {
	t.Run("includes the nightly breakdown", func(t *testing.T) {
		store, h := seedStore(t)
		res := bookRoom(t, h, "MG04", 10, 13)

		view, err := queries.NewReservationQueries(store).Get(context.Background(), "Manila Grand", res.ID())
		require.NoError(t, err)

		assert.Equal(t, res.ID(), view.ID)
		assert.Equal(t, "Jose Rizal", view.GuestName)
		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, "none", view.Package)
		assert.InDelta(t, 3600.0, view.Total, 1e-9)
		require.Len(t, view.Breakdown, 3)
		assert.Equal(t, 10, view.Breakdown[0].Day)
		assert.InDelta(t, 1200.0, view.Breakdown[0].Price, 1e-9)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		store, _ := seedStore(t)
		_, err := queries.NewReservationQueries(store).Get(context.Background(), "Manila Grand", uuid.New())
		assert.ErrorIs(t, err, hotel.ErrReservationNotFound)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		store, _ := seedStore(t)
		_, err := queries.NewReservationQueries(store).Get(context.Background(), "Nowhere", uuid.New())
		assert.ErrorIs(t, err, errs.ErrHotelNotFound)
	})
}
