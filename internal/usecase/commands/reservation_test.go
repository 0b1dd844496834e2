//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra/memstore"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationCommands(t *testing.T) (commands.ReservationCommands, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	h, err := builder.NewHotelBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Create(h))
	return commands.NewReservationCommands(store, clock.NewFrozenClock(frozenNow)), store
}

func TestBook(t *testing.T) {
	t.Run("manual booking uses the named room", func(t *testing.T) {
		cmds, _ := newReservationCommands(t)

		result, err := cmds.Book(context.Background(), commands.BookParams{
			HotelName: "Manila Grand",
			GuestName: "Jose Rizal",
			CheckIn:   10,
			CheckOut:  13,
			RoomName:  "MG04",
		})
		require.NoError(t, err)
		assert.Equal(t, "MG04", result.RoomName)
		assert.InDelta(t, 3600.0, result.Total, 1e-9) // 3 deluxe nights at 1200
		assert.NotEqual(t, uuid.Nil, result.ReservationID)
	})

	t.Run("automated booking first-fits in creation order", func(t *testing.T) {
		cmds, _ := newReservationCommands(t)

		first, err := cmds.Book(context.Background(), commands.BookParams{
			HotelName: "Manila Grand",
			GuestName: "Jose Rizal",
			CheckIn:   10,
			CheckOut:  13,
		})
		require.NoError(t, err)
		assert.Equal(t, "MG01", first.RoomName)

		second, err := cmds.Book(context.Background(), commands.BookParams{
			HotelName: "Manila Grand",
			GuestName: "Juan Luna",
			CheckIn:   11,
			CheckOut:  14,
		})
		require.NoError(t, err)
		assert.Equal(t, "MG02", second.RoomName)
	})

	t.Run("discount code is applied and described", func(t *testing.T) {
		cmds, _ := newReservationCommands(t)

		result, err := cmds.Book(context.Background(), commands.BookParams{
			HotelName:    "Manila Grand",
			GuestName:    "Jose Rizal",
			CheckIn:      10,
			CheckOut:     13,
			RoomName:     "MG01",
			DiscountCode: "I_WORK_HERE",
		})
		require.NoError(t, err)
		assert.InDelta(t, 2700.0, result.Total, 1e-9)
		assert.Equal(t, "I_WORK_HERE", result.Discount)
		assert.NotEmpty(t, result.DiscountNote)
	})

	t.Run("failures leave no reservation behind", func(t *testing.T) {
		cases := []struct {
			name   string
			params commands.BookParams
			errIs  error
		}{
			{
				name: "unknown hotel",
				params: commands.BookParams{
					HotelName: "Nowhere", GuestName: "A", CheckIn: 10, CheckOut: 13,
				},
				errIs: errs.ErrHotelNotFound,
			},
			{
				name: "unknown room",
				params: commands.BookParams{
					HotelName: "Manila Grand", GuestName: "A", CheckIn: 10, CheckOut: 13, RoomName: "MG99",
				},
				errIs: hotel.ErrRoomNotFound,
			},
			{
				name: "invalid stay",
				params: commands.BookParams{
					HotelName: "Manila Grand", GuestName: "A", CheckIn: 13, CheckOut: 10,
				},
				errIs: reservation.ErrInvalidStay,
			},
			{
				name: "unknown discount code",
				params: commands.BookParams{
					HotelName: "Manila Grand", GuestName: "A", CheckIn: 10, CheckOut: 13, DiscountCode: "HALF_OFF",
				},
				errIs: reservation.ErrUnknownDiscountCode,
			},
			{
				name: "ineligible discount",
				params: commands.BookParams{
					HotelName: "Manila Grand", GuestName: "A", CheckIn: 1, CheckOut: 4, DiscountCode: "PAYDAY",
				},
				errIs: reservation.ErrDiscountNotEligible,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cmds, store := newReservationCommands(t)
				_, err := cmds.Book(context.Background(), tc.params)
				assert.ErrorIs(t, err, tc.errIs)

				_ = store.View("Manila Grand", func(h *hotel.Hotel) error {
					assert.Empty(t, h.Reservations())
					return nil
				})
			})
		}
	})

	t.Run("occupied room cannot be double booked", func(t *testing.T) {
		cmds, _ := newReservationCommands(t)

		_, err := cmds.Book(context.Background(), commands.BookParams{
			HotelName: "Manila Grand", GuestName: "A", CheckIn: 10, CheckOut: 13, RoomName: "MG01",
		})
		require.NoError(t, err)

		_, err = cmds.Book(context.Background(), commands.BookParams{
			HotelName: "Manila Grand", GuestName: "B", CheckIn: 12, CheckOut: 14, RoomName: "MG01",
		})
		assert.ErrorIs(t, err, hotel.ErrRoomUnavailable)
	})
}

func TestChoosePackage(t *testing.T) {
	bookOne := func(t *testing.T, cmds commands.ReservationCommands, checkIn, checkOut int) uuid.UUID {
		t.Helper()
		result, err := cmds.Book(context.Background(), commands.BookParams{
			HotelName: "Manila Grand",
			GuestName: "Jose Rizal",
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			RoomName:  "MG01",
		})
		require.NoError(t, err)
		return result.ReservationID
	}

	t.Run("attaches a package once", func(t *testing.T) {
		cmds, store := newReservationCommands(t)
		id := bookOne(t, cmds, 10, 13)

		require.NoError(t, cmds.ChoosePackage(context.Background(), commands.ChoosePackageParams{
			HotelName: "Manila Grand", ReservationID: id, Package: "massage",
		}))

		err := cmds.ChoosePackage(context.Background(), commands.ChoosePackageParams{
			HotelName: "Manila Grand", ReservationID: id, Package: "breakfast",
		})
		assert.ErrorIs(t, err, reservation.ErrPackageAlreadySet)

		_ = store.View("Manila Grand", func(h *hotel.Hotel) error {
			res, err := h.ReservationByID(id)
			require.NoError(t, err)
			assert.Equal(t, "massage", res.Package())
			return nil
		})
	})

	t.Run("short stays do not qualify", func(t *testing.T) {
		cmds, _ := newReservationCommands(t)
		id := bookOne(t, cmds, 10, 12)

		err := cmds.ChoosePackage(context.Background(), commands.ChoosePackageParams{
			HotelName: "Manila Grand", ReservationID: id, Package: "massage",
		})
		assert.ErrorIs(t, err, reservation.ErrStayTooShort)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		cmds, _ := newReservationCommands(t)
		err := cmds.ChoosePackage(context.Background(), commands.ChoosePackageParams{
			HotelName: "Manila Grand", ReservationID: uuid.New(), Package: "massage",
		})
		assert.ErrorIs(t, err, hotel.ErrReservationNotFound)
	})
}

func TestCancel(t *testing.T) {
	cmds, store := newReservationCommands(t)

	result, err := cmds.Book(context.Background(), commands.BookParams{
		HotelName: "Manila Grand", GuestName: "Jose Rizal", CheckIn: 10, CheckOut: 13, RoomName: "MG01",
	})
	require.NoError(t, err)

	require.NoError(t, cmds.Cancel(context.Background(), "Manila Grand", result.ReservationID))
	assert.ErrorIs(t, cmds.Cancel(context.Background(), "Manila Grand", result.ReservationID), hotel.ErrReservationNotFound)

	// freed nights can be booked again
	_, err = cmds.Book(context.Background(), commands.BookParams{
		HotelName: "Manila Grand", GuestName: "Juan Luna", CheckIn: 10, CheckOut: 13, RoomName: "MG01",
	})
	assert.NoError(t, err)

	_ = store.View("Manila Grand", func(h *hotel.Hotel) error {
		assert.Len(t, h.Reservations(), 1)
		return nil
	})
}
