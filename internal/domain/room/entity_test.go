//go:build unit

package room_test

import (
	"testing"

	"hotel-reservation/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  room.Type
		errIs error
	}{
		{name: "standard", input: "standard", want: room.TypeStandard},
		{name: "deluxe", input: "deluxe", want: room.TypeDeluxe},
		{name: "executive", input: "executive", want: room.TypeExecutive},
		{name: "mixed case", input: "Deluxe", want: room.TypeDeluxe},
		{name: "surrounding whitespace", input: " executive ", want: room.TypeExecutive},
		{name: "unknown", input: "suite", errIs: room.ErrUnknownType},
		{name: "empty", input: "", errIs: room.ErrUnknownType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := room.ParseType(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewRoom(t *testing.T) {
	t.Run("starts available", func(t *testing.T) {
		r, err := room.NewRoom("MG01", room.TypeStandard, 1000.0)
		require.NoError(t, err)
		assert.Equal(t, room.StatusAvailable, r.Status())
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := room.NewRoom("", room.TypeStandard, 1000.0)
		assert.ErrorIs(t, err, room.ErrEmptyName)
	})

	t.Run("rejects an invalid type", func(t *testing.T) {
		_, err := room.NewRoom("MG01", room.Type("suite"), 1000.0)
		assert.ErrorIs(t, err, room.ErrUnknownType)
	})

	t.Run("price floor", func(t *testing.T) {
		_, err := room.NewRoom("MG01", room.TypeStandard, 99.99)
		assert.ErrorIs(t, err, room.ErrPriceTooLow)

		r, err := room.NewRoom("MG01", room.TypeStandard, room.MinBasePrice)
		require.NoError(t, err)
		assert.Equal(t, room.MinBasePrice, r.BasePrice())
	})
}

func TestNightlyRate(t *testing.T) {
	cases := []struct {
		name      string
		typ       room.Type
		basePrice float64
		want      float64
	}{
		{name: "standard has no surcharge", typ: room.TypeStandard, basePrice: 1299.0, want: 1299.0},
		{name: "deluxe adds twenty percent", typ: room.TypeDeluxe, basePrice: 1299.0, want: 1558.8},
		{name: "executive adds thirty-five percent", typ: room.TypeExecutive, basePrice: 1299.0, want: 1753.65},
		{name: "deluxe on a round base", typ: room.TypeDeluxe, basePrice: 1000.0, want: 1200.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := room.NewRoom("MG01", tc.typ, tc.basePrice)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, r.NightlyRate(), 1e-9)
		})
	}
}

func TestSetBasePrice(t *testing.T) {
	r, err := room.NewRoom("MG01", room.TypeDeluxe, 1000.0)
	require.NoError(t, err)

	assert.ErrorIs(t, r.SetBasePrice(50.0), room.ErrPriceTooLow)
	assert.Equal(t, 1000.0, r.BasePrice())

	require.NoError(t, r.SetBasePrice(1500.0))
	assert.Equal(t, 1500.0, r.BasePrice())
	assert.InDelta(t, 1800.0, r.NightlyRate(), 1e-9)
}
