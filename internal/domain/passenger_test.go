package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassenger_CheckIn(t *testing.T) {
	now := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	for _, status := range []CheckInStatus{CheckInStatusNotCheckedIn, CheckInStatusCheckedIn, CheckInStatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			p := &Passenger{BookingReference: "ABC123", CheckInStatus: status, SeatNumber: "1A"}
			require.NoError(t, p.CheckIn("14C", now))
			assert.Equal(t, CheckInStatusCheckedIn, p.CheckInStatus)
			assert.Equal(t, "14C", p.SeatNumber)
			assert.Equal(t, now, p.UpdatedAt)
		})
	}

	t.Run("boarded", func(t *testing.T) {
		p := &Passenger{BookingReference: "ABC123", CheckInStatus: CheckInStatusBoarded, SeatNumber: "14A"}
		err := p.CheckIn("2B", now)
		assert.True(t, errors.Is(err, ErrConflict))
		assert.Contains(t, err.Error(), "already boarded")
		assert.Equal(t, "14A", p.SeatNumber)
	})
}

func TestPassenger_Board(t *testing.T) {
	now := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

	p := &Passenger{CheckInStatus: CheckInStatusCheckedIn}
	require.NoError(t, p.Board(now))
	assert.Equal(t, CheckInStatusBoarded, p.CheckInStatus)
	assert.Equal(t, now, p.UpdatedAt)

	for _, status := range []CheckInStatus{CheckInStatusNotCheckedIn, CheckInStatusBoarded, CheckInStatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			p := &Passenger{CheckInStatus: status}
			err := p.Board(now)
			assert.ErrorIs(t, err, ErrConflict)
			assert.Equal(t, status, p.CheckInStatus)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		p := &Passenger{CheckInStatus: "Teleported"}
		assert.ErrorIs(t, p.Board(now), ErrInvalidArgument)
	})
}

func TestPassenger_CanRegisterBag(t *testing.T) {
	assert.NoError(t, (&Passenger{CheckInStatus: CheckInStatusCheckedIn}).CanRegisterBag())
	for _, status := range []CheckInStatus{CheckInStatusNotCheckedIn, CheckInStatusBoarded, CheckInStatusNoShow} {
		assert.ErrorIs(t, (&Passenger{CheckInStatus: status}).CanRegisterBag(), ErrConflict, status)
	}
}

func TestParseCheckInStatus(t *testing.T) {
	st, ok := ParseCheckInStatus("checkedin")
	assert.True(t, ok)
	assert.Equal(t, CheckInStatusCheckedIn, st)

	st, ok = ParseCheckInStatus("NOSHOW")
	assert.True(t, ok)
	assert.Equal(t, CheckInStatusNoShow, st)

	_, ok = ParseCheckInStatus("sleeping")
	assert.False(t, ok)
}
