package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatRow(t *testing.T) {
	assert.Equal(t, 2, SeatRow("2A"))
	assert.Equal(t, 14, SeatRow("14B"))
	assert.Equal(t, 123, SeatRow("123K"))
	assert.Equal(t, 0, SeatRow("A1"))
	assert.Equal(t, 0, SeatRow(""))
}

func TestIdentifierValidation(t *testing.T) {
	assert.True(t, ValidBookingReference("abc123"))
	assert.True(t, ValidBookingReference("ABC123"))
	assert.False(t, ValidBookingReference("ABC12"))
	assert.False(t, ValidBookingReference("ABC-12"))

	assert.True(t, ValidBagTag("0123456789"))
	assert.False(t, ValidBagTag("012345678"))
	assert.False(t, ValidBagTag("01234567AB"))

	assert.True(t, ValidSeatNumber("14A"))
	assert.True(t, ValidSeatNumber("1C"))
	assert.False(t, ValidSeatNumber("14a"))
	assert.False(t, ValidSeatNumber("1234A"))

	assert.Equal(t, "EZY1234", NormalizeFlightNumber(" ezy1234 "))
	assert.Equal(t, "ABC123", NormalizeBookingReference("abc123"))
}

func TestValidFlightNumber(t *testing.T) {
	for _, ok := range []string{"EZY1234", "BA0456", "ba456", "U21234", "DL1A"} {
		assert.True(t, ValidFlightNumber(ok), ok)
	}
	for _, bad := range []string{"", "E1", "EZY12345", "BA-456", "EZY 123"} {
		assert.False(t, ValidFlightNumber(bad), bad)
	}
}
