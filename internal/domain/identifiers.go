package domain

import (
	"regexp"
	"strings"
)

var (
	bookingReferencePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)
	bagTagPattern           = regexp.MustCompile(`^\d{10}$`)
	seatNumberPattern       = regexp.MustCompile(`^\d{1,3}[A-Z]$`)
	airportCodePattern      = regexp.MustCompile(`^[A-Z]{3}$`)
	flightNumberPattern     = regexp.MustCompile(`^[A-Z0-9]{2}[A-Z]?\d{1,4}[A-Z]?$`)
)

// NormalizeBookingReference returns the canonical uppercase form of a PNR.
func NormalizeBookingReference(ref string) string {
	return strings.ToUpper(strings.TrimSpace(ref))
}

// NormalizeFlightNumber returns the canonical uppercase form of a flight number.
func NormalizeFlightNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

func ValidBookingReference(ref string) bool {
	return bookingReferencePattern.MatchString(NormalizeBookingReference(ref))
}

func ValidBagTag(tag string) bool {
	return bagTagPattern.MatchString(tag)
}

// ValidFlightNumber accepts an IATA or ICAO designator followed by up to four
// digits and an optional suffix, e.g. "BA0456" or "EZY1234".
func ValidFlightNumber(number string) bool {
	return flightNumberPattern.MatchString(NormalizeFlightNumber(number))
}

func ValidSeatNumber(seat string) bool {
	return seatNumberPattern.MatchString(seat)
}

func ValidAirportCode(code string) bool {
	return airportCodePattern.MatchString(code)
}

// SeatRow parses the leading digit run of a seat ("14A" -> 14). Seats without
// a leading number yield 0.
func SeatRow(seat string) int {
	row := 0
	for _, r := range seat {
		if r < '0' || r > '9' {
			break
		}
		row = row*10 + int(r-'0')
	}
	return row
}
