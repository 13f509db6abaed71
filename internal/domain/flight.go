package domain

import (
	"strings"
	"time"
)

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "Scheduled"
	FlightStatusBoarding  FlightStatus = "Boarding"
	FlightStatusDeparted  FlightStatus = "Departed"
	FlightStatusCancelled FlightStatus = "Cancelled"
	FlightStatusDelayed   FlightStatus = "Delayed"
)

// ParseFlightStatus matches s case-insensitively against the known statuses.
func ParseFlightStatus(s string) (FlightStatus, bool) {
	for _, st := range []FlightStatus{
		FlightStatusScheduled,
		FlightStatusBoarding,
		FlightStatusDeparted,
		FlightStatusCancelled,
		FlightStatusDelayed,
	} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

type Flight struct {
	ID                 int64
	FlightNumber       string
	Origin             string
	Destination        string
	ScheduledDeparture time.Time
	Status             FlightStatus
	Gate               string
}

// FlightSummary is a flight augmented with the number of passengers booked on it.
type FlightSummary struct {
	Flight
	PassengerCount int
}

// ManifestEntry is one passenger row of a flight manifest.
type ManifestEntry struct {
	FullName         string
	BookingReference string
	SeatNumber       string
	CheckInStatus    CheckInStatus
	Bags             []BagDrop
}

type FlightStats struct {
	FlightNumber              string
	TotalPassengers           int
	CheckedIn                 int
	Boarded                   int
	NotCheckedIn              int
	NoShows                   int
	TotalBagWeight            Weight
	TotalBags                 int
	AllPassengersAccountedFor bool
}
