package domain

import "time"

// BoardingSubject is the routing tag downstream subscribers filter on.
const BoardingSubject = "passenger.boarded"

// BoardingEvent is published once per successful board transition.
type BoardingEvent struct {
	EventID          string    `json:"eventId"`
	BookingReference string    `json:"bookingReference"`
	FlightNumber     string    `json:"flightNumber"`
	PassengerName    string    `json:"passengerName"`
	SeatNumber       string    `json:"seatNumber,omitempty"`
	BoardedAtUtc     time.Time `json:"boardedAtUtc"`
}
