package api

import (
	"time"

	"github.com/Domenick1991/airport-pps/internal/domain"
)

type passengerResponse struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"fullName"`
	BookingReference string    `json:"bookingReference"`
	FlightNumber     string    `json:"flightNumber"`
	SeatNumber       *string   `json:"seatNumber"`
	CheckInStatus    string    `json:"checkInStatus"`
	CreatedAt        time.Time `json:"createdAt"`
}

type boardResponse struct {
	passengerResponse
	EventPublished bool `json:"eventPublished"`
}

type bagResponse struct {
	ID           int64         `json:"id"`
	BagTagNumber string        `json:"bagTagNumber"`
	WeightKg     domain.Weight `json:"weightKg"`
	Status       string        `json:"status"`
	RegisteredAt time.Time     `json:"registeredAt"`
}

type flightResponse struct {
	ID                 int64     `json:"id"`
	FlightNumber       string    `json:"flightNumber"`
	Origin             string    `json:"origin"`
	Destination        string    `json:"destination"`
	ScheduledDeparture time.Time `json:"scheduledDeparture"`
	Status             string    `json:"status"`
	Gate               *string   `json:"gate"`
	PassengerCount     int       `json:"passengerCount"`
}

type manifestEntryResponse struct {
	FullName         string        `json:"fullName"`
	BookingReference string        `json:"bookingReference"`
	SeatNumber       *string       `json:"seatNumber"`
	CheckInStatus    string        `json:"checkInStatus"`
	Bags             []bagResponse `json:"bags"`
}

type flightStatsResponse struct {
	FlightNumber              string        `json:"flightNumber"`
	TotalPassengers           int           `json:"totalPassengers"`
	CheckedIn                 int           `json:"checkedIn"`
	Boarded                   int           `json:"boarded"`
	NotCheckedIn              int           `json:"notCheckedIn"`
	NoShows                   int           `json:"noShows"`
	TotalBagWeightKg          domain.Weight `json:"totalBagWeightKg"`
	TotalBags                 int           `json:"totalBags"`
	AllPassengersAccountedFor bool          `json:"allPassengersAccountedFor"`
}

// optional maps the empty string to JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toPassengerResponse(p *domain.Passenger) passengerResponse {
	return passengerResponse{
		ID:               p.ID,
		FullName:         p.FullName,
		BookingReference: p.BookingReference,
		FlightNumber:     p.FlightNumber,
		SeatNumber:       optional(p.SeatNumber),
		CheckInStatus:    string(p.CheckInStatus),
		CreatedAt:        p.CreatedAt,
	}
}

func toBagResponse(b *domain.BagDrop) bagResponse {
	return bagResponse{
		ID:           b.ID,
		BagTagNumber: b.BagTagNumber,
		WeightKg:     b.Weight,
		Status:       string(b.Status),
		RegisteredAt: b.RegisteredAt,
	}
}

func toBagResponses(bags []domain.BagDrop) []bagResponse {
	out := make([]bagResponse, 0, len(bags))
	for i := range bags {
		out = append(out, toBagResponse(&bags[i]))
	}
	return out
}

func toFlightResponse(f *domain.FlightSummary) flightResponse {
	return flightResponse{
		ID:                 f.ID,
		FlightNumber:       f.FlightNumber,
		Origin:             f.Origin,
		Destination:        f.Destination,
		ScheduledDeparture: f.ScheduledDeparture,
		Status:             string(f.Status),
		Gate:               optional(f.Gate),
		PassengerCount:     f.PassengerCount,
	}
}

func toManifestResponse(entries []domain.ManifestEntry) []manifestEntryResponse {
	out := make([]manifestEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, manifestEntryResponse{
			FullName:         e.FullName,
			BookingReference: e.BookingReference,
			SeatNumber:       optional(e.SeatNumber),
			CheckInStatus:    string(e.CheckInStatus),
			Bags:             toBagResponses(e.Bags),
		})
	}
	return out
}

func toStatsResponse(s *domain.FlightStats) flightStatsResponse {
	return flightStatsResponse{
		FlightNumber:              s.FlightNumber,
		TotalPassengers:           s.TotalPassengers,
		CheckedIn:                 s.CheckedIn,
		Boarded:                   s.Boarded,
		NotCheckedIn:              s.NotCheckedIn,
		NoShows:                   s.NoShows,
		TotalBagWeightKg:          s.TotalBagWeight,
		TotalBags:                 s.TotalBags,
		AllPassengersAccountedFor: s.AllPassengersAccountedFor,
	}
}
