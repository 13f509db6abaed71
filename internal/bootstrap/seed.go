package bootstrap

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/Domenick1991/airport-pps/internal/service/flights"
	"github.com/Domenick1991/airport-pps/internal/service/passengers"
)

var seedFlights = []flights.RegisterFlightInput{
	{
		FlightNumber:       "EZY1234",
		Origin:             "MAN",
		Destination:        "AMS",
		ScheduledDeparture: time.Date(2026, 2, 19, 15, 0, 0, 0, time.UTC),
		Status:             string(domain.FlightStatusBoarding),
		Gate:               "B14",
	},
	{
		FlightNumber:       "BA0456",
		Origin:             "MAN",
		Destination:        "LHR",
		ScheduledDeparture: time.Date(2026, 2, 19, 18, 0, 0, 0, time.UTC),
		Status:             string(domain.FlightStatusScheduled),
		Gate:               "A07",
	},
}

// Seed registers the demo flights and a checked-in passenger through the
// normal services. Data that already exists is left untouched.
func Seed(ctx context.Context, flightSvc flights.FlightUseCase, passengerSvc passengers.PassengerUseCase, log *logger.Logger) error {
	for _, in := range seedFlights {
		if _, err := flightSvc.Register(ctx, in); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			return err
		}
		log.Info("seeded flight", "flight", in.FlightNumber)
	}

	_, err := passengerSvc.Register(ctx, passengers.RegisterPassengerInput{
		FullName:         "Jane Smith",
		BookingReference: "ABC123",
		FlightNumber:     "EZY1234",
	})
	switch {
	case errors.Is(err, domain.ErrConflict):
		return nil
	case err != nil:
		return err
	}

	if _, err := passengerSvc.CheckIn(ctx, passengers.CheckInInput{BookingReference: "ABC123", SeatNumber: "14A"}); err != nil {
		return err
	}
	log.Info("seeded passenger", "booking_reference", "ABC123")
	return nil
}
