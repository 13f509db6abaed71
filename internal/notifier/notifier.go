// Package notifier publishes boarding events to downstream systems
// (baggage reconciliation, catering, departure control). The active channel is
// chosen once at startup; the lifecycle manager only sees the Notifier interface.
package notifier

import (
	"context"

	"github.com/Domenick1991/airport-pps/internal/domain"
)

type Notifier interface {
	Publish(ctx context.Context, event domain.BoardingEvent) error
}

// NopNotifier is used when no event channel is configured. It never fails.
type NopNotifier struct {
	log warner
}

type warner interface {
	Warn(msg string, keysAndValues ...interface{})
}

func NewNopNotifier(log warner) *NopNotifier {
	return &NopNotifier{log: log}
}

func (n *NopNotifier) Publish(ctx context.Context, event domain.BoardingEvent) error {
	if n.log != nil {
		n.log.Warn("event channel not configured, boarding event was not published",
			"booking_reference", event.BookingReference,
			"flight_number", event.FlightNumber)
	}
	return nil
}

var _ Notifier = (*NopNotifier)(nil)
