package reconcile

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/kafka"
	"github.com/Domenick1991/airport-pps/internal/logger"
	kafkaGo "github.com/segmentio/kafka-go"
)

// dedupWindow is how many recent event ids are remembered. Kafka redelivers
// after a rebalance or restart from the last committed offset, so duplicates
// arrive close to the original.
const dedupWindow = 10000

// Recorder is the baggage reconciliation side of a boarding event: it logs
// each boarded passenger and keeps a per-flight tally. Redelivered events are
// recognised by event id and counted once.
type Recorder struct {
	log *logger.Logger

	mu      sync.Mutex
	seen    map[string]struct{}
	recent  []string // ring of ids in seen, oldest evicted first
	next    int
	boarded map[string]int
}

func NewRecorder(log *logger.Logger) *Recorder {
	return newRecorder(log, dedupWindow)
}

func newRecorder(log *logger.Logger, window int) *Recorder {
	return &Recorder{
		log:     log,
		seen:    make(map[string]struct{}, window),
		recent:  make([]string, window),
		boarded: make(map[string]int),
	}
}

// remember adds id to the window, evicting the oldest id once full.
func (r *Recorder) remember(id string) {
	if old := r.recent[r.next]; old != "" {
		delete(r.seen, old)
	}
	r.recent[r.next] = id
	r.seen[id] = struct{}{}
	r.next = (r.next + 1) % len(r.recent)
}

func (r *Recorder) Record(ctx context.Context, event domain.BoardingEvent) error {
	r.mu.Lock()
	if _, dup := r.seen[event.EventID]; dup && event.EventID != "" {
		r.mu.Unlock()
		r.log.Debug("duplicate boarding event skipped", "event_id", event.EventID)
		return nil
	}
	if event.EventID != "" {
		r.remember(event.EventID)
	}
	r.boarded[event.FlightNumber]++
	total := r.boarded[event.FlightNumber]
	r.mu.Unlock()

	r.log.Info("passenger boarded, bags cleared for loading",
		"event_id", event.EventID,
		"booking_reference", event.BookingReference,
		"flight", event.FlightNumber,
		"passenger", event.PassengerName,
		"seat", event.SeatNumber,
		"boarded_at", event.BoardedAtUtc,
		"flight_boarded_total", total)
	return nil
}

// Boarded returns how many distinct boarding events were recorded for the flight.
func (r *Recorder) Boarded(flightNumber string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.boarded[flightNumber]
}

// HandleMessage decodes a Kafka boarding message and records it. Messages for
// other subjects and undecodable payloads are logged and skipped so one bad
// message never stalls the consumer.
func (r *Recorder) HandleMessage(ctx context.Context, msg kafkaGo.Message) error {
	if subject := kafka.Header(msg, "subject"); subject != "" && subject != domain.BoardingSubject {
		r.log.Debug("ignoring message", "subject", subject, "offset", msg.Offset)
		return nil
	}

	var event domain.BoardingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		r.log.Warn("decode boarding event failed", "error", err, "offset", msg.Offset, "partition", msg.Partition)
		return nil
	}
	return r.Record(ctx, event)
}
