package reconcile

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/logger"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardingMessage(t *testing.T, event domain.BoardingEvent, subject string) kafkaGo.Message {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return kafkaGo.Message{
		Key:     []byte(event.BookingReference),
		Value:   payload,
		Headers: []kafkaGo.Header{{Key: "subject", Value: []byte(subject)}},
	}
}

func TestRecorder_HandleMessage(t *testing.T) {
	r := NewRecorder(logger.NewNop())
	ctx := context.Background()

	event := domain.BoardingEvent{
		EventID:          "evt-1",
		BookingReference: "ABC123",
		FlightNumber:     "EZY1234",
		PassengerName:    "Jane Smith",
		SeatNumber:       "14A",
		BoardedAtUtc:     time.Date(2026, 2, 19, 14, 30, 0, 0, time.UTC),
	}

	require.NoError(t, r.HandleMessage(ctx, boardingMessage(t, event, domain.BoardingSubject)))
	assert.Equal(t, 1, r.Boarded("EZY1234"))

	// Redelivery of the same event is counted once.
	require.NoError(t, r.HandleMessage(ctx, boardingMessage(t, event, domain.BoardingSubject)))
	assert.Equal(t, 1, r.Boarded("EZY1234"))

	event.EventID = "evt-2"
	event.BookingReference = "DEF456"
	require.NoError(t, r.HandleMessage(ctx, boardingMessage(t, event, domain.BoardingSubject)))
	assert.Equal(t, 2, r.Boarded("EZY1234"))
}

func TestRecorder_HandleMessage_SkipsBadInput(t *testing.T) {
	r := NewRecorder(logger.NewNop())
	ctx := context.Background()

	assert.NoError(t, r.HandleMessage(ctx, kafkaGo.Message{Value: []byte("{not json")}))

	other := boardingMessage(t, domain.BoardingEvent{EventID: "x", FlightNumber: "EZY1234"}, "passenger.checked_in")
	assert.NoError(t, r.HandleMessage(ctx, other))

	assert.Zero(t, r.Boarded("EZY1234"))
}

func TestRecorder_DedupWindowIsBounded(t *testing.T) {
	r := newRecorder(logger.NewNop(), 3)
	ctx := context.Background()
	record := func(id string) {
		require.NoError(t, r.Record(ctx, domain.BoardingEvent{EventID: id, FlightNumber: "BA0456"}))
	}

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		record(id)
	}
	assert.Len(t, r.seen, 3)
	assert.Equal(t, 5, r.Boarded("BA0456"))

	// recent ids are still recognised
	record("e")
	assert.Equal(t, 5, r.Boarded("BA0456"))

	// evicted ids are counted again
	record("a")
	assert.Equal(t, 6, r.Boarded("BA0456"))
	assert.Len(t, r.seen, 3)
}
