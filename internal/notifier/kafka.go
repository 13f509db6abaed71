package notifier

import (
	"context"

	"github.com/Domenick1991/airport-pps/internal/domain"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}, headers ...kafkaGo.Header) error
}

// KafkaNotifier writes boarding events to a Kafka topic keyed by booking reference.
type KafkaNotifier struct {
	producer Producer
	topic    string
}

func NewKafkaNotifier(producer Producer, topic string) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic}
}

func (n *KafkaNotifier) Publish(ctx context.Context, event domain.BoardingEvent) error {
	err := n.producer.Publish(ctx, n.topic, event.BookingReference, event,
		kafkaGo.Header{Key: "subject", Value: []byte(domain.BoardingSubject)},
		kafkaGo.Header{Key: "content-type", Value: []byte("application/json")},
		kafkaGo.Header{Key: "event-id", Value: []byte(event.EventID)},
	)
	return domain.External("publish boarding event to kafka", err)
}

var _ Notifier = (*KafkaNotifier)(nil)
