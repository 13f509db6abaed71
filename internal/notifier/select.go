package notifier

import (
	"io"

	"github.com/Domenick1991/airport-pps/config"
	"github.com/Domenick1991/airport-pps/internal/kafka"
	"github.com/Domenick1991/airport-pps/internal/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// FromConfig picks the boarding event channel once: Kafka when brokers are
// configured, otherwise AMQP when a broker URL is set, otherwise the inert
// notifier. The returned Closer releases the channel's resources.
func FromConfig(cfg *config.Config, log *logger.Logger) (Notifier, io.Closer) {
	switch {
	case len(cfg.Kafka.Brokers) > 0:
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		log.Info("boarding events go to kafka", "topic", cfg.Kafka.BoardingTopic)
		return NewKafkaNotifier(producer, cfg.Kafka.BoardingTopic), producer
	case cfg.AMQP.URL != "":
		log.Info("boarding events go to amqp", "exchange", cfg.AMQP.Exchange)
		return NewAMQPNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange), nopCloser{}
	default:
		log.Warn("no boarding event channel configured, events will be dropped")
		return NewNopNotifier(log), nopCloser{}
	}
}
