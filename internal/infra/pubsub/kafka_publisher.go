package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tidewise/config"
	"tidewise/internal/domain/service"

	"github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
)

const defaultKafkaWriteTimeout = 10 * time.Second

// messageWriter is the subset of *kafkago.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic. Messages are keyed
// by the distress boat so one boat's alerts land on one partition in order.
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a Kafka producer for the configured topic.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("at least one broker is required for kafka provider")
	}
	if cfg.Topic == "" {
		return nil, errors.New("topic is required for kafka provider")
	}
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = defaultKafkaWriteTimeout
	}

	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		WriteTimeout: timeout,
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.Topic),
	)

	return &kafkaPublisher{writer: w, logger: logger}, nil
}

// PublishSOSAlert writes the event as one JSON message.
func (p *kafkaPublisher) PublishSOSAlert(ctx context.Context, event *service.SOSAlertEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "write sos alert to kafka")
	}

	p.logger.Info("[Kafka] SOS alert published",
		slog.String("sos_id", event.SOSID),
		slog.Int("alert_count", len(event.Alerts)),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}

func serializeToMessage(event *service.SOSAlertEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, errors.Wrap(err, "serialize sos alert event")
	}

	attributes := event.EventAttributes()
	headers := make([]kafkago.Header, 0, len(attributes)+1)
	for _, key := range []string{"sos_id", "boat_id", "request_id"} {
		if v, ok := attributes[key]; ok {
			headers = append(headers, kafkago.Header{Key: key, Value: []byte(v)})
		}
	}
	headers = append(headers, kafkago.Header{Key: "event_time", Value: []byte(event.Time.UTC().Format(time.RFC3339))})

	return kafkago.Message{
		Key:     []byte(event.BoatID),
		Value:   data,
		Headers: headers,
	}, nil
}
