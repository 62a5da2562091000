package worker

import (
	"context"
	"io"
	"log/slog"
	"time"

	"tidewise/config"
	"tidewise/internal/delivery"
	"tidewise/internal/delivery/worker/handler"
	"tidewise/internal/domain/constants"
	"tidewise/internal/errors"
	"tidewise/internal/usecase"

	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const kafkaRetryBackoff = 2 * time.Second

// messageReader is the subset of *kafkago.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// kafkaConsumer relays SOS alert events read from the Kafka topic. A message
// is committed once relayed or found malformed; a retryable failure is retried
// in place after a backoff, holding back the partition.
type kafkaConsumer struct {
	reader  messageReader
	relayUC usecase.AlertRelayUsecase
	clock   clockwork.Clock
	logger  *slog.Logger
}

// KafkaConsumerParams holds dependencies for the Kafka consumer.
type KafkaConsumerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Clock   clockwork.Clock
	RelayUC usecase.AlertRelayUsecase
}

// NewKafkaConsumer creates the consumer when the kafka provider is configured,
// and an idle delivery otherwise.
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderKafka {
		return idleDelivery{}, nil
	}

	kcfg := params.Cfg.PubSub.Kafka
	if len(kcfg.Brokers) == 0 || kcfg.Topic == "" {
		return nil, errors.New("kafka brokers and topic are required for kafka provider")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     kcfg.Brokers,
		Topic:       kcfg.Topic,
		GroupID:     kcfg.GroupID,
		StartOffset: kafkago.FirstOffset,
	})

	consumer := &kafkaConsumer{
		reader:  reader,
		relayUC: params.RelayUC,
		clock:   params.Clock,
		logger:  params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(reader.Close())
		},
	})

	return consumer, nil
}

// Serve fetches messages until ctx ends or the reader is closed.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	k.logger.Info("Starting Kafka SOS alert consumer")

	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			// io.EOF means the reader was closed on shutdown.
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}

			return errors.Wrap(err, "fetch kafka message")
		}

		for !k.handle(ctx, msg) {
			select {
			case <-ctx.Done():
				return nil
			case <-k.clock.After(kafkaRetryBackoff):
			}
		}

		if err := k.reader.CommitMessages(ctx, msg); err != nil {
			k.logger.Error("[Worker] Failed to commit kafka message",
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}

// handle relays one message and reports whether it may be committed.
func (k *kafkaConsumer) handle(ctx context.Context, msg kafkago.Message) bool {
	event, err := handler.DecodeSOSAlertEvent(msg.Value)
	if err != nil {
		k.logger.Error("[Worker] Dropping malformed kafka message",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return true
	}

	attributes := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		attributes[h.Key] = string(h.Value)
	}

	err = handler.Relay(ctx, k.relayUC, k.logger, requestIDFrom(attributes, event.RequestID), event)

	return err == nil || !usecase.IsRetryable(err)
}

func requestIDFrom(attributes map[string]string, fallback string) string {
	if id := attributes["request_id"]; id != "" {
		return id
	}

	return fallback
}

// idleDelivery blocks until shutdown.
type idleDelivery struct{}

func (idleDelivery) Serve(ctx context.Context) error {
	<-ctx.Done()

	return nil
}
