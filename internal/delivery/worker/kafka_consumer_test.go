package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tidewise/config"
	"tidewise/internal/domain/service"
	mockUsecase "tidewise/internal/mocks/usecase"
	"tidewise/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// scriptedReader hands out queued messages, then io.EOF as a closed reader does.
type scriptedReader struct {
	mu        sync.Mutex
	queue     []kafkago.Message
	committed []int64
}

func (r *scriptedReader) FetchMessage(context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) == 0 {
		return kafkago.Message{}, io.EOF
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]

	return msg, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}

	return nil
}

func (r *scriptedReader) Close() error { return nil }

func (r *scriptedReader) Committed() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int64(nil), r.committed...)
}

func eventMessage(t *testing.T, offset int64, sosID string) kafkago.Message {
	t.Helper()

	raw, err := json.Marshal(&service.SOSAlertEvent{SOSID: sosID, BoatID: "F-001"})
	require.NoError(t, err)

	return kafkago.Message{
		Offset:  offset,
		Value:   raw,
		Headers: []kafkago.Header{{Key: "request_id", Value: []byte("req-k")}},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaConsumer_CommitsRelayedAndMalformed(t *testing.T) {
	reader := &scriptedReader{queue: []kafkago.Message{
		eventMessage(t, 1, "0195a3c4-1d2e-7000-8000-000000000001"),
		{Offset: 2, Value: []byte("not json")},
		eventMessage(t, 3, "0195a3c4-1d2e-7000-8000-000000000003"),
	}}
	relayUC := mockUsecase.NewMockAlertRelayUsecase(t)
	relayUC.EXPECT().RelaySOSAlert(mock.Anything, mock.Anything).Return(&usecase.RelayResult{}, nil).Once()
	relayUC.EXPECT().RelaySOSAlert(mock.Anything, mock.Anything).Return(nil, errors.New("fcm quota")).Once()

	k := &kafkaConsumer{reader: reader, relayUC: relayUC, clock: clockwork.NewFakeClock(), logger: discardLogger()}

	require.NoError(t, k.Serve(context.Background()))
	assert.Equal(t, []int64{1, 2, 3}, reader.Committed())
}

func TestKafkaConsumer_RetriesRetryableInPlace(t *testing.T) {
	reader := &scriptedReader{queue: []kafkago.Message{eventMessage(t, 7, "0195a3c4-1d2e-7000-8000-000000000007")}}
	relayUC := mockUsecase.NewMockAlertRelayUsecase(t)
	relayUC.EXPECT().RelaySOSAlert(mock.Anything, mock.Anything).
		Return(nil, &usecase.RetryableError{Err: errors.New("db down")}).Once()
	relayUC.EXPECT().RelaySOSAlert(mock.Anything, mock.Anything).Return(&usecase.RelayResult{}, nil).Once()

	clock := clockwork.NewFakeClock()
	k := &kafkaConsumer{reader: reader, relayUC: relayUC, clock: clock, logger: discardLogger()}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- k.Serve(ctx) }()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Empty(t, reader.Committed())
	clock.Advance(kafkaRetryBackoff)

	require.NoError(t, <-done)
	assert.Equal(t, []int64{7}, reader.Committed())
}

func TestNewKafkaConsumer(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	params := KafkaConsumerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     cfg,
		Logger:  discardLogger(),
		Clock:   clockwork.NewFakeClock(),
		RelayUC: mockUsecase.NewMockAlertRelayUsecase(t),
	}

	d, err := NewKafkaConsumer(params)
	require.NoError(t, err)
	assert.IsType(t, idleDelivery{}, d)

	cfg.PubSub.Provider = "kafka"
	_, err = NewKafkaConsumer(params)
	require.Error(t, err)

	cfg.PubSub.Kafka.Brokers = []string{"localhost:9092"}
	d, err = NewKafkaConsumer(params)
	require.NoError(t, err)
	require.IsType(t, &kafkaConsumer{}, d)
	require.NoError(t, d.(*kafkaConsumer).reader.Close())
}
