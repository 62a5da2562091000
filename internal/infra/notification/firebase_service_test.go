package notification

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	multicast []*messaging.MulticastMessage
	sent      []*messaging.Message
	batch     *messaging.BatchResponse
	err       error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/p/messages/1", nil
}

func (f *fakeMessagingClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = append(f.multicast, message)
	if f.err != nil {
		return nil, f.err
	}

	return f.batch, nil
}

func TestFirebaseService_SendBatchNotification(t *testing.T) {
	client := &fakeMessagingClient{batch: &messaging.BatchResponse{
		SuccessCount: 2,
		Responses:    []*messaging.SendResponse{{Success: true}, {Success: true}},
	}}
	svc := &firebaseService{client: client}

	ok, failed, invalid, err := svc.SendBatchNotification(context.Background(),
		[]string{"t1", "t2"}, "🚨 SOS nearby", "body", map[string]string{"type": "sos_alert"})
	require.NoError(t, err)
	assert.Equal(t, 2, ok)
	assert.Zero(t, failed)
	assert.Empty(t, invalid)

	require.Len(t, client.multicast, 1)
	msg := client.multicast[0]
	assert.Equal(t, []string{"t1", "t2"}, msg.Tokens)
	assert.Equal(t, "high", msg.Android.Priority)
	assert.Equal(t, "sos_alert", msg.Data["type"])
}

func TestFirebaseService_SendBatchNotification_Limits(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}

	ok, failed, invalid, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, ok+failed)
	assert.Nil(t, invalid)

	tokens := make([]string, maxMulticastTokens+1)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("t%d", i)
	}
	_, _, _, err = svc.SendBatchNotification(context.Background(), tokens, "t", "b", nil)
	assert.Error(t, err)
	assert.Empty(t, client.multicast)
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}

	require.NoError(t, svc.SendTopicNotification(context.Background(), "sos-authority", "🚨 SOS alert", "body", nil))
	require.Len(t, client.sent, 1)
	assert.Equal(t, "sos-authority", client.sent[0].Topic)

	client.err = fmt.Errorf("unavailable")
	assert.Error(t, svc.SendTopicNotification(context.Background(), "sos-authority", "t", "b", nil))
}

func TestLogNotificationService(t *testing.T) {
	var buf bytes.Buffer
	svc := NewLogNotificationService(slog.New(slog.NewJSONHandler(&buf, nil)))

	ok, failed, _, err := svc.SendBatchNotification(context.Background(), []string{"a", "b", "c"}, "title", "body", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, ok)
	assert.Zero(t, failed)

	require.NoError(t, svc.SendTopicNotification(context.Background(), "sos-authority", "title", "body", nil))
	assert.Contains(t, buf.String(), `"topic":"sos-authority"`)
}
