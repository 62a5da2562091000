package voice

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAnnouncer(t *testing.T) {
	var buf bytes.Buffer
	a := NewLogAnnouncer(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, a.Announce(context.Background(), "hi-IN", "खतरे का क्षेत्र"))
	assert.Contains(t, buf.String(), `"locale":"hi-IN"`)
	assert.Contains(t, buf.String(), `"msg":"Voice announcement"`)
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Announce(context.Background(), "en-IN", "one"))
	require.NoError(t, r.Announce(context.Background(), "te-IN", "two"))

	assert.Equal(t, []Announcement{{"en-IN", "one"}, {"te-IN", "two"}}, r.Announcements())
}
