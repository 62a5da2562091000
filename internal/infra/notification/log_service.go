package notification

import (
	"context"
	"log/slog"

	"tidewise/internal/domain/service"
)

type logService struct {
	logger *slog.Logger
}

// NewLogNotificationService logs pushes instead of sending them. It stands in
// for Firebase when no project is configured.
func NewLogNotificationService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.InfoContext(ctx, "Push notification",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data))

	return len(tokens), 0, nil, nil
}

func (s *logService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "Topic notification",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data))

	return nil
}
