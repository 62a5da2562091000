// Package voice holds the Announcer implementations.
package voice

import (
	"context"
	"log/slog"
	"sync"

	"tidewise/internal/domain/service"
)

type logAnnouncer struct {
	logger *slog.Logger
}

// NewLogAnnouncer writes each announcement as a structured log line.
func NewLogAnnouncer(logger *slog.Logger) service.Announcer {
	return &logAnnouncer{logger: logger}
}

func (a *logAnnouncer) Announce(ctx context.Context, locale, text string) error {
	a.logger.InfoContext(ctx, "Voice announcement",
		slog.String("locale", locale),
		slog.String("text", text),
	)

	return nil
}

// Announcement is one recorded call to Announce.
type Announcement struct {
	Locale string
	Text   string
}

// Recorder keeps every announcement in order.
type Recorder struct {
	mu   sync.Mutex
	list []Announcement
}

func (r *Recorder) Announce(_ context.Context, locale, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.list = append(r.list, Announcement{Locale: locale, Text: text})

	return nil
}

// Announcements returns a copy of what was announced so far.
func (r *Recorder) Announcements() []Announcement {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Announcement(nil), r.list...)
}
