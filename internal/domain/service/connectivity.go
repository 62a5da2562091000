package service

import "context"

// ConnectivityProbe reports whether the uplink to shore is available.
type ConnectivityProbe interface {
	Online(ctx context.Context) bool
}

// Announcer speaks or displays an alert to the crew.
type Announcer interface {
	Announce(ctx context.Context, locale, text string) error
}
