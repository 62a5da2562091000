package impl

import (
	"io"
	"log/slog"
	"time"

	"tidewise/internal/domain/entity"
)

var testNow = time.Date(2025, time.March, 14, 6, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// coastBoats mirrors the default fleet off the Andhra coast.
func coastBoats() []*entity.Boat {
	return []*entity.Boat{
		{ID: "127", Lat: 16.50, Lng: 80.60, Status: entity.BoatStatusSafe, Zone: "A"},
		{ID: "089", Lat: 16.40, Lng: 80.70, Status: entity.BoatStatusSafe, Zone: "B"},
		{ID: "203", Lat: 16.60, Lng: 80.50, Status: entity.BoatStatusWarning, Zone: "C"},
	}
}
