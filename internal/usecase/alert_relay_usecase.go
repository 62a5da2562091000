package usecase

import (
	"context"

	"tidewise/internal/domain/service"
	"tidewise/internal/errors"
)

// RelayResult counts the pushes made for one SOS alert event.
type RelayResult struct {
	DevicesTargeted   int  `json:"devices_targeted"`
	Sent              int  `json:"sent"`
	Failed            int  `json:"failed"`
	InvalidRemoved    int  `json:"invalid_removed"`
	AuthorityNotified bool `json:"authority_notified"`
}

// AlertRelayUsecase turns published SOS alert events into push notifications.
type AlertRelayUsecase interface {
	RelaySOSAlert(ctx context.Context, event *service.SOSAlertEvent) (*RelayResult, error)
}

// RetryableError marks a relay failure that a redelivery may fix, such as a
// storage outage. Push delivery failures are not retryable.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err, or anything it wraps, is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}
