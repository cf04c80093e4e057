package notifications

import (
	"errors"
	"fmt"
)

var (
	ErrTransport        = errors.New("notifications.errors.transport_failed")
	ErrDeliveryRejected = errors.New("notifications.errors.delivery_rejected")
	ErrUnknownCategory  = errors.New("notifications.errors.unknown_category")
	ErrUnknownTransport = errors.New("notifications.errors.unknown_transport")
	ErrInvalidPriority  = errors.New("notifications.errors.invalid_priority")
	ErrNilChannel       = errors.New("notifications.errors.nil_channel")
	ErrNilAdapter       = errors.New("notifications.errors.nil_adapter")
	ErrNilProvider      = errors.New("notifications.errors.nil_provider")
)

// TransportError reports that a provider failed to take a message.
// It matches ErrTransport and the underlying cause with errors.Is.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrTransport, e.Provider, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

func transportError(provider string, err error) error {
	return &TransportError{Provider: provider, Err: err}
}
