package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// MessageID records the message identifier under the key "message_id".
func MessageID(id string) slog.Attr {
	return nonEmpty("message_id", id)
}

// Recipient records the delivery target (address, phone number or chat channel).
func Recipient(to string) slog.Attr {
	return nonEmpty("recipient", to)
}

// Channel records the transport a message travels through.
func Channel(name string) slog.Attr {
	return nonEmpty("channel", name)
}

// Category records the notification category.
func Category(name string) slog.Attr {
	return nonEmpty("category", name)
}

// Priority records the priority as the caller sees it, before any provider encoding.
func Priority(p string) slog.Attr {
	return nonEmpty("priority", p)
}

// Provider records the name of the provider handling the call.
func Provider(name string) slog.Attr {
	return nonEmpty("provider", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func nonEmpty(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}
