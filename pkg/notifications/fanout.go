package notifications

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Target pairs a notification with the recipient it should reach. Recipients
// differ per channel (address, phone number, chat channel).
type Target struct {
	Notification Notification
	Recipient    string
}

// Fanout sends one subject and content through several notifications.
type Fanout struct {
	targets []Target
	logger  *slog.Logger
}

// NewFanout copies targets; later changes to the slice do not affect it.
func NewFanout(targets []Target, opts ...Option) *Fanout {
	return &Fanout{
		targets: append([]Target(nil), targets...),
		logger:  newSettings(opts).logger,
	}
}

// Send tries every target in order. A failing target does not stop the
// others; the failures are logged and returned joined.
func (f *Fanout) Send(ctx context.Context, subject, content string) error {
	var errs []error
	for i, t := range f.targets {
		if t.Notification == nil {
			errs = append(errs, ErrNilChannel)
			continue
		}
		if err := t.Notification.Send(ctx, t.Recipient, subject, content); err != nil {
			f.logger.LogAttrs(ctx, slog.LevelError, "fanout target failed",
				slog.Int("target_index", i),
				logger.Category(t.Notification.Category().String()),
				logger.Recipient(t.Recipient),
				logger.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of targets.
func (f *Fanout) Len() int {
	return len(f.targets)
}
