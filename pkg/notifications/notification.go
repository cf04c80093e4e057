package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Notification sends messages of one category through one channel.
type Notification interface {
	// Send rewrites subject and content for the category, attaches the
	// category's priority and makes exactly one call to the bound channel.
	Send(ctx context.Context, recipient, subject, content string) error
	Category() Category
}

type notification struct {
	category Category
	channel  Channel
	logger   *slog.Logger
}

// NewNotification binds a category to a channel. The pairing is free: any
// category works with any channel.
func NewNotification(category Category, channel Channel, opts ...Option) (Notification, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(category))
	}
	if channel == nil {
		return nil, ErrNilChannel
	}
	return &notification{
		category: category,
		channel:  channel,
		logger:   newSettings(opts).logger,
	}, nil
}

// NewUrgent prefixes the subject with "URGENTE: ", the content with
// "ATENCIÓN INMEDIATA REQUERIDA:\n", and sends at HIGH priority.
func NewUrgent(channel Channel, opts ...Option) (Notification, error) {
	return NewNotification(CategoryUrgent, channel, opts...)
}

// NewInformative prefixes the subject with "Info: " and sends at MEDIUM priority.
func NewInformative(channel Channel, opts ...Option) (Notification, error) {
	return NewNotification(CategoryInformative, channel, opts...)
}

// NewMarketing appends a community thank-you footer to the content and sends
// at LOW priority.
func NewMarketing(channel Channel, opts ...Option) (Notification, error) {
	return NewNotification(CategoryMarketing, channel, opts...)
}

func (n *notification) Category() Category { return n.category }

func (n *notification) Send(ctx context.Context, recipient, subject, content string) error {
	msg, err := n.category.Compose(recipient, subject, content)
	if err != nil {
		return err
	}
	ctx, _ = ensureMessageID(ctx)

	attrs := []slog.Attr{
		logger.Category(n.category.String()),
		logger.Channel(n.channel.Name()),
		logger.Recipient(msg.Recipient),
		logger.Priority(msg.Priority.String()),
	}
	n.logger.LogAttrs(ctx, slog.LevelInfo, "sending notification", attrs...)

	start := time.Now()
	if err := n.channel.SendMessage(ctx, msg.Recipient, msg.Subject, msg.Body, msg.Priority); err != nil {
		n.logger.LogAttrs(ctx, slog.LevelError, "notification delivery failed", append(attrs, logger.Error(err))...)
		return fmt.Errorf("send %s notification via %s: %w", n.category, n.channel.Name(), err)
	}
	n.logger.LogAttrs(ctx, slog.LevelDebug, "notification delivered", append(attrs, logger.Duration(time.Since(start)))...)
	return nil
}
