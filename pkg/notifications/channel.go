package notifications

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Channel shapes a message for one transport and hands it to its adapter.
// Channels do not validate recipients.
type Channel interface {
	SendMessage(ctx context.Context, recipient, subject, content string, priority Priority) error
	// Name is the transport family: "email", "sms" or "slack".
	Name() string
}

// EmailChannel passes subject and content through unchanged.
type EmailChannel struct {
	adapter EmailAdapter
	logger  *slog.Logger
}

func NewEmailChannel(adapter EmailAdapter, opts ...Option) (*EmailChannel, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}
	return &EmailChannel{adapter: adapter, logger: newSettings(opts).logger}, nil
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) SendMessage(ctx context.Context, recipient, subject, content string, priority Priority) error {
	traceDelivery(ctx, c.logger, c.Name(), recipient, priority)
	return c.adapter.Send(ctx, recipient, subject, content, priority)
}

// SMSChannel folds subject and content into a single text: "subject: content".
type SMSChannel struct {
	adapter SMSAdapter
	logger  *slog.Logger
}

func NewSMSChannel(adapter SMSAdapter, opts ...Option) (*SMSChannel, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}
	return &SMSChannel{adapter: adapter, logger: newSettings(opts).logger}, nil
}

func (c *SMSChannel) Name() string { return "sms" }

func (c *SMSChannel) SendMessage(ctx context.Context, recipient, subject, content string, priority Priority) error {
	traceDelivery(ctx, c.logger, c.Name(), recipient, priority)
	return c.adapter.SendSMS(ctx, recipient, subject+": "+content, priority)
}

// SlackChannel posts subject as the title and content as the body.
// The recipient is the chat channel name.
type SlackChannel struct {
	adapter SlackAdapter
	logger  *slog.Logger
}

func NewSlackChannel(adapter SlackAdapter, opts ...Option) (*SlackChannel, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}
	return &SlackChannel{adapter: adapter, logger: newSettings(opts).logger}, nil
}

func (c *SlackChannel) Name() string { return "slack" }

func (c *SlackChannel) SendMessage(ctx context.Context, recipient, subject, content string, priority Priority) error {
	traceDelivery(ctx, c.logger, c.Name(), recipient, priority)
	return c.adapter.PostMessage(ctx, recipient, subject, content, priority)
}

func traceDelivery(ctx context.Context, log *slog.Logger, channel, recipient string, priority Priority) {
	log.LogAttrs(ctx, slog.LevelDebug, "preparing delivery",
		logger.Channel(channel),
		logger.Recipient(recipient),
		logger.Priority(priority.String()),
	)
}
