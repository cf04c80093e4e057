package notifications

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

type messageIDKey struct{}

// WithMessageID stores the ID under which the next send is logged.
func WithMessageID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, messageIDKey{}, id)
}

// MessageIDFromContext returns the message ID set by WithMessageID or by Send.
func MessageIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(messageIDKey{}).(string)
	return id, ok && id != ""
}

// MessageIDExtractor adds the message ID to every log record written with a
// context that carries one. Register it with logger.WithContextExtractors.
func MessageIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := MessageIDFromContext(ctx); ok {
			return logger.MessageID(id), true
		}
		return slog.Attr{}, false
	}
}

func ensureMessageID(ctx context.Context) (context.Context, string) {
	if id, ok := MessageIDFromContext(ctx); ok {
		return ctx, id
	}
	id := uuid.New().String()
	return WithMessageID(ctx, id), id
}
