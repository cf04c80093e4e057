package providers

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// LegacySMTPServer stands in for an old SMTP relay that takes a numeric
// priority code (1 is the most urgent).
type LegacySMTPServer struct {
	opts options
}

// NewLegacySMTPServer creates an SMTP relay stub.
func NewLegacySMTPServer(opts ...Option) *LegacySMTPServer {
	return &LegacySMTPServer{opts: newOptions(opts)}
}

// RelayMessage accepts one message for relaying.
func (s *LegacySMTPServer) RelayMessage(ctx context.Context, recipient, title, body string, priorityCode int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.opts.check(recipient); err != nil {
		return err
	}

	s.opts.logger.LogAttrs(ctx, slog.LevelInfo, "email relayed via legacy smtp",
		logger.Provider(NameLegacySMTP),
		logger.Recipient(recipient),
		slog.String("title", title),
		slog.Int("body_length", len(body)),
		slog.Int("priority_code", priorityCode),
	)
	return nil
}
