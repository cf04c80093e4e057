package providers

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// ExchangeServer stands in for an Outlook Exchange server.
type ExchangeServer struct {
	opts options
}

// NewExchangeServer creates an Exchange stub.
func NewExchangeServer(opts ...Option) *ExchangeServer {
	return &ExchangeServer{opts: newOptions(opts)}
}

// SendExchangeEmail accepts one email. Exchange only knows whether a message
// is high priority or not.
func (s *ExchangeServer) SendExchangeEmail(ctx context.Context, toAddress, subject, body string, highPriority bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.opts.check(toAddress); err != nil {
		return err
	}

	s.opts.logger.LogAttrs(ctx, slog.LevelInfo, "email sent via exchange",
		logger.Provider(NameExchange),
		logger.Recipient(toAddress),
		slog.String("subject", subject),
		slog.Int("body_length", len(body)),
		slog.Bool("high_priority", highPriority),
	)
	return nil
}
