package providers

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// SlackWebAPI stands in for the Slack Web API.
type SlackWebAPI struct {
	opts options
}

// NewSlackWebAPI creates a Slack stub.
func NewSlackWebAPI(opts ...Option) *SlackWebAPI {
	return &SlackWebAPI{opts: newOptions(opts)}
}

// PublishMessage posts one message to a channel of a workspace. Neither
// identifier is checked.
func (s *SlackWebAPI) PublishMessage(ctx context.Context, workspace, channelName, messageTitle, messageBody string, isPriority bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.opts.check(channelName); err != nil {
		return err
	}

	s.opts.logger.LogAttrs(ctx, slog.LevelInfo, "message published to slack",
		logger.Provider(NameSlack),
		logger.Recipient(channelName),
		slog.String("workspace", workspace),
		slog.String("title", messageTitle),
		slog.Int("body_length", len(messageBody)),
		slog.Bool("is_priority", isPriority),
	)
	return nil
}
