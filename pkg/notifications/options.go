package notifications

import (
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/providers"
)

// Option configures the constructors of this package. Channels, notifications
// and fanouts only read the logger; the factory reads everything.
type Option func(*settings)

type settings struct {
	logger         *slog.Logger
	slackWorkspace string
	providerOpts   []providers.Option

	exchange ExchangeServer
	smtp     SMTPRelay
	sms      SMSTransmitter
	slack    SlackPublisher
}

func newSettings(opts []Option) settings {
	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSlackWorkspace sets the workspace factory-built Slack channels post to.
func WithSlackWorkspace(workspace string) Option {
	return func(s *settings) {
		s.slackWorkspace = workspace
	}
}

// WithProviderOptions passes options to the provider stubs the factory creates.
func WithProviderOptions(opts ...providers.Option) Option {
	return func(s *settings) {
		s.providerOpts = append(s.providerOpts, opts...)
	}
}

// WithExchangeServer makes the factory use server instead of a new stub.
func WithExchangeServer(server ExchangeServer) Option {
	return func(s *settings) { s.exchange = server }
}

// WithSMTPRelay makes the factory use relay instead of a new stub.
func WithSMTPRelay(relay SMTPRelay) Option {
	return func(s *settings) { s.smtp = relay }
}

// WithSMSTransmitter makes the factory use sms instead of a new stub.
func WithSMSTransmitter(sms SMSTransmitter) Option {
	return func(s *settings) { s.sms = sms }
}

// WithSlackPublisher makes the factory use api instead of a new stub.
func WithSlackPublisher(api SlackPublisher) Option {
	return func(s *settings) { s.slack = api }
}
