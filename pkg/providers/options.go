package providers

import "log/slog"

// Provider names, as reported in logs and transport errors.
const (
	NameExchange   = "exchange"
	NameLegacySMTP = "legacy-smtp"
	NameTwilio     = "twilio"
	NameSlack      = "slack"
)

// Option configures a provider stub.
type Option func(*options)

type options struct {
	logger *slog.Logger
	fault  func(recipient string) error
	ack    func(destination string) bool
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger traces are written to. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFault makes the stub return fn(recipient) when it is non-nil, instead
// of delivering.
func WithFault(fn func(recipient string) error) Option {
	return func(o *options) {
		o.fault = fn
	}
}

// WithAcknowledge decides the boolean the Twilio stub reports per destination.
// Other stubs ignore it. By default every message is acknowledged.
func WithAcknowledge(fn func(destination string) bool) Option {
	return func(o *options) {
		o.ack = fn
	}
}

func (o options) check(recipient string) error {
	if o.fault == nil {
		return nil
	}
	return o.fault(recipient)
}
