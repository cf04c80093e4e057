package notifications

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/notifykit/pkg/providers"
)

// Transport names a channel together with the provider behind it.
type Transport string

const (
	TransportExchange Transport = "email-exchange"
	TransportSMTP     Transport = "email-smtp"
	TransportSMS      Transport = "sms"
	TransportSlack    Transport = "slack"
)

// Transports lists the known transports.
func Transports() []Transport {
	return []Transport{TransportExchange, TransportSMTP, TransportSMS, TransportSlack}
}

// ParseTransport accepts the transport names in any case.
func ParseTransport(s string) (Transport, error) {
	t := Transport(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TransportExchange, TransportSMTP, TransportSMS, TransportSlack:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransport, s)
	}
}

func (t Transport) String() string {
	return string(t)
}

// NewChannel builds provider, adapter and channel for t. Every call builds a
// new graph; providers injected through options are used as given.
// Nothing is sent during construction.
func NewChannel(t Transport, opts ...Option) (Channel, error) {
	s := newSettings(opts)
	providerOpts := append([]providers.Option{providers.WithLogger(s.logger)}, s.providerOpts...)

	switch t {
	case TransportExchange:
		server := s.exchange
		if server == nil {
			server = providers.NewExchangeServer(providerOpts...)
		}
		adapter, err := NewExchangeAdapter(server)
		if err != nil {
			return nil, err
		}
		return NewEmailChannel(adapter, opts...)

	case TransportSMTP:
		relay := s.smtp
		if relay == nil {
			relay = providers.NewLegacySMTPServer(providerOpts...)
		}
		adapter, err := NewLegacySMTPAdapter(relay)
		if err != nil {
			return nil, err
		}
		return NewEmailChannel(adapter, opts...)

	case TransportSMS:
		sms := s.sms
		if sms == nil {
			sms = providers.NewTwilioSMSService(providerOpts...)
		}
		adapter, err := NewTwilioSMSAdapter(sms)
		if err != nil {
			return nil, err
		}
		return NewSMSChannel(adapter, opts...)

	case TransportSlack:
		api := s.slack
		if api == nil {
			api = providers.NewSlackWebAPI(providerOpts...)
		}
		adapter, err := NewSlackWebAPIAdapter(api, s.slackWorkspace)
		if err != nil {
			return nil, err
		}
		return NewSlackChannel(adapter, opts...)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, string(t))
	}
}

// New wires a ready-to-use notification of category c over transport t.
func New(c Category, t Transport, opts ...Option) (Notification, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	ch, err := NewChannel(t, opts...)
	if err != nil {
		return nil, err
	}
	return NewNotification(c, ch, opts...)
}

// MustNew is New that panics on unknown category or transport.
func MustNew(c Category, t Transport, opts ...Option) Notification {
	n, err := New(c, t, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// NewUrgentEmailNotification sends urgent notifications by email through Exchange.
func NewUrgentEmailNotification(opts ...Option) Notification {
	return MustNew(CategoryUrgent, TransportExchange, opts...)
}

// NewInformativeSMSNotification sends informative notifications by SMS through Twilio.
func NewInformativeSMSNotification(opts ...Option) Notification {
	return MustNew(CategoryInformative, TransportSMS, opts...)
}

// NewMarketingSlackNotification sends marketing notifications to Slack.
func NewMarketingSlackNotification(opts ...Option) Notification {
	return MustNew(CategoryMarketing, TransportSlack, opts...)
}
