package notifications

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/notifykit/pkg/providers"
)

// Provider contracts, shaped after the vendor APIs in package providers.

type ExchangeServer interface {
	SendExchangeEmail(ctx context.Context, toAddress, subject, body string, highPriority bool) error
}

type SMTPRelay interface {
	RelayMessage(ctx context.Context, recipient, title, body string, priorityCode int) error
}

// SMSTransmitter reports rejection through its boolean, not its error.
type SMSTransmitter interface {
	TransmitSMS(ctx context.Context, destinationNumber, textContent, urgencyLevel string) (bool, error)
}

type SlackPublisher interface {
	PublishMessage(ctx context.Context, workspace, channelName, messageTitle, messageBody string, isPriority bool) error
}

// EmailAdapter sends one email whatever server sits behind it.
type EmailAdapter interface {
	Send(ctx context.Context, to, subject, body string, priority Priority) error
}

// SMSAdapter sends one text message.
type SMSAdapter interface {
	SendSMS(ctx context.Context, phoneNumber, message string, priority Priority) error
}

// SlackAdapter posts one message to a chat channel.
type SlackAdapter interface {
	PostMessage(ctx context.Context, channel, title, message string, priority Priority) error
}

// DefaultSlackWorkspace is used when a Slack adapter is built without one.
const DefaultSlackWorkspace = "empresa-workspace"

// ExchangeAdapter sends email through an Exchange server, which only
// distinguishes high priority from everything else.
type ExchangeAdapter struct {
	server ExchangeServer
}

func NewExchangeAdapter(server ExchangeServer) (*ExchangeAdapter, error) {
	if server == nil {
		return nil, ErrNilProvider
	}
	return &ExchangeAdapter{server: server}, nil
}

func (a *ExchangeAdapter) Send(ctx context.Context, to, subject, body string, priority Priority) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.server.SendExchangeEmail(ctx, to, subject, body, priority == PriorityHigh); err != nil {
		return transportError(providers.NameExchange, err)
	}
	return nil
}

// LegacySMTPAdapter sends email through an SMTP relay that expects a numeric
// priority code.
type LegacySMTPAdapter struct {
	relay SMTPRelay
}

func NewLegacySMTPAdapter(relay SMTPRelay) (*LegacySMTPAdapter, error) {
	if relay == nil {
		return nil, ErrNilProvider
	}
	return &LegacySMTPAdapter{relay: relay}, nil
}

func (a *LegacySMTPAdapter) Send(ctx context.Context, to, subject, body string, priority Priority) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.relay.RelayMessage(ctx, to, subject, body, PriorityCode(priority)); err != nil {
		return transportError(providers.NameLegacySMTP, err)
	}
	return nil
}

// PriorityCode is the relay encoding: HIGH 1, MEDIUM 2, LOW 3. Any other
// value is sent as 2.
func PriorityCode(p Priority) int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityLow:
		return 3
	default:
		return 2
	}
}

// TwilioSMSAdapter sends text messages through Twilio.
type TwilioSMSAdapter struct {
	sms SMSTransmitter
}

func NewTwilioSMSAdapter(sms SMSTransmitter) (*TwilioSMSAdapter, error) {
	if sms == nil {
		return nil, ErrNilProvider
	}
	return &TwilioSMSAdapter{sms: sms}, nil
}

// SendSMS returns a *TransportError wrapping ErrDeliveryRejected when Twilio
// does not acknowledge the message.
func (a *TwilioSMSAdapter) SendSMS(ctx context.Context, phoneNumber, message string, priority Priority) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	accepted, err := a.sms.TransmitSMS(ctx, phoneNumber, message, UrgencyLevel(priority))
	if err != nil {
		return transportError(providers.NameTwilio, err)
	}
	if !accepted {
		return transportError(providers.NameTwilio, ErrDeliveryRejected)
	}
	return nil
}

// UrgencyLevel is the Twilio encoding: the lower-cased priority followed by
// "_urgency", e.g. "high_urgency". Unknown values are encoded the same way.
func UrgencyLevel(p Priority) string {
	return cases.Lower(language.Und).String(string(p)) + "_urgency"
}

// SlackWebAPIAdapter posts to one Slack workspace.
type SlackWebAPIAdapter struct {
	api       SlackPublisher
	workspace string
}

// NewSlackWebAPIAdapter binds api to workspace, or to DefaultSlackWorkspace
// when workspace is empty.
func NewSlackWebAPIAdapter(api SlackPublisher, workspace string) (*SlackWebAPIAdapter, error) {
	if api == nil {
		return nil, ErrNilProvider
	}
	if workspace == "" {
		workspace = DefaultSlackWorkspace
	}
	return &SlackWebAPIAdapter{api: api, workspace: workspace}, nil
}

func (a *SlackWebAPIAdapter) PostMessage(ctx context.Context, channel, title, message string, priority Priority) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.api.PublishMessage(ctx, a.workspace, channel, title, message, priority == PriorityHigh); err != nil {
		return transportError(providers.NameSlack, err)
	}
	return nil
}

// Workspace returns the workspace messages are posted to.
func (a *SlackWebAPIAdapter) Workspace() string {
	return a.workspace
}
