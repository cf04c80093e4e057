package providers

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// TwilioSMSService stands in for the Twilio messaging API.
type TwilioSMSService struct {
	opts options
}

// NewTwilioSMSService creates a Twilio stub.
func NewTwilioSMSService(opts ...Option) *TwilioSMSService {
	return &TwilioSMSService{opts: newOptions(opts)}
}

// TransmitSMS sends one text. The boolean is Twilio's acknowledgement: false
// means the message was not accepted for delivery, while err is reserved for
// failures to reach the API at all.
func (s *TwilioSMSService) TransmitSMS(ctx context.Context, destinationNumber, textContent, urgencyLevel string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := s.opts.check(destinationNumber); err != nil {
		return false, err
	}

	accepted := s.opts.ack == nil || s.opts.ack(destinationNumber)

	level := slog.LevelInfo
	msg := "sms transmitted via twilio"
	if !accepted {
		level = slog.LevelWarn
		msg = "sms rejected by twilio"
	}
	s.opts.logger.LogAttrs(ctx, level, msg,
		logger.Provider(NameTwilio),
		logger.Recipient(destinationNumber),
		slog.String("text", textContent),
		slog.String("urgency", urgencyLevel),
		slog.Bool("accepted", accepted),
	)
	return accepted, nil
}
