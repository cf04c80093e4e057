// Package notifications dispatches notifications through interchangeable
// channels backed by legacy providers.
//
// # Architecture
//
// Four layers, each bound to exactly one instance of the layer below at
// construction time:
//
//   - Provider: the vendor system (see package providers). Each has its own
//     call shape and its own idea of priority.
//   - Adapter: turns the uniform (recipient, subject, body, Priority) call into
//     the provider's call. ExchangeAdapter and SlackWebAPIAdapter reduce
//     priority to "is it HIGH", LegacySMTPAdapter to a numeric code
//     (PriorityCode) and TwilioSMSAdapter to an urgency string (UrgencyLevel).
//   - Channel: shapes the payload for a transport. SMSChannel folds subject
//     and content into "subject: content"; email and Slack keep them apart.
//   - Notification: rewrites subject and content for its Category and fixes
//     the priority (urgent HIGH, informative MEDIUM, marketing LOW).
//
// Categories and channels combine freely: three categories over four
// transports give twelve notifications.
//
// # Basic Usage
//
//	n, err := notifications.New(notifications.CategoryUrgent, notifications.TransportSMS,
//	    notifications.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	err = n.Send(ctx, "+1234567890", "Fallo Crítico", "Base de datos principal no responde.")
//
// The predefined constructors NewUrgentEmailNotification,
// NewInformativeSMSNotification and NewMarketingSlackNotification cover the
// common pairings.
//
// Hand wiring works the same way the factory does:
//
//	adapter, _ := notifications.NewTwilioSMSAdapter(providers.NewTwilioSMSService())
//	channel, _ := notifications.NewSMSChannel(adapter)
//	urgent, _ := notifications.NewUrgent(channel)
//
// # Delivery Semantics
//
// Send returns once the provider has taken the message. Use SendAsync to run
// a send on its own goroutine with its own context, and Fanout to send the
// same content through several notifications on a best-effort basis.
//
// Every send carries a message ID in its context (generated with
// github.com/google/uuid unless the caller set one with WithMessageID).
// Register MessageIDExtractor with the logger to see it on every record.
//
// # Error Handling
//
// Provider failures come back as *TransportError, which matches ErrTransport
// and the provider's own error with errors.Is. A Twilio message that is not
// acknowledged is reported as a TransportError wrapping ErrDeliveryRejected.
// Nothing is retried.
//
// # Metrics
//
// Instrument wraps a Notification with the send counter and latency
// histogram registered by NewMetrics.
package notifications
