// Package providers contains stand-ins for the legacy delivery systems the
// notifications package adapts: an Exchange mail server, a legacy SMTP relay,
// the Twilio SMS API and the Slack Web API.
//
// None of them perform network I/O. Each call writes one structured log
// record describing what would have been delivered and returns. Their method
// signatures mirror the vendor APIs they stand in for, which is why they
// disagree with each other on how priority is expressed (a bool, an integer
// code, an urgency string).
//
// Failures can be simulated for tests and demos:
//
//	srv := providers.NewExchangeServer(
//	    providers.WithLogger(log),
//	    providers.WithFault(func(to string) error {
//	        if to == "down@example.com" {
//	            return errors.New("mailbox unavailable")
//	        }
//	        return nil
//	    }),
//	)
//
// The Twilio stub reports rejections the way the real API does, through its
// boolean acknowledgement; see WithAcknowledge.
//
// Every call returns ctx.Err() without logging if the context is already done.
package providers
