// Package logger builds *slog.Logger values for notifykit components and
// provides attribute helpers that keep key names consistent across packages.
//
// New applies a list of Option functions on top of production-safe defaults
// (JSON, INFO, stdout). Environment presets pick the format and level:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "notify"),
//	    logger.WithContextValue("message_id", ctxKeyMessageID),
//	)
//	logger.SetAsDefault(log)
//
// Values registered with WithContextValue or WithContextExtractors are read
// from the context on every record, so a message ID placed in the context by
// the dispatch layer shows up on provider traces without threading a logger
// through every call.
//
// Attribute helpers such as Error, Recipient and Priority return an empty
// slog.Attr for empty input, which slog drops, so callers do not need nil
// checks:
//
//	log.InfoContext(ctx, "sms transmitted", logger.Recipient(to), logger.Error(err))
package logger
