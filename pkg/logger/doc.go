// Package logger builds the structured slog loggers used across the module.
//
// [New] returns a JSON or text logger at the configured level. Context
// extractors add request-scoped attributes to every record, and when a Sentry
// DSN is configured warnings and errors are also forwarded to Sentry:
//
//	reqID := func(ctx context.Context) (slog.Attr, bool) {
//		id := middleware.GetReqID(ctx)
//		return slog.String("request_id", id), id != ""
//	}
//
//	log := logger.New(logger.Config{Level: "debug", Format: "text"}, reqID)
//	log.DebugContext(ctx, "invalid date value", slog.String("filter", "timeSince"))
//
// Without a DSN, or when Sentry fails to initialize, records only go to the
// configured writer. [NewNope] discards everything and is the default for
// components that take an optional logger.
package logger
