package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// New creates a logger from cfg. An unknown level falls back to info and an
// unknown format to JSON.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	level, levelErr := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var base slog.Handler
	if cfg.Format == FormatText {
		base = slog.NewTextHandler(out, opts)
	} else {
		base = slog.NewJSONHandler(out, opts)
	}

	handler := base
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.SentryEnvironment,
			EnableLogs:  true,
		}); err != nil {
			slog.New(base).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		} else {
			// Errors become Sentry issues; warnings are kept as breadcrumb logs.
			sentryHandler := sentryslog.Option{
				EventLevel: []slog.Level{slog.LevelError},
				LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
			}.NewSentryHandler(context.Background())
			handler = fanoutHandler{base, sentryHandler}
		}
	}

	log := slog.New(newContextHandler(handler, extractors...))
	if levelErr != nil {
		log.Warn("falling back to info level", slog.String("error", levelErr.Error()))
	}
	return log
}
