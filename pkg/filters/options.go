package filters

import (
	"log/slog"

	"github.com/jkppr/timesketch/pkg/clock"
	"github.com/jkppr/timesketch/pkg/datetime"
)

// Option configures Filters.
type Option func(*Filters)

// WithClock sets the source of "now" for relative labels. Nil is ignored.
// Default: clock.System.
func WithClock(c clock.Clock) Option {
	return func(f *Filters) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithCapability replaces the date engine. Nil is ignored.
// Default: datetime.New().
func WithCapability(dates datetime.Capability) Option {
	return func(f *Filters) {
		if dates != nil {
			f.dates = dates
		}
	}
}

// WithLogger sets the logger used to report unreadable dates. Nil is ignored.
// Default: a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Filters) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithInvalidDateText sets what the template helpers render for a date that
// is present but unreadable. An empty string hides such values.
// Default: "Invalid Date".
func WithInvalidDateText(s string) Option {
	return func(f *Filters) {
		f.invalidText = s
	}
}
