package filters

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jkppr/timesketch/pkg/clock"
	"github.com/jkppr/timesketch/pkg/datetime"
	"github.com/jkppr/timesketch/pkg/logger"
)

// DefaultInvalidDateText is rendered for dates that are present but unreadable.
const DefaultInvalidDateText = "Invalid Date"

// Filters renders display values. It is immutable after creation and safe for
// concurrent use.
type Filters struct {
	dates       datetime.Capability
	clock       clock.Clock
	logger      *slog.Logger
	invalidText string
}

// New creates Filters with the system clock and the default date engine.
func New(opts ...Option) *Filters {
	f := &Filters{
		dates:       datetime.New(),
		clock:       clock.System{},
		logger:      logger.NewNope(),
		invalidText: DefaultInvalidDateText,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// InitialLetter returns the first character of v's text form, upper-cased,
// or "" when v is falsy. Upper-casing uses full Unicode case mapping, so a
// leading "ß" becomes "SS".
func InitialLetter(v any) string {
	if Falsy(v) {
		return ""
	}
	s := stringify(v)
	r, size := utf8.DecodeRuneInString(s)
	switch {
	case size == 0:
		return ""
	case r == utf8.RuneError && size == 1:
		return string(utf8.RuneError)
	}
	// Casers keep state between calls and must not be shared.
	return cases.Upper(language.Und).String(s[:size])
}

// InitialLetter is the method form of the package-level InitialLetter.
func (f *Filters) InitialLetter(v any) string {
	return InitialLetter(v)
}

// FormatShortDateTime renders v as "YYYY-MM-DD HH:mm" in UTC. It returns
// datetime.ErrEmptyDate for absent input and datetime.ErrInvalidDate for
// anything unreadable. Numeric zero is the Unix epoch, not absent.
func (f *Filters) FormatShortDateTime(v any) (string, error) {
	t, err := f.dates.ParseUTC(v)
	if err != nil {
		return "", err
	}
	return f.dates.Format(t, datetime.ShortLayout), nil
}

// ShortDateTime is the template form of FormatShortDateTime: absent input
// renders "", unreadable input renders the invalid-date text.
func (f *Filters) ShortDateTime(v any) string {
	s, err := f.FormatShortDateTime(v)
	if err != nil {
		return f.fallback("shortDateTime", v, err)
	}
	return s
}

// FormatTimeSince phrases v relative to the injected clock.
func (f *Filters) FormatTimeSince(v any) (string, error) {
	return f.FormatTimeSinceAt(v, f.clock.Now())
}

// FormatTimeSinceAt phrases v relative to now. Falsy input yields "" and no
// error; unreadable input yields datetime.ErrInvalidDate.
func (f *Filters) FormatTimeSinceAt(v any, now time.Time) (string, error) {
	if Falsy(v) {
		return "", nil
	}
	t, err := f.dates.ParseUTC(v)
	if errors.Is(err, datetime.ErrEmptyDate) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return f.dates.Relative(t, now), nil
}

// TimeSince is the template form of FormatTimeSince.
func (f *Filters) TimeSince(v any) string {
	return f.TimeSinceAt(v, f.clock.Now())
}

// TimeSinceAt is the template form of FormatTimeSinceAt.
func (f *Filters) TimeSinceAt(v any, now time.Time) string {
	s, err := f.FormatTimeSinceAt(v, now)
	if err != nil {
		return f.fallback("timeSince", v, err)
	}
	return s
}

func (f *Filters) fallback(filter string, v any, err error) string {
	if errors.Is(err, datetime.ErrEmptyDate) {
		return ""
	}
	f.logger.Debug("invalid date value",
		slog.String("filter", filter),
		slog.String("type", fmt.Sprintf("%T", v)),
		slog.String("error", err.Error()),
	)
	return f.invalidText
}

var std = New()

// ShortDateTime renders v with the default Filters.
func ShortDateTime(v any) string { return std.ShortDateTime(v) }

// TimeSince renders v relative to the system clock with the default Filters.
func TimeSince(v any) string { return std.TimeSince(v) }
