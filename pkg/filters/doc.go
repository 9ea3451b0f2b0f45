// Package filters provides the display helpers bound to template fields:
// an initial letter for avatars, a fixed "YYYY-MM-DD HH:mm" UTC timestamp, and
// a relative "time since" label.
//
// # Basic Usage
//
// The package-level functions use the system clock and the default date
// engine:
//
//	filters.InitialLetter("alice")                  // "A"
//	filters.ShortDateTime("2024-03-05T13:07:45Z")   // "2024-03-05 13:07"
//	filters.TimeSince(time.Now().Add(-3*time.Hour)) // "3 hours ago"
//
// Falsy input (nil, "", 0, false, zero time, NULL database values) renders as
// the empty string. Input that is present but cannot be read as a date renders
// as the invalid-date text, "Invalid Date" unless configured otherwise.
//
// # Injected Clock
//
// Build a [Filters] to control "now" and the date engine:
//
//	f := filters.New(
//		filters.WithClock(clock.Fixed(time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC))),
//	)
//	f.TimeSince("2024-03-05T10:00:00Z") // "3 hours ago"
//
// Go callers that need to tell absent input from bad input use the strict
// variants, which return [datetime.ErrEmptyDate] or [datetime.ErrInvalidDate]:
//
//	s, err := f.FormatShortDateTime(row.CreatedAt)
//
// # Templates
//
// [Filters.FuncMap] binds initialLetter, shortDateTime and timeSince for
// html/template:
//
//	tmpl := template.Must(template.New("sketch").Funcs(f.FuncMap()).Parse(
//		`<td>{{ initialLetter .Owner }}</td><td>{{ timeSince .Updated }}</td>`,
//	))
//
// [Filters.Avatar] and [Filters.Timestamp] return templ components for the
// same helpers.
//
// # Configuration
//
// [Config] is read from the environment with [ConfigFromEnv] or from YAML with
// [ParseConfig], then applied with [NewFromConfig].
package filters
