// Package datetime is the narrow date capability behind the display filters:
// parse a date-like value as UTC, format it with a fixed layout, and phrase it
// relative to a reference instant.
//
// The filters depend only on the [Capability] interface, so the concrete
// parsing rules and the relative-time library can be swapped without touching
// them.
//
// # Parsing
//
// [Engine.ParseUTC] accepts time.Time, strings in the common ISO 8601 and
// RFC 1123 shapes, numbers (milliseconds since the Unix epoch by default),
// sql.NullTime and the pgx timestamp/date types. Strings without a zone are
// read as UTC:
//
//	e := datetime.New()
//	t, err := e.ParseUTC("2024-03-05 13:07:45")
//	e.Format(t, datetime.ShortLayout) // "2024-03-05 13:07"
//
// Absent values (nil, "", zero time, invalid SQL values) fail with
// [ErrEmptyDate]; everything else that cannot be read fails with
// [ErrInvalidDate].
//
// # Relative phrasing
//
// A [Phraser] turns (t, now) into text. Three are built in:
//
//	datetime.Dayjs()    // "3 hours ago", dayjs relativeTime wording (default)
//	datetime.Humanize() // "3 hours ago", go-humanize wording
//	datetime.Timeago()  // "3 hours ago", xeonx/timeago English wording
//
// Select one by name with [PhraserByName], or plug in a [PhraserFunc].
package datetime
