package datetime

import "time"

// ShortLayout renders "YYYY-MM-DD HH:mm" in 24-hour time.
const ShortLayout = "2006-01-02 15:04"

// Capability is the date surface the display filters depend on.
type Capability interface {
	// ParseUTC reads a date-like value and returns it in UTC.
	ParseUTC(v any) (time.Time, error)
	// Format renders t in UTC with a Go time layout.
	Format(t time.Time, layout string) string
	// Relative phrases t relative to now, e.g. "3 hours ago".
	Relative(t, now time.Time) string
}

// Engine is the default Capability implementation.
// It is immutable after creation and safe for concurrent use.
type Engine struct {
	phraser   Phraser
	layouts   []string
	epochUnit time.Duration
}

var _ Capability = (*Engine)(nil)

// New creates an Engine. Without options it phrases with Dayjs and reads
// numeric input as Unix milliseconds.
func New(opts ...Option) *Engine {
	e := &Engine{
		phraser:   Dayjs(),
		layouts:   append([]string(nil), builtinLayouts...),
		epochUnit: time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ParseUTC implements Capability.
func (e *Engine) ParseUTC(v any) (time.Time, error) {
	t, err := e.parse(v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Format implements Capability.
func (e *Engine) Format(t time.Time, layout string) string {
	return t.UTC().Format(layout)
}

// Relative implements Capability.
func (e *Engine) Relative(t, now time.Time) string {
	return e.phraser.Phrase(t.UTC(), now.UTC())
}
