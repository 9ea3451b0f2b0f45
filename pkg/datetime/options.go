package datetime

import "time"

// Option configures an Engine.
type Option func(*Engine)

// WithPhraser sets the relative-time phraser. Nil is ignored.
// Default: Dayjs.
func WithPhraser(p Phraser) Option {
	return func(e *Engine) {
		if p != nil {
			e.phraser = p
		}
	}
}

// WithLayouts appends Go time layouts tried after the built-in ones
// when parsing strings. Zone-less layouts are read as UTC.
func WithLayouts(layouts ...string) Option {
	return func(e *Engine) {
		for _, l := range layouts {
			if l != "" {
				e.layouts = append(e.layouts, l)
			}
		}
	}
}

// WithEpochUnit sets the unit of numeric input. Only time.Second,
// time.Millisecond, time.Microsecond and time.Nanosecond are accepted;
// anything else is ignored.
// Default: time.Millisecond.
func WithEpochUnit(unit time.Duration) Option {
	return func(e *Engine) {
		switch unit {
		case time.Second, time.Millisecond, time.Microsecond, time.Nanosecond:
			e.epochUnit = unit
		}
	}
}
