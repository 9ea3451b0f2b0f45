package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System reads the process wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time { return f() }

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
