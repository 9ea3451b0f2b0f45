// Package clock provides the "current time" capability as an explicit dependency.
//
// Code that needs the wall clock accepts a [Clock] instead of calling time.Now
// directly, so tests can pin "now" to a fixed instant:
//
//	c := clock.Fixed(time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC))
//	c.Now() // always 2024-03-05 13:00:00 UTC
//
// Production code uses [System].
package clock
