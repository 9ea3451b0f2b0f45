package datetime

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mergestat/timediff"
	"github.com/xeonx/timeago"
)

// Names accepted by PhraserByName.
const (
	PhraserDayjs    = "dayjs"
	PhraserHumanize = "humanize"
	PhraserTimeago  = "timeago"
)

// Phraser renders t relative to now.
type Phraser interface {
	Phrase(t, now time.Time) string
}

// PhraserFunc adapts a function to the Phraser interface.
type PhraserFunc func(t, now time.Time) string

// Phrase calls f.
func (f PhraserFunc) Phrase(t, now time.Time) string { return f(t, now) }

// Dayjs phrases like the dayjs relativeTime plugin: "a few seconds ago",
// "an hour ago", "3 hours ago", "in 2 days". Counts are rounded half up and
// months and years use their average Gregorian length.
func Dayjs() Phraser {
	return PhraserFunc(func(t, now time.Time) string {
		return timediff.TimeDiff(t,
			timediff.WithStartTime(now),
			timediff.WithCustomFormatters(dayjsFormatters),
		)
	})
}

// Humanize phrases with go-humanize: "3 hours ago", "2 days from now".
func Humanize() Phraser {
	return PhraserFunc(func(t, now time.Time) string {
		return humanize.RelTime(t, now, "ago", "from now")
	})
}

// Timeago phrases with the English configuration of xeonx/timeago.
func Timeago() Phraser {
	return PhraserFunc(func(t, now time.Time) string {
		return timeago.English.FormatReference(t, now)
	})
}

// PhraserByName returns a built-in phraser. The empty name selects Dayjs.
func PhraserByName(name string) (Phraser, error) {
	switch name {
	case "", PhraserDayjs:
		return Dayjs(), nil
	case PhraserHumanize:
		return Humanize(), nil
	case PhraserTimeago:
		return Timeago(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPhraser, name)
}
