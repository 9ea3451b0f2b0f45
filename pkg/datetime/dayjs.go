package datetime

import (
	"fmt"
	"math"
	"time"

	"github.com/mergestat/timediff/locale"
)

const (
	day = 24 * time.Hour
	// Average Gregorian month and year.
	month = 2629746 * time.Second
	year  = 12 * month
)

// dayjsRange is one row of the relative-time table. A distance belongs to the
// row when its count of unit, rounded half up, is at most limit.
type dayjsRange struct {
	limit float64 // zero means unbounded
	unit  time.Duration
	one   string
	many  string // count format; empty when the row has a single phrase
}

var dayjsRanges = []dayjsRange{
	{limit: 44, unit: time.Second, one: "a few seconds"},
	{limit: 89, unit: time.Second, one: "a minute"},
	{limit: 44, unit: time.Minute, one: "a minute", many: "%d minutes"},
	{limit: 89, unit: time.Minute, one: "an hour"},
	{limit: 21, unit: time.Hour, one: "an hour", many: "%d hours"},
	{limit: 35, unit: time.Hour, one: "a day"},
	{limit: 25, unit: day, one: "a day", many: "%d days"},
	{limit: 45, unit: day, one: "a month"},
	{limit: 10, unit: month, one: "a month", many: "%d months"},
	{limit: 17, unit: month, one: "a year"},
	{unit: year, one: "a year", many: "%d years"},
}

// dayjsFormatters maps each row to its upper bound for timediff. Past
// distances are positive; future rows mirror them below zero.
var dayjsFormatters = buildDayjsFormatters(dayjsRanges)

func buildDayjsFormatters(ranges []dayjsRange) locale.Formatters {
	fs := make(locale.Formatters, 2*len(ranges))
	for _, r := range ranges {
		past, future := time.Duration(math.MaxInt64), time.Duration(math.MinInt64)
		if r.limit > 0 {
			// round(x) <= limit holds while x < limit+0.5.
			past = time.Duration((r.limit+0.5)*float64(r.unit)) - 1
			future = -past
		}
		fs[past] = r.formatter()
		fs[future] = r.formatter()
	}
	return fs
}

func (r dayjsRange) formatter() func(time.Duration) string {
	return func(d time.Duration) string {
		phrase := r.one
		if n := math.Round(float64(d.Abs()) / float64(r.unit)); r.many != "" && n > 1 {
			phrase = fmt.Sprintf(r.many, int64(n))
		}
		if d < 0 {
			return "in " + phrase
		}
		return phrase + " ago"
	}
}
