package datetime

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// builtinLayouts are tried in order. Zone-less layouts are read as UTC.
var builtinLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

func (e *Engine) parse(v any) (time.Time, error) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, ErrEmptyDate
	case time.Time:
		if x.IsZero() {
			return time.Time{}, ErrEmptyDate
		}
		return x, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, ErrEmptyDate
		}
		return e.parse(*x)
	case string:
		return e.parseString(x)
	case []byte:
		return e.parseString(string(x))
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return e.fromEpoch(n)
		}
		f, err := x.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, x.String())
		}
		return e.fromEpochFloat(f)
	case sql.NullTime:
		if !x.Valid {
			return time.Time{}, ErrEmptyDate
		}
		return e.parse(x.Time)
	case pgtype.Timestamptz:
		return pgTime(x.Time, x.InfinityModifier, x.Valid)
	case pgtype.Timestamp:
		return pgTime(x.Time, x.InfinityModifier, x.Valid)
	case pgtype.Date:
		return pgTime(x.Time, x.InfinityModifier, x.Valid)
	case fmt.Stringer:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return time.Time{}, ErrEmptyDate
		}
		return e.parseString(x.String())
	}
	return e.parseReflect(reflect.ValueOf(v))
}

// parseReflect handles pointers and named basic types.
func (e *Engine) parseReflect(rv reflect.Value) (time.Time, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return time.Time{}, ErrEmptyDate
		}
		return e.parse(rv.Elem().Interface())
	case reflect.String:
		return e.parseString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return e.fromEpoch(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return time.Time{}, fmt.Errorf("%w: %d out of range", ErrInvalidDate, u)
		}
		return e.fromEpoch(int64(u))
	case reflect.Float32, reflect.Float64:
		return e.fromEpochFloat(rv.Float())
	}
	return time.Time{}, fmt.Errorf("%w: unsupported type %s", ErrInvalidDate, rv.Type())
}

func (e *Engine) parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}
	for _, layout := range e.layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// maxEpoch bounds numeric dates to 100,000,000 days either side of the
// epoch, the range browsers accept.
const maxEpoch = 8.64e15 * float64(time.Millisecond)

func (e *Engine) epochInRange(f float64) bool {
	return math.Abs(f)*float64(e.epochUnit) <= maxEpoch
}

func (e *Engine) fromEpoch(n int64) (time.Time, error) {
	if !e.epochInRange(float64(n)) {
		return time.Time{}, fmt.Errorf("%w: %d out of range", ErrInvalidDate, n)
	}
	switch e.epochUnit {
	case time.Second:
		return time.Unix(n, 0), nil
	case time.Microsecond:
		return time.UnixMicro(n), nil
	case time.Nanosecond:
		return time.Unix(0, n), nil
	default:
		return time.UnixMilli(n), nil
	}
}

func (e *Engine) fromEpochFloat(f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, f)
	}
	if !e.epochInRange(f) {
		return time.Time{}, fmt.Errorf("%w: %v out of range", ErrInvalidDate, f)
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return e.fromEpoch(int64(f))
	}
	whole, frac := math.Modf(f * float64(e.epochUnit) / float64(time.Second))
	return time.Unix(int64(whole), int64(frac*float64(time.Second))), nil
}

func pgTime(t time.Time, inf pgtype.InfinityModifier, valid bool) (time.Time, error) {
	if !valid {
		return time.Time{}, ErrEmptyDate
	}
	if inf != pgtype.Finite {
		return time.Time{}, fmt.Errorf("%w: infinite timestamp", ErrInvalidDate)
	}
	return t, nil
}
