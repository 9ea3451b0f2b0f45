package datetime_test

import (
	"database/sql"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkppr/timesketch/pkg/datetime"
)

type eventName string

type stamp struct{ s string }

func (s stamp) String() string { return s.s }

func TestEngine_ParseUTC(t *testing.T) {
	t.Parallel()

	e := datetime.New()
	want := time.Date(2024, 3, 5, 13, 7, 45, 0, time.UTC)
	berlin := time.FixedZone("CET", 3600)
	wantPtr := want

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"utc time", want, want},
		{"zoned time is normalized", want.In(berlin), want},
		{"time pointer", &wantPtr, want},
		{"rfc3339", "2024-03-05T13:07:45Z", want},
		{"rfc3339 with offset", "2024-03-05T14:07:45+01:00", want},
		{"rfc3339 nano", "2024-03-05T13:07:45.000000000Z", want},
		{"iso without zone", "2024-03-05T13:07:45", want},
		{"space separated", "2024-03-05 13:07:45", want},
		{"surrounding spaces", "  2024-03-05 13:07:45\n", want},
		{"minute precision", "2024-03-05 13:07", want.Truncate(time.Minute)},
		{"date only", "2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"rfc1123", "Tue, 05 Mar 2024 13:07:45 UTC", want},
		{"bytes", []byte("2024-03-05T13:07:45Z"), want},
		{"named string", eventName("2024-03-05T13:07:45Z"), want},
		{"stringer", stamp{"2024-03-05T13:07:45Z"}, want},
		{"unix millis int64", want.UnixMilli(), want},
		{"unix millis int", int(want.UnixMilli()), want},
		{"unix millis uint64", uint64(want.UnixMilli()), want},
		{"unix millis float", float64(want.UnixMilli()), want},
		{"epoch zero", 0, time.Unix(0, 0).UTC()},
		{"json number", json.Number("1709644065000"), want},
		{"sql null time", sql.NullTime{Time: want, Valid: true}, want},
		{"pg timestamptz", pgtype.Timestamptz{Time: want, Valid: true}, want},
		{"pg timestamptz pointer", &pgtype.Timestamptz{Time: want, Valid: true}, want},
		{"pg timestamp", pgtype.Timestamp{Time: want, Valid: true}, want},
		{"pg date", pgtype.Date{Time: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Valid: true}, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := e.ParseUTC(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestEngine_ParseUTC_Empty(t *testing.T) {
	t.Parallel()

	e := datetime.New()
	var nilTime *time.Time
	var nilStamp *stamp

	for name, in := range map[string]any{
		"nil":              nil,
		"empty string":     "",
		"blank string":     "   ",
		"zero time":        time.Time{},
		"nil time pointer": nilTime,
		"nil stringer":     nilStamp,
		"null sql time":    sql.NullTime{},
		"null pg time":     pgtype.Timestamptz{},
		"null pg date":     pgtype.Date{},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := e.ParseUTC(in)
			require.ErrorIs(t, err, datetime.ErrEmptyDate)
		})
	}
}

func TestEngine_ParseUTC_Invalid(t *testing.T) {
	t.Parallel()

	e := datetime.New()

	for name, in := range map[string]any{
		"garbage":          "not a date",
		"out of range":     "2024-13-45",
		"nan":              math.NaN(),
		"infinity":         math.Inf(1),
		"huge uint":        uint64(math.MaxUint64),
		"struct":           struct{ A int }{1},
		"bool":             true,
		"pg infinity":      pgtype.Timestamptz{InfinityModifier: pgtype.Infinity, Valid: true},
		"bad json value":   json.Number("abc"),
		"millis too late":  int64(9e15),
		"millis too early": int64(-9e15),
		"float too late":   float64(9e15),
		"json too late":    json.Number("9000000000000000"),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := e.ParseUTC(in)
			require.ErrorIs(t, err, datetime.ErrInvalidDate)
		})
	}
}

func TestEngine_Options(t *testing.T) {
	t.Parallel()

	t.Run("extra layouts", func(t *testing.T) {
		t.Parallel()
		e := datetime.New(datetime.WithLayouts("02/01/2006 15:04"))
		got, err := e.ParseUTC("05/03/2024 13:07")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05 13:07", e.Format(got, datetime.ShortLayout))
	})

	t.Run("epoch seconds", func(t *testing.T) {
		t.Parallel()
		e := datetime.New(datetime.WithEpochUnit(time.Second))
		got, err := e.ParseUTC(int64(1709644065))
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05 13:07", e.Format(got, datetime.ShortLayout))
	})

	t.Run("epoch range follows the unit", func(t *testing.T) {
		t.Parallel()
		e := datetime.New(datetime.WithEpochUnit(time.Second))
		got, err := e.ParseUTC(int64(8.64e12))
		require.NoError(t, err)
		assert.Equal(t, 275760, got.Year())
		_, err = e.ParseUTC(int64(8.64e12 + 1))
		require.ErrorIs(t, err, datetime.ErrInvalidDate)
	})

	t.Run("unsupported epoch unit is ignored", func(t *testing.T) {
		t.Parallel()
		e := datetime.New(datetime.WithEpochUnit(time.Hour))
		got, err := e.ParseUTC(int64(1709644065000))
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05 13:07", e.Format(got, datetime.ShortLayout))
	})

	t.Run("custom phraser", func(t *testing.T) {
		t.Parallel()
		e := datetime.New(datetime.WithPhraser(datetime.PhraserFunc(func(_, _ time.Time) string {
			return "whenever"
		})))
		assert.Equal(t, "whenever", e.Relative(now, now))
	})

	t.Run("nil phraser keeps default", func(t *testing.T) {
		t.Parallel()
		e := datetime.New(datetime.WithPhraser(nil))
		assert.Equal(t, "3 hours ago", e.Relative(now.Add(-3*time.Hour), now))
	})
}

func TestEngine_Format(t *testing.T) {
	t.Parallel()

	e := datetime.New()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"afternoon", time.Date(2024, 3, 5, 13, 7, 45, 0, time.UTC), "2024-03-05 13:07"},
		{"year boundary", time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC), "2023-12-31 23:59"},
		{"midnight", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-01-01 00:00"},
		{"zoned input rendered in utc", time.Date(2024, 1, 1, 0, 30, 0, 0, time.FixedZone("EST", -5*3600)), "2024-01-01 05:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.Format(tt.in, datetime.ShortLayout))
		})
	}
}

func TestEngine_Relative(t *testing.T) {
	t.Parallel()

	e := datetime.New()
	then := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 hours ago", e.Relative(then, now))
}
