package filters

import (
	"context"
	"errors"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/jkppr/timesketch/pkg/datetime"
)

var (
	avatarTmpl       = template.Must(template.New("avatar").Parse(`<span class="avatar">{{.}}</span>`))
	timestampTmpl    = template.Must(template.New("timestamp").Parse(`<time datetime="{{.Datetime}}" title="{{.Title}}">{{.Label}}</time>`))
	badTimestampTmpl = template.Must(template.New("bad-timestamp").Parse(`<time>{{.}}</time>`))
)

type timestampView struct {
	Datetime string
	Title    string
	Label    string
}

// Avatar renders the initial letter of v as <span class="avatar">X</span>.
// Nothing is written for falsy input.
func (f *Filters) Avatar(v any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		letter := InitialLetter(v)
		if letter == "" {
			return nil
		}
		return templ.FromGoHTML(avatarTmpl, letter).Render(ctx, w)
	})
}

// Timestamp renders v as a <time> element: the machine-readable instant in
// the datetime attribute, the short UTC form as its title and the relative
// label as text. Nothing is written for absent input.
func (f *Filters) Timestamp(v any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if Falsy(v) {
			return nil
		}
		t, err := f.dates.ParseUTC(v)
		if err != nil {
			text := f.fallback("timestamp", v, err)
			if errors.Is(err, datetime.ErrEmptyDate) || text == "" {
				return nil
			}
			return templ.FromGoHTML(badTimestampTmpl, text).Render(ctx, w)
		}
		return templ.FromGoHTML(timestampTmpl, timestampView{
			Datetime: t.Format(time.RFC3339),
			Title:    f.dates.Format(t, datetime.ShortLayout),
			Label:    f.dates.Relative(t, f.clock.Now()),
		}).Render(ctx, w)
	})
}
