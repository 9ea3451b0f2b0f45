package filters

import "html/template"

// Template function names, matching the front-end filter names.
const (
	FuncInitialLetter = "initialLetter"
	FuncShortDateTime = "shortDateTime"
	FuncTimeSince     = "timeSince"
)

// FuncMap binds the helpers for html/template. Convert with
// texttemplate.FuncMap(f.FuncMap()) for text/template.
func (f *Filters) FuncMap() template.FuncMap {
	return template.FuncMap{
		FuncInitialLetter: InitialLetter,
		FuncShortDateTime: f.ShortDateTime,
		FuncTimeSince:     f.TimeSince,
	}
}

// FuncMap returns the default Filters' template functions.
func FuncMap() template.FuncMap { return std.FuncMap() }
