package filters

import (
	"errors"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/jkppr/timesketch/pkg/datetime"
)

// Config holds display filter settings.
type Config struct {
	// Relative-time wording: "dayjs", "humanize" or "timeago".
	RelativePhraser string `env:"FILTERS_RELATIVE_PHRASER" envDefault:"dayjs" yaml:"relative_phraser"`

	// Rendered for dates that are present but unreadable.
	InvalidDateText string `env:"FILTERS_INVALID_DATE_TEXT" envDefault:"Invalid Date" yaml:"invalid_date_text"`

	// Extra Go time layouts for parsing date strings, tried after the built-in
	// ISO 8601 and RFC 1123 shapes. Separated by "|" in the environment since
	// layouts may contain commas.
	DateLayouts []string `env:"FILTERS_DATE_LAYOUTS" envSeparator:"|" yaml:"date_layouts"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		RelativePhraser: datetime.PhraserDayjs,
		InvalidDateText: DefaultInvalidDateText,
	}
}

// ConfigFromEnv reads Config from environment variables.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// ParseConfig reads Config from YAML. Missing keys keep their defaults and
// empty input yields DefaultConfig.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds Filters from cfg. Options are applied after the
// configured ones and override them.
func NewFromConfig(cfg Config, opts ...Option) (*Filters, error) {
	phraser, err := datetime.PhraserByName(cfg.RelativePhraser)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	base := []Option{
		WithCapability(datetime.New(
			datetime.WithPhraser(phraser),
			datetime.WithLayouts(cfg.DateLayouts...),
		)),
		WithInvalidDateText(cfg.InvalidDateText),
	}
	return New(append(base, opts...)...), nil
}
