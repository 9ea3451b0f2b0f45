package filters

import "errors"

// ErrInvalidConfig is returned when a Config cannot be loaded or applied.
var ErrInvalidConfig = errors.New("filters: invalid config")
