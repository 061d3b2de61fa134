package granary

import (
	"os"

	"github.com/rs/zerolog"
)

// maskBitCap is the width of the smallest signature mask build. Component bit
// positions must stay below it regardless of the configured maximum.
const maskBitCap = 64

// DefaultMaxComponentTypes is the default bound on distinct component types
// per world.
const DefaultMaxComponentTypes = maskBitCap

type config struct {
	maxComponentTypes int
	logger            zerolog.Logger
}

// Option configures a World at creation time.
type Option func(*config)

func defaultConfig() config {
	return config{
		maxComponentTypes: DefaultMaxComponentTypes,
		logger:            zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
}

// WithMaxComponentTypes bounds the number of distinct component types the
// world accepts. Values outside [1, DefaultMaxComponentTypes] are clamped to
// the signature mask width.
func WithMaxComponentTypes(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		if n > maskBitCap {
			n = maskBitCap
		}
		c.maxComponentTypes = n
	}
}

// WithLogger replaces the world's logger. Non-fatal conditions (redundant
// mutations, duplicate registrations) are reported here at warn level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
