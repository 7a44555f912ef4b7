package config

import "time"

// DefaultConfig returns sensible defaults for all configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Endpoint: "https://api.github.com/graphql",
			Timeout:  Duration{30 * time.Second},
		},
		Display: DisplayConfig{
			Width:     0,
			BodyLines: 0,
		},
	}
}
