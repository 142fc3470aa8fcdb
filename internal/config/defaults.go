package config

import (
	"github.com/jokarl/helixctl/internal/helix"
	"github.com/jokarl/helixctl/internal/resolve"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		API: &APIConfig{
			BaseURL:  helix.DefaultBaseURL,
			AuthURL:  helix.DefaultAuthURL,
			MaxPages: resolve.DefaultMaxPages,
		},
		Defaults: &DefaultsConfig{
			Locale: resolve.FallbackLocale,
		},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}
