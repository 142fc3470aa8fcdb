package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Validate validates the configuration and normalizes the default locale.
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Output != nil && cfg.Output.Format != "" {
		switch cfg.Output.Format {
		case "text", "json", "compact":
			// valid
		default:
			return fmt.Errorf("invalid output format: %s (must be 'text', 'json', or 'compact')", cfg.Output.Format)
		}
	}

	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	if cfg.API != nil && cfg.API.MaxPages < 0 {
		return fmt.Errorf("invalid max_pages: %d (must be positive)", cfg.API.MaxPages)
	}

	if cfg.Defaults != nil && cfg.Defaults.Locale != "" {
		locale, err := NormalizeLocale(cfg.Defaults.Locale)
		if err != nil {
			return err
		}
		cfg.Defaults.Locale = locale
	}

	return nil
}

// NormalizeLocale checks that locale is a well-formed BCP 47 tag and returns
// it in the lowercase form Helix uses for tag localizations ("en-us").
func NormalizeLocale(locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return strings.ToLower(tag.String()), nil
}
