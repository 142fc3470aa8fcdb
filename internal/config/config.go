// Package config handles loading and validating helixctl configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileName is the configuration file searched for by Load.
const FileName = ".helixctl.hcl"

// Config represents the helixctl configuration
type Config struct {
	Version  int             `hcl:"version,attr"`
	API      *APIConfig      `hcl:"api,block"`
	Defaults *DefaultsConfig `hcl:"defaults,block"`
	Output   *OutputConfig   `hcl:"output,block"`

	// Token must come from HELIX_TOKEN or --token. Load rejects files setting it.
	Token string `hcl:"token,optional" env:"HELIX_TOKEN"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// APIConfig defines how the Helix API is reached
type APIConfig struct {
	ClientID string `hcl:"client_id,optional" env:"HELIX_CLIENT_ID"`
	BaseURL  string `hcl:"base_url,optional" env:"HELIX_BASE_URL"`
	AuthURL  string `hcl:"auth_url,optional" env:"HELIX_AUTH_URL"`
	MaxPages int    `hcl:"max_pages,optional"`
}

// DefaultsConfig defines fallback values for command flags
type DefaultsConfig struct {
	Locale      string `hcl:"locale,optional" env:"HELIX_LOCALE"`
	Broadcaster string `hcl:"broadcaster,optional" env:"HELIX_BROADCASTER"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Load loads configuration from the specified path or searches for it, then
// applies environment overrides.
// Search order: configPath (if provided), .helixctl.hcl in cwd, .helixctl.hcl
// in the user config directory.
func Load(configPath string) (*Config, error) {
	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile()
	}

	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		loaded, err := loadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile searches for .helixctl.hcl in standard locations
func findConfigFile() string {
	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, FileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "helixctl", "config.hcl")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	if config.Token != "" {
		return nil, fmt.Errorf("%s: tokens must not be stored in the config file; use HELIX_TOKEN or --token", path)
	}

	config.configPath = path
	applyDefaults(&config)

	return &config, nil
}

// applyEnv overlays HELIX_* environment variables onto cfg.
func applyEnv(cfg *Config) error {
	for _, target := range []any{cfg, cfg.API, cfg.Defaults} {
		if err := env.Parse(target); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}
	}
	return nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.API == nil {
		cfg.API = defaults.API
	} else {
		if cfg.API.BaseURL == "" {
			cfg.API.BaseURL = defaults.API.BaseURL
		}
		if cfg.API.AuthURL == "" {
			cfg.API.AuthURL = defaults.API.AuthURL
		}
		if cfg.API.MaxPages == 0 {
			cfg.API.MaxPages = defaults.API.MaxPages
		}
	}

	if cfg.Defaults == nil {
		cfg.Defaults = defaults.Defaults
	} else if cfg.Defaults.Locale == "" {
		cfg.Defaults.Locale = defaults.Defaults.Locale
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}
}
