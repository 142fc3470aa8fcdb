package config

// DefaultConfigHCL returns the starter configuration written by `helixctl init`.
func DefaultConfigHCL() string {
	return `# helixctl configuration
version = 1

# The access token is never read from this file.
# Set HELIX_TOKEN or pass --token instead.

api {
  # Client ID of your Twitch application. Taken from the token if unset.
  # client_id = ""

  # Upper bound on pages fetched when listing the tag catalog.
  max_pages = 1000
}

defaults {
  # Locale used to match tag names, e.g. "de-de". English names are always
  # tried as a fallback.
  locale = "en-us"

  # Channel to act on when --broadcaster is not given. Defaults to the
  # token's owner.
  # broadcaster = ""
}

output {
  # Output format: "text", "json", or "compact"
  format = "text"

  # Color mode: "auto", "always", or "never"
  color = "auto"
}
`
}
