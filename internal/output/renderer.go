package output

import (
	"io"

	"github.com/jokarl/helixctl/internal/helix"
	"github.com/jokarl/helixctl/internal/resolve"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// RenderTagReport writes the outcome of resolving tag names
	RenderTagReport(w io.Writer, report *resolve.TagReport) error
	// RenderRewardMatch writes the outcome of a reward lookup
	RenderRewardMatch(w io.Writer, query string, m resolve.Match) error
	// RenderRewards writes a list of rewards
	RenderRewards(w io.Writer, rewards []helix.Reward) error
	// RenderTags writes a list of tags using their names in locale
	RenderTags(w io.Writer, tags []helix.Tag, locale string) error
	// RenderCategories writes category search results
	RenderCategories(w io.Writer, categories []helix.Category) error
	// RenderTokenInfo writes the identity behind the access token
	RenderTokenInfo(w io.Writer, info *helix.TokenInfo) error
}

// Format represents an output format
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatCompact Format = "compact"
)

// ValidFormats returns the accepted --format values
func ValidFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatCompact)}
}

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	case FormatCompact:
		return &CompactRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}

// tagName picks the display name of t for locale, falling back to English
// and finally to the ID.
func tagName(t helix.Tag, locale string) string {
	for _, lc := range resolve.LocaleCandidates(locale) {
		if name, ok := t.Name(lc.Locale); ok {
			return name
		}
	}
	return t.ID
}
