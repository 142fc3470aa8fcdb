package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/jokarl/helixctl/internal/helix"
	"github.com/jokarl/helixctl/internal/resolve"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

func (r *TextRenderer) configure() {
	if !r.ColorEnabled {
		color.NoColor = true
	}
}

// RenderTagReport writes one line per requested name
func (r *TextRenderer) RenderTagReport(w io.Writer, report *resolve.TagReport) error {
	r.configure()

	for _, m := range report.Matches {
		line := fmt.Sprintf("%s  %s -> %s", r.ok(), m.Query, m.ID)
		if m.Fallback {
			line += " " + r.warn(fmt.Sprintf("(matched %q in %s)", m.Name, m.Locale))
		}
		fmt.Fprintln(w, line)
	}

	for _, name := range report.Unmatched {
		line := fmt.Sprintf("%s  %s", r.fail(), name)
		if hint, ok := report.Suggestions[name]; ok {
			line += fmt.Sprintf(" (did you mean %q?)", hint)
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\nSummary: %d matched, %d unmatched\n", len(report.Matches), len(report.Unmatched))
	return nil
}

// RenderRewardMatch writes the selected reward or why none was selected
func (r *TextRenderer) RenderRewardMatch(w io.Writer, query string, m resolve.Match) error {
	r.configure()

	switch m.Outcome {
	case resolve.Resolved:
		fmt.Fprintf(w, "%s  %s -> %s (%s match)\n", r.ok(), m.Reward.Title, m.Reward.ID, m.Tier)
	case resolve.Ambiguous:
		fmt.Fprintf(w, "%s  %q is ambiguous, it matches:\n", r.fail(), query)
		for _, c := range m.Candidates {
			fmt.Fprintf(w, "  %s  %s\n", c.ID, c.Title)
		}
	default:
		line := fmt.Sprintf("%s  no reward matches %q", r.fail(), query)
		if m.Suggestion != "" {
			line += fmt.Sprintf(" (did you mean %q?)", m.Suggestion)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

// RenderRewards writes rewards in catalog order
func (r *TextRenderer) RenderRewards(w io.Writer, rewards []helix.Reward) error {
	r.configure()

	for _, rw := range rewards {
		state := color.New(color.FgGreen).Sprint("enabled")
		if !rw.IsEnabled {
			state = color.New(color.FgYellow).Sprint("disabled")
		}
		fmt.Fprintf(w, "%s  %-30s %6d  %s\n", rw.ID, rw.Title, rw.Cost, state)
	}
	fmt.Fprintf(w, "\n%d rewards\n", len(rewards))
	return nil
}

// RenderTags writes tags sorted by display name
func (r *TextRenderer) RenderTags(w io.Writer, tags []helix.Tag, locale string) error {
	r.configure()

	sorted := make([]helix.Tag, len(tags))
	copy(sorted, tags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return tagName(sorted[i], locale) < tagName(sorted[j], locale)
	})

	for _, t := range sorted {
		line := fmt.Sprintf("%s  %s", t.ID, tagName(t, locale))
		if t.IsAuto {
			line += " " + color.New(color.FgCyan).Sprint("(auto)")
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\n%d tags\n", len(tags))
	return nil
}

// RenderCategories writes category search results
func (r *TextRenderer) RenderCategories(w io.Writer, categories []helix.Category) error {
	r.configure()

	if len(categories) == 0 {
		fmt.Fprintln(w, "No categories found")
		return nil
	}
	for _, c := range categories {
		fmt.Fprintf(w, "%-10s  %s\n", c.ID, c.Name)
	}
	return nil
}

func (r *TextRenderer) ok() string {
	return color.New(color.FgGreen).Sprint("OK")
}

func (r *TextRenderer) fail() string {
	return color.New(color.FgRed, color.Bold).Sprint("NO")
}

func (r *TextRenderer) warn(s string) string {
	return color.New(color.FgYellow).Sprint(s)
}

// RenderTokenInfo writes the identity behind the access token
func (r *TextRenderer) RenderTokenInfo(w io.Writer, info *helix.TokenInfo) error {
	r.configure()

	scopes := "(none)"
	if len(info.Scopes) > 0 {
		scopes = strings.Join(info.Scopes, " ")
	}

	fmt.Fprintf(w, "Login:     %s\n", info.Login)
	fmt.Fprintf(w, "User ID:   %s\n", info.UserID)
	fmt.Fprintf(w, "Client ID: %s\n", info.ClientID)
	fmt.Fprintf(w, "Scopes:    %s\n", scopes)
	if info.ExpiresIn > 0 {
		fmt.Fprintf(w, "Expires:   in %s\n", time.Duration(info.ExpiresIn)*time.Second)
	}
	return nil
}
