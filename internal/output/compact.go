package output

import (
	"fmt"
	"io"

	"github.com/jokarl/helixctl/internal/helix"
	"github.com/jokarl/helixctl/internal/resolve"
)

// CompactRenderer renders one tab-separated line per item with the ID first.
// This format is useful for scripts, e.g. piping resolved IDs into other tools.
type CompactRenderer struct{}

// RenderTagReport writes the IDs of matched tags. Unmatched names are left
// out; they are already reported on stderr by the resolver's logger.
// Format: id<TAB>query
func (r *CompactRenderer) RenderTagReport(w io.Writer, report *resolve.TagReport) error {
	for _, m := range report.Matches {
		fmt.Fprintf(w, "%s\t%s\n", m.ID, m.Query)
	}
	return nil
}

// RenderRewardMatch writes the selected reward, or every candidate when the
// query is ambiguous. Nothing is written when no reward matches.
// Format: id<TAB>title
func (r *CompactRenderer) RenderRewardMatch(w io.Writer, query string, m resolve.Match) error {
	switch m.Outcome {
	case resolve.Resolved:
		fmt.Fprintf(w, "%s\t%s\n", m.Reward.ID, m.Reward.Title)
	case resolve.Ambiguous:
		for _, c := range m.Candidates {
			fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Title)
		}
	}
	return nil
}

// RenderRewards writes rewards in catalog order
// Format: id<TAB>cost<TAB>title
func (r *CompactRenderer) RenderRewards(w io.Writer, rewards []helix.Reward) error {
	for _, rw := range rewards {
		fmt.Fprintf(w, "%s\t%d\t%s\n", rw.ID, rw.Cost, rw.Title)
	}
	return nil
}

// RenderTags writes tags in catalog order
// Format: id<TAB>name
func (r *CompactRenderer) RenderTags(w io.Writer, tags []helix.Tag, locale string) error {
	for _, t := range tags {
		fmt.Fprintf(w, "%s\t%s\n", t.ID, tagName(t, locale))
	}
	return nil
}

// RenderCategories writes category search results
// Format: id<TAB>name
func (r *CompactRenderer) RenderCategories(w io.Writer, categories []helix.Category) error {
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
	}
	return nil
}

// RenderTokenInfo writes the token's owner
// Format: user_id<TAB>login
func (r *CompactRenderer) RenderTokenInfo(w io.Writer, info *helix.TokenInfo) error {
	fmt.Fprintf(w, "%s\t%s\n", info.UserID, info.Login)
	return nil
}
