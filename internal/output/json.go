package output

import (
	"encoding/json"
	"io"

	"github.com/jokarl/helixctl/internal/helix"
	"github.com/jokarl/helixctl/internal/resolve"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonRewardMatch is the structure for reward lookups
type jsonRewardMatch struct {
	Query      string         `json:"query"`
	Outcome    string         `json:"outcome"`
	Tier       string         `json:"tier,omitempty"`
	Reward     *helix.Reward  `json:"reward,omitempty"`
	Candidates []helix.Reward `json:"candidates,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
}

// jsonTag flattens a tag to the requested locale
type jsonTag struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsAuto bool   `json:"is_auto"`
}

// RenderTagReport writes the tag report as-is
func (r *JSONRenderer) RenderTagReport(w io.Writer, report *resolve.TagReport) error {
	return encode(w, report)
}

// RenderRewardMatch writes the lookup outcome
func (r *JSONRenderer) RenderRewardMatch(w io.Writer, query string, m resolve.Match) error {
	out := jsonRewardMatch{
		Query:      query,
		Outcome:    m.Outcome.String(),
		Candidates: m.Candidates,
		Suggestion: m.Suggestion,
	}
	if m.Tier != resolve.TierNone {
		out.Tier = m.Tier.String()
	}
	if m.Found() {
		reward := m.Reward
		out.Reward = &reward
	}
	return encode(w, out)
}

// RenderRewards writes rewards as an array
func (r *JSONRenderer) RenderRewards(w io.Writer, rewards []helix.Reward) error {
	if rewards == nil {
		rewards = []helix.Reward{}
	}
	return encode(w, rewards)
}

// RenderTags writes tags with their name in locale
func (r *JSONRenderer) RenderTags(w io.Writer, tags []helix.Tag, locale string) error {
	out := make([]jsonTag, 0, len(tags))
	for _, t := range tags {
		out = append(out, jsonTag{ID: t.ID, Name: tagName(t, locale), IsAuto: t.IsAuto})
	}
	return encode(w, out)
}

// RenderCategories writes categories as an array
func (r *JSONRenderer) RenderCategories(w io.Writer, categories []helix.Category) error {
	if categories == nil {
		categories = []helix.Category{}
	}
	return encode(w, categories)
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// RenderTokenInfo writes the validation response
func (r *JSONRenderer) RenderTokenInfo(w io.Writer, info *helix.TokenInfo) error {
	return encode(w, info)
}
