package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jokarl/helixctl/internal/helix"
	"github.com/jokarl/helixctl/internal/resolve"
)

func TestTextRenderer_TagReport(t *testing.T) {
	report := &resolve.TagReport{
		Matches: []resolve.TagMatch{
			{Query: "englisch", ID: "t-en", Name: "Englisch", Locale: "de-de"},
			{Query: "chill", ID: "t-chill", Name: "Chill", Locale: "en-us", Fallback: true},
		},
		Unmatched:   []string{"Speedrn"},
		Suggestions: map[string]string{"Speedrn": "Speedrun"},
	}

	var buf bytes.Buffer
	renderer := &TextRenderer{ColorEnabled: false}
	if err := renderer.RenderTagReport(&buf, report); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"englisch -> t-en",
		"chill -> t-chill",
		`(matched "Chill" in en-us)`,
		`Speedrn (did you mean "Speedrun"?)`,
		"Summary: 2 matched, 1 unmatched",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got:\n%s", want, output)
		}
	}
}

func TestTextRenderer_RewardMatch(t *testing.T) {
	tests := []struct {
		name  string
		match resolve.Match
		want  []string
	}{
		{
			name: "resolved",
			match: resolve.Match{
				Outcome: resolve.Resolved,
				Tier:    resolve.TierFuzzy,
				Reward:  helix.Reward{ID: "r1", Title: "Banana Split"},
			},
			want: []string{"Banana Split -> r1", "fuzzy match"},
		},
		{
			name: "ambiguous",
			match: resolve.Match{
				Outcome:    resolve.Ambiguous,
				Tier:       resolve.TierFuzzy,
				Candidates: []helix.Reward{{ID: "r1", Title: "Foo"}, {ID: "r2", Title: "FOO"}},
			},
			want: []string{`"foo" is ambiguous`, "r1  Foo", "r2  FOO"},
		},
		{
			name:  "not found with suggestion",
			match: resolve.Match{Outcome: resolve.NotFound, Suggestion: "Hydrate"},
			want:  []string{`no reward matches "foo"`, `did you mean "Hydrate"?`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderer := &TextRenderer{ColorEnabled: false}
			if err := renderer.RenderRewardMatch(&buf, "foo", tt.match); err != nil {
				t.Fatalf("Render error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestTextRenderer_Rewards(t *testing.T) {
	rewards := []helix.Reward{
		{ID: "r1", Title: "Hydrate", Cost: 500, IsEnabled: true},
		{ID: "r2", Title: "Stretch", Cost: 1000},
	}

	var buf bytes.Buffer
	renderer := &TextRenderer{ColorEnabled: false}
	if err := renderer.RenderRewards(&buf, rewards); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Hydrate", "500", "enabled", "disabled", "2 rewards"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}

func TestTextRenderer_TagsSorted(t *testing.T) {
	tags := []helix.Tag{
		{ID: "b", LocalizationNames: map[string]string{"en-us": "Zelda"}},
		{ID: "a", IsAuto: true, LocalizationNames: map[string]string{"en-us": "Art"}},
	}

	var buf bytes.Buffer
	renderer := &TextRenderer{ColorEnabled: false}
	if err := renderer.RenderTags(&buf, tags, "en-us"); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	output := buf.String()
	if strings.Index(output, "Art") > strings.Index(output, "Zelda") {
		t.Errorf("tags not sorted by name:\n%s", output)
	}
	if !strings.Contains(output, "Art (auto)") {
		t.Errorf("auto tag not marked:\n%s", output)
	}
}

func TestTextRenderer_NoCategories(t *testing.T) {
	var buf bytes.Buffer
	renderer := &TextRenderer{ColorEnabled: false}
	if err := renderer.RenderCategories(&buf, nil); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "No categories found") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestTextRenderer_TokenInfo(t *testing.T) {
	var buf bytes.Buffer
	renderer := &TextRenderer{ColorEnabled: false}
	info := &helix.TokenInfo{ClientID: "cid", Login: "streamer", UserID: "100", ExpiresIn: 3600}
	if err := renderer.RenderTokenInfo(&buf, info); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Login:     streamer", "User ID:   100", "Client ID: cid", "Scopes:    (none)", "in 1h0m0s"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
