package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jokarl/helixctl/internal/helix"
	"github.com/jokarl/helixctl/internal/resolve"
)

func TestJSONRenderer_RewardMatch(t *testing.T) {
	var buf bytes.Buffer
	renderer := &JSONRenderer{}
	m := resolve.Match{
		Outcome: resolve.Resolved,
		Tier:    resolve.TierExact,
		Reward:  helix.Reward{ID: "r1", Title: "Hydrate", Cost: 500},
	}
	if err := renderer.RenderRewardMatch(&buf, "Hydrate", m); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["outcome"] != "resolved" || out["tier"] != "exact" {
		t.Errorf("unexpected output: %v", out)
	}
	reward, ok := out["reward"].(map[string]any)
	if !ok || reward["id"] != "r1" {
		t.Errorf("reward = %v", out["reward"])
	}
}

func TestJSONRenderer_RewardNotFound(t *testing.T) {
	var buf bytes.Buffer
	renderer := &JSONRenderer{}
	if err := renderer.RenderRewardMatch(&buf, "zzz", resolve.Match{Outcome: resolve.NotFound}); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out["outcome"] != "not found" {
		t.Errorf("outcome = %v", out["outcome"])
	}
	if _, ok := out["reward"]; ok {
		t.Error("reward should be omitted when not found")
	}
	if _, ok := out["tier"]; ok {
		t.Error("tier should be omitted when not found")
	}
}

func TestJSONRenderer_TagReport(t *testing.T) {
	var buf bytes.Buffer
	renderer := &JSONRenderer{}
	report := &resolve.TagReport{
		Matches:   []resolve.TagMatch{{Query: "english", ID: "t1", Name: "English", Locale: "en-us"}},
		Unmatched: []string{"nope"},
	}
	if err := renderer.RenderTagReport(&buf, report); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	var out resolve.TagReport
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Matches) != 1 || out.Matches[0].ID != "t1" || len(out.Unmatched) != 1 {
		t.Errorf("unexpected report: %+v", out)
	}
}

func TestJSONRenderer_EmptyListsAreArrays(t *testing.T) {
	renderer := &JSONRenderer{}

	var buf bytes.Buffer
	if err := renderer.RenderCategories(&buf, nil); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if got := bytes.TrimSpace(buf.Bytes()); string(got) != "[]" {
		t.Errorf("categories = %s, want []", got)
	}

	buf.Reset()
	if err := renderer.RenderTags(&buf, nil, "en-us"); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if got := bytes.TrimSpace(buf.Bytes()); string(got) != "[]" {
		t.Errorf("tags = %s, want []", got)
	}
}
