package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/helixctl/internal/helix"
)

// RewardCatalog lists a broadcaster's custom rewards.
type RewardCatalog interface {
	GetCustomRewards(ctx context.Context, broadcasterID string) ([]helix.Reward, error)
}

// Outcome classifies a reward lookup.
type Outcome int

const (
	// NotFound means no tier produced a candidate.
	NotFound Outcome = iota
	// Resolved means exactly one reward was selected.
	Resolved
	// Ambiguous means the last tier produced more than one candidate.
	Ambiguous
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	default:
		return "not found"
	}
}

// Tier identifies the matching strategy that ended a lookup.
type Tier int

const (
	TierNone Tier = iota
	TierExact
	TierCaseInsensitive
	TierFuzzy
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierCaseInsensitive:
		return "case-insensitive"
	case TierFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Match is the result of a reward lookup. Callers that only care about
// found/not found should use Found, which treats Ambiguous as not found.
type Match struct {
	Outcome Outcome
	Tier    Tier
	// Reward is set when Outcome is Resolved.
	Reward helix.Reward
	// Candidates holds the competing rewards when Outcome is Ambiguous.
	Candidates []helix.Reward
	// Suggestion is the closest title when Outcome is NotFound.
	Suggestion string
}

// Found reports whether a single reward was selected.
func (m Match) Found() bool {
	return m.Outcome == Resolved
}

// exactTier returns the first reward titled exactly query. Later exact
// duplicates are ignored.
func exactTier(rewards []helix.Reward, query string) (helix.Reward, bool) {
	for _, r := range rewards {
		if r.Title == query {
			return r, true
		}
	}
	return helix.Reward{}, false
}

// caseInsensitiveTier returns every reward whose lowercased title equals the
// lowercased query.
func caseInsensitiveTier(rewards []helix.Reward, query string) []helix.Reward {
	query = strings.ToLower(query)
	var out []helix.Reward
	for _, r := range rewards {
		if strings.ToLower(r.Title) == query {
			out = append(out, r)
		}
	}
	return out
}

// fuzzyTier returns every reward whose lowercased title satisfies m.
func fuzzyTier(rewards []helix.Reward, m Matcher) []helix.Reward {
	var out []helix.Reward
	for _, r := range rewards {
		if m.Matches(strings.ToLower(r.Title)) {
			out = append(out, r)
		}
	}
	return out
}

// MatchReward selects a reward for query. Tiers run from most to least
// specific and stop at the first unambiguous result:
//
//  1. exact title, first in catalog order wins
//  2. case-insensitive title, only if exactly one
//  3. fuzzy match on the lowercased query, only if exactly one
//
// Several case-insensitive hits fall through to the fuzzy tier. A nil
// newMatcher uses NewSubsequenceMatcher.
func MatchReward(rewards []helix.Reward, query string, newMatcher NewMatcherFunc) Match {
	if newMatcher == nil {
		newMatcher = NewSubsequenceMatcher
	}

	if r, ok := exactTier(rewards, query); ok {
		return Match{Outcome: Resolved, Tier: TierExact, Reward: r}
	}

	if c := caseInsensitiveTier(rewards, query); len(c) == 1 {
		return Match{Outcome: Resolved, Tier: TierCaseInsensitive, Reward: c[0]}
	}

	switch c := fuzzyTier(rewards, newMatcher(strings.ToLower(query))); len(c) {
	case 0:
		m := Match{Outcome: NotFound}
		if hint, ok := Suggest(query, rewardTitles(rewards), SuggestThreshold); ok {
			m.Suggestion = hint
		}
		return m
	case 1:
		return Match{Outcome: Resolved, Tier: TierFuzzy, Reward: c[0]}
	default:
		return Match{Outcome: Ambiguous, Tier: TierFuzzy, Candidates: c}
	}
}

func rewardTitles(rewards []helix.Reward) []string {
	titles := make([]string, len(rewards))
	for i, r := range rewards {
		titles[i] = r.Title
	}
	return titles
}

// RewardResolver maps reward titles to rewards.
type RewardResolver struct {
	catalog    RewardCatalog
	newMatcher NewMatcherFunc
	logger     hclog.Logger
}

// NewRewardResolver creates a RewardResolver using subsequence fuzzy matching.
func NewRewardResolver(catalog RewardCatalog, logger hclog.Logger) *RewardResolver {
	return NewRewardResolverWithMatcher(catalog, NewSubsequenceMatcher, logger)
}

// NewRewardResolverWithMatcher creates a RewardResolver with a custom fuzzy matcher.
func NewRewardResolverWithMatcher(catalog RewardCatalog, newMatcher NewMatcherFunc, logger hclog.Logger) *RewardResolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &RewardResolver{
		catalog:    catalog,
		newMatcher: newMatcher,
		logger:     logger,
	}
}

// Resolve fetches the broadcaster's rewards and matches query against them.
func (r *RewardResolver) Resolve(ctx context.Context, broadcasterID, query string) (Match, error) {
	rewards, err := r.catalog.GetCustomRewards(ctx, broadcasterID)
	if err != nil {
		return Match{}, fmt.Errorf("failed to list rewards for %s: %w", broadcasterID, err)
	}

	m := MatchReward(rewards, query, r.newMatcher)
	r.logger.Debug("reward lookup", "query", query, "outcome", m.Outcome.String(), "tier", m.Tier.String())
	return m, nil
}
