package resolve

import "github.com/lithammer/fuzzysearch/fuzzy"

// Matcher decides whether a candidate satisfies a query built into it.
// Candidates are passed lowercased.
type Matcher interface {
	Matches(candidate string) bool
}

// NewMatcherFunc builds a Matcher from a lowercased query.
type NewMatcherFunc func(query string) Matcher

// SubsequenceMatcher matches candidates that contain every rune of the query
// in order, e.g. "bnns" matches "banana split".
type SubsequenceMatcher struct {
	query string
}

// NewSubsequenceMatcher is the default NewMatcherFunc.
func NewSubsequenceMatcher(query string) Matcher {
	return SubsequenceMatcher{query: query}
}

// Matches implements Matcher.
func (m SubsequenceMatcher) Matches(candidate string) bool {
	return fuzzy.Match(m.query, candidate)
}
