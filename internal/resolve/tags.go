package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/helixctl/internal/helix"
)

// FallbackLocale is consulted for tags that have no name in the requested locale.
const FallbackLocale = "en-us"

// TagCatalog serves pages of the global tag catalog.
type TagCatalog interface {
	GetAllStreamTags(ctx context.Context, after string, first int) ([]helix.Tag, string, error)
}

// LocaleCandidate is one locale to try when matching a tag name.
type LocaleCandidate struct {
	Locale   string
	Fallback bool
}

// LocaleCandidates returns the locales to try, in order, for locale.
func LocaleCandidates(locale string) []LocaleCandidate {
	locale = strings.ToLower(locale)
	candidates := []LocaleCandidate{{Locale: locale}}
	if locale != FallbackLocale {
		candidates = append(candidates, LocaleCandidate{Locale: FallbackLocale, Fallback: true})
	}
	return candidates
}

// TagMatch records how a requested name was matched.
type TagMatch struct {
	Query  string `json:"query"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Locale string `json:"locale"`
	// Fallback is set when the name only matched in FallbackLocale.
	Fallback bool `json:"fallback,omitempty"`
}

// TagReport is the outcome of resolving a list of tag names.
type TagReport struct {
	Matches   []TagMatch `json:"matches"`
	Unmatched []string   `json:"unmatched,omitempty"`
	// Suggestions maps unmatched names to the closest known tag name.
	Suggestions map[string]string `json:"suggestions,omitempty"`
}

// IDs returns the matched tag IDs in request order.
func (r *TagReport) IDs() []string {
	ids := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		ids = append(ids, m.ID)
	}
	return ids
}

// MatchTag finds the first eligible tag for name. Each locale candidate is
// tried against the whole catalog before moving on to the next, so a match in
// the requested locale always beats an English one. The English name is only
// consulted for tags without a name in the requested locale. Auto-generated
// tags never match.
func MatchTag(catalog []helix.Tag, name, locale string) (TagMatch, bool) {
	candidates := LocaleCandidates(locale)
	requested := candidates[0].Locale
	for _, lc := range candidates {
		for _, tag := range catalog {
			if tag.IsAuto {
				continue
			}
			if _, localized := tag.Name(requested); lc.Fallback && localized {
				continue
			}
			display, ok := tag.Name(lc.Locale)
			if !ok || !strings.EqualFold(display, name) {
				continue
			}
			return TagMatch{
				Query:    name,
				ID:       tag.ID,
				Name:     display,
				Locale:   lc.Locale,
				Fallback: lc.Fallback,
			}, true
		}
	}
	return TagMatch{}, false
}

// MatchTags matches every name against catalog, preserving request order.
// Unmatched names are left out of the matches without failing; duplicates in
// names produce duplicate matches. English fallbacks are logged as warnings.
func MatchTags(catalog []helix.Tag, names []string, locale string, logger hclog.Logger) *TagReport {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	report := &TagReport{Matches: []TagMatch{}}
	for _, name := range names {
		m, ok := MatchTag(catalog, name, locale)
		if !ok {
			report.Unmatched = append(report.Unmatched, name)
			if hint, ok := Suggest(name, tagNames(catalog, locale), SuggestThreshold); ok {
				if report.Suggestions == nil {
					report.Suggestions = make(map[string]string)
				}
				report.Suggestions[name] = hint
			}
			logger.Debug("no tag matched", "name", name, "locale", locale)
			continue
		}

		if m.Fallback {
			logger.Warn(fmt.Sprintf("The tag `%s` has no localized name for `%s`. Matched the English name instead.", m.Name, locale))
		}
		report.Matches = append(report.Matches, m)
	}
	return report
}

// tagNames lists the names eligible for suggestions in the same locale order
// MatchTag uses.
func tagNames(catalog []helix.Tag, locale string) []string {
	var names []string
	for _, lc := range LocaleCandidates(locale) {
		for _, tag := range catalog {
			if tag.IsAuto {
				continue
			}
			if name, ok := tag.Name(lc.Locale); ok {
				names = append(names, name)
			}
		}
	}
	return names
}

// TagResolver maps tag names to tag IDs.
type TagResolver struct {
	catalog TagCatalog
	logger  hclog.Logger

	// MaxPages bounds catalog pagination. Zero means DefaultMaxPages.
	MaxPages int
}

// NewTagResolver creates a TagResolver. A nil logger discards warnings.
func NewTagResolver(catalog TagCatalog, logger hclog.Logger) *TagResolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &TagResolver{
		catalog: catalog,
		logger:  logger,
	}
}

// FetchAllTags returns the full tag catalog.
func (r *TagResolver) FetchAllTags(ctx context.Context) ([]helix.Tag, error) {
	tags, err := Paginate[helix.Tag](ctx, r.catalog.GetAllStreamTags, r.MaxPages)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	r.logger.Debug("fetched tag catalog", "tags", len(tags))
	return tags, nil
}

// ResolveReport fetches the catalog and matches names against it.
func (r *TagResolver) ResolveReport(ctx context.Context, names []string, locale string) (*TagReport, error) {
	catalog, err := r.FetchAllTags(ctx)
	if err != nil {
		return nil, err
	}
	return MatchTags(catalog, names, locale, r.logger), nil
}

// Resolve returns the IDs of the tags matching names, in request order.
// Unmatched names are dropped.
func (r *TagResolver) Resolve(ctx context.Context, names []string, locale string) ([]string, error) {
	report, err := r.ResolveReport(ctx, names, locale)
	if err != nil {
		return nil, err
	}
	return report.IDs(), nil
}
