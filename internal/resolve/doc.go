// Package resolve turns loosely typed identifiers into canonical Helix IDs.
//
// Operators refer to tags, rewards and broadcasters by the names they see on
// screen. Before any mutating request is issued, those names have to be mapped
// to the opaque IDs the API expects. This package holds that mapping logic:
//
//   - TagResolver pages through the full tag catalog and matches names in a
//     requested locale, falling back to English with a warning.
//   - RewardResolver matches a query against the broadcaster's rewards in three
//     tiers: exact, case-insensitive, fuzzy.
//   - BroadcasterResolver maps a login, an ID or "self" to an account ID.
//
// Every call fetches fresh data. Nothing is cached between calls and failed
// fetches are never retried; callers that need a timeout pass a context with
// a deadline.
//
// Example usage:
//
//	tags := resolve.NewTagResolver(client, logger)
//	ids, err := tags.Resolve(ctx, []string{"English", "Speedrun"}, "de-de")
//
//	rewards := resolve.NewRewardResolver(client, logger)
//	m, err := rewards.Resolve(ctx, broadcasterID, "hydrate")
//	if m.Found() {
//	    fmt.Println(m.Reward.ID)
//	}
package resolve
