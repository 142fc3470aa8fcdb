package helix

// Tag is a stream tag from the tag catalog.
type Tag struct {
	ID                       string            `json:"tag_id"`
	IsAuto                   bool              `json:"is_auto"`
	LocalizationNames        map[string]string `json:"localization_names"`
	LocalizationDescriptions map[string]string `json:"localization_descriptions"`
}

// Name returns the display name for locale and whether one exists.
func (t Tag) Name(locale string) (string, bool) {
	name, ok := t.LocalizationNames[locale]
	return name, ok
}

// Reward is a channel points custom reward.
type Reward struct {
	ID                  string `json:"id"`
	BroadcasterID       string `json:"broadcaster_id"`
	Title               string `json:"title"`
	Prompt              string `json:"prompt"`
	Cost                int    `json:"cost"`
	IsEnabled           bool   `json:"is_enabled"`
	IsPaused            bool   `json:"is_paused"`
	IsUserInputRequired bool   `json:"is_user_input_required"`
	BackgroundColor     string `json:"background_color,omitempty"`
}

// RewardBody is the payload for creating or updating a custom reward.
// Nil fields are omitted so updates only touch what was set.
type RewardBody struct {
	Title               *string `json:"title,omitempty"`
	Prompt              *string `json:"prompt,omitempty"`
	Cost                *int    `json:"cost,omitempty"`
	IsEnabled           *bool   `json:"is_enabled,omitempty"`
	IsPaused            *bool   `json:"is_paused,omitempty"`
	IsUserInputRequired *bool   `json:"is_user_input_required,omitempty"`
	BackgroundColor     *string `json:"background_color,omitempty"`
}

// User is a Twitch account.
type User struct {
	ID          string `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
}

// Category is a game or category returned by category search.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BoxArtURL string `json:"box_art_url"`
}

// ChannelInfo holds the channel fields helixctl can modify.
// Empty fields are left untouched.
type ChannelInfo struct {
	Title      string `json:"title,omitempty"`
	Language   string `json:"broadcaster_language,omitempty"`
	CategoryID string `json:"game_id,omitempty"`
}

// IsEmpty reports whether no field is set.
func (ci ChannelInfo) IsEmpty() bool {
	return ci.Title == "" && ci.Language == "" && ci.CategoryID == ""
}

// TokenInfo is the result of validating an access token.
type TokenInfo struct {
	ClientID  string   `json:"client_id"`
	Login     string   `json:"login"`
	UserID    string   `json:"user_id"`
	Scopes    []string `json:"scopes"`
	ExpiresIn int      `json:"expires_in"`
}
