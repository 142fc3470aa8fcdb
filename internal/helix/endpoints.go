package helix

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// MaxPageSize is the largest page Helix serves for list endpoints.
const MaxPageSize = 100

// ValidateToken checks the access token and returns the identity behind it.
// If the client was created without a client ID, the validated one is adopted.
func (c *Client) ValidateToken(ctx context.Context) (*TokenInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.authURL+"/validate", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.authClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to validate token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(http.MethodGet, "/oauth2/validate", resp)
	}

	var info TokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode token info: %w", err)
	}

	if c.clientID == "" {
		c.clientID = info.ClientID
	}

	return &info, nil
}

// GetAllStreamTags fetches one page of the global tag catalog.
// An empty returned cursor means the catalog is exhausted.
func (c *Client) GetAllStreamTags(ctx context.Context, after string, first int) ([]Tag, string, error) {
	q := url.Values{}
	q.Set("first", strconv.Itoa(clampPageSize(first)))
	if after != "" {
		q.Set("after", after)
	}

	var res page[Tag]
	if err := c.do(ctx, http.MethodGet, "/tags/streams", q, nil, &res); err != nil {
		return nil, "", err
	}
	return res.Data, res.Pagination.Cursor, nil
}

// GetStreamTags returns the tags currently set on a channel.
func (c *Client) GetStreamTags(ctx context.Context, broadcasterID string) ([]Tag, error) {
	q := url.Values{"broadcaster_id": {broadcasterID}}

	var res page[Tag]
	if err := c.do(ctx, http.MethodGet, "/streams/tags", q, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// ReplaceStreamTags replaces the manually set tags of a channel.
// An empty tagIDs removes all of them.
func (c *Client) ReplaceStreamTags(ctx context.Context, broadcasterID string, tagIDs []string) error {
	q := url.Values{"broadcaster_id": {broadcasterID}}
	if tagIDs == nil {
		tagIDs = []string{}
	}
	body := struct {
		TagIDs []string `json:"tag_ids"`
	}{TagIDs: tagIDs}

	return c.do(ctx, http.MethodPut, "/streams/tags", q, body, nil)
}

// GetCustomRewards returns all custom rewards of a broadcaster.
// Helix returns them in a single page.
func (c *Client) GetCustomRewards(ctx context.Context, broadcasterID string) ([]Reward, error) {
	q := url.Values{"broadcaster_id": {broadcasterID}}

	var res page[Reward]
	if err := c.do(ctx, http.MethodGet, "/channel_points/custom_rewards", q, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// CreateCustomReward creates a reward and returns it.
func (c *Client) CreateCustomReward(ctx context.Context, broadcasterID string, body RewardBody) (*Reward, error) {
	if body.Title == nil || body.Cost == nil {
		return nil, fmt.Errorf("title and cost are required to create a reward")
	}
	q := url.Values{"broadcaster_id": {broadcasterID}}

	var res page[Reward]
	if err := c.do(ctx, http.MethodPost, "/channel_points/custom_rewards", q, body, &res); err != nil {
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("create reward: empty response")
	}
	return &res.Data[0], nil
}

// UpdateCustomReward patches the fields set in body.
func (c *Client) UpdateCustomReward(ctx context.Context, broadcasterID, rewardID string, body RewardBody) (*Reward, error) {
	q := url.Values{
		"broadcaster_id": {broadcasterID},
		"id":             {rewardID},
	}

	var res page[Reward]
	if err := c.do(ctx, http.MethodPatch, "/channel_points/custom_rewards", q, body, &res); err != nil {
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("update reward %s: empty response", rewardID)
	}
	return &res.Data[0], nil
}

// GetUsers looks up accounts by login and/or ID. With neither given, Helix
// returns the user behind the token.
func (c *Client) GetUsers(ctx context.Context, logins, ids []string) ([]User, error) {
	q := url.Values{}
	for _, login := range logins {
		q.Add("login", login)
	}
	for _, id := range ids {
		q.Add("id", id)
	}

	var res page[User]
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// SearchCategories searches categories by name. limit is clamped to 1..100.
func (c *Client) SearchCategories(ctx context.Context, query string, limit int) ([]Category, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("first", strconv.Itoa(clampPageSize(limit)))

	var res page[Category]
	if err := c.do(ctx, http.MethodGet, "/search/categories", q, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// SearchCategory returns the best match for query, or nil if there is none.
func (c *Client) SearchCategory(ctx context.Context, query string) (*Category, error) {
	categories, err := c.SearchCategories(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, nil
	}
	return &categories[0], nil
}

// ModifyChannelInformation updates the non-empty fields of info.
func (c *Client) ModifyChannelInformation(ctx context.Context, broadcasterID string, info ChannelInfo) error {
	q := url.Values{"broadcaster_id": {broadcasterID}}
	return c.do(ctx, http.MethodPatch, "/channels", q, info, nil)
}

func clampPageSize(n int) int {
	return min(max(n, 1), MaxPageSize)
}
