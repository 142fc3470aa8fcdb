// Package helix provides a small client for the Twitch Helix API.
//
// It covers only the endpoints helixctl needs: token validation, stream tags,
// channel point rewards, users, category search and channel information.
// Requests are authenticated with a user access token through an oauth2
// transport; the client never refreshes or acquires tokens on its own.
package helix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the Helix API root.
	DefaultBaseURL = "https://api.twitch.tv/helix"
	// DefaultAuthURL is the OAuth2 root used for token validation.
	DefaultAuthURL = "https://id.twitch.tv/oauth2"

	defaultTimeout = 30 * time.Second
	userAgent      = "helixctl"
)

// Options configures a Client.
type Options struct {
	// Token is the user access token (without the "oauth:" prefix).
	Token string
	// ClientID is the application client ID sent with every Helix request.
	// When empty, the client ID reported by ValidateToken is used.
	ClientID string
	// BaseURL overrides DefaultBaseURL (tests, proxies).
	BaseURL string
	// AuthURL overrides DefaultAuthURL.
	AuthURL string
	// Timeout for each request. Zero means 30 seconds.
	Timeout time.Duration
	Logger  hclog.Logger
}

// Client talks to the Helix API on behalf of a single user token.
type Client struct {
	httpClient *http.Client
	authClient *http.Client
	token      string
	clientID   string
	baseURL    string
	authURL    string
	logger     hclog.Logger
}

// NewClient creates a new Helix client.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	token := strings.TrimPrefix(opts.Token, "oauth:")

	base := &http.Client{Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = timeout

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Client{
		httpClient: httpClient,
		authClient: base,
		token:      token,
		clientID:   opts.ClientID,
		baseURL:    strings.TrimSuffix(firstNonEmpty(opts.BaseURL, DefaultBaseURL), "/"),
		authURL:    strings.TrimSuffix(firstNonEmpty(opts.AuthURL, DefaultAuthURL), "/"),
		logger:     logger.Named("helix"),
	}
}

// ClientID returns the client ID sent with Helix requests.
func (c *Client) ClientID() string {
	return c.clientID
}

// page is the envelope shared by all Helix list responses.
type page[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Cursor string `json:"cursor"`
	} `json:"pagination"`
}

// errorBody is the JSON error document returned by Helix and the OAuth2 endpoints.
type errorBody struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// do executes a Helix request and decodes the response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.clientID != "" {
		req.Header.Set("Client-Id", c.clientID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("request", "method", method, "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, endpoint, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	return nil
}

func newAPIError(method, endpoint string, resp *http.Response) error {
	apiErr := &APIError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil {
		apiErr.Message = eb.Message
		if apiErr.Message == "" {
			apiErr.Message = eb.Error
		}
	} else {
		apiErr.Message = strings.TrimSpace(string(data))
	}

	return apiErr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
