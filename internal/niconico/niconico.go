// package niconico implements a minimal client for the Niconico nvapi
// surface used during fixture generation.
//
// Authentication is a user session cookie (user_session). The client
// covers exactly the read endpoints the fixture collector needs; it does
// not paginate beyond a single page and performs no write operations.
package niconico

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
)

const (
	defaultBaseURL = "https://nvapi.nicovideo.jp"
	frontendID     = "6"
	frontendVer    = "0"
)

// Client is an authenticated Niconico API client.
type Client struct {
	baseURL    string
	session    string
	httpClient *http.Client
}

// NewClient creates a Niconico client with the given session cookie value.
//
// baseURL and httpClient may be empty/nil to use defaults.
func NewClient(baseURL, session string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		session:    session,
		httpClient: client,
	}
}

// envelope is the nvapi response wrapper: {"meta": {...}, "data": {...}}.
type envelope struct {
	Meta struct {
		Status    int    `json:"status"`
		ErrorCode string `json:"errorCode"`
	} `json:"meta"`
	Data json.RawMessage `json:"data"`
}

// doRequest performs a GET against the nvapi and decodes the data payload
// of the response envelope into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, result any) error {
	apiURL := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Frontend-Id", frontendID)
	req.Header.Set("X-Frontend-Version", frontendVer)
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: "user_session", Value: c.session})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: status %d", shared.ErrNotAuthenticated, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if env.Meta.ErrorCode != "" {
			return fmt.Errorf("%w: status %d (%s)", shared.ErrAPIRequest, resp.StatusCode, env.Meta.ErrorCode)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// VerifySession checks the session cookie by fetching the authenticated
// user's own profile.
//
// Returns [shared.ErrAuthFailed] wrapped with detail when the session is
// rejected, so callers can abort a run before any fixture call is made.
func (c *Client) VerifySession(ctx context.Context) (*NicoUser, error) {
	var data struct {
		User NicoUser `json:"user"`
	}

	if err := c.doRequest(ctx, "/v1/users/me", &data); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	return &data.User, nil
}
