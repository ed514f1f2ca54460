// Package pinterest wraps the Pinterest v5 API: the authorization-code
// OAuth flow and pin publishing.
package pinterest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"pinflow/internal/domain"
)

const (
	defaultAuthURL  = "https://www.pinterest.com/oauth/"
	defaultTokenURL = "https://api.pinterest.com/v5/oauth/token"
	defaultAPIBase  = "https://api.pinterest.com/v5"
)

// Config wires the OAuth application credentials and API endpoints.
// The URL fields exist so tests can point the client at a local server.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	APIBase      string
	Timeout      time.Duration
}

type Client struct {
	oauth      *oauth2.Config
	apiBase    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = defaultAuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	apiBase := cfg.APIBase
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"boards:read", "pins:read", "pins:write"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		apiBase:    strings.TrimSuffix(apiBase, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// AuthCodeURL builds the redirect target that starts the
// authorization-code flow. state is echoed back on the callback.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades the callback code for tokens, server-side.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, &domain.UpstreamError{Service: "pinterest oauth", Message: err.Error()}
	}
	return token, nil
}

// PublishRequest is the payload for creating one pin.
type PublishRequest struct {
	BoardID     string
	Title       string
	Description string
	AltText     string
	Link        string
	MediaURL    string
	MediaType   string
}

// PublishResult carries the Pinterest-assigned identifiers.
type PublishResult struct {
	PinID string
	URL   string
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Publish creates the pin. Failures carry the upstream message and are
// retryable by calling Publish again with the same request.
func (c *Client) Publish(ctx context.Context, accessToken string, req PublishRequest) (*PublishResult, error) {
	body, err := json.Marshal(map[string]any{
		"board_id":    req.BoardID,
		"title":       req.Title,
		"description": req.Description,
		"alt_text":    req.AltText,
		"link":        req.Link,
		"media_source": map[string]string{
			"source_type": "image_url",
			"url":         req.MediaURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal pin payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/pins", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call pinterest api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		var apiErr apiError
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return nil, &domain.UpstreamError{Service: "pinterest", Message: msg}
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, &domain.UpstreamError{Service: "pinterest", Message: "malformed create-pin response"}
	}
	if created.ID == "" {
		return nil, &domain.UpstreamError{Service: "pinterest", Message: "create-pin response has no id"}
	}

	return &PublishResult{
		PinID: created.ID,
		URL:   "https://www.pinterest.com/pin/" + created.ID + "/",
	}, nil
}
