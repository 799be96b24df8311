// Package authorizer talks to the external Authorizer instance that owns all
// user identities. The API itself stores no credentials; it only forwards the
// caller's bearer token and asks the provider who it belongs to.
package authorizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"booking-api/pkg/utils"

	"go.uber.org/zap"
)

var ErrUnauthorized = errors.New("invalid or expired token")

// Profile is the identity the provider reports for a session token.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Client struct {
	baseURL     string
	clientID    string
	redirectURL string
	httpClient  *http.Client
	log         *zap.Logger
}

func NewClient(config utils.AuthorizerConfig, log *zap.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(config.URL), "/")

	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid authorizer URL %q", config.URL)
	}

	return &Client{
		baseURL:     base,
		clientID:    config.ClientID,
		redirectURL: config.RedirectURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		log:         log.With(zap.String("client", "authorizer")),
	}, nil
}

const sessionQuery = `query { session { user { id email } } }`

type sessionResponse struct {
	Data struct {
		Session struct {
			User *Profile `json:"user"`
		} `json:"session"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// VerifySession asks the provider for the session behind the bearer token.
// Returns ErrUnauthorized when the provider rejects the token; any other
// error is a transport or provider failure.
func (c *Client) VerifySession(ctx context.Context, token string) (*Profile, error) {
	body, err := json.Marshal(map[string]string{"query": sessionQuery})
	if err != nil {
		return nil, fmt.Errorf("marshal session query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-authorizer-client-id", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Session verification request failed", zap.Error(err))
		return nil, fmt.Errorf("verify session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Error("Unexpected authorizer status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("authorizer returned status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}

	// GraphQL-level errors mean the token did not resolve to a session.
	if len(session.Errors) > 0 || session.Data.Session.User == nil {
		return nil, ErrUnauthorized
	}

	return session.Data.Session.User, nil
}
