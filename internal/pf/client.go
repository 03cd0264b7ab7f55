package pf

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Token is the three-part access token issued by the device registration
// endpoint. It is immutable once obtained.
type Token struct {
	UserID  int
	TokenID int
	Secret  string
}

// Valid reports whether all three parts of the token are present.
func (t Token) Valid() bool {
	return t.UserID != 0 && t.TokenID != 0 && t.Secret != ""
}

// Client talks to a ProjectFacts server on behalf of one authenticated user.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	token     Token
}

const (
	defaultUserAgent = "pfterm/0.1"
	requestTimeout   = 15 * time.Second
)

// API endpoints, relative to the base URL.
const (
	endpointRoot   = "/api/"
	endpointDevice = "/api/device/"
	endpointDay    = "/api/day/"
	endpointTime   = "/api/time/"
	endpointTicket = "/api/ticket/"
)

// NewClient builds a Client for the given base URL and access token.
func NewClient(baseURL string, token Token) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		token:     token,
	}, nil
}

// authHeader builds the Basic credential from the token id and secret.
// Callers never construct this header themselves.
func authHeader(token Token) (string, error) {
	if token.TokenID == 0 || token.Secret == "" {
		return "", ErrInvalidCredentials
	}
	cred := fmt.Sprintf("%d:%s", token.TokenID, token.Secret)
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(cred)), nil
}

// getBytes issues an authorized GET for rel and returns the raw body. A status
// outside the 2xx range returns a *StatusError carrying that body; transport
// failures are wrapped and propagated as-is. No retries are performed.
func (c *Client) getBytes(ctx context.Context, rel *url.URL) ([]byte, error) {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	auth, err := authHeader(c.token)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", auth)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}

// get issues an authorized GET and decodes the JSON body into dest. A 2xx
// response with an empty body is ErrInvalidResponse; a document is required.
func (c *Client) get(ctx context.Context, rel *url.URL, dest any) error {
	body, err := c.getBytes(ctx, rel)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body from %s", ErrInvalidResponse, rel.Path)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrInvalidURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
