package pf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// The fixed device name/type pair identifying this client to the device
// registration endpoint.
const (
	deviceName = "pfterm"
	deviceType = "de.fivepoint.other"
)

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceName string `json:"deviceName"`
	DeviceType string `json:"deviceType"`
}

type loginResponse struct {
	ID    int    `json:"_id"`
	Token string `json:"token"`
	User  struct {
		Value int `json:"value"`
	} `json:"user"`
}

// CreateToken exchanges email and password for a long-lived access token by
// registering this client as a device. Empty credentials fail with
// ErrInvalidCredentials before any network call. Non-200 statuses and
// undecodable bodies are wrapped in a *DecodeError; callers distinguish
// "could not reach server" from "server rejected the login" by inspecting the
// wrapped cause with errors.As.
func CreateToken(ctx context.Context, baseURL, email, password string) (Token, error) {
	if email == "" || password == "" {
		return Token{}, ErrInvalidCredentials
	}
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return Token{}, err
	}

	payload, err := json.Marshal(loginRequest{
		Email:      email,
		Password:   password,
		DeviceName: deviceName,
		DeviceType: deviceType,
	})
	if err != nil {
		return Token{}, fmt.Errorf("encode login: %w", err)
	}

	reqURL := base.ResolveReference(&url.URL{Path: endpointDevice})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(payload))
	if err != nil {
		return Token{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := (&http.Client{Timeout: requestTimeout}).Do(req)
	if err != nil {
		return Token{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Token{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Token{}, &DecodeError{Err: &StatusError{StatusCode: resp.StatusCode, Body: body}}
	}

	var login loginResponse
	if err := json.Unmarshal(body, &login); err != nil {
		return Token{}, &DecodeError{Err: err}
	}
	return Token{
		UserID:  login.User.Value,
		TokenID: login.ID,
		Secret:  login.Token,
	}, nil
}
