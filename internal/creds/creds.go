// Package creds persists the ProjectFacts session: base URL, email, and the
// three-part access token. Stored in ~/.config/pfterm/credentials.toml.
package creds

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/andre0707/pfterm/internal/pf"
)

// Credentials is the persisted session state. Any of AccessID, AccessToken,
// or UserID missing means no valid session exists.
type Credentials struct {
	BaseURL     string `toml:"base_url"`
	Email       string `toml:"email"`
	AccessID    int    `toml:"access_id,omitempty"`
	AccessToken string `toml:"access_token,omitempty"`
	UserID      int    `toml:"user_id,omitempty"`
}

const (
	defaultCredsPath = "~/.config/pfterm/credentials.toml"
	defaultBaseURL   = "https://projectfacts.de"
)

// DefaultPath returns the default credentials file path.
func DefaultPath() string {
	return defaultCredsPath
}

// Token returns the stored access token. ok is false when any part of the
// triple is missing.
func (c Credentials) Token() (pf.Token, bool) {
	tok := pf.Token{
		UserID:  c.UserID,
		TokenID: c.AccessID,
		Secret:  c.AccessToken,
	}
	if !tok.Valid() {
		return pf.Token{}, false
	}
	return tok, true
}

// SetToken stores tok, replacing any previous session.
func (c *Credentials) SetToken(tok pf.Token) {
	c.AccessID = tok.TokenID
	c.AccessToken = tok.Secret
	c.UserID = tok.UserID
}

// ClearToken drops the stored token, keeping base URL and email.
func (c *Credentials) ClearToken() {
	c.AccessID = 0
	c.AccessToken = ""
	c.UserID = 0
}

// Load reads credentials from path, falling back to defaults when the file is
// missing. An empty path uses the default location.
func Load(path string) (Credentials, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Credentials{BaseURL: defaultBaseURL}, err
	}

	creds := Credentials{BaseURL: defaultBaseURL}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return creds, nil
		}
		return creds, fmt.Errorf("read credentials: %w", err)
	}
	if err := toml.Unmarshal(data, &creds); err != nil {
		return Credentials{BaseURL: defaultBaseURL}, fmt.Errorf("parse credentials %s: %w", resolved, err)
	}
	if strings.TrimSpace(creds.BaseURL) == "" {
		creds.BaseURL = defaultBaseURL
	}
	return creds, nil
}

// Save writes credentials to path with owner-only permissions, creating
// parent directories as needed. The write is atomic (tmp file plus rename) so
// a crash never leaves a truncated token behind.
func Save(path string, c Credentials) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	tmp := resolved + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, resolved); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultCredsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
