// Package app wires stored credentials, the API client, and the snapshot
// store together and orchestrates per-day reads.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andre0707/pfterm/internal/creds"
	"github.com/andre0707/pfterm/internal/pf"
	"github.com/andre0707/pfterm/internal/state"
)

// ErrNoSession indicates no stored access token; the user must log in first.
var ErrNoSession = errors.New("no stored session, run: pfterm login")

// App holds the pieces a running command needs.
type App struct {
	Client    *pf.Client
	Store     *state.Store
	Creds     creds.Credentials
	CredsPath string
}

// New loads credentials from credsPath (empty for the default location) and
// builds the API client. It fails with ErrNoSession when the stored token
// triple is incomplete.
func New(credsPath string) (*App, error) {
	c, err := creds.Load(credsPath)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	tok, ok := c.Token()
	if !ok {
		return nil, ErrNoSession
	}
	client, err := pf.NewClient(c.BaseURL, tok)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}
	return &App{
		Client:    client,
		Store:     &state.Store{},
		Creds:     c,
		CredsPath: credsPath,
	}, nil
}

// ReadDay resolves attendance and time entries for date and publishes the
// result through the store. Calling ReadDay for a new date supersedes any
// read still in flight for the previous one; the superseded result is
// discarded by the store, never merged. A superseded call returns an empty
// snapshot tagged with its own date, never the newer date's data.
func (a *App) ReadDay(ctx context.Context, date time.Time) state.Snapshot {
	a.Store.SetDate(date)

	att, attErr := a.Client.Attendance(ctx, date)
	entries, entErr := a.Client.TimeEntries(ctx, date)

	a.Store.Update(date, att, entries, errors.Join(attErr, entErr))
	snap := a.Store.Snapshot()
	if !state.SameDay(snap.Date, date) {
		return state.Snapshot{Date: date}
	}
	return snap
}

// Login exchanges email and password for an access token and persists the
// resulting session at credsPath.
func Login(ctx context.Context, credsPath, baseURL, email, password string) (creds.Credentials, error) {
	tok, err := pf.CreateToken(ctx, baseURL, email, password)
	if err != nil {
		return creds.Credentials{}, err
	}

	c, err := creds.Load(credsPath)
	if err != nil {
		return creds.Credentials{}, fmt.Errorf("load credentials: %w", err)
	}
	c.BaseURL = baseURL
	c.Email = email
	c.SetToken(tok)

	if err := creds.Save(credsPath, c); err != nil {
		return creds.Credentials{}, fmt.Errorf("save credentials: %w", err)
	}
	return c, nil
}

// Logout drops the stored token, keeping base URL and email for the next login.
func Logout(credsPath string) error {
	c, err := creds.Load(credsPath)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	c.ClearToken()
	if err := creds.Save(credsPath, c); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}
