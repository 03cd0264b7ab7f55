// Package ui provides the Bubble Tea terminal interface for pfterm. It is a
// pure consumer of the core: it renders snapshots and totals, and triggers
// reads when the user changes the query date.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andre0707/pfterm/internal/app"
	"github.com/andre0707/pfterm/internal/creds"
	"github.com/andre0707/pfterm/internal/state"
)

// view represents the current active view.
type view int

const (
	viewLogin view = iota
	viewDay
)

// Login form input indexes.
const (
	inputBaseURL = iota
	inputEmail
	inputPassword
	inputCount
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	App       *app.App // nil when no session is stored yet
	Creds     creds.Credentials
	CredsPath string
}

// dayMsg carries the result of a day read, tagged with the date it targeted.
// Update drops messages whose date no longer matches the model; a read
// superseded by date navigation must never overwrite the current day.
type dayMsg struct {
	date time.Time
	snap state.Snapshot
}

// loginMsg carries the result of a token creation attempt.
type loginMsg struct {
	creds creds.Credentials
	err   error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	credsPath string
	app       *app.App

	current view
	width   int
	height  int

	// Day view state
	date    time.Time
	snap    state.Snapshot
	hasSnap bool
	loading bool
	table   table.Model

	// Login form state
	inputs [inputCount]textinput.Model
	focus  int

	status string
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		ctx:       ctx,
		credsPath: opts.CredsPath,
		app:       opts.App,
		date:      today(),
		table:     newEntryTable(),
	}
	m.inputs = newLoginInputs(opts.Creds)
	if opts.App != nil {
		m.current = viewDay
	} else {
		m.current = viewLogin
		m.inputs[m.focus].Focus()
	}
	return m
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.current == viewDay {
		return tea.Batch(m.readDay(m.date), textinput.Blink)
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(3, msg.Height-summaryHeight))
		return m, nil

	case dayMsg:
		if !state.SameDay(msg.date, m.date) || !state.SameDay(msg.snap.Date, m.date) {
			// Stale result from a superseded read. The snapshot's own date
			// is checked too: a read that lost the race may carry whatever
			// the store holds for the newer date.
			return m, nil
		}
		m.snap = msg.snap
		m.hasSnap = true
		m.loading = false
		m.table.SetRows(entryRows(msg.snap.Entries))
		if msg.snap.LastError != nil {
			m.status = msg.snap.LastError.Error()
		} else {
			m.status = ""
		}
		return m, nil

	case loginMsg:
		return m.handleLogin(msg)

	case tea.KeyMsg:
		if m.current == viewLogin {
			return m.updateLogin(msg)
		}
		return m.updateDay(msg)
	}

	return m, nil
}

func (m Model) updateDay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left":
		return m.gotoDate(m.date.AddDate(0, 0, -1))
	case "right":
		next := m.date.AddDate(0, 0, 1)
		if next.After(today()) {
			return m, nil
		}
		return m.gotoDate(next)
	case "t":
		return m.gotoDate(today())
	case "r":
		m.loading = true
		return m, m.readDay(m.date)
	case "i":
		m.current = viewLogin
		m.focus = 0
		m.inputs[inputPassword].SetValue("")
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		m.inputs[m.focus].Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.app != nil {
			m.current = viewDay
			m.status = ""
		}
		return m, nil
	case "tab", "down":
		return m.focusInput(m.focus + 1)
	case "shift+tab", "up":
		return m.focusInput(m.focus - 1)
	case "enter":
		if m.focus < inputCount-1 {
			return m.focusInput(m.focus + 1)
		}
		baseURL := strings.TrimSpace(m.inputs[inputBaseURL].Value())
		email := strings.TrimSpace(m.inputs[inputEmail].Value())
		password := m.inputs[inputPassword].Value()
		if baseURL == "" || email == "" || password == "" {
			m.status = "base URL, email and password are required"
			return m, nil
		}
		m.status = "creating access token..."
		return m, m.submitLogin(baseURL, email, password)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleLogin(msg loginMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = msg.err.Error()
		return m, nil
	}
	a, err := app.New(m.credsPath)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.app = a
	m.current = viewDay
	m.status = ""
	m.loading = true
	m.hasSnap = false
	return m, m.readDay(m.date)
}

func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	m.date = date
	m.loading = true
	m.hasSnap = false
	m.snap = state.Snapshot{}
	m.table.SetRows(nil)
	return m, m.readDay(date)
}

func (m Model) focusInput(idx int) (tea.Model, tea.Cmd) {
	m.focus = (idx + inputCount) % inputCount
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focus].Focus()
	return m, textinput.Blink
}

func (m Model) readDay(date time.Time) tea.Cmd {
	a := m.app
	ctx := m.ctx
	return func() tea.Msg {
		return dayMsg{date: date, snap: a.ReadDay(ctx, date)}
	}
}

func (m Model) submitLogin(baseURL, email, password string) tea.Cmd {
	ctx := m.ctx
	credsPath := m.credsPath
	return func() tea.Msg {
		c, err := app.Login(ctx, credsPath, baseURL, email, password)
		return loginMsg{creds: c, err: err}
	}
}

func newLoginInputs(c creds.Credentials) [inputCount]textinput.Model {
	var inputs [inputCount]textinput.Model

	base := textinput.New()
	base.Prompt = "Base URL  > "
	base.SetValue(c.BaseURL)
	base.CharLimit = 200
	inputs[inputBaseURL] = base

	email := textinput.New()
	email.Prompt = "Email     > "
	email.SetValue(c.Email)
	email.CharLimit = 200
	inputs[inputEmail] = email

	password := textinput.New()
	password.Prompt = "Password  > "
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 200
	inputs[inputPassword] = password

	return inputs
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
